package bot

import (
	"bojackquotes/pkg/metrics"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

// Options are the handler settings that come from config.
type Options struct {
	Prefixes         []string
	EasterEggTrigger string
	EasterEggReply   string
	Metrics          *metrics.Metrics
}

type Handler struct {
	quotes           QuoteSource
	prefixes         []string
	easterEggTrigger string
	easterEggReply   string
	metrics          *metrics.Metrics
	botID            string
}

func NewHandler(q QuoteSource, opts Options) *Handler {
	return &Handler{
		quotes:           q,
		prefixes:         opts.Prefixes,
		easterEggTrigger: opts.EasterEggTrigger,
		easterEggReply:   opts.EasterEggReply,
		metrics:          opts.Metrics,
	}
}

func (h *Handler) SetBotID(id string) {
	h.botID = id
}

func (h *Handler) MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	h.HandleMessage(&DiscordSession{s}, m)
}

// HandleMessage answers plain-text commands such as "/quote plz" or "!season 3".
func (h *Handler) HandleMessage(s Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == h.botID || m.Author.Bot {
		return
	}

	reply, ok := h.Reply(m.Content)
	if !ok {
		return
	}

	log.Debug("Message command", "user", m.Author.ID, "user_name", displayName(m.Author), "channel", m.ChannelID, "content", m.Content)

	if _, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference()); err != nil {
		log.Error("Error sending reply", "channel", m.ChannelID, "err", err)
	}
}
