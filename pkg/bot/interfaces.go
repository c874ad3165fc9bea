package bot

import (
	"bojackquotes/pkg/quotes"

	"github.com/bwmarrin/discordgo"
)

// Session interface abstracts discordgo.Session for testing
type Session interface {
	ChannelMessageSendReply(channelID string, content string, reference *discordgo.MessageReference, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	UpdateStatusComplex(usd discordgo.UpdateStatusData) error
}

// DiscordSession adapts discordgo.Session to the Session interface
type DiscordSession struct {
	*discordgo.Session
}

func (s *DiscordSession) UpdateStatusComplex(usd discordgo.UpdateStatusData) error {
	return s.Session.UpdateStatusComplex(usd)
}

// QuoteSource is the read-only view of the quote store the handlers need.
type QuoteSource interface {
	RandomQuote() (quotes.Quote, error)
	RandomQuoteForSeason(season uint8) (quotes.Quote, bool)
}
