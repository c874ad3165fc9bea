package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

const (
	quoteTextOption    = "text"
	seasonNumberOption = "season"
)

// SlashCommands defines all available slash commands
var SlashCommands = []*discordgo.ApplicationCommand{
	{
		Name:        CommandQuote,
		Description: "Get a random BoJack Horseman quote",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        quoteTextOption,
				Description: "Anything else you want to say",
				Required:    false,
			},
		},
	},
	{
		Name:        CommandSeason,
		Description: "Get a random quote from a specific season",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        seasonNumberOption,
				Description: "Which season, e.g. 3",
				Required:    true,
			},
		},
	},
}

// SlashCommandHandlers maps command names to their handler functions
var SlashCommandHandlers = map[string]func(h *Handler, s Session, i *discordgo.InteractionCreate){
	CommandQuote:  handleQuoteCommand,
	CommandSeason: handleSeasonCommand,
}

func handleQuoteCommand(h *Handler, s Session, i *discordgo.InteractionCreate) {
	text := "/" + CommandQuote + " " + stringOption(i, quoteTextOption)
	respond(s, i, h.QuoteReply(text))
}

func handleSeasonCommand(h *Handler, s Session, i *discordgo.InteractionCreate) {
	text := "/" + CommandSeason + " " + stringOption(i, seasonNumberOption)
	respond(s, i, h.SeasonReply(text))
}

// stringOption returns the named string option, or "" if it was not given.
func stringOption(i *discordgo.InteractionCreate, name string) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

func respond(s Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		log.Error("Error responding to interaction", "err", err)
	}
}

// InteractionCreate handles all slash command interactions
func (h *Handler) InteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.HandleInteraction(&DiscordSession{s}, i)
}

func (h *Handler) HandleInteraction(s Session, i *discordgo.InteractionCreate) {
	// Only handle application commands (slash commands)
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	commandName := i.ApplicationCommandData().Name

	handler, ok := SlashCommandHandlers[commandName]
	if !ok {
		log.Warn("Unknown slash command", "name", commandName)
		return
	}

	if user, err := interactionUser(i); err == nil {
		log.Debug("Slash command", "name", commandName, "user", user.ID, "user_name", displayName(user))
	}
	handler(h, s, i)
}

// RegisterSlashCommands registers all slash commands with Discord
func RegisterSlashCommands(s *discordgo.Session, guildID string) ([]*discordgo.ApplicationCommand, error) {
	log.Info("Registering slash commands...")

	registeredCommands := make([]*discordgo.ApplicationCommand, len(SlashCommands))

	for i, cmd := range SlashCommands {
		// Register globally (guildID = "") or for a specific guild
		registeredCmd, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			log.Error("Cannot create command", "name", cmd.Name, "err", err)
			return nil, err
		}
		registeredCommands[i] = registeredCmd
		log.Info("Registered command", "name", cmd.Name)
	}

	return registeredCommands, nil
}

// UnregisterSlashCommands removes all registered slash commands
func UnregisterSlashCommands(s *discordgo.Session, guildID string, commands []*discordgo.ApplicationCommand) error {
	log.Info("Unregistering slash commands...")

	for _, cmd := range commands {
		err := s.ApplicationCommandDelete(s.State.User.ID, guildID, cmd.ID)
		if err != nil {
			log.Error("Cannot delete command", "name", cmd.Name, "err", err)
			return err
		}
		log.Info("Unregistered command", "name", cmd.Name)
	}

	return nil
}
