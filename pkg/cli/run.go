package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bojackquotes/pkg/bot"
	"bojackquotes/pkg/config"
	"bojackquotes/pkg/logging"
	"bojackquotes/pkg/metrics"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	tokenEnv   = "DISCORD_TOKEN"
	guildIDEnv = "DISCORD_GUILD_ID"
)

var errNoQuotes = errors.New("no quotes loaded")

func newRunCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:           "run",
		Short:         "Connect to Discord and answer /quote and /season",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format); err != nil {
				return err
			}

			// Load .env for secrets
			if err := godotenv.Load(); err != nil {
				log.Info("No .env file found, relying on environment variables")
			}

			token := os.Getenv(tokenEnv)
			if token == "" {
				return fmt.Errorf("missing required environment variable: %s", tokenEnv)
			}

			store, err := loadStore(cfg, "", false)
			if err != nil {
				return err
			}
			if store.Len() == 0 {
				return fmt.Errorf("%s: %w", cfg.Quotes.File, errNoQuotes)
			}
			log.Info("Loaded quotes", "file", cfg.Quotes.File, "count", store.Len(), "seasons", store.Seasons())

			m := metrics.New()
			m.SetQuotesLoaded(store.Len())
			handler := newHandler(cfg, store, m)

			dg, err := discordgo.New("Bot " + token)
			if err != nil {
				return fmt.Errorf("error creating Discord session: %w", err)
			}
			dg.Identify.Intents = discordgo.IntentsGuildMessages |
				discordgo.IntentsDirectMessages |
				discordgo.IntentMessageContent

			// Register Handlers
			dg.AddHandler(handler.MessageCreate)
			dg.AddHandler(handler.InteractionCreate)

			if err := dg.Open(); err != nil {
				return fmt.Errorf("error opening connection: %w", err)
			}
			defer dg.Close()

			// Set Bot ID in handler (so it can ignore itself)
			handler.SetBotID(dg.State.User.ID)

			// Empty guild ID registers global commands; a guild ID updates instantly, handy in development.
			guildID := os.Getenv(guildIDEnv)
			registeredCommands, err := bot.RegisterSlashCommands(dg, guildID)
			if err != nil {
				return fmt.Errorf("error registering slash commands: %w", err)
			}
			defer func() {
				if err := bot.UnregisterSlashCommands(dg, guildID, registeredCommands); err != nil {
					log.Error("Error unregistering slash commands", "err", err)
				}
			}()

			if err := bot.SetStatus(&bot.DiscordSession{Session: dg}, cfg.Status.Text); err != nil {
				log.Error("Error setting status", "err", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if cfg.Metrics.Addr != "" {
				go func() {
					if err := m.Serve(ctx, cfg.Metrics.Addr); err != nil {
						log.Error("Metrics server failed", "addr", cfg.Metrics.Addr, "err", err)
					}
				}()
			}

			log.Info("BoJack is now running. Press CTRL-C to exit.")
			<-ctx.Done()
			log.Info("Shutting down")
			return nil
		},
	}
}
