// Package cli wires the bojackquotes commands together.
package cli

import (
	"fmt"

	"bojackquotes/pkg/bot"
	"bojackquotes/pkg/config"
	"bojackquotes/pkg/metrics"
	"bojackquotes/pkg/quotes"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "bojackquotes",
		Short: "A chat bot that answers with BoJack Horseman quotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yml", "Path to config file (.yml)")

	cmd.AddCommand(newRunCmd(&cfgPath))
	cmd.AddCommand(newCheckCmd(&cfgPath))
	cmd.AddCommand(newQuoteCmd(&cfgPath))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

// loadStore reads the quotes file named in cfg. path overrides the file when set.
func loadStore(cfg *config.Config, path string, skipMalformed bool) (*quotes.Store, error) {
	if path == "" {
		path = cfg.Quotes.File
	}

	var opts []quotes.ParseOption
	if skipMalformed || cfg.Quotes.SkipMalformed {
		opts = append(opts, quotes.SkipMalformed())
	}

	store, err := quotes.Load(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading quotes: %w", err)
	}
	return store, nil
}

func newHandler(cfg *config.Config, store bot.QuoteSource, m *metrics.Metrics) *bot.Handler {
	return bot.NewHandler(store, bot.Options{
		Prefixes:         cfg.Commands.Prefixes,
		EasterEggTrigger: cfg.Commands.EasterEggTrigger,
		EasterEggReply:   cfg.Commands.EasterEggReply,
		Metrics:          m,
	})
}
