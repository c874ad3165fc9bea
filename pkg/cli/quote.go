package cli

import (
	"fmt"
	"strings"

	"bojackquotes/pkg/bot"
	"bojackquotes/pkg/config"

	"github.com/spf13/cobra"
)

func newQuoteCmd(cfgPath *string) *cobra.Command {
	var season string

	cmd := &cobra.Command{
		Use:           "quote [text...]",
		Short:         "Print the reply the bot would send, without connecting to Discord",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			store, err := loadStore(cfg, "", false)
			if err != nil {
				return err
			}
			h := newHandler(cfg, store, nil)

			var reply string
			if cmd.Flags().Changed("season") {
				reply = h.SeasonReply("/" + bot.CommandSeason + " " + season)
			} else {
				reply = h.QuoteReply("/" + bot.CommandQuote + " " + strings.Join(args, " "))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), reply)
			return err
		},
	}
	cmd.Flags().StringVarP(&season, "season", "s", "", "Pick from this season, as /season would")

	return cmd
}
