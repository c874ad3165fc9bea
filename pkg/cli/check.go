package cli

import (
	"fmt"
	"slices"

	"bojackquotes/pkg/config"

	"github.com/spf13/cobra"
)

func newCheckCmd(cfgPath *string) *cobra.Command {
	var lenient bool

	cmd := &cobra.Command{
		Use:           "check [quotes-file]",
		Short:         "Validate a quotes file and print a per-season summary",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			}
			store, err := loadStore(cfg, path, lenient)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d quotes\n", store.Len())

			counts := store.CountBySeason()
			seasons := make([]uint8, 0, len(counts))
			for season := range counts {
				seasons = append(seasons, season)
			}
			slices.Sort(seasons)
			for _, season := range seasons {
				label := fmt.Sprintf("season %d", season)
				if season == 0 {
					label = "season ?"
				}
				fmt.Fprintf(out, "%-10s %d\n", label, counts[season])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&lenient, "lenient", false, "Skip malformed lines instead of failing")

	return cmd
}
