package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/speechdrill/internal/session"
)

var historyCmd = &cobra.Command{
	Use:   "history <listID>",
	Short: "Show saved sessions for a list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logToStderr)
		if err != nil {
			return err
		}
		defer e.Close()

		l, err := e.store.ListRepo().GetList(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get list: %w", err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s\n", l.Name)
		if len(l.Sessions) == 0 {
			fmt.Fprintln(w, "No sessions yet.")
			return nil
		}
		trend := session.ClassifyTrend(l.Sessions)
		fmt.Fprintf(w, "Trend: %s %s\n\n", trend.Arrow(), trend)

		verbose, _ := cmd.Flags().GetBool("verbose")
		fmt.Fprintf(w, "%-26s  %5s  %7s  %9s  %7s  %5s\n", "Date", "Words", "Correct", "Incorrect", "Skipped", "Score")
		fmt.Fprintln(w, strings.Repeat("─", 70))
		for _, rec := range l.Sessions {
			fmt.Fprintf(w, "%-26s  %5d  %7d  %9d  %7d  %4d%%\n",
				rec.FormattedDate(), rec.TotalWords, rec.Correct, rec.Incorrect, rec.Skipped, rec.Percentage())
			if !verbose {
				continue
			}
			for _, r := range rec.Results {
				label := r.PhonemeSymbol
				if c, ok := l.Configuration(r.ConfigurationID); ok {
					label = c.Summary()
				}
				fmt.Fprintf(w, "    %-30s %d/%d correct, %d skipped\n", label, r.Correct, r.Total, r.Skipped)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().BoolP("verbose", "v", false, "Show the per-sound breakdown of each session")
}
