package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/speechdrill/internal/access"
	"github.com/abhisek/speechdrill/internal/app"
	"github.com/abhisek/speechdrill/internal/screens/setup"
	"github.com/abhisek/speechdrill/internal/session"
	"github.com/abhisek/speechdrill/internal/wordfmt"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <listID>",
	Short: "Run an interactive practice session over a list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxWords, err := cmd.Flags().GetInt("max-words")
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("max-words") && (maxWords < session.MinWordsPerConfiguration || maxWords > session.MaxWordsPerConfigurationLimit) {
			return fmt.Errorf("invalid --max-words %d: must be between %d and %d",
				maxWords, session.MinWordsPerConfiguration, session.MaxWordsPerConfigurationLimit)
		}

		e, err := openEnv(cmd, logToFile)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		list, err := e.store.ListRepo().GetList(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get list: %w", err)
		}

		gate := access.SubscriptionGate{PremiumUnlocked: e.cfg.PremiumUnlocked}
		runner := session.NewRunner(*list, gate, session.NewAssembler(), e.store.ListRepo(), e.log)

		if !cmd.Flags().Changed("max-words") {
			maxWords = e.cfg.Practice.MaxWordsPerConfiguration
		}
		runner.SetMaxWordsPerConfiguration(maxWords)

		e.log.Info("practice started", "list_id", list.ID, "configurations", len(runner.Configurations()), "locked", len(runner.Locked()))
		if err := app.Run(ctx, setup.New(ctx, *list, runner, wordfmt.New(), e.log)); err != nil {
			return err
		}

		if !runner.Saved() {
			fmt.Fprintln(cmd.OutOrStdout(), "Session not saved.")
			return nil
		}
		prefs := e.store.PreferenceRepo()
		for _, c := range runner.Selected() {
			if err := prefs.MarkCompleted(ctx, c.PhonemeSymbol); err != nil {
				e.log.Warn("mark completed", "symbol", c.PhonemeSymbol, "error", err)
			}
		}
		sum := runner.Summary()
		fmt.Fprintf(cmd.OutOrStdout(), "Saved: %d/%d correct (%d%% accuracy).\n", sum.Correct, sum.Total, sum.Accuracy())
		return nil
	},
}

func init() {
	practiceCmd.Flags().IntP("max-words", "m", session.DefaultMaxWordsPerConfiguration,
		"Words drawn per sound (1-10); defaults to practice.max_words_per_configuration")
}
