package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/speechdrill/internal/phoneme"
)

var rootCmd = &cobra.Command{
	Use:   "speechdrill",
	Short: "Speech sound practice in the terminal",
	Long: "speechdrill builds practice lists of speech sounds, runs self-scored practice " +
		"sessions over them and keeps the results.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := phoneme.Validate(); err != nil {
			return fmt.Errorf("phoneme catalog: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SPEECHDRILL_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/speechdrill/config.yaml)")

	rootCmd.AddCommand(phonemesCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(listsCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
