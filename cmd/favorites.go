package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List favorite phonemes",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logToStderr)
		if err != nil {
			return err
		}
		defer e.Close()

		favs, err := e.store.PreferenceRepo().Favorites(cmd.Context())
		if err != nil {
			return fmt.Errorf("load favorites: %w", err)
		}
		w := cmd.OutOrStdout()
		if len(favs) == 0 {
			fmt.Fprintln(w, "No favorites yet. Add one with `speechdrill favorites toggle <symbol>`.")
			return nil
		}
		for _, s := range favs {
			if p, err := lookupPhoneme(s, e.language()); err == nil {
				printPhoneme(w, p, true, false, true)
				continue
			}
			fmt.Fprintf(w, "  ★ %s\n", s)
		}
		return nil
	},
}

var favoritesToggleCmd = &cobra.Command{
	Use:   "toggle <symbol>",
	Short: "Add or remove a phoneme from favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logToStderr)
		if err != nil {
			return err
		}
		defer e.Close()

		p, err := lookupPhoneme(args[0], e.language())
		if err != nil {
			return err
		}
		on, err := e.store.PreferenceRepo().ToggleFavorite(cmd.Context(), p.Symbol)
		if err != nil {
			return fmt.Errorf("toggle favorite: %w", err)
		}
		if on {
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites.\n", p.Symbol)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites.\n", p.Symbol)
		}
		return nil
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesToggleCmd)
}
