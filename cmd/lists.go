package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/speechdrill/internal/access"
	"github.com/abhisek/speechdrill/internal/phoneme"
	"github.com/abhisek/speechdrill/internal/plan"
	"github.com/abhisek/speechdrill/internal/practice"
	"github.com/abhisek/speechdrill/internal/wordpool"
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Manage practice lists",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logToStderr)
		if err != nil {
			return err
		}
		defer e.Close()

		lists, err := e.store.ListRepo().Lists(cmd.Context())
		if err != nil {
			return fmt.Errorf("load lists: %w", err)
		}
		w := cmd.OutOrStdout()
		if len(lists) == 0 {
			fmt.Fprintln(w, "No practice lists yet. Create one with `speechdrill lists create <name>`.")
			return nil
		}

		fmt.Fprintf(w, "%-36s  %-24s  %6s  %6s  %s\n", "ID", "Name", "Sounds", "Words", "Last session")
		fmt.Fprintln(w, strings.Repeat("─", 100))
		for _, l := range lists {
			last := "never"
			if rec, ok := l.MostRecentSession(); ok {
				last = fmt.Sprintf("%s (%d%%)", rec.FormattedDate(), rec.Percentage())
			}
			fmt.Fprintf(w, "%-36s  %-24s  %6d  %6d  %s\n",
				l.ID, truncate(l.Name, 24), len(l.Configurations), l.TotalWordCount(), last)
		}
		return nil
	},
}

var listsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a practice list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logToStderr)
		if err != nil {
			return err
		}
		defer e.Close()

		l, err := e.store.ListRepo().CreateList(cmd.Context(), args[0], flagString(cmd, "description"))
		if err != nil {
			return fmt.Errorf("create list: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created list %q (%s)\n", l.Name, l.ID)
		return nil
	},
}

var listsRenameCmd = &cobra.Command{
	Use:   "rename <listID> <name>",
	Short: "Rename a list or change its description",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logToStderr)
		if err != nil {
			return err
		}
		defer e.Close()

		repo := e.store.ListRepo()
		l, err := repo.GetList(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get list: %w", err)
		}
		desc := l.Description
		if cmd.Flags().Changed("description") {
			desc = flagString(cmd, "description")
		}
		if err := repo.RenameList(cmd.Context(), l.ID, args[1], desc); err != nil {
			return fmt.Errorf("rename list: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Renamed %q to %q\n", l.Name, strings.TrimSpace(args[1]))
		return nil
	},
}

var listsDeleteCmd = &cobra.Command{
	Use:   "delete <listID>",
	Short: "Delete a list with its sounds, words and history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logToStderr)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.store.ListRepo().DeleteList(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete list: %w", err)
		}
		e.log.Info("list deleted", "list_id", args[0])
		fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
		return nil
	},
}

var listsShowCmd = &cobra.Command{
	Use:   "show <listID>",
	Short: "Show a list's sounds and words",
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
		printList(cmd.OutOrStdout(), *l, access.SubscriptionGate{PremiumUnlocked: e.cfg.PremiumUnlocked})
		return nil
	},
}

func printList(w io.Writer, l practice.List, gate access.Gate) {
	fmt.Fprintf(w, "%s  (%s)\n", l.Name, l.ID)
	if l.Description != "" {
		fmt.Fprintf(w, "%s\n", l.Description)
	}
	fmt.Fprintf(w, "%d sound(s), %d unique word(s)\n", len(l.Configurations), l.TotalWordCount())
	if rec, ok := l.MostRecentSession(); ok {
		fmt.Fprintf(w, "Last practiced %s, %d%%\n", rec.FormattedDate(), rec.Percentage())
	}

	for _, c := range l.Configurations {
		lock := ""
		if !gate.IsUnlocked(c.PhonemeSymbol) {
			lock = "  (locked)"
		}
		fmt.Fprintf(w, "\n  %s%s\n  config %s\n", c.Summary(), lock, c.ID)
		if len(c.Words) == 0 {
			fmt.Fprintln(w, "    (no words)")
		}
		for _, word := range c.Words {
			fmt.Fprintf(w, "    %-14s %s\n", markPhoneme(word), word.ID)
		}
	}
}

var listsAddConfigCmd = &cobra.Command{
	Use:   "add-config <listID> <symbol>",
	Short: "Add a sound to a list, filled with its curated words",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logToStderr)
		if err != nil {
			return err
		}
		defer e.Close()

		p, err := lookupPhoneme(args[1], languageFlag(cmd, e.language()))
		if err != nil {
			return err
		}
		pos, err := phoneme.ParsePosition(flagString(cmd, "position"))
		if err != nil {
			return err
		}
		level, err := phoneme.ParseLevel(flagString(cmd, "level"))
		if err != nil {
			return err
		}

		repo := e.store.ListRepo()
		c, err := repo.AddConfiguration(cmd.Context(), args[0], p, pos, level)
		if err != nil {
			return fmt.Errorf("add configuration: %w", err)
		}

		words := 0
		if empty, _ := cmd.Flags().GetBool("empty"); !empty {
			pl := plan.New(p, wordpool.NewBuilder(), pos)
			if err := repo.ReplaceWords(cmd.Context(), c.ID, pl.WordsForSession()); err != nil {
				return fmt.Errorf("fill words: %w", err)
			}
			words = pl.SelectedWordCount()
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Added %s with %d word(s) (config %s)\n", c.Summary(), words, c.ID)
		if !(access.SubscriptionGate{PremiumUnlocked: e.cfg.PremiumUnlocked}).IsUnlocked(p.Symbol) {
			fmt.Fprintf(w, "Note: %s is locked and is skipped in practice until premium is unlocked.\n", p.Symbol)
		}
		return nil
	},
}

var listsRemoveConfigCmd = &cobra.Command{
	Use:   "remove-config <configID>",
	Short: "Remove a sound and its words from a list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logToStderr)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.store.ListRepo().DeleteConfiguration(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("remove configuration: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Removed.")
		return nil
	},
}

var listsAddWordCmd = &cobra.Command{
	Use:   "add-word <configID> <text>",
	Short: "Add a custom word to a sound",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logToStderr)
		if err != nil {
			return err
		}
		defer e.Close()

		repo := e.store.ListRepo()
		c, err := repo.GetConfiguration(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get configuration: %w", err)
		}
		index, _ := cmd.Flags().GetInt("index")
		word, err := repo.AddWord(cmd.Context(), c.ID, wordpool.PracticeWord{
			Text:         args[1],
			PhonemeIndex: index,
			Position:     c.Position,
			Included:     true,
		})
		if err != nil {
			return fmt.Errorf("add word: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s (word %s)\n", markPhoneme(*word), c.Summary(), word.ID)
		return nil
	},
}

var listsRemoveWordCmd = &cobra.Command{
	Use:   "remove-word <wordID>",
	Short: "Remove a word from a sound",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logToStderr)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.store.ListRepo().RemoveWord(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("remove word: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Removed.")
		return nil
	},
}

var listsSelectWordsCmd = &cobra.Command{
	Use:   "select-words <configID>",
	Short: "Replace a sound's words with a selection from the curated pool",
	Long: "Without --word or --all, prints the curated candidates and leaves the " +
		"configuration unchanged. --position widens the pool to more positions.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logToStderr)
		if err != nil {
			return err
		}
		defer e.Close()

		repo := e.store.ListRepo()
		c, err := repo.GetConfiguration(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get configuration: %w", err)
		}
		p, err := phoneme.Lookup(c.PhonemeSymbol, c.Language)
		if err != nil {
			return err
		}
		positions, err := positionsFlag(cmd)
		if err != nil {
			return err
		}
		if len(positions) == 0 {
			positions = []phoneme.Position{c.Position}
		}

		builder := wordpool.NewBuilder()
		pl := plan.New(p, builder, positions...)

		all, _ := cmd.Flags().GetBool("all")
		picked, _ := cmd.Flags().GetStringSlice("word")
		w := cmd.OutOrStdout()

		if !all && len(picked) == 0 {
			for i, word := range pl.Words {
				mark := " "
				if c.HasWord(word.Key()) || hasText(c.Words, word.Text) {
					mark = "x"
				}
				fmt.Fprintf(w, "  [%s] %2d  %-8s %s\n", mark, i, word.Position.DisplayName(), word.Text)
			}
			return nil
		}

		if !all {
			want := toSet(picked)
			pl.ToggleAll(false)
			for i, word := range pl.Words {
				if want[word.Text] {
					pl.ToggleWord(i)
				}
			}
		}
		if !pl.HasSelectedWords() {
			return fmt.Errorf("none of %s are curated words for %s", strings.Join(picked, ", "), c.Summary())
		}

		if err := repo.ReplaceWords(cmd.Context(), c.ID, pl.WordsForSession()); err != nil {
			return fmt.Errorf("save words: %w", err)
		}
		fmt.Fprintf(w, "Saved %d word(s) for %s\n", pl.SelectedWordCount(), c.Summary())
		return nil
	},
}

func hasText(words []wordpool.PracticeWord, text string) bool {
	for _, w := range words {
		if w.Text == text {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}

func init() {
	listsCreateCmd.Flags().StringP("description", "d", "", "Optional description")
	listsRenameCmd.Flags().StringP("description", "d", "", "New description")

	listsAddConfigCmd.Flags().StringP("position", "p", "initial", "Position of the sound (initial, medial, final)")
	listsAddConfigCmd.Flags().String("level", "word", "Practice level (isolation, syllable, word, phrase, sentence)")
	listsAddConfigCmd.Flags().StringP("language", "l", "", "Language (english, spanish); defaults to practice.language")
	listsAddConfigCmd.Flags().Bool("empty", false, "Add the sound without curated words")

	listsAddWordCmd.Flags().IntP("index", "i", 0, "Character offset of the sound within the word")

	listsSelectWordsCmd.Flags().StringSliceP("position", "p", nil, "Positions to draw candidates from; default the sound's own")
	listsSelectWordsCmd.Flags().StringSliceP("word", "w", nil, "Words to keep (repeatable)")
	listsSelectWordsCmd.Flags().Bool("all", false, "Keep every candidate")

	listsCmd.AddCommand(listsCreateCmd, listsRenameCmd, listsDeleteCmd, listsShowCmd,
		listsAddConfigCmd, listsRemoveConfigCmd, listsAddWordCmd, listsRemoveWordCmd, listsSelectWordsCmd)
}
