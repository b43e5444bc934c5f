package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/speechdrill/internal/llm"
	"github.com/abhisek/speechdrill/internal/phoneme"
	"github.com/abhisek/speechdrill/internal/wordfmt"
	"github.com/abhisek/speechdrill/internal/wordgen"
	"github.com/abhisek/speechdrill/internal/wordpool"
)

var wordsCmd = &cobra.Command{
	Use:   "words <symbol>",
	Short: "Show the curated practice words for a phoneme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		p, err := lookupPhoneme(args[0], languageFlag(cmd, phoneme.Language(cfg.Practice.Language)))
		if err != nil {
			return err
		}
		positions, err := positionsFlag(cmd)
		if err != nil {
			return err
		}
		level, err := phoneme.ParseLevel(flagString(cmd, "level"))
		if err != nil {
			return err
		}

		words := wordpool.NewBuilder().Words(p, positions...)
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s %s (%s) at %s level: %s\n\n", p.Symbol, p.Name, p.Example, level.DisplayName(), level.Examples())
		if len(words) == 0 {
			fmt.Fprintln(w, "No curated words. Try `speechdrill words suggest`.")
			return nil
		}
		format := wordfmt.New()
		for _, word := range words {
			fmt.Fprintf(w, "  %-8s %-14s %s\n", word.Position.DisplayName(), word.Text, format.Format(word, level))
		}
		return nil
	},
}

var wordsSuggestCmd = &cobra.Command{
	Use:   "suggest <symbol>",
	Short: "Ask the configured LLM for more practice words",
	Long: "Suggests words for phonemes the curated table does not cover well. " +
		"With --add-to the suggestions are stored in a configuration.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logToStderr)
		if err != nil {
			return err
		}
		defer e.Close()

		p, err := lookupPhoneme(args[0], languageFlag(cmd, e.language()))
		if err != nil {
			return err
		}
		pos, err := phoneme.ParsePosition(flagString(cmd, "position"))
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")

		llmCfg := e.cfg.LLM
		if llmCfg.Provider == "" {
			llmCfg, _ = llmCfg.Discover()
		}
		provider, err := llm.NewProvider(cmd.Context(), llmCfg, e.store.LLMEventRepo(), e.log)
		if err != nil {
			if errors.Is(err, llm.ErrNotConfigured) {
				return fmt.Errorf("%w: set SPEECHDRILL_LLM_PROVIDER or a vendor API key", err)
			}
			return err
		}

		ctx := cmd.Context()
		if llmCfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, llmCfg.Timeout)
			defer cancel()
		}
		words, err := wordgen.New(provider, nil, wordgen.DefaultConfig(), e.log).Suggest(ctx, p, pos, count)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for _, word := range words {
			fmt.Fprintf(w, "  %-14s %s\n", word.Text, markPhoneme(word))
		}

		configID := flagString(cmd, "add-to")
		if configID == "" {
			return nil
		}
		repo := e.store.ListRepo()
		c, err := repo.GetConfiguration(ctx, configID)
		if err != nil {
			return fmt.Errorf("get configuration: %w", err)
		}
		if c.PhonemeSymbol != p.Symbol || c.Position != pos {
			return fmt.Errorf("configuration %s is %s, not %s %s", configID, c.Summary(), p.Symbol, pos.DisplayName())
		}
		have := make(map[string]bool, len(c.Words))
		for _, existing := range c.Words {
			have[existing.Text] = true
		}
		added := 0
		for _, word := range words {
			if have[word.Text] {
				continue
			}
			if _, err := repo.AddWord(ctx, configID, word); err != nil {
				return fmt.Errorf("add word %q: %w", word.Text, err)
			}
			added++
		}
		fmt.Fprintf(w, "\nAdded %d word(s) to %s.\n", added, c.Summary())
		return nil
	},
}

// markPhoneme brackets the target sound, e.g. "ra[b]bit".
func markPhoneme(w wordpool.PracticeWord) string {
	runes := []rune(w.Text)
	if w.PhonemeIndex < 0 || w.PhonemeIndex >= len(runes) {
		return w.Text
	}
	i := w.PhonemeIndex
	return string(runes[:i]) + "[" + string(runes[i]) + "]" + string(runes[i+1:])
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func languageFlag(cmd *cobra.Command, fallback phoneme.Language) phoneme.Language {
	if l := flagString(cmd, "language"); l != "" {
		return phoneme.Language(strings.ToLower(l))
	}
	return fallback
}

// positionsFlag parses --position, which may repeat. None means all.
func positionsFlag(cmd *cobra.Command) ([]phoneme.Position, error) {
	raw, _ := cmd.Flags().GetStringSlice("position")
	var out []phoneme.Position
	for _, r := range raw {
		pos, err := phoneme.ParsePosition(r)
		if err != nil {
			return nil, err
		}
		out = append(out, pos)
	}
	return out, nil
}

func init() {
	wordsCmd.Flags().StringSliceP("position", "p", nil, "Positions to include (initial, medial, final); default all")
	wordsCmd.Flags().String("level", "word", "Level to preview (isolation, syllable, word, phrase, sentence)")
	wordsCmd.Flags().StringP("language", "l", "", "Language (english, spanish); defaults to practice.language")

	wordsSuggestCmd.Flags().StringP("position", "p", "initial", "Position of the sound (initial, medial, final)")
	wordsSuggestCmd.Flags().IntP("count", "n", 10, "Number of words to request")
	wordsSuggestCmd.Flags().StringP("language", "l", "", "Language (english, spanish); defaults to practice.language")
	wordsSuggestCmd.Flags().String("add-to", "", "Configuration ID to store the suggestions in")

	wordsCmd.AddCommand(wordsSuggestCmd)
}
