package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/az-ai-labs/ru-lang-nlp/lexicon"
)

func (a *app) lookupCmd() *cobra.Command {
	var (
		path  string
		class bool
	)
	cmd := &cobra.Command{
		Use:   "lookup words...",
		Short: "Print stored stems, or with --class every word sharing the stem",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("lexicon") {
				a.cfg.Lexicon.Path = path
			}
			// Open would create a missing file.
			if _, err := os.Stat(a.cfg.Lexicon.Path); err != nil {
				return errors.Wrap(err, "lexicon")
			}
			store, err := lexicon.Open(a.cfg.Lexicon.Path, a.log)
			if err != nil {
				return err
			}
			defer store.Close()

			w := bufio.NewWriter(cmd.OutOrStdout())
			var missing []string
			for _, word := range args {
				stem, ok, err := store.Get(word)
				if err != nil {
					return err
				}
				if !ok {
					missing = append(missing, word)
					continue
				}
				_, _ = w.WriteString(word)
				_ = w.WriteByte('\t')
				if class {
					words, err := store.Words(stem)
					if err != nil {
						return err
					}
					_, _ = w.WriteString(strings.Join(words, " "))
				} else {
					_, _ = w.WriteString(stem)
				}
				_ = w.WriteByte('\n')
			}
			if err := w.Flush(); err != nil {
				return errors.Wrap(err, "write output")
			}
			if len(missing) > 0 {
				return errors.Errorf("not in lexicon: %s", strings.Join(missing, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "lexicon", "", "lexicon file (default from config)")
	cmd.Flags().BoolVar(&class, "class", false, "print the conflation class instead of the stem")
	return cmd
}
