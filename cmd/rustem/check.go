package main

import (
	"bufio"
	"fmt"

	"github.com/kljensen/snowball"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/az-ai-labs/ru-lang-nlp/normalize"
	"github.com/az-ai-labs/ru-lang-nlp/stemmer"
)

// referenceStemmer is an independent Russian stemmer to compare against.
type referenceStemmer func(word string) (string, error)

func kljensenRussian(word string) (string, error) {
	return snowball.Stem(word, "russian", true)
}

type disagreement struct {
	word, got, want string
}

func (a *app) checkCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Compare stems against github.com/kljensen/snowball and print disagreements",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := readTokens(cmd, args)
			if err != nil {
				return err
			}
			ref := a.reference
			if ref == nil {
				ref = kljensenRussian
			}
			diffs, err := a.compare(cmd, words, ref)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, d := range diffs {
				fmt.Fprintf(w, "%s\t%s\t%s\n", d.word, d.got, d.want)
			}
			if err := w.Flush(); err != nil {
				return errors.Wrap(err, "write output")
			}
			a.log.Info("check finished", zap.Int("words", len(words)), zap.Int("disagreements", len(diffs)))
			if strict && len(diffs) > 0 {
				return errors.Errorf("%d of %d words disagree with the reference stemmer", len(diffs), len(words))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any stem disagrees")
	return cmd
}

// compare normalizes words, stems them with both stemmers and returns the
// words whose stems differ, in input order.
func (a *app) compare(cmd *cobra.Command, words []string, ref referenceStemmer) ([]disagreement, error) {
	norm := normalize.Words(words)
	got, err := mapOrdered(cmd.Context(), norm, a.cfg.Workers, func(w string) (string, error) {
		return stemmer.Stem(w), nil
	})
	if err != nil {
		return nil, err
	}
	want, err := mapOrdered(cmd.Context(), norm, a.cfg.Workers, ref)
	if err != nil {
		return nil, errors.Wrap(err, "reference stemmer")
	}

	var diffs []disagreement
	for i := range norm {
		if got[i] != want[i] {
			diffs = append(diffs, disagreement{word: norm[i], got: got[i], want: want[i]})
		}
	}
	return diffs, nil
}
