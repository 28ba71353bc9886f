package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/az-ai-labs/ru-lang-nlp/lexicon"
)

const exportBatch = 4096 // entries per bbolt transaction

func (a *app) exportCmd() *cobra.Command {
	var (
		pf    pipelineFlags
		path  string
		reset bool
	)
	cmd := &cobra.Command{
		Use:   "export [files...]",
		Short: "Stem input tokens and store word/stem pairs in a lexicon file",
		RunE: func(cmd *cobra.Command, args []string) error {
			pf.apply(cmd, a.cfg)
			if cmd.Flags().Changed("lexicon") {
				a.cfg.Lexicon.Path = path
			}
			words, err := readTokens(cmd, args)
			if err != nil {
				return err
			}
			p, err := newPipeline(a.cfg, a.log)
			if err != nil {
				return err
			}
			defer p.close()

			stems, err := p.stemAll(cmd.Context(), words, a.cfg.Workers)
			if err != nil {
				return err
			}

			store, err := lexicon.Open(a.cfg.Lexicon.Path, a.log)
			if err != nil {
				return err
			}
			defer store.Close()
			if reset {
				if err := store.Clear(); err != nil {
					return err
				}
			}

			batch := make([]lexicon.Entry, 0, exportBatch)
			for i, w := range words {
				if stems[i] == "" {
					continue
				}
				batch = append(batch, lexicon.Entry{Word: w, Stem: stems[i]})
				if len(batch) == exportBatch {
					if err := store.PutBatch(batch); err != nil {
						return err
					}
					batch = batch[:0]
				}
			}
			if err := store.PutBatch(batch); err != nil {
				return err
			}

			n, err := store.Len()
			if err != nil {
				return err
			}
			a.log.Info("lexicon exported", zap.Int("words", len(words)), zap.Int("entries", n))
			fmt.Fprintf(cmd.OutOrStdout(), "%d entries in %s\n", n, a.cfg.Lexicon.Path)
			return nil
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVar(&path, "lexicon", "", "lexicon file (default from config)")
	cmd.Flags().BoolVar(&reset, "reset", false, "clear the lexicon before writing")
	return cmd
}
