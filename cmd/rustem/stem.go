package main

import (
	"bufio"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) stemCmd() *cobra.Command {
	var (
		pf    pipelineFlags
		pairs bool
	)
	cmd := &cobra.Command{
		Use:   "stem [files...]",
		Short: "Print the stem of every input token",
		RunE: func(cmd *cobra.Command, args []string) error {
			pf.apply(cmd, a.cfg)
			words, err := readTokens(cmd, args)
			if err != nil {
				return err
			}
			p, err := newPipeline(a.cfg, a.log)
			if err != nil {
				return err
			}
			defer p.close()

			start := time.Now()
			stems, err := p.stemAll(cmd.Context(), words, a.cfg.Workers)
			if err != nil {
				return err
			}
			a.log.Info("stemmed",
				zap.Int("words", len(words)),
				zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)))

			w := bufio.NewWriter(cmd.OutOrStdout())
			for i, s := range stems {
				if pairs {
					_, _ = w.WriteString(words[i])
					_ = w.WriteByte('\t')
				}
				_, _ = w.WriteString(s)
				_ = w.WriteByte('\n')
			}
			return errors.Wrap(w.Flush(), "write output")
		},
	}
	pf.register(cmd)
	cmd.Flags().BoolVar(&pairs, "pairs", false, "print word<TAB>stem")
	return cmd
}
