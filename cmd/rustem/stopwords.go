package main

import (
	"bufio"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/az-ai-labs/ru-lang-nlp/stopwords"
)

func (a *app) stopwordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stopwords",
		Short: "Print the embedded Russian stopword list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, word := range stopwords.List() {
				_, _ = w.WriteString(word)
				_ = w.WriteByte('\n')
			}
			return errors.Wrap(w.Flush(), "write output")
		},
	}
}
