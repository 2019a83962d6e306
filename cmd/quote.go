package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindset/internal/quotes"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print a random growth mindset quote",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		sel := quotes.New(cfg.QuoteSet(), rand.NewPCG(rand.Uint64(), rand.Uint64()))
		fmt.Fprintln(cmd.OutOrStdout(), sel.Pick())
		return nil
	},
}
