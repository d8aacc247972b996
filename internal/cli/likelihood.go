package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bobonovski/gotopic/corpus"
	"github.com/bobonovski/gotopic/sstable"
)

func (c *CLI) newLikelihoodCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "likelihood <docs-file> <phi-file> <theta-file>",
		Short:   "Compute the joint log likelihood of a corpus",
		Args:    cobra.ExactArgs(3),
		Example: `  gotopic likelihood docs.txt model.phi model.theta`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := &corpus.Corpus{}
			if err := data.Load(args[0]); err != nil {
				return err
			}

			phi, err := sstable.Deserialize(args[1])
			if err != nil {
				return err
			}
			theta, err := sstable.Deserialize(args[2])
			if err != nil {
				return err
			}

			// words beyond the largest id seen in the documents may still
			// have weight in phi
			r, k := phi.Shape()
			if data.VocabSize < r {
				data.VocabSize = r
			}
			data.AllocTopics(k)
			if err := data.SetPhi(phi); err != nil {
				return err
			}

			ll, err := data.Likelihood(theta)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "log likelihood %f\n", ll)
			return nil
		},
	}
}
