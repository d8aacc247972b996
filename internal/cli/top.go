package cli

import (
	"fmt"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/bobonovski/gotopic/config"
	"github.com/bobonovski/gotopic/corpus"
	"github.com/bobonovski/gotopic/report"
	"github.com/bobonovski/gotopic/sstable"
)

func (c *CLI) newTopCommand() *cobra.Command {
	var (
		topN      int
		vocabFile string
		topics    int
	)

	cmd := &cobra.Command{
		Use:   "top <phi-file>",
		Short: "Print the most probable words of every topic",
		Args:  cobra.ExactArgs(1),
		Example: `  gotopic top model.phi --n 20 --vocab vocab.txt
  GOTOPIC_TOP_N=5 gotopic top model.phi`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("n") {
				c.cfg.TopN = topN
			}
			if cmd.Flags().Changed("vocab") {
				c.cfg.VocabFile = vocabFile
			}
			if cmd.Flags().Changed("topics") {
				c.cfg.Topics = topics
			}
			if err := c.cfg.Validate(); err != nil {
				return err
			}

			phi, err := sstable.Deserialize(args[0])
			if err != nil {
				return err
			}
			data, err := loadTopics(c.cfg, phi)
			if err != nil {
				return err
			}

			var vocab report.Vocabulary
			if c.cfg.VocabFile != "" {
				if vocab, err = report.LoadVocabulary(c.cfg.VocabFile); err != nil {
					return err
				}
			}

			sums, err := report.Summarize(data.Topics(), c.cfg.TopN)
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), sums, vocab)
		},
	}

	cmd.Flags().IntVar(&topN, "n", 10, "Number of words per topic, 0 for all")
	cmd.Flags().StringVar(&vocabFile, "vocab", "", "Vocabulary file, one word per line")
	cmd.Flags().IntVar(&topics, "topics", 0, "Expected number of topics, 0 to take it from the phi file")
	return cmd
}

// loadTopics builds a corpus whose topics carry the columns of phi.
func loadTopics(cfg *config.Config, phi *sstable.Matrix) (*corpus.Corpus, error) {
	r, k := phi.Shape()
	if cfg.Topics > 0 && uint32(cfg.Topics) != k {
		return nil, fmt.Errorf("phi has %d topics, want %d: %w", k, cfg.Topics, corpus.ErrShapeMismatch)
	}

	data := &corpus.Corpus{VocabSize: r}
	data.AllocTopics(k)
	if err := data.SetPhi(phi); err != nil {
		return nil, err
	}
	log.Infof("loaded %d topics over %d words", k, r)
	return data, nil
}
