// Package cli wires the topic inspection tools into a cobra command tree.
package cli

import (
	"flag"
	"fmt"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/bobonovski/gotopic/config"
)

// CLI holds the command tree and the configuration shared by its commands.
type CLI struct {
	version string
	cfg     *config.Config
	rootCmd *cobra.Command
}

// New creates a CLI for the given version string.
func New(version string) *CLI {
	c := &CLI{version: version}
	c.setupCommands()
	return c
}

func (c *CLI) setupCommands() {
	c.rootCmd = &cobra.Command{
		Use:           "gotopic",
		Short:         "Inspect topic-word distributions of a topic model",
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig()
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// glog registers -v, -logtostderr and friends on the standard flag set
	c.rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	c.rootCmd.AddCommand(c.newTopCommand())
	c.rootCmd.AddCommand(c.newLikelihoodCommand())
	c.rootCmd.AddCommand(c.newVersionCommand())
}

// Run executes the command line given in args.
func (c *CLI) Run(args []string) error {
	c.rootCmd.SetArgs(args)
	if err := c.rootCmd.Execute(); err != nil {
		log.V(1).Infof("command failed: %v", err)
		fmt.Fprintln(c.rootCmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

func (c *CLI) initConfig() error {
	if c.cfg != nil {
		return nil
	}
	cfg, err := config.New()
	if err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

func (c *CLI) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), c.version)
		},
	}
}
