// Command ostree builds an order-statistics tree from a list of keys and
// prints ranks, positions and neighbour queries, or a Graphviz rendering of
// the tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ostree",
		Short: "Explore an order-statistics red-black tree",
		Long: `ostree inserts keys (given as arguments or read line by line from
stdin) into an augmented red-black tree and reports on it.

Commands:
  build     print a rank/select table and answer queries
  dot       write the tree structure in Graphviz DOT format`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default .ostree.yaml in CWD or $HOME)")
	rootCmd.PersistentFlags().Bool("dups", false, "count duplicate keys instead of ignoring them")
	rootCmd.PersistentFlags().Bool("strings", false, "treat keys as strings instead of integers")

	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newDotCommand())
	return rootCmd
}
