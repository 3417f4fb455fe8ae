package main

import (
	"cmp"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/npillmayer/collections/rbtree"
)

func newBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [keys...]",
		Short: "Build a tree and print ranks, positions and queries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, func(w io.Writer, cfg *Config, raw []string) error {
				if cfg.Strings {
					return buildAndReport(w, cfg, raw, parseString)
				}
				return buildAndReport(w, cfg, raw, parseInt)
			})
		},
	}
	cmd.Flags().StringSlice("query", nil, "keys to look up (rank, count, neighbours)")
	cmd.Flags().String("color", colorAuto, "colorize output: auto, always or never")
	return cmd
}

func newDotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dot [keys...]",
		Short: "Build a tree and write it in Graphviz DOT format",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, func(w io.Writer, cfg *Config, raw []string) error {
				if cfg.Strings {
					return writeDot(w, cfg, raw, parseString)
				}
				return writeDot(w, cfg, raw, parseInt)
			})
		},
	}
}

func run(cmd *cobra.Command, args []string, action func(io.Writer, *Config, []string) error) error {
	cfg, err := LoadConfig(configPath, cmd)
	if err != nil {
		return err
	}
	setupColor(cfg.Color, cmd.OutOrStdout())
	raw, err := readKeys(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	tracing.Select("collections").Debugf("ostree: %d keys, duplicates=%v", len(raw), cfg.Duplicates)
	return action(cmd.OutOrStdout(), cfg, raw)
}

// setupColor enables colored output for terminals, or as configured. Writers
// other than files never count as terminals.
func setupColor(mode string, out io.Writer) {
	switch mode {
	case colorAlways:
		color.NoColor = false //nolint:reassign // intentional override of library global
	case colorNever:
		color.NoColor = true //nolint:reassign // intentional override of library global
	default:
		f, ok := out.(*os.File)
		color.NoColor = !ok || !term.IsTerminal(int(f.Fd())) //nolint:reassign // intentional override of library global
	}
}

func buildTree[K cmp.Ordered](cfg *Config, raw []string, parse func(string) (K, error)) (*rbtree.Tree[K], error) {
	keys, err := parseAll(raw, parse)
	if err != nil {
		return nil, err
	}
	tree := rbtree.NewOrdered[K](cfg.Duplicates)
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree, nil
}

func buildAndReport[K cmp.Ordered](w io.Writer, cfg *Config, raw []string, parse func(string) (K, error)) error {
	tree, err := buildTree(cfg, raw, parse)
	if err != nil {
		return err
	}
	queries, err := parseAll(cfg.Queries, parse)
	if err != nil {
		return err
	}
	return report(w, tree, queries)
}

func writeDot[K cmp.Ordered](w io.Writer, cfg *Config, raw []string, parse func(string) (K, error)) error {
	tree, err := buildTree(cfg, raw, parse)
	if err != nil {
		return err
	}
	return rbtree.Tree2Dot(tree, w)
}
