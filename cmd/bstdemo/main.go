// Command bstdemo builds a balanced search tree from a list of keys and shows
// off traversals, balance checking and re-balancing.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/bstree"
	"github.com/npillmayer/bstree/formatter"
	"github.com/npillmayer/bstree/html"
	"github.com/npillmayer/bstree/keyfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/uax/uax11"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	keyFile    string
	keys       []int
	insert     []int
	noRebal    bool
	trace      string
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "bstdemo",
		Short:        "Demonstrates balanced binary search trees",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupTracing(opts.trace)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.StringVarP(&opts.keyFile, "file", "f", "", "load keys from a key file")
	flags.IntSliceVarP(&opts.keys, "keys", "k", nil, "keys to build the tree from")
	flags.IntSliceVarP(&opts.insert, "insert", "i", nil, "keys to insert after building the tree")
	flags.BoolVar(&opts.noRebal, "no-rebalance", false, "do not re-balance after inserting")
	flags.StringVar(&opts.trace, "trace", "", "trace level (debug|info)")

	var cmdShow = &cobra.Command{
		Use:   "show",
		Short: "Print traversals and balance information of a tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, tree, err := prepare(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return show(out, config, tree)
		},
	}
	var cmdDot = &cobra.Command{
		Use:   "dot",
		Short: "Output a tree in Graphviz DOT format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, tree, err := prepare(cmd.Context(), opts)
			if err != nil {
				return err
			}
			bstree.Tree2Dot(tree, out)
			return nil
		},
	}
	var cmdHTML = &cobra.Command{
		Use:   "html",
		Short: "Output a tree as nested HTML lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, tree, err := prepare(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := html.Render(tree, out); err != nil {
				return err
			}
			_, err = io.WriteString(out, "\n")
			return err
		},
	}
	var cmdInit = &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file with default settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return WriteDefaultConfig(args[0])
		},
	}
	root.AddCommand(cmdShow, cmdDot, cmdHTML, cmdInit)
	return root
}

func setupTracing(level string) {
	gtrace.CoreTracer = gologadapter.New()
	switch level {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	}
}

// prepare merges config file and command line flags and builds the initial
// tree. Keys from a key file take precedence over keys given by flag, which
// take precedence over keys from the config.
func prepare(ctx context.Context, opts *options) (*Config, *bstree.Tree[int], error) {
	config, err := LoadConfig(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	if opts.insert != nil {
		config.Insert = opts.insert
	}
	if opts.noRebal {
		config.Rebalance = false
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var tree *bstree.Tree[int]
	switch {
	case opts.keyFile != "":
		if tree, err = keyfile.Load(ctx, opts.keyFile, 0); err != nil {
			return nil, nil, err
		}
	case opts.keys != nil:
		tree = bstree.New(opts.keys...)
	default:
		tree = bstree.New(config.Keys...)
	}
	return config, tree, nil
}

func show(out io.Writer, config *Config, tree *bstree.Tree[int]) error {
	fconf := &formatter.Config{Color: config.Color, Context: uax11.LatinContext}
	if f, ok := out.(*os.File); ok && f == os.Stdout {
		fconf = formatter.ConfigFromTerminal()
		fconf.Color = fconf.Color && config.Color
		fconf.Context = uax11.ContextFromEnvironment()
	}
	consoleFmt := formatter.NewConsoleFixedWidthFormat(nil)
	consoleFmt.Colored = fconf.Color

	fmt.Fprintf(out, "Is balanced: %v\n", tree.IsBalanced())
	if err := formatter.Output(tree, out, fconf, consoleFmt); err != nil {
		return err
	}
	for _, order := range []bstree.Order{
		bstree.LevelOrderTraversal,
		bstree.InOrderTraversal,
		bstree.PreOrderTraversal,
		bstree.PostOrderTraversal,
	} {
		if err := printTraversal(out, tree, order); err != nil {
			return err
		}
	}
	if len(config.Insert) == 0 {
		return nil
	}
	for _, k := range config.Insert {
		tree.Insert(k)
	}
	fmt.Fprintf(out, "Is balanced after inserting %v: %v\n", config.Insert, tree.IsBalanced())
	if !config.Rebalance {
		return formatter.Output(tree, out, fconf, consoleFmt)
	}
	tree.Rebalance()
	fmt.Fprintf(out, "Is balanced after rebalancing: %v\n", tree.IsBalanced())
	if err := formatter.Output(tree, out, fconf, consoleFmt); err != nil {
		return err
	}
	return printTraversal(out, tree, bstree.LevelOrderTraversal)
}

func printTraversal(out io.Writer, tree *bstree.Tree[int], order bstree.Order) error {
	fmt.Fprintf(out, "%s:", order)
	err := tree.Walk(order, func(n *bstree.Node[int]) {
		fmt.Fprintf(out, " %d", n.Key())
	})
	fmt.Fprintln(out)
	return err
}
