package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/npillmayer/collections/rbtree"
)

const msgEmptyTree = "Tree is empty"

// report prints one row per distinct key, the answers to the queries and a
// summary of the tree shape.
func report[K any](w io.Writer, tree *rbtree.Tree[K], queries []K) error {
	if tree.IsEmpty() {
		fmt.Fprintln(w, msgEmptyTree)
	} else {
		fmt.Fprintln(w, keyTable(tree))
	}
	if len(queries) > 0 {
		fmt.Fprintln(w, queryTable(tree, queries))
	}
	fmt.Fprintf(w, "elements: %d  distinct: %d  height: %d  black-height: %d\n",
		tree.Len(), tree.Distinct(), tree.Height(), tree.BlackHeight())
	if err := tree.Check(); err != nil {
		color.New(color.FgRed).Fprintf(w, "invariants: FAIL (%v)\n", err)
		return err
	}
	color.New(color.FgGreen).Fprintln(w, "invariants: OK")
	return nil
}

// keyTable lists the distinct keys in order, stepping over duplicates with
// Select.
func keyTable[K any](tree *rbtree.Tree[K]) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Position", "Key", "Count", "Rank"})
	for i := 0; i < tree.Len(); {
		k := tree.Select(i)
		c := tree.Count(k)
		tbl.AppendRow(table.Row{i, fmt.Sprint(k), c, tree.Rank(k)})
		i += c
	}
	tbl.AppendFooter(table.Row{"", "Total", tree.Len(), ""})
	return tbl.Render()
}

func queryTable[K any](tree *rbtree.Tree[K], queries []K) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Query", "Contains", "Count", "Rank", "Predecessor", "Successor"})
	for _, q := range queries {
		pred, hasPred := tree.Predecessor(q)
		succ, hasSucc := tree.Successor(q)
		tbl.AppendRow(table.Row{
			fmt.Sprint(q),
			tree.Contains(q),
			tree.Count(q),
			tree.Rank(q),
			optional(pred, hasPred),
			optional(succ, hasSucc),
		})
	}
	return tbl.Render()
}

func optional[K any](k K, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprint(k)
}
