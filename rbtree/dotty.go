package rbtree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are labeled with their key, their count (if
// greater than 1) and their subtree size. Missing children are drawn as small
// black boxes.
func Tree2Dot[K any](tree *Tree[K], w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if !tree.IsEmpty() {
		var nodelist, edgelist strings.Builder
		leaves := 0
		var walk func(id nodeID)
		walk = func(id nodeID) {
			n := tree.nodes[id]
			label := fmt.Sprintf("%v", n.key)
			if n.count > 1 {
				label += fmt.Sprintf(" ×%d", n.count)
			}
			fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\\n#%d\" %s];\n",
				id, escapeDot(label), n.size, nodeDotStyles(n.color))
			for _, ch := range n.children {
				if ch == sentinel {
					leaves++
					leafid := fmt.Sprintf("nil%d", leaves)
					fmt.Fprintf(&nodelist, "\t\"%s\" %s;\n", leafid, emptyNode())
					fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%s\";\n", id, leafid)
					continue
				}
				fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", id, ch)
				walk(ch)
			}
		}
		walk(tree.root)
		b.WriteString(nodelist.String())
		b.WriteString(edgelist.String())
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,style=filled,fillcolor=black,shape=box,fixedsize=true,width=.2,height=.15]"
}

func nodeDotStyles(c color) string {
	s := ",style=filled,shape=circle"
	if c == red {
		s += ",color=\"#cc0000\",fillcolor=\"#ff6666\""
	} else {
		s += ",color=black,fillcolor=\"#333333\",fontcolor=white"
	}
	return s
}

func escapeDot(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
