package mwtree

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Dot outputs the internal structure of the tree in Graphviz DOT format
// (for debugging purposes).
func (t *Tree[T]) Dot(w io.Writer) error {
	if err := t.usable(); err != nil {
		return err
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=record];\n")
	nodelist, edgelist := "", ""
	for i := range t.nodes {
		nd := &t.nodes[i]
		label := ""
		for j, v := range nd.elems {
			if j > 0 {
				label += "|"
			}
			label += fmt.Sprintf("%v", v)
		}
		if label == "" {
			label = "∅"
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"];\n", i, label)
		for slot, child := range nd.children {
			if child == nilNode {
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [label=\"%d\",fontsize=9];\n", i, child, slot)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
	return nil
}

// depthPalette colors node sketches by depth, cycling for deep trees.
var depthPalette = []*color.Color{
	color.New(color.FgBlue),
	color.New(color.FgGreen),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
}

// Sketch writes an indented, colored outline of the node graph to w
// (for debugging purposes on a terminal).
func (t *Tree[T]) Sketch(w io.Writer) error {
	if err := t.usable(); err != nil {
		return err
	}
	t.sketchNode(w, t.root, 0)
	return nil
}

func (t *Tree[T]) sketchNode(w io.Writer, n int32, depth int) {
	nd := &t.nodes[n]
	c := depthPalette[depth%len(depthPalette)]
	for i := 0; i < depth; i++ {
		io.WriteString(w, "    ")
	}
	c.Fprintf(w, "#%d %v\n", n, nd.elems)
	for _, child := range nd.children {
		if child != nilNode {
			t.sketchNode(w, child, depth+1)
		}
	}
}
