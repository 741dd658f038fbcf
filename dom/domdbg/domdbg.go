/*
Package domdbg implements helpers to debug DOM trees and node ranges.

Print and PrintNodes render subtrees as indented text trees, suitable for
test logs. ToGraphViz and Dotty draw a subtree as a GraphViz diagram.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"iter"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/weft/dom"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// --- Text trees -------------------------------------------------------

// Print renders the subtree of n as a text tree.
func Print(n *html.Node) string {
	printer := tp.New()
	printNode(printer, n)
	return printer.String()
}

// PrintNodes renders a sequence of sibling nodes, e.g. the nodes of a
// range, as a text tree with a header line.
func PrintNodes(header string, nodes iter.Seq[*html.Node]) string {
	printer := tp.New()
	for n := range nodes {
		printNode(printer, n)
	}
	return header + "\n" + printer.String()
}

func printNode(printer tp.Tree, n *html.Node) {
	if n == nil {
		return
	}
	if n.FirstChild == nil {
		printer.AddNode(Label(n))
		return
	}
	branch := printer.AddBranch(Label(n))
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		printNode(branch, ch)
	}
}

// Label returns a one-line description of n, including the attributes of
// elements and the (shortened) content of text nodes.
func Label(n *html.Node) string {
	switch n.Type {
	case html.ElementNode:
		var b strings.Builder
		b.WriteString(strings.TrimSuffix(dom.Describe(n), ">"))
		for _, a := range n.Attr {
			b.WriteByte(' ')
			if a.Namespace != "" {
				b.WriteString(a.Namespace)
				b.WriteByte(':')
			}
			fmt.Fprintf(&b, "%s=%q", a.Key, a.Val)
		}
		b.WriteByte('>')
		return b.String()
	case html.TextNode, html.CommentNode:
		return dom.Describe(n) + " " + shorten(n.Data, 20)
	}
	return dom.Describe(n)
}

func shorten(s string, limit int) string {
	if r := []rune(s); len(r) > limit {
		s = string(r[:limit]) + "…"
	}
	return fmt.Sprintf("%q", s)
}

// --- GraphViz ---------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a DOM subtree. The diagram is in
// GraphViz (DOT) format.
func ToGraphViz(root *html.Node, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"dotstring": dotString,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*html.Node]string, 256)
	if err = nodes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

// Dotty is a helper for testing. Given a DOM node and a testing.T, it will
// create a Graphiviz image of the DOM tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *html.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *html.Node
	Name string
	Text bool
}

type edge struct {
	N1, N2 node
}

func nodes(n *html.Node, w io.Writer, dict map[*html.Node]string, gparams *graphParamsType) error {
	n1 := domNode(n, dict)
	if err := gparams.NodeTmpl.Execute(w, n1); err != nil {
		return err
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(w, edge{n1, domNode(ch, dict)}); err != nil {
			return err
		}
	}
	return nil
}

func domNode(n *html.Node, dict map[*html.Node]string) node {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	return node{N: n, Name: name, Text: n.Type != html.ElementNode}
}

func dotString(n *html.Node) string {
	s := Label(n)
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .Text }}{{ .Name }}	[ label={{ dotstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}{{ .Name }}	[ label={{ dotstring .N }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
