package fragment

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/weft/dom"
	"github.com/npillmayer/weft/noderange"
	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fragment is parsed markup, ready to be instantiated.
type Fragment struct {
	nodes []*html.Node
}

type props struct {
	minify  bool
	context atom.Atom
}

// Option is a type to help configuring the parser.
type Option struct {
	config func(props) props
}

// Minify switches minification of the source text on or off. Default is off.
func Minify(on bool) Option {
	return Option{config: func(p props) props {
		p.minify = on
		return p
	}}
}

// Context sets the element the markup will be parsed in the context of.
// Default is <body>. Table rows, for example, need
//
//	fragment.Parse(`<tr><td>1</td></tr>`, fragment.Context(atom.Tbody))
func Context(a atom.Atom) Option {
	return Option{config: func(p props) props {
		p.context = a
		return p
	}}
}

var (
	minifier     *minify.M
	minifierOnce sync.Once
)

func getMinifier() *minify.M {
	minifierOnce.Do(func() {
		minifier = minify.New()
		minifier.AddFunc("text/html", mhtml.Minify)
	})
	return minifier
}

// minifyHTML falls back to the source text if the minifier fails.
func minifyHTML(src string) string {
	m, err := getMinifier().String("text/html", src)
	if err != nil {
		tracer().Infof("minify failed, using source text: %v", err)
		return src
	}
	return m
}

// Parse parses markup into a fragment.
func Parse(src string, opts ...Option) (*Fragment, error) {
	p := props{context: atom.Body}
	for _, opt := range opts {
		p = opt.config(p)
	}
	if p.minify {
		src = minifyHTML(src)
	}
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     p.context.String(),
		DataAtom: p.context,
	}
	nodes, err := html.ParseFragment(strings.NewReader(src), ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML fragment: %w", err)
	}
	tracer().Debugf("parsed fragment with %d top-level nodes", len(nodes))
	return &Fragment{nodes: nodes}, nil
}

// MustParse is like Parse, but panics on error. It is intended for
// markup given as literals.
func MustParse(src string, opts ...Option) *Fragment {
	f, err := Parse(src, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Len returns the number of top-level nodes.
func (f *Fragment) Len() int {
	return len(f.nodes)
}

// Instantiate creates a fresh copy of the fragment's nodes.
func (f *Fragment) Instantiate() *noderange.Range {
	clones := make([]*html.Node, len(f.nodes))
	for i, n := range f.nodes {
		clones[i] = dom.Clone(n)
	}
	return noderange.FromTemplate(clones)
}

// Render serializes the nodes of a range.
func Render(r *noderange.Range) string {
	var b strings.Builder
	for n := range r.Nodes() {
		if err := html.Render(&b, n); err != nil {
			tracer().Errorf("render %s: %v", dom.Describe(n), err)
		}
	}
	return b.String()
}
