package dom

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// StyleDeclaration is the inline style of an element. It does not hold state
// of its own: every operation parses the element's style attribute and writes
// it back, so the attribute stays the single source of truth.
type StyleDeclaration struct {
	el *html.Node
}

// Style returns the inline style declaration of el.
func Style(el *html.Node) *StyleDeclaration {
	return &StyleDeclaration{el: el}
}

func (s *StyleDeclaration) declarations() []*css.Declaration {
	text, ok := GetAttribute(s.el, "style")
	if !ok || strings.TrimSpace(text) == "" {
		return nil
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		tracer().Errorf("cannot parse inline style of %s: %v", Describe(s.el), err)
		return nil
	}
	return decls
}

func (s *StyleDeclaration) write(decls []*css.Declaration) {
	if len(decls) == 0 {
		RemoveAttribute(s.el, "style")
		return
	}
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		if d.Important {
			b.WriteString(" !important")
		}
		b.WriteByte(';')
	}
	SetAttribute(s.el, "style", b.String())
}

// GetPropertyValue returns the value of a style property, or "" if unset.
func (s *StyleDeclaration) GetPropertyValue(name string) string {
	for _, d := range s.declarations() {
		if d.Property == name {
			return d.Value
		}
	}
	return ""
}

// Properties returns the names of all properties set, in declaration order.
func (s *StyleDeclaration) Properties() []string {
	decls := s.declarations()
	names := make([]string, len(decls))
	for i, d := range decls {
		names[i] = d.Property
	}
	return names
}

// SetProperty sets a style property. Setting a property to "" removes it.
// A trailing "!important" is honoured.
func (s *StyleDeclaration) SetProperty(name string, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		s.RemoveProperty(name)
		return
	}
	important := false
	if v, found := strings.CutSuffix(value, "!important"); found {
		value, important = strings.TrimSpace(v), true
	}
	decls := s.declarations()
	for _, d := range decls {
		if d.Property == name {
			d.Value, d.Important = value, important
			s.write(decls)
			return
		}
	}
	decls = append(decls, &css.Declaration{Property: name, Value: value, Important: important})
	s.write(decls)
}

// RemoveProperty removes a style property and returns its former value.
func (s *StyleDeclaration) RemoveProperty(name string) string {
	decls := s.declarations()
	for i, d := range decls {
		if d.Property == name {
			s.write(append(decls[:i], decls[i+1:]...))
			return d.Value
		}
	}
	return ""
}
