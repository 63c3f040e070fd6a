// Package dom provides the minimal element surface the view layer renders
// into: a node tree parsed from markup, scoped CSS selector queries, content
// replacement, a per-element data store, and synchronous delegated events.
//
// It is deliberately not a browser DOM. It carries exactly what a
// server-side view needs: enough structure to locate elements by selector,
// swap content wholesale, and hang view state off an element.
package dom

import (
	"bytes"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element wraps a node in the tree. The wrapper is stable across Rebind:
// the underlying node can be swapped while data and delegated events stay
// with the wrapper. This is what lets a view keep its identity while its
// root element is re-pointed into a parent's rendered output.
type Element struct {
	node      *html.Node
	data      map[string]any
	delegates []delegate
}

// New creates a detached element with the given tag, e.g. "div".
func New(tag string) *Element {
	a := atom.Lookup([]byte(tag))
	return &Element{node: &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     tag,
	}}
}

// FromNode wraps an existing node. The wrapper starts with an empty data
// store; wrapping the same node twice yields independent stores.
func FromNode(n *html.Node) *Element {
	return &Element{node: n}
}

// Node returns the underlying node.
func (e *Element) Node() *html.Node {
	return e.node
}

// Rebind points this element at the target's underlying node. Data and
// delegated events stay with the wrapper.
func (e *Element) Rebind(target *Element) {
	if target != nil {
		e.node = target.node
	}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing any existing value.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// SetContent replaces the element's children with nodes parsed from markup.
// Unparseable markup is treated as empty content.
func (e *Element) SetContent(markup string) {
	e.removeChildren()
	ctx := &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: "div"}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return
	}
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
}

// SetText replaces the element's children with a single text node.
// Serialization escapes the text, so this is always markup-safe.
func (e *Element) SetText(s string) {
	e.removeChildren()
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

// Text returns the concatenated text content of the subtree.
func (e *Element) Text() string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return sb.String()
}

// HTML returns the element's serialized content (inner HTML).
func (e *Element) HTML() string {
	var buf bytes.Buffer
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		html.Render(&buf, c)
	}
	return buf.String()
}

// OuterHTML returns the serialized element including its own tag.
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	html.Render(&buf, e.node)
	return buf.String()
}

// Find returns the first descendant matching the CSS selector, or nil if
// nothing matches or the selector does not compile. The element itself is
// never a match; queries are scoped to the subtree below it.
func (e *Element) Find(selector string) *Element {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	n := matchFirst(e.node, sel)
	if n == nil {
		return nil
	}
	return FromNode(n)
}

// FindAll returns all descendants matching the CSS selector in document
// order. An empty result is not an error.
func (e *Element) FindAll(selector string) []*Element {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	var out []*Element
	for _, n := range matchAll(e.node, sel) {
		out = append(out, FromNode(n))
	}
	return out
}

// SetData stores a value on the element's data store under key.
func (e *Element) SetData(key string, value any) {
	if e.data == nil {
		e.data = make(map[string]any)
	}
	e.data[key] = value
}

// Data returns the value stored under key and whether it is present.
func (e *Element) Data(key string) (any, bool) {
	v, ok := e.data[key]
	return v, ok
}

func (e *Element) removeChildren() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
}

// matchFirst finds the first matching node below root in document order.
func matchFirst(root *html.Node, sel cascadia.Selector) *html.Node {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && sel.Match(c) {
			return c
		}
		if n := matchFirst(c, sel); n != nil {
			return n
		}
	}
	return nil
}

func matchAll(root *html.Node, sel cascadia.Selector) []*html.Node {
	var out []*html.Node
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && sel.Match(c) {
			out = append(out, c)
		}
		out = append(out, matchAll(c, sel)...)
	}
	return out
}
