// Package html provides the transcript extraction engine on top of
// golang.org/x/net/html. A parsed document is frozen into a lightweight Node
// tree, then folded into qalog categories.
package html

import (
	"io"
	"strings"

	"github.com/fwojciec/qalog"
	"golang.org/x/net/html"
)

// VoidTags lists the elements that never carry content or a closing tag.
var VoidTags = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// Child is one entry of a node's ordered content: either Text or *Node.
type Child interface {
	isChild()
}

// Text is a raw text fragment.
type Text string

func (Text) isChild() {}

// Attr is a single name/value attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is an immutable HTML element.
type Node struct {
	tag      string
	attrs    []Attr
	children []Child
}

func (*Node) isChild() {}

// NewElement builds a node directly. Attribute names are deduplicated, the
// last value winning.
func NewElement(tag string, attrs []Attr, children ...Child) *Node {
	n := &Node{tag: strings.ToLower(tag), children: children}
	for _, a := range attrs {
		n.setAttr(a.Name, a.Value)
	}
	return n
}

// NewNode freezes a parsed element and its descendants. Non-breaking spaces
// in text are replaced with regular spaces; comments and other non-element
// nodes are dropped.
func NewNode(n *html.Node) (*Node, error) {
	if n == nil || n.Type != html.ElementNode {
		return nil, qalog.Errorf(qalog.EINVALID, "value provided was not an element")
	}

	node := &Node{tag: strings.ToLower(n.Data)}
	for _, a := range n.Attr {
		node.setAttr(a.Key, a.Val)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			node.children = append(node.children, Text(strings.ReplaceAll(c.Data, "\u00a0", " ")))
		case html.ElementNode:
			child, err := NewNode(c)
			if err != nil {
				return nil, err
			}
			node.children = append(node.children, child)
		}
	}
	return node, nil
}

// Parse parses an HTML document and returns its <html> element.
func Parse(r io.Reader) (*Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, qalog.Errorf(qalog.EINVALID, "failed to parse HTML: %v", err)
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "html" {
			return NewNode(c)
		}
	}
	return nil, qalog.Errorf(qalog.EINVALID, "could not find base HTML element")
}

func (n *Node) setAttr(name, value string) {
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
}

// Tag returns the lowercased tag name.
func (n *Node) Tag() string {
	return n.tag
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Children returns text fragments and child elements in source order.
// The returned slice must not be modified.
func (n *Node) Children() []Child {
	return n.children
}

// Elements returns the child elements, skipping text.
func (n *Node) Elements() []*Node {
	var out []*Node
	for _, c := range n.children {
		if e, ok := c.(*Node); ok {
			out = append(out, e)
		}
	}
	return out
}

// ElementCount returns the number of child elements.
func (n *Node) ElementCount() int {
	count := 0
	for _, c := range n.children {
		if _, ok := c.(*Node); ok {
			count++
		}
	}
	return count
}

// FirstElement returns the first child element, or nil.
func (n *Node) FirstElement() *Node {
	for _, c := range n.children {
		if e, ok := c.(*Node); ok {
			return e
		}
	}
	return nil
}

// Text returns all descendant text, depth-first, in document order.
// Whitespace is kept as is.
func (n *Node) Text() string {
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	for _, c := range n.children {
		switch c := c.(type) {
		case Text:
			b.WriteString(string(c))
		case *Node:
			c.writeText(b)
		}
	}
}

// InnerHTML serializes the node's children.
func (n *Node) InnerHTML() string {
	var b strings.Builder
	n.writeInner(&b)
	return b.String()
}

// OuterHTML serializes the node including its own tags. A void element
// without content is written without a closing tag.
func (n *Node) OuterHTML() string {
	var b strings.Builder
	n.writeOuter(&b)
	return b.String()
}

func (n *Node) writeInner(b *strings.Builder) {
	for _, c := range n.children {
		switch c := c.(type) {
		case Text:
			textEscaper.WriteString(b, string(c))
		case *Node:
			c.writeOuter(b)
		}
	}
}

func (n *Node) writeOuter(b *strings.Builder) {
	inner := n.InnerHTML()

	b.WriteString("<" + n.tag)
	for _, a := range n.attrs {
		b.WriteString(" " + a.Name + `="`)
		attrEscaper.WriteString(b, a.Value)
		b.WriteString(`"`)
	}
	b.WriteString(">")

	if inner == "" && VoidTags[n.tag] {
		return
	}
	b.WriteString(inner)
	b.WriteString("</" + n.tag + ">")
}
