// Package xmltree holds the case-insensitive lookups and subtree capture
// helpers the blueprint codec builds on. Subtrees are captured as standalone
// XML text and replayed by parsing that text back into an element.
package xmltree

import (
	"errors"
	"strings"

	"github.com/beevik/etree"
)

// ErrEmptyFragment is returned by Replay when the markup holds no element.
var ErrEmptyFragment = errors.New("xmltree: fragment has no root element")

// Name returns the element name including its namespace prefix.
func Name(el *etree.Element) string { return el.FullTag() }

// Child returns the first child element of el whose name equals name, ignoring case.
func Child(el *etree.Element, name string) *etree.Element {
	if el == nil {
		return nil
	}
	for _, c := range el.ChildElements() {
		if strings.EqualFold(c.FullTag(), name) {
			return c
		}
	}
	return nil
}

// Attr returns the value of the first attribute of el whose key equals name,
// ignoring case. The key may carry a namespace prefix ("xsi:type").
func Attr(el *etree.Element, name string) (string, bool) {
	if el == nil {
		return "", false
	}
	for i := range el.Attr {
		if strings.EqualFold(el.Attr[i].FullKey(), name) {
			return el.Attr[i].Value, true
		}
	}
	return "", false
}

// AttrPtr is Attr returning nil when the attribute is missing.
func AttrPtr(el *etree.Element, name string) *string {
	v, ok := Attr(el, name)
	if !ok {
		return nil
	}
	return &v
}

// ChildText returns the text of the named child, or nil when there is no such child.
func ChildText(el *etree.Element, name string) *string {
	c := Child(el, name)
	if c == nil {
		return nil
	}
	s := c.Text()
	return &s
}

// IsLeaf reports whether el carries neither attributes nor child elements, so
// that its text alone describes it.
func IsLeaf(el *etree.Element) bool {
	return len(el.Attr) == 0 && len(el.ChildElements()) == 0
}

// Capture serializes a copy of el, including every nested child, as a
// standalone XML fragment. Indentation whitespace is dropped so that a
// captured subtree reads the same no matter how the surrounding document was
// indented.
func Capture(el *etree.Element) (string, error) {
	cp := el.Copy()
	Unindent(cp)
	doc := etree.NewDocument()
	doc.SetRoot(cp)
	return doc.WriteToString()
}

// Replay parses markup produced by Capture and appends the resulting element
// to parent. A non-empty tag overrides the element name stored in markup.
func Replay(parent *etree.Element, markup, tag string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrEmptyFragment
	}
	if tag != "" {
		root.Space, root.Tag = splitName(tag)
	}
	parent.AddChild(root)
	return root, nil
}

// Unindent removes whitespace-only character data from every element of the
// subtree that also holds child elements.
func Unindent(el *etree.Element) {
	children := el.ChildElements()
	if len(children) == 0 {
		return
	}
	for i := len(el.Child) - 1; i >= 0; i-- {
		if cd, ok := el.Child[i].(*etree.CharData); ok && strings.TrimSpace(cd.Data) == "" {
			el.RemoveChildAt(i)
		}
	}
	for _, c := range children {
		Unindent(c)
	}
}

func splitName(name string) (space, local string) {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}
