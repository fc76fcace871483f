package trace

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

var ErrNoEvents = errors.New("trace: no Events container in document")

// Node is one element of the parsed document: name, attributes,
// concatenated character data and child elements in document order.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr
	Text     string
	Children []*Node
}

func (n *Node) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	n.XMLName = start.Name
	n.Attrs = start.Attr
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &Node{}
			if err := child.UnmarshalXML(d, t); err != nil {
				return err
			}
			n.Children = append(n.Children, child)
		case xml.CharData:
			n.Text += string(t)
		case xml.EndElement:
			return nil
		}
	}
}

// Attr returns the value of the unprefixed attribute with the given local name.
func (n *Node) Attr(local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == local && a.Name.Space == "" {
			return a.Value, true
		}
	}
	return "", false
}

// Document is a parsed trace file. All name lookups resolve within the
// default namespace declared on the root element.
type Document struct {
	Root *Node
	NS   string
}

func Parse(r io.Reader) (*Document, error) {
	root := &Node{}
	if err := xml.NewDecoder(r).Decode(root); err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}
	return &Document{Root: root, NS: root.XMLName.Space}, nil
}

// Named reports whether n is called local in the document's default namespace.
func (d *Document) Named(n *Node, local string) bool {
	return n.XMLName.Local == local && n.XMLName.Space == d.NS
}

// Events returns the direct children of the root's Events container in
// document order. Sibling elements of Events are ignored; a document
// without the container is a structural error.
func (d *Document) Events() ([]*Node, error) {
	for _, c := range d.Root.Children {
		if d.Named(c, "Events") {
			return c.Children, nil
		}
	}
	return nil, ErrNoEvents
}
