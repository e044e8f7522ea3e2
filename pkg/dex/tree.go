package dex

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/matzehuels/cogmap/pkg/errors"
)

// Element is a node of the parsed XML tree.
type Element struct {
	Name     string
	Children []*Element

	attrs map[string]string
	text  []byte
}

// Attr returns the value of the attribute with the given local name.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Text returns the concatenated character data of the element and all of
// its descendants, in document order.
func (e *Element) Text() string {
	return string(e.text)
}

// Document is a parsed Decision Explorer export.
type Document struct {
	Root *Element
}

// FindAll returns every element named name, searching the whole tree in
// document order (the equivalent of the XPath query "//name").
func (d *Document) FindAll(name string) []*Element {
	if d == nil || d.Root == nil {
		return nil
	}
	var out []*Element
	var walk func(*Element)
	walk = func(e *Element) {
		if e.Name == name {
			out = append(out, e)
		}
		for _, c := range e.Children {
			walk(c)
		}
	}
	walk(d.Root)
	return out
}

// Load parses an XML document from r.
//
// Documents declaring a non-UTF-8 encoding (Decision Explorer commonly
// writes ISO-8859-1 or windows-1252) are transcoded while reading.
// Load does not close r.
func Load(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var (
		root  *Element
		stack []*Element
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidXML, err, "parse xml")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local, attrs: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				el.attrs[a.Name.Local] = a.Value
			}
			switch {
			case len(stack) > 0:
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			case root == nil:
				root = el
			default:
				return nil, errors.New(errors.ErrCodeInvalidXML, "multiple root elements (found <%s> after <%s>)", el.Name, root.Name)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			for _, el := range stack {
				el.text = append(el.text, t...)
			}
		}
	}

	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidXML, "document has no root element")
	}
	return &Document{Root: root}, nil
}

// LoadFile reads and parses the XML file at path.
func LoadFile(path string) (*Document, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return doc, nil
}
