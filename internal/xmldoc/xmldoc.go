package xmldoc

import (
	"errors"
	"os"

	"github.com/beevik/etree"

	"docsift/internal/domain"
)

// Element is a flattened view of one matched XML element.
type Element struct {
	Tag   string
	Text  string
	Attrs map[string]string
}

// Document wraps a parsed XML tree and offers path traversal over it.
// Paths use etree syntax, e.g. "//book[@lang='en']/title".
type Document struct {
	tree *etree.Document
}

// Load parses XML bytes.
func Load(b []byte) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(b); err != nil {
		return nil, domain.E("xmldoc.load", domain.KindParse, "", err)
	}
	return &Document{tree: tree}, nil
}

// LoadFile parses the XML file at path.
func LoadFile(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.E("xmldoc.loadfile", domain.KindNotFound, path, err)
	}
	if err != nil {
		return nil, domain.E("xmldoc.loadfile", domain.KindUnknown, path, err)
	}
	doc, err := Load(b)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) {
			oe.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// FindAll returns every element matched by path, in document order.
func (d *Document) FindAll(path string) []Element {
	els := d.tree.FindElements(path)
	out := make([]Element, 0, len(els))
	for _, el := range els {
		attrs := make(map[string]string, len(el.Attr))
		for _, a := range el.Attr {
			attrs[a.Key] = a.Value
		}
		out = append(out, Element{Tag: el.Tag, Text: el.Text(), Attrs: attrs})
	}
	return out
}

// FindText returns the text of the first element matched by path.
func (d *Document) FindText(path string) (string, bool) {
	el := d.tree.FindElement(path)
	if el == nil {
		return "", false
	}
	return el.Text(), true
}

// Attr returns the named attribute of the first element matched by
// path.
func (d *Document) Attr(path, name string) (string, bool) {
	el := d.tree.FindElement(path)
	if el == nil {
		return "", false
	}
	a := el.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}
