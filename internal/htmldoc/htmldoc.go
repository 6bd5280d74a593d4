package htmldoc

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"docsift/internal/domain"
)

// Link is one anchor: its target and visible text.
type Link struct {
	Href string
	Text string
}

// Element is a flattened view of one selected HTML element.
type Element struct {
	Tag   string
	Text  string
	Attrs map[string]string
}

// Page wraps a parsed HTML document.
type Page struct {
	doc *goquery.Document
}

// Parse reads and parses an HTML document.
func Parse(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, domain.E("htmldoc.parse", domain.KindParse, "", err)
	}
	return &Page{doc: doc}, nil
}

// Title returns the document title, trimmed.
func (p *Page) Title() string {
	return strings.TrimSpace(p.doc.Find("title").First().Text())
}

// Links returns every anchor that carries an href, in document order.
func (p *Page) Links() []Link {
	var links []Link
	p.doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		links = append(links, Link{Href: href, Text: strings.TrimSpace(s.Text())})
	})
	return links
}

// Select returns the elements matched by a CSS selector.
func (p *Page) Select(selector string) []Element {
	var out []Element
	p.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		el := Element{Text: strings.TrimSpace(s.Text())}
		if n := s.Get(0); n != nil {
			el.Tag = n.Data
			el.Attrs = make(map[string]string, len(n.Attr))
			for _, a := range n.Attr {
				el.Attrs[a.Key] = a.Val
			}
		}
		out = append(out, el)
	})
	return out
}

// AttrValues returns the named attribute of each element matched by
// selector; elements without the attribute are skipped.
func (p *Page) AttrValues(selector, attr string) []string {
	var out []string
	p.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if v, ok := s.Attr(attr); ok {
			out = append(out, v)
		}
	})
	return out
}

// TagCounts walks the raw node tree and counts element tags.
func TagCounts(r io.Reader) (map[string]int, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, domain.E("htmldoc.tagcounts", domain.KindParse, "", err)
	}
	counts := make(map[string]int)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			counts[n.Data]++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return counts, nil
}
