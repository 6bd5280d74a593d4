package xmldoc_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"docsift/internal/domain"
	"docsift/internal/xmldoc"
)

const catalog = `<?xml version="1.0"?>
<catalog>
  <book id="b1" lang="en">
    <title>Systems</title>
    <price>39.95</price>
  </book>
  <book id="b2" lang="de">
    <title>Netze</title>
    <price>29.95</price>
  </book>
</catalog>`

func TestFindAll(t *testing.T) {
	doc, err := xmldoc.Load([]byte(catalog))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	books := doc.FindAll("//book")
	if len(books) != 2 {
		t.Fatalf("found %d books, want 2", len(books))
	}
	want := xmldoc.Element{
		Tag:   "book",
		Attrs: map[string]string{"id": "b1", "lang": "en"},
	}
	got := books[0]
	got.Text = "" // whitespace-only container text is not interesting here
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("book mismatch (-want +got):\n%s", diff)
	}
}

func TestFindText(t *testing.T) {
	doc, err := xmldoc.Load([]byte(catalog))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	title, ok := doc.FindText("//book[@lang='de']/title")
	if !ok || title != "Netze" {
		t.Fatalf("title = %q, ok=%v", title, ok)
	}

	if _, ok := doc.FindText("//book[@lang='fr']/title"); ok {
		t.Fatal("expected no match")
	}
}

func TestAttr(t *testing.T) {
	doc, err := xmldoc.Load([]byte(catalog))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	id, ok := doc.Attr("//book[2]", "id")
	if !ok || id != "b2" {
		t.Fatalf("id = %q, ok=%v", id, ok)
	}

	if _, ok := doc.Attr("//book[1]", "isbn"); ok {
		t.Fatal("expected missing attribute")
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := xmldoc.Load([]byte("<a><b></a>"))
	if domain.KindOf(err) != domain.KindParse {
		t.Fatalf("kind = %v, want parse", domain.KindOf(err))
	}
}
