package scan_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"docsift/internal/domain"
	"docsift/internal/scan"
)

func TestExtract_NamedGroups(t *testing.T) {
	p, err := scan.Compile(`(?P<host>[\w.]+):(?P<port>\d+)`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	got, ok := p.Extract("connect to db.internal:5432 please")
	if !ok {
		t.Fatal("expected a match")
	}
	want := map[string]string{"host": "db.internal", "port": "5432"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_NoMatch(t *testing.T) {
	p := scan.MustCompile(`(?P<num>\d+)`)
	if _, ok := p.Extract("no digits here"); ok {
		t.Fatal("expected no match")
	}
	if _, ok := p.Extract(""); ok {
		t.Fatal("expected no match on empty input")
	}
}

func TestExtractAll(t *testing.T) {
	p := scan.MustCompile(`(?P<key>\w+)=(?P<val>\w+)`)

	got := p.ExtractAll("a=1 b=2 c=3")
	want := []map[string]string{
		{"key": "a", "val": "1"},
		{"key": "b", "val": "2"},
		{"key": "c", "val": "3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("matches mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_UnnamedGroupsSkipped(t *testing.T) {
	p := scan.MustCompile(`(\w+)/(?P<rest>\w+)`)

	got, ok := p.Extract("left/right")
	if !ok {
		t.Fatal("expected a match")
	}
	if len(got) != 1 || got["rest"] != "right" {
		t.Fatalf("groups = %v, want only rest=right", got)
	}

	names := p.Names()
	if len(names) != 1 || names[0] != "rest" {
		t.Fatalf("names = %v", names)
	}
}

func TestCompile_Malformed(t *testing.T) {
	_, err := scan.Compile("(")
	if err == nil {
		t.Fatal("expected error")
	}
	if domain.KindOf(err) != domain.KindInvalidInput {
		t.Fatalf("kind = %v, want invalid_input", domain.KindOf(err))
	}
}
