package pathutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"docsift/internal/domain"
	"docsift/internal/pathutil"
)

func TestWithExt_ReplacesSuffix(t *testing.T) {
	cases := []struct {
		path, ext, want string
	}{
		{"report.txt", ".csv", "report.csv"},
		{"report.txt", "csv", "report.csv"},
		{"archive.tar.gz", ".bz2", "archive.tar.bz2"},
		{"README", ".md", "README.md"},
		{"report.txt", "", "report"},
		{filepath.Join("out", "report.txt"), ".json", filepath.Join("out", "report.json")},
	}
	for _, c := range cases {
		if got := pathutil.WithExt(c.path, c.ext); got != c.want {
			t.Fatalf("WithExt(%q, %q) = %q, want %q", c.path, c.ext, got, c.want)
		}
	}
}

func TestStemAndSplit(t *testing.T) {
	p := filepath.Join("data", "2024", "sales.csv")

	if got := pathutil.Stem(p); got != "sales" {
		t.Fatalf("Stem = %q, want %q", got, "sales")
	}

	dir, stem, ext := pathutil.Split(p)
	if dir+stem+ext != p {
		t.Fatalf("Split does not round-trip: %q + %q + %q != %q", dir, stem, ext, p)
	}
	if stem != "sales" || ext != ".csv" {
		t.Fatalf("Split = (%q, %q, %q)", dir, stem, ext)
	}
}

func TestGlob_SortedAndEmpty(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.csv", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	got, err := pathutil.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	want := []string{filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.csv")}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("glob = %v, want %v", got, want)
	}

	none, err := pathutil.Glob(filepath.Join(dir, "*.none"))
	if err != nil {
		t.Fatalf("glob no-match: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %v", none)
	}
}

func TestGlob_BadPattern(t *testing.T) {
	_, err := pathutil.Glob("[")
	if err == nil {
		t.Fatal("expected error for malformed pattern")
	}
	if domain.KindOf(err) != domain.KindInvalidInput {
		t.Fatalf("kind = %v, want invalid_input", domain.KindOf(err))
	}
}

func TestRemove_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.txt")

	err := pathutil.Remove(missing)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	removed, err := pathutil.RemoveIfPresent(missing)
	if err != nil {
		t.Fatalf("RemoveIfPresent: %v", err)
	}
	if removed {
		t.Fatal("reported removal of a missing file")
	}
}

func TestRemove_Existing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tmp.txt")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	removed, err := pathutil.RemoveIfPresent(path)
	if err != nil {
		t.Fatalf("RemoveIfPresent: %v", err)
	}
	if !removed {
		t.Fatal("expected removal")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file still present: %v", err)
	}
}
