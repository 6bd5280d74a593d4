package inspect_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docsift/internal/domain"
	"docsift/internal/services/inspect"
	"docsift/internal/store"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func newService(t *testing.T) (*inspect.Service, domain.RunStore) {
	t.Helper()
	rs := store.NewRunStore(t.TempDir())
	return inspect.New(rs), rs
}

func TestRun_JSONRules(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"user.json": `{"user": {"id": 7, "name": "ada"}}`,
	})
	svc, rs := newService(t)

	run, err := svc.Run(domain.ExtractSpec{
		Format:  domain.FormatJSON,
		Sources: []string{filepath.Join(dir, "*.json")},
		Rules: map[string]string{
			"id":      "$.user.id",
			"name":    "$.user.name",
			"missing": "$.user.email",
		},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if run.Vars["id"] != "7" || run.Vars["name"] != "ada" {
		t.Fatalf("vars = %v", run.Vars)
	}
	if len(run.Results) != 3 {
		t.Fatalf("results = %v", run.Results)
	}
	// Results are sorted by rule name: id, missing, name.
	if run.Results[1].Name != "missing" || run.Results[1].Success {
		t.Fatalf("missing rule = %+v", run.Results[1])
	}

	// The run was persisted and carries source digests.
	got, err := rs.LoadRun(run.ID)
	if err != nil {
		t.Fatalf("load saved run: %v", err)
	}
	if len(got.Sources) != 1 || got.Sources[0].Digest == "" {
		t.Fatalf("sources = %v", got.Sources)
	}
}

func TestRun_YAMLRules(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"cfg.yaml": "server:\n  host: db.internal\n",
	})
	svc, _ := newService(t)

	run, err := svc.Run(domain.ExtractSpec{
		Format:  domain.FormatYAML,
		Sources: []string{filepath.Join(dir, "cfg.yaml")},
		Rules:   map[string]string{"host": "$.server.host"},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if run.Vars["host"] != "db.internal" {
		t.Fatalf("vars = %v", run.Vars)
	}
}

func TestRun_TextRules(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"app.log": "2026-03-14 listen addr=0.0.0.0:9000 pid=4242\n",
	})
	svc, _ := newService(t)

	run, err := svc.Run(domain.ExtractSpec{
		Format:  domain.FormatText,
		Sources: []string{filepath.Join(dir, "app.log")},
		Rules: map[string]string{
			"port": `addr=[\d.]+:(?P<port>\d+)`,
			"pid":  `pid=(?P<pid>\d+)`,
		},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if run.Vars["port"] != "9000" || run.Vars["pid"] != "4242" {
		t.Fatalf("vars = %v", run.Vars)
	}
}

func TestRun_TextRuleNeedsOneNamedGroup(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"app.log": "pid=4242 uid=7\n",
	})
	svc, _ := newService(t)

	run, err := svc.Run(domain.ExtractSpec{
		Format:  domain.FormatText,
		Sources: []string{filepath.Join(dir, "app.log")},
		Rules: map[string]string{
			"anon": `pid=\d+`,
			"both": `pid=(?P<pid>\d+) uid=(?P<uid>\d+)`,
			"pid":  `pid=(?P<pid>\d+)`,
		},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	// Only the single-group rule extracts; zero or two named groups is
	// ambiguous and fails that rule.
	if len(run.Vars) != 1 || run.Vars["pid"] != "4242" {
		t.Fatalf("vars = %v", run.Vars)
	}
	for _, res := range run.Results[:2] { // sorted: anon, both
		if res.Success {
			t.Fatalf("rule %s should fail", res.Name)
		}
		if !strings.Contains(res.Message, "exactly one named group") {
			t.Fatalf("rule %s message = %q", res.Name, res.Message)
		}
		if !strings.Contains(res.Message, domain.KindInvalidInput.String()) {
			t.Fatalf("rule %s message does not carry the invalid_input kind: %q", res.Name, res.Message)
		}
	}
}

func TestRun_FirstSourceWins(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.json": `{"v": "from-a"}`,
		"b.json": `{"v": "from-b"}`,
	})
	svc, _ := newService(t)

	run, err := svc.Run(domain.ExtractSpec{
		Format:  domain.FormatJSON,
		Sources: []string{filepath.Join(dir, "*.json")},
		Rules:   map[string]string{"v": "$.v"},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if run.Vars["v"] != "from-a" {
		t.Fatalf("v = %q, want value from first sorted source", run.Vars["v"])
	}
	if run.Results[0].Source != filepath.Join(dir, "a.json") {
		t.Fatalf("source = %q", run.Results[0].Source)
	}
}

func TestRun_BadSourceDoesNotFailRun(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"bad.json":  `{broken`,
		"good.json": `{"v": 1}`,
	})
	svc, _ := newService(t)

	run, err := svc.Run(domain.ExtractSpec{
		Format:  domain.FormatJSON,
		Sources: []string{filepath.Join(dir, "*.json")},
		Rules:   map[string]string{"v": "$.v"},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if run.Vars["v"] != "1" {
		t.Fatalf("vars = %v", run.Vars)
	}
	// Only the parseable source is recorded.
	if len(run.Sources) != 1 {
		t.Fatalf("sources = %v", run.Sources)
	}
}

func TestRun_InvalidSpec(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Run(domain.ExtractSpec{Format: "toml", Rules: map[string]string{"x": "$.x"}})
	if domain.KindOf(err) != domain.KindUnsupported {
		t.Fatalf("kind = %v, want unsupported", domain.KindOf(err))
	}

	_, err = svc.Run(domain.ExtractSpec{Format: domain.FormatJSON})
	if domain.KindOf(err) != domain.KindInvalidInput {
		t.Fatalf("kind = %v, want invalid_input", domain.KindOf(err))
	}
}

func TestLoadSpec(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"rules.yaml": "format: yaml\nsources:\n  - '*.yaml'\nrules:\n  host: $.server.host\n",
	})

	spec, err := inspect.LoadSpec(filepath.Join(dir, "rules.yaml"))
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	if spec.Format != domain.FormatYAML || spec.Rules["host"] != "$.server.host" {
		t.Fatalf("spec = %+v", spec)
	}

	if _, err := inspect.LoadSpec(filepath.Join(dir, "none.yaml")); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
