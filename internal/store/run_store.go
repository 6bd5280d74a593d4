package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"docsift/internal/domain"
)

const (
	runsDir   = "runs"
	indexFile = "index.jsonl" // one RunSummary per line
)

// RunStore persists extraction run artifacts under <dir>/runs, one
// JSON file per run plus a JSONL index for cheap listing.
type RunStore struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

// Option tweaks a RunStore.
type Option func(*RunStore)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *RunStore) { s.now = now }
}

func NewRunStore(dir string, opts ...Option) *RunStore {
	s := &RunStore{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveRun assigns the run an ID, writes runs/<id>.json, and appends a
// summary line to the index. The ID combines the UTC start time with a
// digest of the run body, so re-running over changed inputs never
// collides.
func (s *RunStore) SaveRun(run domain.RunArtifact) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Join(s.dir, runsDir)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", domain.E("store.saverun", domain.KindUnknown, dir, err)
	}

	if run.StartedAt.IsZero() {
		run.StartedAt = s.now().UTC()
	}
	body, err := json.Marshal(run)
	if err != nil {
		return "", domain.E("store.saverun", domain.KindUnsupported, "", err)
	}
	base := fmt.Sprintf("%s-%s", run.StartedAt.UTC().Format("20060102T150405"), Digest(body))
	run.ID = base
	// An identical run saved in the same second reuses the base ID; bump
	// a sequence suffix rather than overwrite the earlier artifact.
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, run.ID+".json")); errors.Is(err, os.ErrNotExist) {
			break
		}
		run.ID = fmt.Sprintf("%s-%d", base, n)
	}

	path := filepath.Join(dir, run.ID+".json")
	if err := writeJSON(path, run, 0o600); err != nil {
		return "", domain.E("store.saverun", domain.KindUnknown, path, err)
	}

	ok := 0
	for _, r := range run.Results {
		if r.Success {
			ok++
		}
	}
	sum := domain.RunSummary{
		ID:        run.ID,
		StartedAt: run.StartedAt,
		Sources:   len(run.Sources),
		RulesOK:   ok,
		Rules:     len(run.Results),
	}
	line, err := json.Marshal(sum)
	if err != nil {
		return "", domain.E("store.saverun", domain.KindUnsupported, "", err)
	}
	if err := appendLine(filepath.Join(dir, indexFile), line, 0o600); err != nil {
		return "", domain.E("store.saverun", domain.KindUnknown, dir, err)
	}
	return run.ID, nil
}

// LoadRun reads one run artifact by ID.
func (s *RunStore) LoadRun(id string) (domain.RunArtifact, error) {
	path := filepath.Join(s.dir, runsDir, id+".json")
	var run domain.RunArtifact
	if err := readJSON(path, &run); err != nil {
		kind := domain.KindUnknown
		var de *decodeError
		switch {
		case errors.Is(err, os.ErrNotExist):
			kind = domain.KindNotFound
		case errors.As(err, &de):
			kind = domain.KindParse
		}
		return domain.RunArtifact{}, domain.E("store.loadrun", kind, path, err)
	}
	return run, nil
}

// ListRuns reads the index. A store with no runs yet lists as empty.
func (s *RunStore) ListRuns() ([]domain.RunSummary, error) {
	path := filepath.Join(s.dir, runsDir, indexFile)
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.E("store.listruns", domain.KindUnknown, path, err)
	}
	defer f.Close()

	var out []domain.RunSummary
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var sum domain.RunSummary
		if err := json.Unmarshal(sc.Bytes(), &sum); err != nil {
			return out, domain.E("store.listruns", domain.KindParse, path, err)
		}
		out = append(out, sum)
	}
	if err := sc.Err(); err != nil {
		return out, domain.E("store.listruns", domain.KindUnknown, path, err)
	}
	return out, nil
}

// Compile-time assertion that RunStore implements domain.RunStore.
var _ domain.RunStore = (*RunStore)(nil)
