package domain

import "time"

// Format names a source document format for extraction.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// Valid reports whether f names a format the extraction service handles.
func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatText:
		return true
	}
	return false
}

// Record is one tabular row keyed by header column.
type Record map[string]string

// Vars holds extracted variables by rule name.
type Vars map[string]string

// ExtractSpec describes one extraction run: which files to read, how to
// parse them, and the named rules to apply. Rules are JSONPath
// expressions for json/yaml sources and named-group regular expressions
// for text sources.
type ExtractSpec struct {
	Format  Format            `yaml:"format"`
	Sources []string          `yaml:"sources"`
	Rules   map[string]string `yaml:"rules"`
}

// RuleResult reports the outcome of one rule over one run.
type RuleResult struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Source  string `json:"source,omitempty"`
	Message string `json:"message,omitempty"`
}

// SourceRef records an input file and the digest of its content at run
// time, so two runs over different file states stay distinguishable.
type SourceRef struct {
	Path   string `json:"path"`
	Digest string `json:"digest"`
}

// RunArtifact is the persisted record of one extraction run.
type RunArtifact struct {
	ID        string       `json:"id"`
	StartedAt time.Time    `json:"started_at"`
	Format    Format       `json:"format"`
	Sources   []SourceRef  `json:"sources"`
	Vars      Vars         `json:"vars"`
	Results   []RuleResult `json:"results"`
}

// RunSummary is one line of the run index.
type RunSummary struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Sources   int       `json:"sources"`
	RulesOK   int       `json:"rules_ok"`
	Rules     int       `json:"rules"`
}
