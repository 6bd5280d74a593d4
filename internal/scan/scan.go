package scan

import (
	"regexp"

	"docsift/internal/domain"
)

// Pattern is a compiled regular expression whose named capture groups
// drive extraction.
type Pattern struct {
	re *regexp.Regexp
}

// Compile compiles expr. A malformed expression is an invalid-input
// error; patterns without named groups compile fine but extract nothing.
func Compile(expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, domain.E("scan.compile", domain.KindInvalidInput, "", err)
	}
	return &Pattern{re: re}, nil
}

// MustCompile is Compile for package-level patterns known to be valid.
func MustCompile(expr string) *Pattern {
	return &Pattern{re: regexp.MustCompile(expr)}
}

// Names returns the named capture groups in index order.
func (p *Pattern) Names() []string {
	var names []string
	for _, n := range p.re.SubexpNames() {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// Extract returns the named groups of the first match. ok is false when
// s does not match.
func (p *Pattern) Extract(s string) (map[string]string, bool) {
	m := p.re.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	return p.groups(m), true
}

// ExtractAll returns one group map per match, in input order.
func (p *Pattern) ExtractAll(s string) []map[string]string {
	var out []map[string]string
	for _, m := range p.re.FindAllStringSubmatch(s, -1) {
		out = append(out, p.groups(m))
	}
	return out
}

// groups maps named subexpressions of one match; unnamed groups are
// skipped.
func (p *Pattern) groups(m []string) map[string]string {
	g := make(map[string]string)
	for i, n := range p.re.SubexpNames() {
		if n != "" && i < len(m) {
			g[n] = m[i]
		}
	}
	return g
}
