package inspect

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"docsift/internal/domain"
	"docsift/internal/jsondoc"
	"docsift/internal/logging"
	"docsift/internal/pathutil"
	"docsift/internal/scan"
	"docsift/internal/store"
	"docsift/internal/yamldoc"
)

// Service runs extraction specs over source files and persists the
// resulting run artifacts.
type Service struct {
	runs domain.RunStore
	now  func() time.Time
}

// New returns an inspect service backed by the given run store.
func New(runs domain.RunStore) *Service {
	return &Service{runs: runs, now: time.Now}
}

// LoadSpec reads an extraction spec from a YAML file.
func LoadSpec(path string) (domain.ExtractSpec, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.ExtractSpec{}, domain.E("inspect.loadspec", domain.KindNotFound, path, err)
	}
	if err != nil {
		return domain.ExtractSpec{}, domain.E("inspect.loadspec", domain.KindUnknown, path, err)
	}
	var spec domain.ExtractSpec
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return domain.ExtractSpec{}, domain.E("inspect.loadspec", domain.KindParse, path, err)
	}
	// An empty format is left for the caller to default from config.
	return spec, nil
}

// Run expands the spec's source globs, parses each file by format, and
// applies every rule. The first source that satisfies a rule wins; a
// source that cannot be read or parsed fails its rules but not the
// run. The finished run is saved before it is returned.
func (s *Service) Run(spec domain.ExtractSpec) (domain.RunArtifact, error) {
	if !spec.Format.Valid() {
		return domain.RunArtifact{}, domain.E("inspect.run", domain.KindUnsupported, "",
			fmt.Errorf("format %q (want json, yaml, or text)", spec.Format))
	}
	if len(spec.Rules) == 0 {
		return domain.RunArtifact{}, domain.E("inspect.run", domain.KindInvalidInput, "",
			errors.New("no rules"))
	}

	paths, err := expand(spec.Sources)
	if err != nil {
		return domain.RunArtifact{}, err
	}

	run := domain.RunArtifact{
		StartedAt: s.now().UTC(),
		Format:    spec.Format,
		Vars:      domain.Vars{},
	}

	type source struct {
		path    string
		lookup  func(rule string) (string, error)
		loadErr error
	}
	sources := make([]source, 0, len(paths))
	for _, path := range paths {
		src := source{path: path}
		src.lookup, src.loadErr = s.open(spec.Format, path)
		if src.loadErr == nil {
			digest, derr := store.FileDigest(path)
			if derr == nil {
				run.Sources = append(run.Sources, domain.SourceRef{Path: path, Digest: digest})
			}
		} else {
			logging.L().Warn("inspect.source_skipped", "path", path, "err", src.loadErr.Error())
		}
		sources = append(sources, src)
	}

	// Stable rule order for output and stored artifacts.
	names := make([]string, 0, len(spec.Rules))
	for name := range spec.Rules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rule := spec.Rules[name]
		res := domain.RuleResult{Name: name}
		for _, src := range sources {
			if src.loadErr != nil {
				res.Message = src.loadErr.Error()
				continue
			}
			val, err := src.lookup(rule)
			if err != nil {
				res.Message = err.Error()
				continue
			}
			res.Success = true
			res.Source = src.path
			res.Message = ""
			run.Vars[name] = val
			break
		}
		if !res.Success && res.Message == "" {
			res.Message = "no value found"
		}
		run.Results = append(run.Results, res)
	}

	id, err := s.runs.SaveRun(run)
	if err != nil {
		return run, err
	}
	run.ID = id
	logging.L().Info("inspect.run_saved", "id", id, "sources", len(run.Sources), "rules", len(run.Results))
	return run, nil
}

// open parses one source and returns a per-rule lookup closure.
func (s *Service) open(format domain.Format, path string) (func(string) (string, error), error) {
	switch format {
	case domain.FormatJSON:
		doc, err := jsondoc.DecodeFile(path)
		if err != nil {
			return nil, err
		}
		return doc.GetString, nil
	case domain.FormatYAML:
		doc, err := yamldoc.DecodeFile(path)
		if err != nil {
			return nil, err
		}
		return doc.GetString, nil
	default: // domain.FormatText
		b, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.E("inspect.open", domain.KindNotFound, path, err)
		}
		if err != nil {
			return nil, domain.E("inspect.open", domain.KindUnknown, path, err)
		}
		text := string(b)
		return func(rule string) (string, error) {
			p, err := scan.Compile(rule)
			if err != nil {
				return "", err
			}
			// A rule must name exactly one group, otherwise which value it
			// extracts is ambiguous.
			names := p.Names()
			if len(names) != 1 {
				return "", domain.E("inspect.rule", domain.KindInvalidInput, "",
					fmt.Errorf("rule needs exactly one named group, has %d", len(names)))
			}
			groups, ok := p.Extract(text)
			if !ok {
				return "", domain.E("inspect.rule", domain.KindNotFound, path, errors.New("pattern did not match"))
			}
			return groups[names[0]], nil
		}, nil
	}
}

// expand resolves globs to a deduplicated, sorted path list.
func expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, pat := range patterns {
		matches, err := pathutil.Glob(pat)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

// Compile-time assertion that Service implements domain.InspectService.
var _ domain.InspectService = (*Service)(nil)
