package jsondoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"

	"docsift/internal/domain"
)

// Document wraps a decoded JSON value (map[string]any, []any, and
// scalars) and offers path lookup over it.
type Document struct {
	root any
}

// New wraps an already-decoded value.
func New(root any) *Document { return &Document{root: root} }

// Decode parses JSON bytes into a Document.
func Decode(b []byte) (*Document, error) {
	var root any
	if err := json.Unmarshal(b, &root); err != nil {
		return nil, domain.E("jsondoc.decode", domain.KindParse, "", err)
	}
	return &Document{root: root}, nil
}

// DecodeFile parses the JSON file at path.
func DecodeFile(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.E("jsondoc.decodefile", domain.KindNotFound, path, err)
	}
	if err != nil {
		return nil, domain.E("jsondoc.decodefile", domain.KindUnknown, path, err)
	}
	doc, err := Decode(b)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) {
			oe.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Root returns the decoded value. Callers share it; use Clone before
// mutating.
func (d *Document) Root() any { return d.root }

// Get evaluates a JSONPath expression against the document.
func (d *Document) Get(path string) (any, error) {
	v, err := jsonpath.Get(path, d.root)
	if err != nil {
		return nil, domain.E("jsondoc.get", domain.KindInvalidInput, "", err)
	}
	return v, nil
}

// GetString evaluates path and coerces the result to a string. Scalars
// format directly; arrays and objects re-encode as compact JSON. A
// single-element array unwraps, since path filters commonly return one.
func (d *Document) GetString(path string) (string, error) {
	v, err := d.Get(path)
	if err != nil {
		return "", err
	}
	return Stringify(v)
}

// Stringify coerces a decoded JSON value to a string.
func Stringify(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", domain.E("jsondoc.stringify", domain.KindNotFound, "", errors.New("no value"))
	case string:
		return t, nil
	case bool:
		return fmt.Sprint(t), nil
	case float64:
		// Avoid 1e+06-style output for integral numbers.
		if t == float64(int64(t)) {
			return fmt.Sprint(int64(t)), nil
		}
		return fmt.Sprint(t), nil
	case int, int64, uint64:
		return fmt.Sprint(t), nil
	case []any:
		if len(t) == 1 {
			return Stringify(t[0])
		}
		b, err := json.Marshal(t)
		if err != nil {
			return "", domain.E("jsondoc.stringify", domain.KindUnsupported, "", err)
		}
		return string(b), nil
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", domain.E("jsondoc.stringify", domain.KindUnsupported, "", err)
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}

// Clone returns a deep copy of the document. Nested maps and slices
// are copied recursively, so mutating the clone never shows through
// the original. Assigning Root() around instead is the shallow copy:
// nested values stay shared.
func (d *Document) Clone() *Document {
	return &Document{root: cloneValue(d.root)}
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = cloneValue(val)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = cloneValue(val)
		}
		return s
	default:
		// Scalars (string, float64, bool, nil) copy by value.
		return t
	}
}
