package jsondoc

import (
	"encoding/json"
	"errors"

	"docsift/internal/domain"
)

// Encoder marshals values to JSON. When a leaf value is not
// representable (channels, functions, NaN...) and Fallback is set, the
// leaf is passed through Fallback and its result encoded instead;
// without a Fallback the unsupported value is an error.
type Encoder struct {
	Indent   string
	Fallback func(any) (any, error)
}

// Marshal encodes v, consulting Fallback for unsupported leaves inside
// generic map[string]any / []any trees.
func (e *Encoder) Marshal(v any) ([]byte, error) {
	conv, err := e.convert(v)
	if err != nil {
		return nil, err
	}
	if e.Indent != "" {
		b, err := json.MarshalIndent(conv, "", e.Indent)
		if err != nil {
			return nil, domain.E("jsondoc.encode", domain.KindUnsupported, "", err)
		}
		return b, nil
	}
	b, err := json.Marshal(conv)
	if err != nil {
		return nil, domain.E("jsondoc.encode", domain.KindUnsupported, "", err)
	}
	return b, nil
}

func (e *Encoder) convert(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			conv, err := e.convert(val)
			if err != nil {
				return nil, err
			}
			m[k] = conv
		}
		return m, nil
	case []any:
		s := make([]any, len(t))
		for i, val := range t {
			conv, err := e.convert(val)
			if err != nil {
				return nil, err
			}
			s[i] = conv
		}
		return s, nil
	default:
		if _, err := json.Marshal(t); err != nil {
			if e.Fallback != nil && unsupported(err) {
				return e.Fallback(t)
			}
			return nil, domain.E("jsondoc.encode", domain.KindUnsupported, "", err)
		}
		return t, nil
	}
}

func unsupported(err error) bool {
	var typeErr *json.UnsupportedTypeError
	var valErr *json.UnsupportedValueError
	return errors.As(err, &typeErr) || errors.As(err, &valErr)
}
