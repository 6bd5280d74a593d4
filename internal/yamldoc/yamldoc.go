package yamldoc

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"docsift/internal/domain"
	"docsift/internal/jsondoc"
)

// Document wraps a decoded YAML value. Lookup reuses jsondoc over the
// same generic tree, so rules work unchanged across both formats.
type Document struct {
	*jsondoc.Document
}

// Decode parses YAML bytes into a Document.
func Decode(b []byte) (*Document, error) {
	var root any
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, domain.E("yamldoc.decode", domain.KindParse, "", err)
	}
	return &Document{jsondoc.New(root)}, nil
}

// DecodeFile parses the YAML file at path.
func DecodeFile(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.E("yamldoc.decodefile", domain.KindNotFound, path, err)
	}
	if err != nil {
		return nil, domain.E("yamldoc.decodefile", domain.KindUnknown, path, err)
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

// Encode marshals v to YAML.
func Encode(v any) ([]byte, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return nil, domain.E("yamldoc.encode", domain.KindUnsupported, "", err)
	}
	return b, nil
}
