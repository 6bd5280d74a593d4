// Package jsondoc treats decoded JSON as a first-class value: path
// lookup via JSONPath, deep cloning, and encoding with a fallback hook
// for values encoding/json cannot represent.
package jsondoc
