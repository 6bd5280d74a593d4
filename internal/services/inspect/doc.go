// Package inspect coordinates the document parsers: it expands source
// globs, parses each file by format, applies named extraction rules
// (JSONPath for json/yaml, named-group regular expressions for text),
// and persists the run.
package inspect
