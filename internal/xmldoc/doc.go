// Package xmldoc parses XML into an element tree and resolves path
// queries against it.
package xmldoc
