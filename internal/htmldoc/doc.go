// Package htmldoc extracts tags, attributes, and links from HTML
// using CSS selectors over a parsed node tree.
package htmldoc
