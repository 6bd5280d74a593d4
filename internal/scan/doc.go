// Package scan extracts values from text using regular expressions
// with named capture groups.
package scan
