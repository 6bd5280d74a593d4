// Package yamldoc decodes YAML into navigable documents sharing the
// JSONPath lookup dialect of package jsondoc.
package yamldoc
