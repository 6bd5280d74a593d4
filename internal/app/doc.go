// Package app wires stores and services into the dependency graph the
// CLI commands run against, and loads the docsift.yaml config.
package app
