// Package commands defines the docsift CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - paths    Path surgery and globbing (glob, stem, ext, with-ext, rm)
//   - grep     Extract named regex groups from files
//   - csv      Inspect delimited files (head, columns)
//   - json     JSONPath lookup in JSON files
//   - yaml     JSONPath lookup in YAML files
//   - xml      Element-tree queries in XML files (find, attr)
//   - html     Tag/attribute extraction from HTML (links, select, tags)
//   - extract  Run a YAML rule file over sources and store the run
//   - runs     List and show stored extraction runs
//
// # Implementation
//
// The root command loads docsift.yaml, sets up logging, and builds the
// dependency graph (run store, inspect service) before any subcommand
// runs, so handlers share one app context.
package commands
