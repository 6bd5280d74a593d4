// Package pathutil provides file-path string surgery (extension and
// stem rewriting) and filesystem matching with typed errors.
package pathutil
