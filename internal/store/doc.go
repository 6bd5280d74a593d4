// Package store persists extraction runs on disk: one JSON artifact
// per run, a JSONL index for listing, and BLAKE2b digests of source
// files for change detection. Writes go through a temp file then
// rename.
package store
