// Package includefix rewrites include directives in firmware sources in place.
//
// Ownership boundary:
// - fix map shape and the built-in default table
// - per-file pattern substitution and overwrite
// - per-file status lines (fixed / not found)
//
// Files are overwritten without a backup.
package includefix
