// Package filesystem ingests text files from a watched directory into
// the document collection. Files become documents (title from the file
// name, content from the file bytes); edits update the document and
// removals delete it.
package filesystem
