package domain

import "time"

// Document represents a stored text document with metadata.
// It is the canonical representation owned by the document store.
type Document struct {
	// ID is the unique identifier, assigned at creation and stable
	// across updates.
	ID string

	// Title is the human-readable title.
	Title string

	// Content is the full source text the analyzers run against.
	Content string

	// Author is the optional document author.
	Author string

	// Category is the optional document category.
	Category string

	// Tags is an ordered list of free-form labels, possibly empty.
	Tags []string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the document was added. Never changes.
	CreatedAt time.Time

	// UpdatedAt is refreshed on every mutation.
	UpdatedAt time.Time
}

// DocumentUpdate carries partial fields for an update operation.
// Nil pointers and nil slices/maps leave the existing value untouched.
type DocumentUpdate struct {
	Title    *string
	Content  *string
	Author   *string
	Category *string
	Tags     []string
	Metadata map[string]any
}

// Apply merges the update over doc, returning a new snapshot.
// The ID and CreatedAt of doc are preserved; UpdatedAt is not set here,
// that is the store's responsibility.
func (u DocumentUpdate) Apply(doc Document) Document {
	if u.Title != nil {
		doc.Title = *u.Title
	}
	if u.Content != nil {
		doc.Content = *u.Content
	}
	if u.Author != nil {
		doc.Author = *u.Author
	}
	if u.Category != nil {
		doc.Category = *u.Category
	}
	if u.Tags != nil {
		doc.Tags = u.Tags
	}
	if u.Metadata != nil {
		doc.Metadata = u.Metadata
	}
	return doc
}
