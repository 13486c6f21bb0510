package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row/document.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateSlug is returned when creating or updating an article
	// would reuse an existing slug.
	ErrDuplicateSlug = errors.New("article with this slug already exists")
)
