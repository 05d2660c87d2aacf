package custom_errors

import "errors"

// Not found: a directly requested entity does not exist.
var (
	ErrPostNotFound     = errors.New("post not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrTagNotFound      = errors.New("tag not found")
	ErrUserNotFound     = errors.New("user not found")
)

// Conflict: a uniqueness rule or protective invariant blocks the mutation.
var (
	ErrCategoryAlreadyExists = errors.New("category already exists")
	ErrCategoryHasPosts      = errors.New("category has associated posts")
	ErrTagAlreadyExists      = errors.New("tag already exists")
)

// Validation: a write references nonexistent entities or carries
// structurally invalid data.
var (
	ErrPostValidation = errors.New("post validation failed")
	ErrInvalidInput   = errors.New("invalid input")
)

// Infrastructure failures surfaced to the caller as internal errors.
var (
	ErrDatabaseQuery = errors.New("database query error")
	ErrDatabaseScan  = errors.New("database scan error")
	ErrNoUpdateRows  = errors.New("no fields to update")
)
