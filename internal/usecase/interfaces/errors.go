package interfaces

import "errors"

// ErrConflict is returned by repositories when a conditional write loses against the
// stored state (a uniqueness guard already exists or a status already moved on).
var ErrConflict = errors.New("store conflict")

// ErrChecklistTemplateNotFound is returned when a stored checklist references a template
// that cannot be loaded.
var ErrChecklistTemplateNotFound = errors.New("checklist template not found")
