package errutil

import "errors"

// Sentinel errors for consistent error handling across the generator
var (
	// Selection errors
	ErrInvalidSelection  = errors.New("invalid selection")
	ErrEmptyProjectName  = errors.New("project name must not be empty")
	ErrUnsafeProjectName = errors.New("project name must be a single path-safe segment")

	// Composition errors
	ErrDestinationExists = errors.New("destination directory already exists")
	ErrTemplateNotFound  = errors.New("template not found")

	// Install errors
	ErrInstallFailed = errors.New("dependency install failed")
)
