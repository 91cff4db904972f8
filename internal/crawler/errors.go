package crawler

import (
	"fmt"

	"github.com/spf13/afero"
)

const (
	errorInvalidRootFormat      = "%q is not a valid folder"
	errorInvalidRootCauseFormat = "%q is not a valid folder: %v"
)

// InvalidRootError reports a root path that is missing or not a directory.
// It is raised before any traversal starts and never encoded in a Status.
type InvalidRootError struct {
	Path string
	Err  error
}

func (invalidRootError *InvalidRootError) Error() string {
	if invalidRootError.Err == nil {
		return fmt.Sprintf(errorInvalidRootFormat, invalidRootError.Path)
	}
	return fmt.Sprintf(errorInvalidRootCauseFormat, invalidRootError.Path, invalidRootError.Err)
}

// Unwrap exposes the underlying stat failure, if any.
func (invalidRootError *InvalidRootError) Unwrap() error {
	return invalidRootError.Err
}

// ValidateRoot checks that rootPath names an existing directory.
func ValidateRoot(fileSystem afero.Fs, rootPath string) error {
	isDirectory, statError := afero.IsDir(fileSystem, rootPath)
	if statError != nil {
		return &InvalidRootError{Path: rootPath, Err: statError}
	}
	if !isDirectory {
		return &InvalidRootError{Path: rootPath}
	}
	return nil
}
