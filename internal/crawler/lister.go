package crawler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	errorReadDirectoryFormat = "reading directory %s: %w"
	errorNotDirectoryFormat  = "%s is not a directory"
)

// Listing holds the immediate children of one directory, partitioned by kind
// and kept in the order the filesystem returned them.
type Listing struct {
	Directories []string
	Files       []string
}

// Lister enumerates the immediate children of a directory path. An error means
// the path could not be listed; the crawler treats such a node as childless.
type Lister interface {
	List(path string) (Listing, error)
}

// ListerFunc adapts a function into a Lister.
type ListerFunc func(path string) (Listing, error)

// List invokes the underlying function.
func (listerFunc ListerFunc) List(path string) (Listing, error) {
	return listerFunc(path)
}

// FilesystemLister lists directories of an afero filesystem.
type FilesystemLister struct {
	fileSystem afero.Fs
}

// NewFilesystemLister returns a lister backed by the provided filesystem.
func NewFilesystemLister(fileSystem afero.Fs) *FilesystemLister {
	return &FilesystemLister{fileSystem: fileSystem}
}

// NewOSLister returns a lister backed by the host operating system.
func NewOSLister() *FilesystemLister {
	return NewFilesystemLister(afero.NewOsFs())
}

// List returns the subdirectory and file names of path. Symbolic links are
// classified by their target; a link that cannot be resolved is a file.
func (lister *FilesystemLister) List(path string) (Listing, error) {
	info, statError := lister.fileSystem.Stat(path)
	if statError != nil {
		return Listing{}, fmt.Errorf(errorReadDirectoryFormat, path, statError)
	}
	if !info.IsDir() {
		return Listing{}, fmt.Errorf(errorNotDirectoryFormat, path)
	}

	entries, readError := afero.ReadDir(lister.fileSystem, path)
	if readError != nil {
		return Listing{}, fmt.Errorf(errorReadDirectoryFormat, path, readError)
	}

	var listing Listing
	for _, entry := range entries {
		if lister.isDirectory(path, entry) {
			listing.Directories = append(listing.Directories, entry.Name())
		} else {
			listing.Files = append(listing.Files, entry.Name())
		}
	}
	return listing, nil
}

func (lister *FilesystemLister) isDirectory(parentPath string, entry os.FileInfo) bool {
	if entry.Mode()&os.ModeSymlink == 0 {
		return entry.IsDir()
	}
	targetInfo, statError := lister.fileSystem.Stat(filepath.Join(parentPath, entry.Name()))
	if statError != nil {
		return false
	}
	return targetInfo.IsDir()
}

var _ Lister = (*FilesystemLister)(nil)
