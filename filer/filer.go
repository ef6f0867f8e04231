// Package filer is an interface used by the rollerr package for all
// file-system procedures. You may override this to gain more control of
// operations in your app, or to simulate failures in tests.
package filer

//go:generate mockgen -destination=../mocks/filer.go -package=mocks golift.io/rollerr/filer Filer
//go:generate mockgen -destination=../mocks/fileinfo.go -package=mocks os FileInfo

import (
	"fmt"
	"os"
	"time"
)

// Filer is used to override file-managing procedures.
type Filer interface {
	Remove(fileName string) error
	Rename(fileName, newPath string) error
	ReadDir(dirPath string) ([]os.DirEntry, error)
	MkdirAll(path string, perm os.FileMode) error
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	Stat(fileName string) (*FileInfo, error)
	StatFile(file *os.File) (*FileInfo, error)
}

// Default returns a Filer interface that works, using default procedures.
func Default() Filer {
	return &File{}
}

// FileInfo contains normal os.FileInfo + file creation time.
// A zero CreateTime means the platform or filesystem did not report one.
type FileInfo struct {
	os.FileInfo
	CreateTime time.Time
}

// File can be embedded in a custom type to provide the missing methods for the Filer interface.
type File struct{}

// Remove provides os.Remove.
func (f *File) Remove(fileName string) error {
	return os.Remove(fileName)
}

// Rename provides os.Rename.
func (f *File) Rename(fileName, newPath string) error {
	return os.Rename(fileName, newPath)
}

// ReadDir provides os.ReadDir.
func (f *File) ReadDir(dirPath string) ([]os.DirEntry, error) {
	return os.ReadDir(dirPath)
}

// MkdirAll provides os.MkdirAll.
func (f *File) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// OpenFile provides os.OpenFile.
func (f *File) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// Stat provides custom file stats that wrap os.Stat output.
func (f *File) Stat(fileName string) (*FileInfo, error) {
	info, err := os.Stat(fileName)
	if err != nil {
		return nil, fmt.Errorf("stat err: %w", err)
	}

	return &FileInfo{FileInfo: info, CreateTime: createTime(info)}, nil
}

// StatFile is like Stat, except it stats an open file handle. Use this when
// the path on disk may have changed underneath the handle.
func (f *File) StatFile(file *os.File) (*FileInfo, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat err: %w", err)
	}

	return &FileInfo{FileInfo: info, CreateTime: createTime(info)}, nil
}
