package filesystem

import (
	"io"
	"os"
)

// GacheFs routes gache persistence through the swappable backend, so tests
// running on SetMemMapFs never touch the real history file.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
