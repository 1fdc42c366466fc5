//go:build !unix

package mmap

import (
	"errors"
	"io"
	"os"
)

var errFileTooLarge = errors.New("file too large to map")

func openMapping(f *os.File, size int) (*File, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, err
	}

	return &File{data: data}, nil
}

func munmap(data []byte) error {
	return nil
}
