//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

var errFileTooLarge = unix.EFBIG

func openMapping(f *os.File, size int) (*File, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, &os.PathError{Op: "mmap", Path: f.Name(), Err: err}
	}

	// Lookups touch the node segment in data-dependent order.
	// Advice is best effort, failure changes nothing.
	_ = unix.Madvise(data, unix.MADV_RANDOM)

	return &File{data: data, mapped: true}, nil
}

func munmap(data []byte) error {
	return unix.Munmap(data)
}
