// Package mmap provides a read-only memory mapping of a file, with a plain
// read fallback on platforms without mmap support.
package mmap

import "os"

// File is an open, read-only view of a file's bytes.
//
// On unix platforms the bytes alias a shared read-only mapping; elsewhere the
// file is read into memory on Open. Either way the view is immutable and
// remains valid until Close.
type File struct {
	data   []byte
	mapped bool
}

// Open maps the file at path read-only.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := st.Size()
	if size == 0 {
		// mmapping an empty file fails with EINVAL; an empty view is fine,
		// header validation rejects it.
		return &File{}, nil
	}
	if int64(int(size)) != size {
		return nil, errTooLarge(path)
	}

	return openMapping(f, int(size))
}

// Bytes returns the file contents. The slice must not be written to and must
// not be used after Close.
func (f *File) Bytes() []byte {
	return f.data
}

// Len returns the file size in bytes.
func (f *File) Len() int {
	return len(f.data)
}

// Close releases the mapping. It is safe to call more than once; after the
// first call every slice obtained from Bytes is invalid.
func (f *File) Close() error {
	data := f.data
	f.data = nil
	if !f.mapped || data == nil {
		return nil
	}
	f.mapped = false

	return munmap(data)
}

func errTooLarge(path string) error {
	return &os.PathError{Op: "mmap", Path: path, Err: errFileTooLarge}
}
