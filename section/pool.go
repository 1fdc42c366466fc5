package section

import (
	"bytes"
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/arloliu/libloc/errs"
)

// StringPool resolves 32-bit byte offsets into a segment of NUL-terminated
// UTF-8 strings.
//
// Resolved strings alias the pool bytes directly without copying, so they
// must not outlive the mapping backing the pool.
type StringPool struct {
	data []byte
}

// NewStringPool wraps the pool segment bytes.
func NewStringPool(data []byte) StringPool {
	return StringPool{data: data}
}

// Resolve returns the string starting at the given pool offset.
//
// Parameters:
//   - offset: Byte offset into the pool segment
//
// Returns:
//   - string: Zero-copy view of the bytes up to the terminating NUL
//   - error: errs.ErrPoolOutOfBounds, errs.ErrPoolUnterminated or errs.ErrPoolBadUTF8
func (p StringPool) Resolve(offset uint32) (string, error) {
	if uint64(offset) >= uint64(len(p.data)) {
		return "", fmt.Errorf("%w: offset %d, pool size %d", errs.ErrPoolOutOfBounds, offset, len(p.data))
	}

	tail := p.data[offset:]
	end := bytes.IndexByte(tail, 0)
	if end < 0 {
		return "", fmt.Errorf("%w: offset %d", errs.ErrPoolUnterminated, offset)
	}
	if end == 0 {
		return "", nil
	}

	s := tail[:end]
	if !utf8.Valid(s) {
		return "", fmt.Errorf("%w: offset %d", errs.ErrPoolBadUTF8, offset)
	}

	return unsafe.String(unsafe.SliceData(s), len(s)), nil
}
