package hic

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidFormat means the magic string is missing.
	ErrInvalidFormat = errors.New("not a hic format file")
	// ErrUnsupportedVersion means the file predates version 6.
	ErrUnsupportedVersion = errors.New("hic version no longer supported")
	// ErrTruncated means the file ended inside a structure.
	ErrTruncated = errors.New("truncated hic file")
	// ErrDecompression means a block body could not be inflated.
	ErrDecompression = errors.New("block decompression failed")
)

/*ResolutionNotFoundError : the requested resolution is not in the file's
resolution table. Available carries the resolutions the file does have.
*/
type ResolutionNotFoundError struct {
	Requested int
	Available []int32
}

func (e *ResolutionNotFoundError) Error() string {
	var s bytes.Buffer
	s.WriteString(fmt.Sprintf("cannot find resolution %d, available resolutions:", e.Requested))
	for _, r := range e.Available {
		s.WriteString(fmt.Sprintf(" %d", r))
	}
	return s.String()
}
