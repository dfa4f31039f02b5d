package hic

import (
	"io"

	"github.com/nimezhu/netio"
	"github.com/pkg/errors"
)

/*cursor : positioned little-endian reader over the file. The hic index is a
forest of absolute pointers, so reads mix with absolute seeks; every short
read is fatal to the current parse.
*/
type cursor struct {
	r io.ReadSeeker
}

func newCursor(r io.ReadSeeker) *cursor {
	return &cursor{r}
}

func (c *cursor) pos() (int64, error) {
	p, err := c.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, errors.Wrap(err, "tell")
	}
	return p, nil
}

func (c *cursor) seek(offset int64) error {
	if _, err := c.r.Seek(offset, io.SeekStart); err != nil {
		return errors.Wrapf(err, "seek to %d", offset)
	}
	return nil
}

func (c *cursor) readInt() (int32, error) {
	v, err := netio.ReadInt(c.r)
	return v, truncated(err)
}

func (c *cursor) readLong() (int64, error) {
	v, err := netio.ReadLong(c.r)
	return v, truncated(err)
}

func (c *cursor) readFloat() (float32, error) {
	v, err := netio.ReadFloat32(c.r)
	return v, truncated(err)
}

func (c *cursor) readString() (string, error) {
	v, err := netio.ReadString(c.r)
	return v, truncated(err)
}

// readBytes fills a buffer of exactly n bytes from the current position.
func (c *cursor) readBytes(n int32) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(c.r, b); err != nil {
		return nil, truncated(err)
	}
	return b, nil
}

// In-memory decoding of decompressed block bodies goes through the same
// netio primitives, minus the seeking.

func readInt(r io.Reader) (int32, error) {
	v, err := netio.ReadInt(r)
	return v, truncated(err)
}

func readShort(r io.Reader) (int16, error) {
	v, err := netio.ReadShort(r)
	return int16(v), truncated(err)
}

func readByte(r io.Reader) (byte, error) {
	v, err := netio.ReadByte(r)
	return v, truncated(err)
}

func readFloat(r io.Reader) (float32, error) {
	v, err := netio.ReadFloat32(r)
	return v, truncated(err)
}

func truncated(err error) error {
	if err == nil {
		return nil
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.Wrap(ErrTruncated, err.Error())
	}
	return err
}
