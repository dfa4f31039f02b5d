package hic

import (
	"encoding/binary"
	"io"

	"github.com/nimezhu/netio"
	"github.com/pkg/errors"
)

// Magic is the little-endian "HIC\0" prefix of a hic file.
const Magic = 0x00434948

/*Sniff : cheap format check on the first four bytes of uri, before any
parsing. uri may be a local path or an http(s) URL.
*/
func Sniff(uri string) (bool, error) {
	f, err := netio.NewReadSeeker(uri)
	if err != nil {
		return false, errors.Wrapf(err, "open %s", uri)
	}
	p := make([]byte, 4)
	if _, err := io.ReadFull(f, p); err != nil {
		return false, truncated(err)
	}
	return binary.LittleEndian.Uint32(p) == Magic, nil
}
