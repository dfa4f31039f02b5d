package hic

import (
	"bytes"
	"compress/zlib"
	"io"
	"io/ioutil"
	"math"

	"github.com/pkg/errors"
)

// Dense blocks mark absent cells with reserved bit patterns.
const (
	shortSentinel    = -32768
	floatSentinelBit = 0x7fc00000
)

/*valueWidth : width of a stored count. The wire flag is inverted (a zero
byte selects the 2-byte short), so it is mapped to this enum right after
reading and the inversion never leaves the decoder.
*/
type valueWidth int

const (
	narrowWidth valueWidth = iota // 2-byte signed short
	wideWidth                     // 4-byte float
)

func readCount(r io.Reader, width valueWidth) (float32, error) {
	if width == narrowWidth {
		v, err := readShort(r)
		return float32(v), err
	}
	return readFloat(r)
}

/*readBlock : inflate the block body at position and decode its contact
records. Zero-size blocks are valid and carry no records. The record layout
depends on the file version; version 7 introduced the offset/width/type
block header with two packings, list-of-rows and dense-with-stride.
*/
func readBlock(c *cursor, position int64, size int32, chr int32, version int32) (*records, error) {
	out := newRecords()
	if size <= 0 {
		return out, nil
	}
	if err := c.seek(position); err != nil {
		return nil, err
	}
	compressed, err := c.readBytes(size)
	if err != nil {
		return nil, err
	}
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, errors.Wrap(ErrDecompression, err.Error())
	}
	defer zr.Close()
	body, err := ioutil.ReadAll(zr)
	if err != nil {
		return nil, errors.Wrap(ErrDecompression, err.Error())
	}
	br := bytes.NewReader(body)
	total, err := readInt(br)
	if err != nil {
		return nil, err
	}
	if version < 7 {
		for i := int32(0); i < total; i++ {
			binX, err := readInt(br)
			if err != nil {
				return nil, err
			}
			binY, err := readInt(br)
			if err != nil {
				return nil, err
			}
			count, err := readFloat(br)
			if err != nil {
				return nil, err
			}
			out.append(chr, binX, binY, count)
		}
		return out, nil
	}
	binXOffset, err := readInt(br)
	if err != nil {
		return nil, err
	}
	binYOffset, err := readInt(br)
	if err != nil {
		return nil, err
	}
	short, err := readByte(br)
	if err != nil {
		return nil, err
	}
	width := wideWidth
	if short == 0 { // yes, zero selects the short width
		width = narrowWidth
	}
	blockType, err := readByte(br)
	if err != nil {
		return nil, err
	}
	switch blockType {
	case 1: // list of rows
		rowCount, err := readShort(br)
		if err != nil {
			return nil, err
		}
		for i := int16(0); i < rowCount; i++ {
			y, err := readShort(br)
			if err != nil {
				return nil, err
			}
			binY := binYOffset + int32(y)
			colCount, err := readShort(br)
			if err != nil {
				return nil, err
			}
			for j := int16(0); j < colCount; j++ {
				x, err := readShort(br)
				if err != nil {
					return nil, err
				}
				count, err := readCount(br, width)
				if err != nil {
					return nil, err
				}
				out.append(chr, binXOffset+int32(x), binY, count)
			}
		}
	case 2: // dense grid with row stride
		nPts, err := readInt(br)
		if err != nil {
			return nil, err
		}
		w, err := readShort(br)
		if err != nil {
			return nil, err
		}
		if nPts > 0 && w <= 0 {
			return nil, errors.Wrapf(ErrInvalidFormat, "dense block stride %d", w)
		}
		for i := int32(0); i < nPts; i++ {
			row := i / int32(w)
			col := i - row*int32(w)
			if width == narrowWidth {
				v, err := readShort(br)
				if err != nil {
					return nil, err
				}
				if v == shortSentinel {
					continue
				}
				out.append(chr, binXOffset+col, binYOffset+row, float32(v))
			} else {
				v, err := readFloat(br)
				if err != nil {
					return nil, err
				}
				if math.Float32bits(v) == floatSentinelBit {
					continue
				}
				out.append(chr, binXOffset+col, binYOffset+row, v)
			}
		}
	}
	// other representation types carry no records
	return out, nil
}
