package hic

import (
	"bytes"
	"compress/zlib"
	"testing"

	"github.com/nimezhu/netio"
	"github.com/stretchr/testify/require"
)

// Builders for synthetic hic files, written the same way the format is read:
// little-endian fixed-width values and null-terminated strings.

type synthDir struct {
	resIdx int32
	blocks [][]byte // compressed block bodies
}

type synthMatrix struct {
	key  string
	chr1 int32
	chr2 int32
	dirs []synthDir
}

type synthFile struct {
	version     int32
	genome      string
	attributes  [][2]string
	chromosomes []Chromosome
	resolutions []int32
	matrices    []synthMatrix
	reverse     bool // write footer entries in reverse order
}

func mustWrite(t *testing.T, w *bytes.Buffer, vs ...interface{}) {
	t.Helper()
	for _, v := range vs {
		if s, ok := v.(string); ok {
			netio.WriteString(w, s)
			continue
		}
		netio.Write(w, v)
	}
}

func (f *synthFile) header(t *testing.T, master int64) []byte {
	var b bytes.Buffer
	mustWrite(t, &b, "HIC", f.version, master, f.genome, int32(len(f.attributes)))
	for _, kv := range f.attributes {
		mustWrite(t, &b, kv[0], kv[1])
	}
	mustWrite(t, &b, int32(len(f.chromosomes)))
	for _, chr := range f.chromosomes {
		mustWrite(t, &b, chr.Name, chr.Length)
	}
	mustWrite(t, &b, int32(len(f.resolutions)))
	for _, r := range f.resolutions {
		mustWrite(t, &b, r)
	}
	return b.Bytes()
}

func (f *synthFile) build(t *testing.T) []byte {
	t.Helper()
	headerLen := int64(len(f.header(t, 0)))

	// block bodies first, then matrix regions, then the footer
	var blockPos [][]int64
	var blocks bytes.Buffer
	for _, m := range f.matrices {
		var perMatrix []int64
		for _, d := range m.dirs {
			for _, body := range d.blocks {
				perMatrix = append(perMatrix, headerLen+int64(blocks.Len()))
				blocks.Write(body)
			}
		}
		blockPos = append(blockPos, perMatrix)
	}

	matrixStart := headerLen + int64(blocks.Len())
	var matrixPos []int64
	var regions bytes.Buffer
	for mi, m := range f.matrices {
		matrixPos = append(matrixPos, matrixStart+int64(regions.Len()))
		mustWrite(t, &regions, m.chr1, m.chr2, int32(len(m.dirs)))
		bi := 0
		for _, d := range m.dirs {
			mustWrite(t, &regions, "BP", d.resIdx,
				float32(0), float32(0), float32(0), float32(0),
				f.resolutions[d.resIdx], int32(100), int32(10), int32(len(d.blocks)))
			for _, body := range d.blocks {
				mustWrite(t, &regions, int32(bi), blockPos[mi][bi], int32(len(body)))
				bi++
			}
		}
	}

	master := matrixStart + int64(regions.Len())
	var footer bytes.Buffer
	mustWrite(t, &footer, int32(0), int32(len(f.matrices)))
	for i := range f.matrices {
		j := i
		if f.reverse {
			j = len(f.matrices) - 1 - i
		}
		mustWrite(t, &footer, f.matrices[j].key, matrixPos[j], int32(regions.Len()))
	}

	var file bytes.Buffer
	file.Write(f.header(t, master))
	file.Write(blocks.Bytes())
	file.Write(regions.Bytes())
	file.Write(footer.Bytes())
	return file.Bytes()
}

func deflate(t *testing.T, raw []byte) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := zlib.NewWriter(&b)
	_, err := zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return b.Bytes()
}

type triple struct {
	x, y  int32
	count float32
}

// blockV6 encodes plain int/int/float triples (pre version 7 layout).
func blockV6(t *testing.T, triples []triple) []byte {
	var b bytes.Buffer
	mustWrite(t, &b, int32(len(triples)))
	for _, p := range triples {
		mustWrite(t, &b, p.x, p.y, p.count)
	}
	return deflate(t, b.Bytes())
}

type synthRow struct {
	y    int16
	cols []synthCol
}

type synthCol struct {
	x     int16
	count float32
}

// blockRows encodes the version 7 list-of-rows packing. A zero width byte
// selects the 2-byte short counts.
func blockRows(t *testing.T, xOff, yOff int32, short bool, rows []synthRow) []byte {
	var b bytes.Buffer
	total := int32(0)
	for _, r := range rows {
		total += int32(len(r.cols))
	}
	widthFlag := byte(1)
	if short {
		widthFlag = 0
	}
	mustWrite(t, &b, total, xOff, yOff, widthFlag, byte(1), int16(len(rows)))
	for _, r := range rows {
		mustWrite(t, &b, r.y, int16(len(r.cols)))
		for _, c := range r.cols {
			if short {
				mustWrite(t, &b, c.x, int16(c.count))
			} else {
				mustWrite(t, &b, c.x, c.count)
			}
		}
	}
	return deflate(t, b.Bytes())
}

// blockDenseShort encodes the version 7 dense packing with short counts.
func blockDenseShort(t *testing.T, xOff, yOff int32, w int16, values []int16) []byte {
	var b bytes.Buffer
	mustWrite(t, &b, int32(len(values)), xOff, yOff, byte(0), byte(2), int32(len(values)), w)
	for _, v := range values {
		mustWrite(t, &b, v)
	}
	return deflate(t, b.Bytes())
}

// blockDenseFloat encodes the version 7 dense packing with float counts.
func blockDenseFloat(t *testing.T, xOff, yOff int32, w int16, values []float32) []byte {
	var b bytes.Buffer
	mustWrite(t, &b, int32(len(values)), xOff, yOff, byte(1), byte(2), int32(len(values)), w)
	for _, v := range values {
		mustWrite(t, &b, v)
	}
	return deflate(t, b.Bytes())
}

type contact struct {
	chr        int32
	bin1, bin2 int32
	count      float32
}

func contacts(res *Result) []contact {
	out := make([]contact, res.Len())
	for i := range out {
		out[i] = contact{res.ChromosomeID[i], res.Bin1[i], res.Bin2[i], res.Count[i]}
	}
	return out
}
