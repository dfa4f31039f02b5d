package hic

import (
	"io"
	"strings"

	"github.com/nimezhu/netio"
	"github.com/pkg/errors"
)

/*Result : all intra-chromosome contacts of one resolution, as four parallel
columns plus the chromosome name table the ids index into. Bin values are in
bin units; multiply by Resolution for base-pair coordinates.
*/
type Result struct {
	ChromosomeID []int32
	Bin1         []int32
	Bin2         []int32
	Count        []float32
	Chromosomes  []string
	Resolution   int
}

// Len returns the number of decoded contact records.
func (r *Result) Len() int {
	return len(r.Count)
}

/* handle chr1 Chr1 CHR1 and 1 as same one */
func (r *Result) ChromosomeIndex(chr string) int {
	b := strings.Replace(strings.ToLower(chr), "chr", "", -1)
	for i, v := range r.Chromosomes {
		a := strings.Replace(strings.ToLower(v), "chr", "", -1)
		if a == b {
			return i
		}
	}
	return -1
}

/*Parse : decode every intra-chromosome contact stored at the given
resolution. The parse is one sequential pass with absolute seeks; any
failure aborts with no partial result. If the resolution is not in the
file's resolution table the master index is never dereferenced and the
error carries the available resolutions.
*/
func Parse(r io.ReadSeeker, resolution int) (*Result, error) {
	c := newCursor(r)
	info, err := readHeader(c)
	if err != nil {
		return nil, err
	}
	resIdx := info.ResolutionIndex(resolution)
	if resIdx == -1 {
		return nil, &ResolutionNotFoundError{resolution, info.Resolutions}
	}
	recs, err := readFooter(c, info, resIdx)
	if err != nil {
		return nil, err
	}
	return finalize(info, recs, resolution), nil
}

// Dump opens uri (a local path or http(s) URL) and parses it.
func Dump(uri string, resolution int) (*Result, error) {
	r, err := netio.NewReadSeeker(uri)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", uri)
	}
	return Parse(r, resolution)
}

// ReadInfo parses the header only.
func ReadInfo(r io.ReadSeeker) (*FileInfo, error) {
	return readHeader(newCursor(r))
}

// ReadEntries lists the master-index entries without decoding any of them.
func ReadEntries(r io.ReadSeeker, info *FileInfo) ([]IndexEntry, error) {
	c := newCursor(r)
	nEntries, err := seekEntries(c, info)
	if err != nil {
		return nil, err
	}
	entries := make([]IndexEntry, nEntries)
	for i := int32(0); i < nEntries; i++ {
		if entries[i], err = readIndexEntry(c); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// finalize rebases chromosome ids onto the post-filter name table. When the
// first chromosome is the synthetic genome-wide aggregate, ids shift down by
// one and the aggregate is dropped from the labels.
func finalize(info *FileInfo, recs *records, resolution int) *Result {
	names := make([]string, 0, len(info.Chromosomes))
	for _, chr := range info.Chromosomes {
		names = append(names, chr.Name)
	}
	if info.FirstChromosomeIsAll {
		names = names[1:]
		for i := range recs.chromosome {
			recs.chromosome[i]--
		}
	}
	return &Result{
		ChromosomeID: recs.chromosome,
		Bin1:         recs.bin1,
		Bin2:         recs.bin2,
		Count:        recs.count,
		Chromosomes:  names,
		Resolution:   resolution,
	}
}
