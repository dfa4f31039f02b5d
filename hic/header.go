package hic

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const magic = "HIC"

type Chromosome struct {
	Name   string
	Length int32
}

/*FileInfo : everything the header declares. Built once by a forward scan;
all later structures are reached by absolute seeks from MasterOffset.
*/
type FileInfo struct {
	Version              int32
	MasterOffset         int64
	Genome               string
	Attributes           map[string]string
	Chromosomes          []Chromosome
	Resolutions          []int32
	FirstChromosomeIsAll bool
}

/*ResolutionIndex : index into Resolutions whose value equals the requested
bin size, or -1. First match wins.
*/
func (info *FileInfo) ResolutionIndex(resolution int) int {
	for i, r := range info.Resolutions {
		if int(r) == resolution {
			return i
		}
	}
	return -1
}

func (info *FileInfo) String() string {
	var s bytes.Buffer
	s.WriteString(fmt.Sprintf("Version: %d\n", info.Version))
	s.WriteString(fmt.Sprintf("Genome: %s\n", info.Genome))
	s.WriteString(fmt.Sprintf("Chromosome Number: %d\n", len(info.Chromosomes)))
	for _, chr := range info.Chromosomes {
		s.WriteString(fmt.Sprintf("\t%s\t%d\n", chr.Name, chr.Length))
	}
	s.WriteString(fmt.Sprintf("Basepair Resolutions Number: %d\n", len(info.Resolutions)))
	s.WriteString(fmt.Sprintln(info.Resolutions))
	return s.String()
}

func readHeader(c *cursor) (*FileInfo, error) {
	head, err := c.readString()
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(head, magic) {
		return nil, errors.Wrap(ErrInvalidFormat, "magic string is missing")
	}
	info := &FileInfo{}
	if info.Version, err = c.readInt(); err != nil {
		return nil, err
	}
	if info.Version < 6 {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "version %d", info.Version)
	}
	if info.MasterOffset, err = c.readLong(); err != nil {
		return nil, err
	}
	if info.Genome, err = c.readString(); err != nil {
		return nil, err
	}
	nAttr, err := c.readInt()
	if err != nil {
		return nil, err
	}
	info.Attributes = make(map[string]string)
	for i := int32(0); i < nAttr; i++ {
		key, err := c.readString()
		if err != nil {
			return nil, err
		}
		value, err := c.readString()
		if err != nil {
			return nil, err
		}
		info.Attributes[key] = value
	}
	nChrs, err := c.readInt()
	if err != nil {
		return nil, err
	}
	info.Chromosomes = make([]Chromosome, nChrs)
	for i := int32(0); i < nChrs; i++ {
		name, err := c.readString()
		if err != nil {
			return nil, err
		}
		length, err := c.readInt()
		if err != nil {
			return nil, err
		}
		info.Chromosomes[i] = Chromosome{name, length}
	}
	nRes, err := c.readInt()
	if err != nil {
		return nil, err
	}
	info.Resolutions = make([]int32, nRes)
	for i := int32(0); i < nRes; i++ {
		if info.Resolutions[i], err = c.readInt(); err != nil {
			return nil, err
		}
	}
	if len(info.Chromosomes) > 0 {
		name := info.Chromosomes[0].Name
		info.FirstChromosomeIsAll = name == "ALL" || name == "All"
	}
	return info, nil
}
