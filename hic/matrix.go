package hic

type blockPointer struct {
	id       int32
	position int64
	size     int32
}

/*readMatrix : decode one matrix region. Only diagonal (intra-chromosome)
regions are decoded, and the synthetic genome-wide aggregate at chromosome 0
is skipped. Every resolution directory is fully consumed to keep the cursor
aligned, but only the directory matching the selected resolution index has
its blocks read.
*/
func readMatrix(c *cursor, start int64, size int32, info *FileInfo, resIdx int) (*records, error) {
	out := newRecords()
	if start == -1 { // pointer never set, e.g. normalization-only slots
		return out, nil
	}
	if err := c.seek(start); err != nil {
		return nil, err
	}
	chr1, err := c.readInt()
	if err != nil {
		return nil, err
	}
	chr2, err := c.readInt()
	if err != nil {
		return nil, err
	}
	if chr1 != chr2 {
		return out, nil
	}
	if info.FirstChromosomeIsAll && chr1 == 0 {
		return out, nil
	}
	nRes, err := c.readInt()
	if err != nil {
		return nil, err
	}
	for i := int32(0); i < nRes; i++ {
		if _, err := c.readString(); err != nil { // unit
			return nil, err
		}
		dirResIdx, err := c.readInt()
		if err != nil {
			return nil, err
		}
		// sumCounts, occupiedCellCount, stdDev, percent95
		for j := 0; j < 4; j++ {
			if _, err := c.readFloat(); err != nil {
				return nil, err
			}
		}
		// binSize, blockBinCount, blockColumnCount
		for j := 0; j < 3; j++ {
			if _, err := c.readInt(); err != nil {
				return nil, err
			}
		}
		blockCount, err := c.readInt()
		if err != nil {
			return nil, err
		}
		pointers := make([]blockPointer, blockCount)
		for j := int32(0); j < blockCount; j++ {
			id, err := c.readInt()
			if err != nil {
				return nil, err
			}
			position, err := c.readLong()
			if err != nil {
				return nil, err
			}
			blockSize, err := c.readInt()
			if err != nil {
				return nil, err
			}
			pointers[j] = blockPointer{id, position, blockSize}
		}
		if int(dirResIdx) != resIdx {
			continue
		}
		// block bodies live elsewhere in the file, so remember where the
		// directory walk stopped and come back for the next directory
		pos, err := c.pos()
		if err != nil {
			return nil, err
		}
		for _, p := range pointers {
			recs, err := readBlock(c, p.position, p.size, chr1, info.Version)
			if err != nil {
				return nil, err
			}
			out.extend(recs)
		}
		if err := c.seek(pos); err != nil {
			return nil, err
		}
	}
	return out, nil
}
