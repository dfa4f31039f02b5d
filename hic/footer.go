package hic

/*IndexEntry : one master-index slot, pointing at a matrix region or a
normalization vector elsewhere in the file. The key is not used for routing;
the pointed-to region's own layout decides what it is.
*/
type IndexEntry struct {
	Key      string
	Position int64
	Size     int32
}

func readIndexEntry(c *cursor) (IndexEntry, error) {
	var e IndexEntry
	var err error
	if e.Key, err = c.readString(); err != nil {
		return e, err
	}
	if e.Position, err = c.readLong(); err != nil {
		return e, err
	}
	if e.Size, err = c.readInt(); err != nil {
		return e, err
	}
	return e, nil
}

// seekEntries positions the cursor on the first index entry and returns the
// entry count. The leading total-byte-count is read and discarded.
func seekEntries(c *cursor, info *FileInfo) (int32, error) {
	if err := c.seek(info.MasterOffset); err != nil {
		return 0, err
	}
	if _, err := c.readInt(); err != nil { // nBytes
		return 0, err
	}
	return c.readInt()
}

/*readFooter : walk the master index at info.MasterOffset and decode every
matrix region matching the selected resolution index. Matrix bodies live at
arbitrary offsets, so the cursor is restored after each entry before the
next one is read.
*/
func readFooter(c *cursor, info *FileInfo, resIdx int) (*records, error) {
	nEntries, err := seekEntries(c, info)
	if err != nil {
		return nil, err
	}
	out := newRecords()
	for i := int32(0); i < nEntries; i++ {
		entry, err := readIndexEntry(c)
		if err != nil {
			return nil, err
		}
		pos, err := c.pos()
		if err != nil {
			return nil, err
		}
		recs, err := readMatrix(c, entry.Position, entry.Size, info, resIdx)
		if err != nil {
			return nil, err
		}
		out.extend(recs)
		if err := c.seek(pos); err != nil {
			return nil, err
		}
	}
	return out, nil
}
