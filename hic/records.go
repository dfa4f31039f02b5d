package hic

/*records : four parallel growable columns forming the sparse matrix output.
Each reader stage appends to its own records value; callers concatenate.
*/
type records struct {
	chromosome []int32
	bin1       []int32
	bin2       []int32
	count      []float32
}

func newRecords() *records {
	return &records{}
}

func (r *records) append(chr, bin1, bin2 int32, count float32) {
	r.chromosome = append(r.chromosome, chr)
	r.bin1 = append(r.bin1, bin1)
	r.bin2 = append(r.bin2, bin2)
	r.count = append(r.count, count)
}

func (r *records) extend(o *records) {
	if o == nil {
		return
	}
	r.chromosome = append(r.chromosome, o.chromosome...)
	r.bin1 = append(r.bin1, o.bin1...)
	r.bin2 = append(r.bin2, o.bin2...)
	r.count = append(r.count, o.count...)
}

func (r *records) len() int {
	return len(r.count)
}
