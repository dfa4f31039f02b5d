package hic

import (
	"bytes"
	"fmt"

	"github.com/gonum/matrix/mat64"
	"github.com/pkg/errors"
)

const maxCells = 100000000 //10000*10000

/*DenseView : assemble the [lo,hi) bin window of one chromosome into a dense
symmetric matrix. chr indexes the post-filter chromosome table. Records are
stored upper-triangular, so each off-diagonal entry is mirrored.
*/
func DenseView(res *Result, chr int, lo int, hi int) (mat64.Matrix, error) {
	if hi <= lo {
		return nil, errors.Errorf("empty bin window %d-%d", lo, hi)
	}
	n := hi - lo
	if n*n > maxCells {
		return nil, errors.Errorf("bin window %d-%d too large", lo, hi)
	}
	m := mat64.NewDense(n, n, make([]float64, n*n))
	for i := range res.ChromosomeID {
		if int(res.ChromosomeID[i]) != chr {
			continue
		}
		x := int(res.Bin1[i]) - lo
		y := int(res.Bin2[i]) - lo
		if x < 0 || x >= n || y < 0 || y >= n {
			continue
		}
		m.Set(x, y, float64(res.Count[i]))
		m.Set(y, x, float64(res.Count[i]))
	}
	return m, nil
}

/*BinProfile : per-bin contact sums over the [lo,hi) bin window of one
chromosome. Each record contributes to both of its bins.
*/
func BinProfile(res *Result, chr int, lo int, hi int) []float64 {
	profile := make([]float64, hi-lo)
	for i := range res.ChromosomeID {
		if int(res.ChromosomeID[i]) != chr {
			continue
		}
		x := int(res.Bin1[i]) - lo
		y := int(res.Bin2[i]) - lo
		v := float64(res.Count[i])
		if x >= 0 && x < len(profile) {
			profile[x] += v
		}
		if y >= 0 && y < len(profile) && y != x {
			profile[y] += v
		}
	}
	return profile
}

// SprintMatrix renders a matrix as tab-separated rows.
func SprintMatrix(t mat64.Matrix) string {
	r, c := t.Dims()
	var buffer bytes.Buffer
	for i := 0; i < r; i++ {
		buffer.WriteString(fmt.Sprintf("%.2f", t.At(i, 0)))
		for j := 1; j < c; j++ {
			buffer.WriteString(fmt.Sprintf("\t%.2f", t.At(i, j)))
		}
		buffer.WriteString("\n")
	}
	return buffer.String()
}
