package cmd

import (
	"fmt"

	"github.com/chbk/hicdump/hic"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	matrixResolution int
	matrixChr        string
	matrixStart      int
	matrixEnd        int
)

func init() {
	matrixCmd.Flags().IntVarP(&matrixResolution, "resolution", "r", 0, "bin size in base pairs")
	matrixCmd.Flags().StringVarP(&matrixChr, "chr", "c", "", "chromosome name")
	matrixCmd.Flags().IntVarP(&matrixStart, "start", "s", 0, "window start in base pairs")
	matrixCmd.Flags().IntVarP(&matrixEnd, "end", "e", 0, "window end in base pairs")
	matrixCmd.MarkFlagRequired("resolution")
	matrixCmd.MarkFlagRequired("chr")
	matrixCmd.MarkFlagRequired("end")
	rootCmd.AddCommand(matrixCmd)
}

var matrixCmd = &cobra.Command{
	Use:   "matrix <file>",
	Short: "Print a dense contact matrix window",
	Long:  `Assembles the contacts of one chromosome window into a dense symmetric matrix and prints it as tab-separated rows.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res := openResult(args[0], matrixResolution)
		chr := res.ChromosomeIndex(matrixChr)
		if chr == -1 {
			log.Fatalf("chromosome %v not found", matrixChr)
		}
		lo := matrixStart / matrixResolution
		hi := (matrixEnd-1)/matrixResolution + 1
		m, err := hic.DenseView(res, chr, lo, hi)
		if err != nil {
			log.Fatalf("cannot build matrix window: %v", err)
		}
		fmt.Print(hic.SprintMatrix(m))
	},
}
