package cmd

import (
	"fmt"

	ui "github.com/gizak/termui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chbk/hicdump/hic"
)

var (
	viewResolution int
	viewChr        string
	viewStart      int
	viewEnd        int
)

func init() {
	viewCmd.Flags().IntVarP(&viewResolution, "resolution", "r", 0, "bin size in base pairs")
	viewCmd.Flags().StringVarP(&viewChr, "chr", "c", "", "chromosome name")
	viewCmd.Flags().IntVarP(&viewStart, "start", "s", 0, "window start in base pairs")
	viewCmd.Flags().IntVarP(&viewEnd, "end", "e", 0, "window end in base pairs")
	viewCmd.MarkFlagRequired("resolution")
	viewCmd.MarkFlagRequired("chr")
	viewCmd.MarkFlagRequired("end")
	rootCmd.AddCommand(viewCmd)
}

func regionText(chr string, start int, end int) string {
	return fmt.Sprintf("%s:%d-%d", chr, start, end)
}

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse a contact profile in the terminal",
	Long:  `Renders the per-bin contact sums of a chromosome window as a sparkline. Pan with j and l, quit with q.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res := openResult(args[0], viewResolution)
		chrIdx := res.ChromosomeIndex(viewChr)
		if chrIdx == -1 {
			log.Fatalf("chromosome %v not found", viewChr)
		}
		if err := ui.Init(); err != nil {
			log.Fatalf("cannot init terminal ui: %v", err)
		}
		defer ui.Close()

		p := ui.NewPar(regionText(viewChr, viewStart, viewEnd))
		p.Height = 3
		p.Width = 50
		p.TextFgColor = ui.ColorWhite
		p.BorderLabel = "Region"
		p.BorderFg = ui.ColorCyan

		maxDiv := ui.NewPar("")
		maxDiv.Height = 3
		maxDiv.BorderLabel = "max"
		maxDiv.Width = 20
		maxDiv.Y = 5

		spl := ui.NewSparkline()

		start := viewStart
		end := viewEnd
		update := func() {
			lo := start / viewResolution
			hi := (end-1)/viewResolution + 1
			v := hic.BinProfile(res, chrIdx, lo, hi)
			data := make([]int, len(v))
			max := 0.0
			for i, v0 := range v {
				data[i] = int(v0)
				if v0 > max {
					max = v0
				}
			}
			p.Text = regionText(viewChr, start, end)
			spl.Data = data
			spl.Title = args[0]
			spl.LineColor = ui.ColorGreen
			spls := ui.NewSparklines(spl)
			spls.Height = 8
			spls.Width = 100
			spls.Y = 5
			spls.X = 20
			maxDiv.Text = fmt.Sprintf("%.2f", max)
			ui.Render(p, spls, maxDiv)
		}
		update()
		ui.Handle("/sys/kbd/q", func(ui.Event) {
			ui.StopLoop()
		})
		ui.Handle("/sys/kbd/j", func(ui.Event) {
			l := end - start
			start -= l / 2
			if start < 0 {
				start = 0
			}
			end = start + l
			update()
		})
		ui.Handle("/sys/kbd/l", func(ui.Event) {
			l := end - start
			start += l / 2
			end += l / 2
			update()
		})
		ui.Loop()
	},
}
