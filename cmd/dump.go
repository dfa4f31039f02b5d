package cmd

import (
	"bufio"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var dumpResolution int

func init() {
	dumpCmd.Flags().IntVarP(&dumpResolution, "resolution", "r", 0, "bin size in base pairs")
	dumpCmd.MarkFlagRequired("resolution")
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Dump contacts as TSV",
	Long:  `Dumps every intra-chromosome contact at the chosen resolution as chromosome, position.1, position.2, interaction.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res := openResult(args[0], dumpResolution)
		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()
		fmt.Fprintln(w, "chromosome\tposition.1\tposition.2\tinteraction")
		for i := range res.Count {
			id := res.ChromosomeID[i]
			if int(id) >= len(res.Chromosomes) {
				log.Warnf("chromosome id %d outside the chromosome table", id)
				continue
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%g\n",
				res.Chromosomes[id],
				int(res.Bin1[i])*res.Resolution,
				int(res.Bin2[i])*res.Resolution,
				res.Count[i])
		}
	},
}
