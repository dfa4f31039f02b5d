package cmd

import (
	"fmt"

	"github.com/chbk/hicdump/hic"
	"github.com/nimezhu/netio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print header and master index",
	Long:  `Prints the file version, genome, chromosome table, resolutions and master index entries.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r, err := netio.NewReadSeeker(args[0])
		if err != nil {
			log.Fatalf("cannot open %v: %v", args[0], err)
		}
		info, err := hic.ReadInfo(r)
		if err != nil {
			log.Fatalf("cannot read header of %v: %v", args[0], err)
		}
		fmt.Print(info)
		for k, v := range info.Attributes {
			fmt.Printf("Attribute: %s = %s\n", k, v)
		}
		entries, err := hic.ReadEntries(r, info)
		if err != nil {
			log.Fatalf("cannot read master index of %v: %v", args[0], err)
		}
		fmt.Printf("Master Index Entries: %d\n", len(entries))
		for _, e := range entries {
			fmt.Printf("\t%s\t%d\t%d\n", e.Key, e.Position, e.Size)
		}
	},
}
