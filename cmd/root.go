package cmd

import (
	"github.com/chbk/hicdump/hic"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "hicdump",
	Short: "Dump contact matrices from hic files",
	Long:  `Reads .hic contact matrix containers and dumps the stored intra-chromosome interactions at a chosen resolution.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// openResult sniffs uri, then parses it fully at the given resolution.
func openResult(uri string, resolution int) *hic.Result {
	ok, err := hic.Sniff(uri)
	if err != nil {
		log.Fatalf("cannot read %v: %v", uri, err)
	}
	if !ok {
		log.Fatalf("%v is not a hic file", uri)
	}
	log.Debugf("parsing %v at resolution %d", uri, resolution)
	res, err := hic.Dump(uri, resolution)
	if err != nil {
		log.Fatalf("cannot parse %v: %v", uri, err)
	}
	log.Debugf("decoded %d contact records", res.Len())
	return res
}
