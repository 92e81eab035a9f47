package cmd

import (
	"fmt"
	"io"

	"github.com/deb822/deb822/control"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate that a control file parses",
	Long: `Parse a control file and report the first syntax error with its
line number. Exits nonzero on failure.

Example:
  deb822 check debian/control`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(args)
		if err != nil {
			return err
		}
		defer in.Close()

		r := control.NewRecordReader(in)
		records, fields := 0, 0
		for {
			rec, err := r.ReadRecord()
			if err == io.EOF {
				fmt.Fprintf(cmd.OutOrStdout(), "%d records, %d fields\n", records, fields)
				return nil
			}
			if err != nil {
				return err
			}
			if len(rec) > 0 {
				records++
				fields += len(rec)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
