package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/deb822/deb822/control"
	"github.com/spf13/cobra"
)

// catCmd represents the cat command
var catCmd = &cobra.Command{
	Use:   "cat [file]",
	Short: "Print records with values unfolded",
	Long: `Parse a control file and print each field with its value unfolded
into logical lines. Records are separated by a blank line.

Example:
  deb822 cat debian/control`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(args)
		if err != nil {
			return err
		}
		defer in.Close()

		out := cmd.OutOrStdout()
		r := control.NewRecordReader(in)
		first := true
		for {
			rec, err := r.ReadRecord()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			if len(rec) == 0 {
				continue
			}
			if !first {
				fmt.Fprintln(out)
			}
			first = false
			for _, f := range rec {
				logical := control.Unfold(f.Value)
				fmt.Fprintf(out, "%s: %s\n", f.Key,
					strings.ReplaceAll(logical, "\n", "\n    "))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
}
