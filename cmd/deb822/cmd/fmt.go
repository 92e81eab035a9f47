package cmd

import (
	"fmt"
	"io"

	"github.com/deb822/deb822/control"
	"github.com/spf13/cobra"
)

var fmtWrap bool

// fmtCmd represents the fmt command
var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Reformat a control file into canonical folded form",
	Long: `Parse a control file and re-emit it with canonical folding: one
space of continuation indentation, empty logical lines written as the
paragraph marker, and optionally long continuation lines wrapped at 80
columns.

Example:
  deb822 fmt --wrap Packages`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(args)
		if err != nil {
			return err
		}
		defer in.Close()

		out := cmd.OutOrStdout()
		r := control.NewRecordReader(in)
		w := &control.RecordWriter{W: out, WrapLongLines: fmtWrap}
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
				if err := w.WriteField(f.Key, control.Unfold(f.Value)); err != nil {
					return err
				}
			}
		}
	},
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtWrap, "wrap", false, "wrap long continuation lines at 80 columns")
	rootCmd.AddCommand(fmtCmd)
}
