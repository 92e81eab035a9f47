package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "deb822",
	Short: "Inspect and reformat Debian control files",
	Long: `deb822 reads RFC822-like control files (debian/control, Packages
indexes and similar) and prints, reformats or validates them.

All subcommands read from a file argument or, when none is given, from
standard input.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openInput returns the input stream for a command: the named file, or
// stdin when no argument was given.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(args[0])
}
