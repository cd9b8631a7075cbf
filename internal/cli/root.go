// Package cli implements the urlfind command line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/JackWReid/urlfind"
)

// Version is set via ldflags during build.
var Version = "dev"

// Command line flags.
var (
	fromClipboard bool
	withSuggest   bool
	noHyperlink   bool
)

var rootCmd = &cobra.Command{
	Use:   "urlfind [file]...",
	Short: "Find URLs in files, stdin, or the clipboard",
	Long: `urlfind scans text line by line and prints every URL it finds as
name:line:column: url. With no files it reads standard input.`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := scanOptions{
			// OSC 8 hyperlinks only make sense on a terminal.
			Hyperlink: !noHyperlink && term.IsTerminal(int(os.Stdout.Fd())),
		}
		if withSuggest {
			opts.Suggester = urlfind.NewSchemeSuggester(urlfind.DefaultSchemeTable())
		}
		out := cmd.OutOrStdout()

		if fromClipboard {
			text, err := clipboard.ReadAll()
			if err != nil {
				return fmt.Errorf("read clipboard: %w", err)
			}
			return scanReader(out, "clipboard", strings.NewReader(text), opts)
		}

		if len(args) == 0 {
			return scanReader(out, "stdin", os.Stdin, opts)
		}

		for _, name := range args {
			f, err := os.Open(name)
			if err != nil {
				return err
			}
			err = scanReader(out, name, f, opts)
			f.Close()
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&fromClipboard, "clipboard", "c", false, "scan the system clipboard instead of files")
	rootCmd.Flags().BoolVarP(&withSuggest, "suggest", "s", false, "report unknown schemes with a spelling suggestion")
	rootCmd.Flags().BoolVar(&noHyperlink, "no-hyperlink", false, "never emit OSC 8 terminal hyperlinks")
	rootCmd.AddCommand(viewCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "urlfind: %v\n", err)
		os.Exit(1)
	}
}
