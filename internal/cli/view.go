package cli

import (
	"github.com/spf13/cobra"

	"github.com/JackWReid/urlfind/internal/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "View a file interactively with its URLs highlighted",
	Long: `View opens a file in a full-screen read-only viewer. Detected URLs
are underlined, the status bar shows the link under the cursor, and
Enter copies it to the clipboard. Quit with q or Escape.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := viewer.New(args[0])
		if err != nil {
			return err
		}
		return v.Run()
	},
}
