package main

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hslight/internal/highlight"
	"hslight/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view [flags] file.hs",
	Short: "Open a highlighted file in a scrollable pager",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	viewCmd.Flags().String("theme", "", "path to a TOML theme file")
}

func runView(cmd *cobra.Command, args []string) error {
	th, err := loadTheme(cmd)
	if err != nil {
		return err
	}

	res, err := highlightInput(args[0])
	if err != nil {
		var lexErr *highlight.LexError
		if errors.As(err, &lexErr) {
			reportLexError(cmd, res, lexErr)
		}
		return err
	}

	// The pager draws into the alternate screen, which is always a
	// terminal; styling stays on regardless of the --color default.
	color.NoColor = false
	return ui.RunViewer(args[0], th.RenderString(res.Tokens))
}
