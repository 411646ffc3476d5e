package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"hslight/internal/diag"
	"hslight/internal/diagfmt"
	"hslight/internal/driver"
	"hslight/internal/highlight"
	"hslight/internal/theme"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [flags] file.hs",
	Short: "Highlight a Haskell source file",
	Long:  `Highlight tokenizes a Haskell source file and writes it back with every token styled by category. Pass "-" to read from stdin.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHighlight,
}

func init() {
	highlightCmd.Flags().String("format", "ansi", "output format (ansi|plain|json)")
	highlightCmd.Flags().String("theme", "", "path to a TOML theme file")
	highlightCmd.Flags().Bool("fallback", false, "on a lexical error, emit the input as plain text instead of failing")
}

func loadTheme(cmd *cobra.Command) (*theme.Theme, error) {
	path, err := cmd.Flags().GetString("theme")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return theme.Default(), nil
	}
	return theme.Load(path)
}

func highlightInput(path string) (*driver.HighlightResult, error) {
	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return driver.HighlightSource("<stdin>", content)
	}
	return driver.HighlightFile(path)
}

// reportLexError renders the diagnostics carried by a lexical failure.
func reportLexError(cmd *cobra.Command, res *driver.HighlightResult, lexErr *highlight.LexError) {
	if quietEnabled(cmd) || res == nil || res.FileSet == nil {
		return
	}
	bag := diag.NewBag(maxDiagnostics(cmd))
	for _, d := range lexErr.Diagnostics {
		bag.Add(d)
	}
	diagfmt.Pretty(os.Stderr, bag, res.FileSet, diagfmt.PrettyOpts{
		Color:     colorEnabled(cmd, os.Stderr),
		ShowNotes: true,
	})
}

func runHighlight(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	fallback, err := cmd.Flags().GetBool("fallback")
	if err != nil {
		return err
	}
	th, err := loadTheme(cmd)
	if err != nil {
		return err
	}

	res, err := highlightInput(args[0])
	if err != nil {
		var lexErr *highlight.LexError
		if errors.As(err, &lexErr) {
			reportLexError(cmd, res, lexErr)
			if fallback && res != nil && res.File != nil {
				_, werr := os.Stdout.Write(res.File.Content)
				return werr
			}
		}
		return err
	}

	switch format {
	case "ansi":
		colorEnabled(cmd, os.Stdout)
		_, err := io.WriteString(os.Stdout, th.RenderString(res.Tokens))
		return err
	case "plain":
		for _, tok := range res.Tokens {
			if _, err := io.WriteString(os.Stdout, tok.Text); err != nil {
				return err
			}
		}
		return nil
	case "json":
		return diagfmt.FormatHighlightJSON(os.Stdout, res.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
