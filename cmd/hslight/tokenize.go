package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hslight/internal/diagfmt"
	"hslight/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.hs",
	Short: "Dump the raw token stream of a Haskell source file",
	Long:  `Tokenize breaks a Haskell source file into raw lexer tokens and prints them with their kinds, categories and display positions`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().Bool("layout", false, "include virtual layout tokens in the dump")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	layout, err := cmd.Flags().GetBool("layout")
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(args[0], driver.TokenizeOptions{
		MaxDiagnostics: maxDiagnostics(cmd),
		Layout:         layout,
	})
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if (result.Bag.HasErrors() || result.Bag.HasWarnings()) && !quietEnabled(cmd) {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     colorEnabled(cmd, os.Stderr),
			ShowNotes: true,
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens, result.FileSet)
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(os.Stdout, result.Tokens, result.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
