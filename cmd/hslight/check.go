package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hslight/internal/driver"
	"hslight/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] path",
	Short: "Verify that Haskell sources tokenize cleanly",
	Long:  `Check tokenizes every *.hs file under the given path in parallel and reports files the lexer rejects`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = all CPUs)")
	checkCmd.Flags().Bool("no-progress", false, "disable the interactive progress display")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	noProgress, err := cmd.Flags().GetBool("no-progress")
	if err != nil {
		return err
	}

	files, err := driver.ListHaskellFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !quietEnabled(cmd) {
			fmt.Fprintln(os.Stderr, "no Haskell files found")
		}
		return nil
	}

	showProgress := !noProgress && !quietEnabled(cmd) && isTerminal(os.Stderr)

	var results []driver.CheckResult
	if showProgress {
		results, err = checkWithProgress(cmd.Context(), dir, files, jobs)
	} else {
		results, err = driver.CheckDir(cmd.Context(), dir, driver.CheckOptions{Jobs: jobs})
	}
	if err != nil {
		return err
	}

	return printCheckSummary(cmd, results)
}

// checkWithProgress runs the directory check while a Bubble Tea model
// renders per-file status on stderr.
func checkWithProgress(ctx context.Context, dir string, files []string, jobs int) ([]driver.CheckResult, error) {
	events := make(chan driver.CheckResult, len(files))

	type outcome struct {
		results []driver.CheckResult
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		results, err := driver.CheckDir(ctx, dir, driver.CheckOptions{
			Jobs:     jobs,
			Observer: func(r driver.CheckResult) { events <- r },
		})
		close(events)
		done <- outcome{results, err}
	}()

	model := ui.NewProgressModel("checking "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	if _, err := program.Run(); err != nil {
		return nil, err
	}

	out := <-done
	return out.results, out.err
}

func printCheckSummary(cmd *cobra.Command, results []driver.CheckResult) error {
	useColor := colorEnabled(cmd, os.Stdout)
	okColor := color.New(color.FgGreen)
	failColor := color.New(color.FgRed, color.Bold)

	failures := 0
	for _, r := range results {
		if r.Ok() {
			if !quietEnabled(cmd) {
				status := "ok"
				if useColor {
					status = okColor.Sprint(status)
				}
				fmt.Fprintf(os.Stdout, "%-6s %s\n", status, r.Path)
			}
			continue
		}
		failures++
		status := "failed"
		if useColor {
			status = failColor.Sprint(status)
		}
		fmt.Fprintf(os.Stdout, "%-6s %s: %v\n", status, r.Path, r.Err)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed to tokenize", failures, len(results))
	}
	if !quietEnabled(cmd) {
		fmt.Fprintf(os.Stdout, "%d files ok\n", len(results))
	}
	return nil
}
