package main

import (
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"io/fs"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"scmc/grammar"
	"scmc/internal/config"
	"scmc/internal/errors"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file...",
	Short: "Check that IR trace files are well formed",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "files checked in parallel (0 = GOMAXPROCS, overrides [check].jobs)")
}

// fileResult is the outcome of checking one file. At most one of readErr and
// diag is set.
type fileResult struct {
	path    string
	source  string
	readErr error
	diag    *errors.CompilerError
}

func (r fileResult) failed() bool {
	return r.readErr != nil || r.diag != nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, err := resolveJobs(cmd, cfg)
	if err != nil {
		return err
	}

	startTime := time.Now()
	results, err := checkFiles(cmd.Context(), args, jobs)
	if err != nil {
		return err
	}

	failed := reportResults(cmd.OutOrStdout(), results)
	formattedDuration := formatDuration(time.Since(startTime))

	if failed > 0 {
		color.New(color.FgRed).Fprintf(cmd.OutOrStdout(), "Check failed for %d of %d files after %s\n", failed, len(results), formattedDuration)
		return errReported
	}
	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Successfully checked %d files in %s\n", len(results), formattedDuration)
	return nil
}

// resolveJobs returns --jobs when it was given and [check].jobs otherwise.
// Zero means GOMAXPROCS in both places.
func resolveJobs(cmd *cobra.Command, c config.Config) (int, error) {
	if !cmd.Flags().Changed("jobs") {
		return c.Workers(), nil
	}
	n, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return 0, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("--jobs must not be negative, got %d", n)
	}
	if n == 0 {
		return runtime.GOMAXPROCS(0), nil
	}
	return n, nil
}

// checkFiles parses every path with at most jobs files in flight. Results
// keep the order of paths. Per-file failures are recorded in the result; only
// cancellation aborts the run.
func checkFiles(ctx context.Context, paths []string, jobs int) ([]fileResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]fileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = checkFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("check interrupted: %w", err)
	}
	return results, nil
}

func checkFile(path string) fileResult {
	_, source, err := grammar.ParseFile(path)
	result := fileResult{path: path, source: source}
	switch {
	case err == nil:
	case isReadError(err):
		result.readErr = err
	default:
		d := grammar.Diagnose(err)
		result.diag = &d
	}
	return result
}

func isReadError(err error) bool {
	var pathErr *fs.PathError
	return goerrors.As(err, &pathErr)
}

// reportResults prints the diagnostics of failed files in input order and
// returns how many failed.
func reportResults(w io.Writer, results []fileResult) int {
	failed := 0
	for _, r := range results {
		switch {
		case r.readErr != nil:
			fmt.Fprintf(w, "%s %s: %v\n", color.RedString("error:"), r.path, r.readErr)
		case r.diag != nil:
			fmt.Fprint(w, errors.NewErrorReporter(r.path, r.source).FormatError(*r.diag))
		}
		if r.failed() {
			failed++
		}
	}
	return failed
}
