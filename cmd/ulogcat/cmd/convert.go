package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/ulog"
	"github.com/arloliu/ulog/compress"
)

var (
	convertGlob        string
	convertConcurrency int
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <dir> <outdir>",
	Short: "Batch-convert logs to JSON lines",
	Long: `Find log files under <dir>, decode them in parallel, and write each
one to <outdir> as JSON lines in the same shape as "cat".

Output files are named by the fingerprint of the stored bytes, so the
same flight collected twice converts once; existing outputs are skipped.

Example:
  ulogcat convert --glob '**/*.ulg' -C 4 ./flights ./decoded`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, outDir := args[0], args[1]

		paths, err := discoverLogs(dir, convertGlob)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "no files match %s under %s\n", convertGlob, dir)
			return nil
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}

		var converted, skipped atomic.Int64

		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(convertConcurrency)
		for _, path := range paths {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				wrote, err := convertOne(path, outDir)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if wrote {
					converted.Add(1)
				} else {
					skipped.Add(1)
				}

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "converted %d file(s), skipped %d existing\n",
			converted.Load(), skipped.Load())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertGlob, "glob", "**/*.ulg",
		"glob pattern matched under <dir>")
	convertCmd.Flags().IntVarP(&convertConcurrency, "concurrency", "C", runtime.NumCPU(),
		"number of files decoded in parallel")
}

// discoverLogs returns deduplicated regular files matching pattern under
// dir.
func discoverLogs(dir, pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var paths []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if !seen[match] {
			seen[match] = true
			paths = append(paths, match)
		}
	}

	return paths, nil
}

// convertOne decodes path and writes <fingerprint>.json into outDir.
// Returns false when the output already exists.
func convertOne(path, outDir string) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	outPath := filepath.Join(outDir, fmt.Sprintf("%016x.json", ulog.Fingerprint(raw)))
	if _, err := os.Stat(outPath); err == nil {
		return false, nil
	}

	content, _, err := compress.Unwrap(raw)
	if err != nil {
		return false, err
	}

	log, err := ulog.Decode(content, decodeOptions()...)
	if err != nil {
		return false, err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return false, err
	}

	w := bufio.NewWriter(f)
	if err := writeRecords(w, log); err != nil {
		f.Close()
		os.Remove(outPath)

		return false, err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(outPath)

		return false, err
	}

	return true, f.Close()
}
