package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/ulog"
)

var allowPartial bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ulogcat",
	Short: "Inspect and convert ULog flight logs",
	Long: `ulogcat reads ULog flight-log files and prints their content.

Files may be bare or wrapped in a gzip, zstd, LZ4 or S2 container;
compression is detected from the leading bytes and unwrapped
transparently.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&allowPartial, "partial", false,
		"keep the good prefix of a truncated log instead of failing")
}

func decodeOptions() []ulog.DecoderOption {
	if allowPartial {
		return []ulog.DecoderOption{ulog.WithAllowPartial()}
	}

	return nil
}

// loadLog reads one log file honoring the --partial flag.
func loadLog(path string) (*ulog.Log, error) {
	return ulog.ReadFile(path, decodeOptions()...)
}

// warnTruncation reports a partial decode on stderr so piped stdout stays
// clean.
func warnTruncation(cmd *cobra.Command, log *ulog.Log) {
	if log.Truncation != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: log truncated at offset %d: %v\n",
			log.Truncation.Offset, log.Truncation.Err)
	}
}
