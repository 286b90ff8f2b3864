package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/ulog"
	"github.com/arloliu/ulog/compress"
	"github.com/arloliu/ulog/section"
)

// recordTags is the display order for per-type counts.
var recordTags = []section.MsgType{
	section.TypeFormat,
	section.TypeInfo,
	section.TypeInfoMultiple,
	section.TypeParameter,
	section.TypeParameterDefault,
	section.TypeAddLogged,
	section.TypeRemoveLogged,
	section.TypeData,
	section.TypeLogging,
	section.TypeLoggingTagged,
	section.TypeSync,
	section.TypeDropout,
}

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print header fields, flags and record counts",
	Long: `Print the file header, the flag-bits record, the file fingerprint
and per-type record counts of one log.

Example:
  ulogcat info flight_0042.ulg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		content, compression, err := compress.Unwrap(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		log, err := ulog.Decode(content, decodeOptions()...)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		warnTruncation(cmd, log)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "file:             %s\n", path)
		fmt.Fprintf(out, "size:             %d bytes\n", len(raw))
		fmt.Fprintf(out, "compression:      %s\n", compression)
		fmt.Fprintf(out, "fingerprint:      %016x\n", ulog.Fingerprint(raw))
		fmt.Fprintf(out, "version:          %d\n", log.Header.Version)
		fmt.Fprintf(out, "uptime:           %s\n", log.Header.Uptime())
		fmt.Fprintf(out, "compat flags:     % X\n", log.FlagBits.CompatFlags)
		fmt.Fprintf(out, "incompat flags:   % X\n", log.FlagBits.IncompatFlags)
		fmt.Fprintf(out, "appended offsets: % X\n", log.FlagBits.AppendedOffsets)

		if log.FlagBits.HasDefaultParameters() {
			fmt.Fprintln(out, "flags:            default parameters present")
		}
		if log.FlagBits.DataAppended() {
			fmt.Fprintln(out, "flags:            appended data present")
		}
		if log.FlagBits.HasUnknownIncompat() {
			fmt.Fprintln(out, "flags:            UNKNOWN INCOMPATIBLE FLAGS SET")
		}

		fmt.Fprintf(out, "records:          %d\n", len(log.Records))
		for _, tag := range recordTags {
			if n := log.Count(tag); n > 0 {
				fmt.Fprintf(out, "  %-16s %d\n", tag, n)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
