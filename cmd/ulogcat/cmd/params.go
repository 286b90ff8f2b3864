package cmd

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
)

// paramValue renders a parameter value using the type carried in the key
// ("float MC_ROLL_P", "int32_t SYS_AUTOSTART"). Anything else prints as
// hex.
func paramValue(key string, value []byte) string {
	if len(value) == 4 {
		bits := binary.LittleEndian.Uint32(value)
		switch {
		case strings.HasPrefix(key, "float "):
			return fmt.Sprintf("%g", math.Float32frombits(bits))
		case strings.HasPrefix(key, "int32_t "):
			return fmt.Sprintf("%d", int32(bits)) //nolint:gosec
		}
	}

	return fmt.Sprintf("% X", value)
}

// paramsCmd represents the params command
var paramsCmd = &cobra.Command{
	Use:   "params <file>",
	Short: "Print parameters and parameter defaults",
	Long: `Print the parameter records of one log in file order. A key listed
more than once changed during the flight. Default-parameter records are
marked with their default-set bits.

Example:
  ulogcat params flight_0042.ulg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := loadLog(args[0])
		if err != nil {
			return err
		}
		warnTruncation(cmd, log)

		out := cmd.OutOrStdout()
		for _, p := range log.Parameters() {
			fmt.Fprintf(out, "%-40s %s\n", p.Key, paramValue(p.Key, p.Value))
		}
		for _, p := range log.ParameterDefaults() {
			fmt.Fprintf(out, "%-40s %s [default 0x%02X]\n", p.Key, paramValue(p.Key, p.Value), p.DefaultTypes)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(paramsCmd)
}
