package cmd

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/arloliu/ulog"
	"github.com/arloliu/ulog/record"
)

// catCmd represents the cat command
var catCmd = &cobra.Command{
	Use:   "cat <file>",
	Short: "Print every record as one JSON object per line",
	Long: `Print every record of one log as a stream of JSON lines, in file
order. Opaque byte fields (data payloads, info and parameter values) are
base64 encoded.

Example:
  ulogcat cat flight_0042.ulg | jq 'select(.type == "dropout")'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := loadLog(args[0])
		if err != nil {
			return err
		}
		warnTruncation(cmd, log)

		return writeRecords(cmd.OutOrStdout(), log)
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
}

// writeRecords streams the record list as JSON lines.
func writeRecords(w io.Writer, log *ulog.Log) error {
	enc := json.NewEncoder(w)
	for _, rec := range log.Records {
		if err := enc.Encode(recordLine(rec)); err != nil {
			return err
		}
	}

	return nil
}

// recordLine flattens one record into a JSON-serializable map. Every line
// carries a "type" discriminator matching the tag name.
func recordLine(rec record.Record) map[string]any {
	line := map[string]any{"type": rec.Type().String()}

	switch r := rec.(type) {
	case record.Format:
		line["definition"] = r.Definition
	case record.Info:
		line["key"] = r.Key
		line["value"] = r.Value
	case record.InfoMultiple:
		line["key"] = r.Key
		line["value"] = r.Value
		line["continued"] = r.IsContinued
	case record.Parameter:
		line["key"] = r.Key
		line["value"] = r.Value
	case record.ParameterDefault:
		line["key"] = r.Key
		line["value"] = r.Value
		line["default_types"] = r.DefaultTypes
	case record.AddLogged:
		line["message_name"] = r.MessageName
		line["msg_id"] = r.MsgID
		line["multi_id"] = r.MultiID
	case record.RemoveLogged:
		line["msg_id"] = r.MsgID
	case record.Data:
		line["msg_id"] = r.MsgID
		line["payload"] = r.Payload
	case record.Logging:
		line["level"] = r.LogLevel
		line["timestamp"] = r.Timestamp
		line["message"] = r.Message
	case record.LoggingTagged:
		line["level"] = r.LogLevel
		line["tag"] = r.Tag
		line["timestamp"] = r.Timestamp
		line["message"] = r.Message
	case record.Sync:
		line["sync_magic"] = r.SyncMagic
	case record.Dropout:
		line["duration_ms"] = r.Duration
	}

	return line
}
