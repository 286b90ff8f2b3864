package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// levelNames maps the syslog-style severity byte written by the producer.
var levelNames = [...]string{
	"EMERG", "ALERT", "CRIT", "ERR", "WARNING", "NOTICE", "INFO", "DEBUG",
}

func levelName(level uint8) string {
	if int(level) < len(levelNames) {
		return levelNames[level]
	}

	return fmt.Sprintf("LEVEL%d", level)
}

// messagesCmd represents the messages command
var messagesCmd = &cobra.Command{
	Use:   "messages <file>",
	Short: "Print logged text messages",
	Long: `Print the plain and tagged log messages of one log in file order,
with severity and time since boot.

Example:
  ulogcat messages flight_0042.ulg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := loadLog(args[0])
		if err != nil {
			return err
		}
		warnTruncation(cmd, log)

		out := cmd.OutOrStdout()
		for _, msg := range log.Messages() {
			uptime := time.Duration(msg.Timestamp) * time.Microsecond
			if msg.Tagged {
				fmt.Fprintf(out, "%-14s %-8s [tag %d] %s\n", uptime, levelName(msg.Level), msg.Tag, msg.Message)
				continue
			}
			fmt.Fprintf(out, "%-14s %-8s %s\n", uptime, levelName(msg.Level), msg.Message)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(messagesCmd)
}
