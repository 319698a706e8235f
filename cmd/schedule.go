package cmd

import (
	"fmt"
	"time"

	"github.com/braunmar/agentctl/pkg/schedule"
	"github.com/braunmar/agentctl/pkg/ui"

	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule expression helpers",
	Long: `Local helpers for agent schedule expressions.

These commands never contact the API.`,
}

var scheduleCheckCmd = &cobra.Command{
	Use:   "check <expression>",
	Short: "Validate a cron pattern or interval",
	Long: `Validate a schedule expression locally and show what it means.

Accepts standard 5-field cron patterns, 6-field patterns with a seconds
column, descriptors like @daily, and Go interval strings like "5m".

Examples:
  agentctl schedule check "0 0 * * *"
  agentctl schedule check "0 */5 * * * *"
  agentctl schedule check 30m`,
	Args: cobra.ExactArgs(1),
	Run:  runScheduleCheck,
}

func init() {
	scheduleCmd.AddCommand(scheduleCheckCmd)
}

func runScheduleCheck(cmd *cobra.Command, args []string) {
	spec, err := schedule.Parse(args[0])
	checkError(err)

	ui.Success(fmt.Sprintf("Valid schedule: %s", spec.Expression))
	ui.PrintStatusLine("Meaning", spec.Describe())

	next := spec.Next(time.Now(), 3)
	if len(next) > 0 {
		ui.PrintStatusLine("Next runs", "")
		for _, at := range next {
			fmt.Printf("    %s\n", at.Format(time.RFC3339))
		}
	}
}
