package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusAgentName string

var agentStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Get the status of an agent",
	Long: `Get the status of a specific agent by name.

The response includes the agent's activity state, last and next run
times, target URL, method, schedule, and timeout.

Examples:
  agentctl agent status --name daily-check`,
	Run: runAgentStatus,
}

func init() {
	agentStatusCmd.Flags().StringVarP(&statusAgentName, "name", "n", "", "name of the agent (required)")
	agentStatusCmd.MarkFlagRequired("name")

	agentCmd.AddCommand(agentStatusCmd)
}

func runAgentStatus(cmd *cobra.Command, args []string) {
	result, err := newClient().Get(fmt.Sprintf("/agents/%s", statusAgentName))
	if err != nil {
		exitRequestError(err)
	}

	printResult(result)
}
