package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteAgentName string

var agentDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an agent",
	Long: `Delete an agent from the cursor-agents service.

Removes the agent and its scheduled job. Recurring agents stop running;
one-time agents that have not fired yet are cancelled.

Examples:
  agentctl agent delete --name daily-check`,
	Run: runAgentDelete,
}

func init() {
	agentDeleteCmd.Flags().StringVarP(&deleteAgentName, "name", "n", "", "name of the agent to delete (required)")
	agentDeleteCmd.MarkFlagRequired("name")

	agentCmd.AddCommand(agentDeleteCmd)
}

func runAgentDelete(cmd *cobra.Command, args []string) {
	result, err := newClient().Delete(fmt.Sprintf("/agents/%s", deleteAgentName))
	if err != nil {
		exitRequestError(err)
	}

	printResult(result)
}
