package cmd

import (
	"github.com/spf13/cobra"
)

var agentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all agents",
	Long: `List all active agents and their status.

Examples:
  agentctl agent list`,
	Run: runAgentList,
}

func init() {
	agentCmd.AddCommand(agentListCmd)
}

func runAgentList(cmd *cobra.Command, args []string) {
	result, err := newClient().Get("/agents")
	if err != nil {
		exitRequestError(err)
	}

	printResult(result)
}
