package cmd

import (
	"github.com/spf13/cobra"
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Manage agents (scheduled or one-time HTTP-call jobs)",
	Long: `Agent management.

An agent is a named job in the cursor-agents service that makes HTTP
requests to a target URL, either once immediately (--one-time) or on a
recurring cron schedule.

Examples:
  agentctl agent create --name test-agent --target-url http://cursor-runner:3001/health --one-time
  agentctl agent list                     # List all agents
  agentctl agent status --name daily-check
  agentctl agent delete --name daily-check`,
}

func init() {
	// Subcommands are registered in their respective files:
	// - agentCreateCmd (agent_create.go)
	// - agentDeleteCmd (agent_delete.go)
	// - agentStatusCmd (agent_status.go)
	// - agentListCmd (agent_list.go)
}
