package cmd

import (
	"github.com/braunmar/agentctl/pkg/agent"

	"github.com/spf13/cobra"
)

var createSpec agent.CreateSpec

var agentCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new agent",
	Long: `Create a new agent that makes HTTP requests to a target URL.

The agent either runs once immediately (--one-time) or on a recurring
schedule (--schedule, a cron pattern or interval). One of the two is
required; when both are given, one-time wins and the schedule is dropped.

The target URL can be a public URL or a Docker network URL like
http://cursor-runner:3001/health.

Examples:
  agentctl agent create --name test-agent --target-url http://cursor-runner:3001/health --one-time

  agentctl agent create --name daily-check --target-url http://api.example.com/check \
    --schedule "0 0 * * *" --method GET

  agentctl agent create --name api-sync --target-url http://api.example.com/sync \
    --headers '{"Authorization": "Bearer token"}' --body '{"action": "sync"}' \
    --schedule "0 */30 * * * *"

  agentctl agent create --name daily-note --target-url http://cursor-runner:3001/cursor/execute/async \
    --schedule "0 8 * * *" --queue daily-tasks \
    --body '{"prompt": "create todays daily note"}'`,
	Run: runAgentCreate,
}

func init() {
	flags := agentCreateCmd.Flags()
	flags.StringVarP(&createSpec.Name, "name", "n", "", "unique name for the agent (required)")
	flags.StringVarP(&createSpec.TargetURL, "target-url", "u", "", "target URL to hit (required)")
	flags.StringVarP(&createSpec.Method, "method", "m", "POST", "HTTP method: GET, POST, PUT, DELETE or PATCH")
	flags.StringVarP(&createSpec.Headers, "headers", "H", "{}", "HTTP headers as a JSON object")
	flags.StringVarP(&createSpec.Body, "body", "b", "", "request body as a JSON string")
	flags.StringVarP(&createSpec.Schedule, "schedule", "s", "", "cron pattern or interval (required unless --one-time)")
	flags.BoolVarP(&createSpec.OneTime, "one-time", "o", false, "run the agent once immediately")
	flags.IntVarP(&createSpec.Timeout, "timeout", "t", 30000, "request timeout in milliseconds")
	flags.StringVarP(&createSpec.Queue, "queue", "q", "", "queue name for this agent (service default: \"default\")")

	agentCreateCmd.MarkFlagRequired("name")
	agentCreateCmd.MarkFlagRequired("target-url")

	agentCmd.AddCommand(agentCreateCmd)
}

func runAgentCreate(cmd *cobra.Command, args []string) {
	// Validate flags before any request is made
	checkError(createSpec.Validate())

	payload, err := createSpec.Payload()
	checkError(err)

	result, err := newClient().Post("/agents", payload)
	if err != nil {
		exitRequestError(err)
	}

	printResult(result)
}
