package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	queueInfoName   string
	queueDeleteName string
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Inspect and manage agent queues",
	Long: `Queue management.

A queue is a named partition of the job backend holding agents'
scheduled, waiting, active, completed, failed and delayed job entries.`,
}

var queueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all queues with their statistics",
	Long: `List all available queues with their job counts and agents.

Examples:
  agentctl queue list`,
	Run: runQueueList,
}

var queueInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Get detailed information about a queue",
	Long: `Get detailed information about a specific queue: counts of
waiting, active, completed, failed and delayed jobs, plus the names of
the agents assigned to it.

Examples:
  agentctl queue info --queue-name default`,
	Run: runQueueInfo,
}

var queueDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an empty queue",
	Long: `Delete an empty queue from the cursor-agents service.

The service refuses to delete a queue that still holds jobs, and the
reserved "default" queue can never be deleted.

Examples:
  agentctl queue delete --queue-name old-queue`,
	Run: runQueueDelete,
}

func init() {
	queueInfoCmd.Flags().StringVarP(&queueInfoName, "queue-name", "q", "", "name of the queue (required)")
	queueInfoCmd.MarkFlagRequired("queue-name")

	queueDeleteCmd.Flags().StringVarP(&queueDeleteName, "queue-name", "q", "", "name of the queue to delete (required)")
	queueDeleteCmd.MarkFlagRequired("queue-name")

	queueCmd.AddCommand(queueListCmd)
	queueCmd.AddCommand(queueInfoCmd)
	queueCmd.AddCommand(queueDeleteCmd)
}

func runQueueList(cmd *cobra.Command, args []string) {
	result, err := newClient().Get("/queues")
	if err != nil {
		exitRequestError(err)
	}

	printResult(result)
}

func runQueueInfo(cmd *cobra.Command, args []string) {
	result, err := newClient().Get(fmt.Sprintf("/queues/%s", queueInfoName))
	if err != nil {
		exitRequestError(err)
	}

	printResult(result)
}

func runQueueDelete(cmd *cobra.Command, args []string) {
	result, err := newClient().Delete(fmt.Sprintf("/queues/%s", queueDeleteName))
	if err != nil {
		exitRequestError(err)
	}

	printResult(result)
}
