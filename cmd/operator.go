package cmd

import (
	"github.com/spf13/cobra"
)

var operatorQueue string

var operatorCmd = &cobra.Command{
	Use:   "operator",
	Short: "Control the task operator and its lock",
	Long: `Task operator control.

The task operator is a recurring agent that polls the task database and
dispatches incomplete tasks to cursor-runner. A Redis lock prevents
concurrent runs; the lock subcommands inspect and force-clear it.`,
}

var operatorEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable the task operator",
	Long: `Enable the task operator agent.

The operator continuously checks for incomplete tasks and sends them to
cursor-runner until disabled.

Examples:
  agentctl operator enable
  agentctl operator enable --queue task-processing`,
	Run: runOperatorEnable,
}

var operatorDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable the task operator",
	Long: `Disable the task operator agent.

The operator stops re-enqueueing itself after current jobs complete.

Examples:
  agentctl operator disable`,
	Run: runOperatorDisable,
}

var operatorLockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Check the task operator lock status",
	Long: `Check whether the task operator currently holds its Redis lock,
without modifying it. A held lock means a task is being processed.

Examples:
  agentctl operator lock`,
	Run: runOperatorLock,
}

var operatorUnlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Forcefully clear the task operator lock",
	Long: `Forcefully clear the Redis lock used by the task operator.

Useful when the lock is stuck after a crash. Only clear the lock when no
task is currently being processed.

Examples:
  agentctl operator unlock`,
	Run: runOperatorUnlock,
}

func init() {
	operatorEnableCmd.Flags().StringVarP(&operatorQueue, "queue", "q", "task-operator", "queue name for the task operator")

	operatorCmd.AddCommand(operatorEnableCmd)
	operatorCmd.AddCommand(operatorDisableCmd)
	operatorCmd.AddCommand(operatorLockCmd)
	operatorCmd.AddCommand(operatorUnlockCmd)
}

func runOperatorEnable(cmd *cobra.Command, args []string) {
	body := map[string]any{}
	if operatorQueue != "" {
		body["queue"] = operatorQueue
	}

	result, err := newClient().Post("/task-operator", body)
	checkError(err)

	printResult(result)
}

func runOperatorDisable(cmd *cobra.Command, args []string) {
	result, err := newClient().Delete("/task-operator")
	checkError(err)

	printResult(result)
}

func runOperatorLock(cmd *cobra.Command, args []string) {
	result, err := newClient().Get("/task-operator/lock")
	checkError(err)

	printResult(result)
}

func runOperatorUnlock(cmd *cobra.Command, args []string) {
	result, err := newClient().Delete("/task-operator/lock")
	checkError(err)

	printResult(result)
}
