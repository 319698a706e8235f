package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/braunmar/agentctl/pkg/client"
	"github.com/braunmar/agentctl/pkg/config"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var apiURL string

var rootCmd = &cobra.Command{
	Use:   "agentctl",
	Short: "Manage scheduled HTTP-call agents in the cursor-agents service",
	Long: `agentctl - A CLI tool for the cursor-agents job-scheduling API.

Agents are named scheduled or one-time HTTP-call jobs managed by the remote
service. This tool creates, inspects, and removes agents and their queues,
and controls the task operator that dispatches database-backed work.

The API base URL is taken from --api-url, the CURSOR_AGENTS_URL environment
variable, or an optional .agentctl.yml, in that order.`,
	Version: version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "base URL of the cursor-agents API (overrides CURSOR_AGENTS_URL)")

	// Add subcommands
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(operatorCmd)
	rootCmd.AddCommand(scheduleCmd)

	// Customize help template
	rootCmd.SetHelpTemplate(`{{.Long}}

Usage:
  {{.UseLine}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

Use "{{.CommandPath}} [command] --help" for more information about a command.
`)
}

func checkError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newClient resolves the configuration once and builds the API client.
func newClient() *client.Client {
	cfg, err := config.Resolve(apiURL)
	checkError(err)
	return client.New(cfg.BaseURL, cfg.Timeout)
}

// printResult writes the response body to stdout, pretty-printed with a
// 2-space indent, preserving the server's key order.
func printResult(raw json.RawMessage) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		checkError(fmt.Errorf("invalid JSON in response: %w", err))
	}
	fmt.Println(buf.String())
}

// exitRequestError writes the failure envelope to stderr as pretty-printed
// JSON and exits 1. Used by agent and queue commands; operator commands
// report errors as text via checkError instead.
func exitRequestError(err error) {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		apiErr = &client.APIError{Message: err.Error()}
	}

	out, mErr := json.MarshalIndent(apiErr, "", "  ")
	if mErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	} else {
		fmt.Fprintln(os.Stderr, string(out))
	}
	os.Exit(1)
}
