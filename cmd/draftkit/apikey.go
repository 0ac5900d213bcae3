package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var apikeyCmd = &cobra.Command{
	Use:   "apikey",
	Short: "Manage the generation API key",
}

var apikeySetCmd = &cobra.Command{
	Use:   "set <key>",
	Short: "Store an API key for remote generation",
	Long: "Stores the key for this and future invocations. Persistence uses Redis\n" +
		"when REDIS_URL is set, otherwise an encrypted file when DRAFTKIT_SECRET\n" +
		"is set. Without either the key cannot outlive the process, which in a\n" +
		"CLI means it is effectively not stored.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.resolver.Supply(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("store api key: %w", err)
		}
		fmt.Println(successStyle.Render("API key stored."))
		return nil
	},
}

var apikeyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether an API key resolves",
	Run: func(cmd *cobra.Command, args []string) {
		if _, ok := cli.resolver.Resolve(cmd.Context()); ok {
			fmt.Println(successStyle.Render("An API key is configured; generation uses the remote model."))
		} else {
			fmt.Println(mutedStyle.Render("No API key configured; generation uses the offline fallback."))
		}
	},
}

func init() {
	apikeyCmd.AddCommand(apikeySetCmd)
	apikeyCmd.AddCommand(apikeyStatusCmd)
	rootCmd.AddCommand(apikeyCmd)
}
