package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

var cli *app

var rootCmd = &cobra.Command{
	Use:   "draftkit",
	Short: "draftkit - AI-assisted email drafts from the terminal",
	Long: "Draftkit generates email drafts from a prompt and tone, fills static\n" +
		"templates, and keeps saved drafts in sync with your account.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "help", "version", "completion":
			return nil
		}
		var err error
		cli, err = newApp()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cli == nil {
			return
		}
		// Bounded drain so queued usage events get a chance to flush.
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		cli.shutdown(ctx)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("draftkit version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
