package main

import (
	"github.com/spf13/cobra"
)

const app = "interview-coach"

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "AI interview practice API: generates questions, scores answers and reports progress",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}
