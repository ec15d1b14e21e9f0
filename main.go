package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title LiveScore REST API
// @version 1.0
// @description Live sports scores, commentary and notifications.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "livescore",
		Short: "Live sports score backend",
		// serve is the default so a bare binary behaves like a server.
		RunE: runServe,
	}
	rootCmd.AddCommand(serveCmd(), migrateCmd(), seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
