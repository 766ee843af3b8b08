package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host  string
	token string
)

var rootCmd = &cobra.Command{
	Use:   "aftas-cli",
	Short: "A CLI to interact with the aftas server",
	Long: `A command-line interface for reading rankings and standings
and triggering score calculation on the aftas server.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8000", "The host address of the server")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("AFTAS_TOKEN"), "Bearer token for admin requests")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
