package main

import (
	"aftas/auth"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(podiumCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "Lifetime of the token")
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "List every ranking entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/rankings")
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings <competition-code>",
	Short: "Show the standings of a competition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/competitions/"+args[0]+"/standings")
	},
}

var podiumCmd = &cobra.Command{
	Use:   "podium <competition-code>",
	Short: "Show the podium of a scored competition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/api/competitions/"+args[0]+"/podium")
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score <competition-code>",
	Short: "Calculate the scores and ranks of a competition",
	Long: `Adds the points of every recorded hunting to the ranking entries of the
competition and ranks them. Every run adds the points again.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/api/competitions/"+args[0]+"/score")
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token <subject>",
	Short: "Mint an admin token signed with JWT_SECRET",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ttl, err := cmd.Flags().GetDuration("ttl")
		if err != nil {
			return err
		}
		signed, err := auth.CreateToken(args[0], []string{auth.PermissionAdmin}, ttl)
		if err != nil {
			return err
		}
		fmt.Println(signed)
		return nil
	},
}

func performRequest(method string, endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
