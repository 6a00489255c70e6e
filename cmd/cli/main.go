package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gowallet-cli",
		Short: "GoWallet CLI tool",
		Long:  `A command line interface for interacting with the GoWallet API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoWallet API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	userCmd := &cobra.Command{
		Use:   "user",
		Short: "User operations",
	}

	userCmd.AddCommand(createUserCmd())
	userCmd.AddCommand(balanceCmd())
	userCmd.AddCommand(transferCmd())
	userCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(userCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func createUserCmd() *cobra.Command {
	var initBalance string

	cmd := &cobra.Command{
		Use:   "create <name> <email>",
		Short: "Create a new user",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			payload := map[string]any{
				"name":  args[0],
				"email": args[1],
			}
			if initBalance != "" {
				payload["init_balance"] = initBalance
			}

			doRequest(http.MethodPost, "/user", payload)
		},
	}

	cmd.Flags().StringVar(&initBalance, "init-balance", "", "Initial balance (defaults to 0.00)")

	return cmd
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <userId>",
		Short: "Report a user's current balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id := mustUserID(args[0])
			doRequest(http.MethodGet, fmt.Sprintf("/user/%d/balance", id), nil)
		},
	}
}

func transferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <fromUserId> <toUserId> <amount>",
		Short: "Transfer money between users",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			from := mustUserID(args[0])
			to := mustUserID(args[1])

			payload := map[string]any{
				"toUserId": to,
				"amount":   args[2],
			}

			doRequest(http.MethodPost, fmt.Sprintf("/user/%d/transfer", from), payload)
		},
	}
}

func historyCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "history <userId>",
		Short: "List a user's transaction log",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id := mustUserID(args[0])
			path := fmt.Sprintf("/user/%d/transactions?limit=%d&offset=%d", id, limit, offset)
			doRequest(http.MethodGet, path, nil)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "Entries to skip")

	return cmd
}

func mustUserID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Printf("Invalid user ID %q\n", raw)
		os.Exit(1)
	}
	return id
}

func doRequest(method, path string, payload any) {
	client := &http.Client{Timeout: timeout}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, truncate(string(raw), 500))
		os.Exit(1)
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	printJSON(decoded)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to render output: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
