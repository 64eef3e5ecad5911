package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shopflow/shopflow/pkg/adapters/redis"
)

var receiptsCmd = &cobra.Command{
	Use:   "receipts",
	Short: "Inspect receipts saved by previous runs",
}

var receiptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored receipt session IDs",
	Run: func(cmd *cobra.Command, args []string) {
		store := receiptStore(cmd)
		sessions, err := store.List(cmd.Context())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if len(sessions) == 0 {
			fmt.Println("No receipts stored.")
			return
		}
		for _, id := range sessions {
			fmt.Println(id)
		}
	},
}

var receiptsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show one receipt",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := receiptStore(cmd)
		receipt, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		status := "abandoned"
		if receipt.Paid {
			status = "paid"
		}
		fmt.Printf("session:   %s\n", receipt.SessionID)
		fmt.Printf("status:    %s\n", status)
		fmt.Printf("items:     %v\n", receipt.Items)
		fmt.Printf("trail:     %v\n", receipt.Trail)
		if !receipt.CompletedAt.IsZero() {
			fmt.Printf("completed: %s\n", receipt.CompletedAt.Format("2006-01-02 15:04:05 MST"))
		}
	},
}

func receiptStore(cmd *cobra.Command) *redis.Store {
	url, _ := cmd.Flags().GetString("redis-url")
	store, err := redis.NewFromURL(url)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	return store
}

func init() {
	receiptsCmd.PersistentFlags().String("redis-url", "redis://localhost:6379", "Redis URL holding the receipts")
	receiptsCmd.AddCommand(receiptsListCmd, receiptsShowCmd)
	rootCmd.AddCommand(receiptsCmd)
}
