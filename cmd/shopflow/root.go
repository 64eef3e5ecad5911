package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shopflow",
	Short: "shopflow walks a typestate shopping flow",
	Long: `shopflow demonstrates a shopping workflow modeled as a typestate machine:
each protocol phase (browsing, shopping, checkout) is a distinct Go type, so
the compiler decides which operations are legal next.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
