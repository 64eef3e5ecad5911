package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shopflow/shopflow/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the shopping flow demo",
	Long: `Runs the scripted shopping flow: the customer walks the catalogue, adding
even-numbered items and popping the cart on odd ones, then pays. The branch
flags pick one of the alternative endings instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.RunOptions{}
		opts.CataloguePath, _ = cmd.Flags().GetString("catalogue")
		opts.SessionID, _ = cmd.Flags().GetString("session")
		opts.RedisURL, _ = cmd.Flags().GetString("redis-url")
		opts.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")
		opts.JSONLogs, _ = cmd.Flags().GetBool("json")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.NoColor, _ = cmd.Flags().GetBool("no-color")
		opts.Interactive, _ = cmd.Flags().GetBool("interactive")
		opts.LeaveEarly, _ = cmd.Flags().GetBool("leave-early")
		opts.AbandonCart, _ = cmd.Flags().GetBool("abandon-cart")
		opts.ForgotWallet, _ = cmd.Flags().GetBool("forgot-wallet")

		if opts.LeaveEarly && opts.Interactive {
			fmt.Println("Error: --leave-early and --interactive cannot be used together.")
			os.Exit(1)
		}

		if err := cli.Execute(cmd.Context(), opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("catalogue", "catalogue.yaml", "YAML file listing the demo item ids")
	runCmd.Flags().String("session", "", "Session ID for the saved receipt (default: timestamp)")
	runCmd.Flags().String("redis-url", "", "Redis URL for receipt persistence (e.g. redis://localhost:6379)")
	runCmd.Flags().String("metrics-addr", "", "Listen address for the Prometheus /metrics endpoint")
	runCmd.Flags().Bool("json", false, "Emit logs as JSON")
	runCmd.Flags().Bool("debug", false, "Log every transition at debug level")
	runCmd.Flags().Bool("no-color", false, "Disable colored status lines")
	runCmd.Flags().BoolP("interactive", "i", false, "Drive the flow from stdin instead of the script")
	runCmd.Flags().Bool("leave-early", false, "Leave the site without shopping")
	runCmd.Flags().Bool("abandon-cart", false, "Clear the cart and leave instead of checking out")
	runCmd.Flags().Bool("forgot-wallet", false, "Cancel at checkout, clear the cart and leave")

	// Make 'run' the default when no subcommand is given.
	rootCmd.Run = runCmd.Run
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
