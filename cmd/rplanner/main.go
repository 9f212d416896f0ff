// Package main provides the rplanner CLI for running retirement projections.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rplanner",
	Short: "Retirement savings and tax projection tool",
	Long: "rplanner projects 401k and brokerage balances year by year across an age range, " +
		"applying contributions, growth, safe-withdrawal-rate withdrawals, Social Security " +
		"income and simplified US tax estimation.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
