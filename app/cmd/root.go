package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of the seating CLI",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("seating CLI v0.1")
	},
}

var rootCmd = &cobra.Command{
	Use:   "seating",
	Short: "Event seating CLI",
	Long:  `Inspect the event, browse the priced seat map and place an order, all from the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	rootCmd.AddCommand(eventCmd, seatsCmd, orderCmd, versionCmd)

	orderCmd.Flags().StringSlice("seat", nil, "seat id to order, repeatable")
	orderCmd.Flags().String("email", "", "buyer email")
	orderCmd.Flags().String("first-name", "", "buyer first name")
	orderCmd.Flags().String("last-name", "", "buyer last name")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
