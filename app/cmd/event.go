package cmd

import (
	"fmt"
	"os"

	"event-seating-cli/service"
	"github.com/spf13/cobra"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Show the event on sale",
	Run: func(cmd *cobra.Command, args []string) {
		event, err := service.GetEvent()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Println(event.NamePub)
		if event.Place != "" {
			fmt.Println(event.Place)
		}
		if event.DateFrom != "" {
			fmt.Printf("%s – %s\n", event.DateFrom, event.DateTo)
		}
		fmt.Printf("Currency: %s\n", event.CurrencyIso)
		if event.Description != "" {
			fmt.Println()
			fmt.Println(event.Description)
		}
	},
}
