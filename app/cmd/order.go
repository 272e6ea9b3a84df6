package cmd

import (
	"fmt"
	"os"
	"strings"

	"event-seating-cli/model"
	"event-seating-cli/service"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Order tickets for the given seat ids",
	Long:  `Order tickets for one or more seats. Buyer details not passed as flags are prompted for.`,
	Run: func(cmd *cobra.Command, args []string) {
		seatIds, _ := cmd.Flags().GetStringSlice("seat")
		if len(seatIds) == 0 {
			fmt.Fprintln(os.Stderr, "at least one --seat is required")
			os.Exit(1)
		}

		event, err := service.GetEvent()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		tickets, err := service.GetEventTickets(event.EventId)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		order := model.OrderRequest{EventId: event.EventId}
		var seen []string
		for _, row := range tickets.SeatRows {
			for _, seat := range row.Seats {
				if !slices.Contains(seatIds, seat.SeatId) {
					continue
				}
				order.Tickets = append(order.Tickets, model.OrderTicket{
					TicketTypeId: seat.TicketTypeId,
					SeatId:       seat.SeatId,
				})
				seen = append(seen, seat.SeatId)
			}
		}
		for _, id := range seatIds {
			if !slices.Contains(seen, id) {
				fmt.Fprintf(os.Stderr, "seat %s not found for this event\n", id)
				os.Exit(1)
			}
		}

		buyer := model.Buyer{}
		buyer.Email, _ = cmd.Flags().GetString("email")
		buyer.FirstName, _ = cmd.Flags().GetString("first-name")
		buyer.LastName, _ = cmd.Flags().GetString("last-name")
		buyer, err = service.PromptBuyer(buyer)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		buyer.Email = strings.TrimSpace(buyer.Email)
		buyer.FirstName = strings.TrimSpace(buyer.FirstName)
		buyer.LastName = strings.TrimSpace(buyer.LastName)
		order.User = buyer

		response, err := service.CreateOrder(order)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Printf("Order %s created: %d tickets, %.2f %s\n",
			response.OrderId, len(response.Tickets), response.TotalAmount, event.CurrencyIso)
	},
}
