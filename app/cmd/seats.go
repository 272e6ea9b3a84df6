package cmd

import (
	"fmt"
	"os"
	"sort"

	"event-seating-cli/model"
	"event-seating-cli/service"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var seatsCmd = &cobra.Command{
	Use:   "seats",
	Short: "Print the priced seat map",
	Run: func(cmd *cobra.Command, args []string) {
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

		types := map[string]model.TicketType{}
		for _, t := range tickets.TicketTypes {
			types[t.Id] = t
		}

		rows := tickets.SeatRows
		sort.Slice(rows, func(i, j int) bool { return rows[i].SeatRow < rows[j].SeatRow })

		w := table.NewWriter()
		w.SetOutputMirror(os.Stdout)
		w.AppendHeader(table.Row{"Row", "Seat", "Seat ID", "Type", "Price"})
		for _, row := range rows {
			seats := row.Seats
			sort.Slice(seats, func(i, j int) bool { return seats[i].Place < seats[j].Place })
			for _, seat := range seats {
				ticketType, ok := types[seat.TicketTypeId]
				if !ok {
					fmt.Fprintf(os.Stderr, "seat %s references unknown ticket type %s\n", seat.SeatId, seat.TicketTypeId)
					os.Exit(1)
				}
				w.AppendRow(table.Row{
					row.SeatRow,
					seat.Place,
					seat.SeatId,
					ticketType.Name,
					fmt.Sprintf("%.2f %s", ticketType.Price, event.CurrencyIso),
				})
			}
		}
		w.Render()
	},
}
