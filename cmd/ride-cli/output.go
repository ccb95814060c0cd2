package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"rideapp/internal/display"
	"rideapp/internal/maps"
	"rideapp/internal/messages"
	"rideapp/internal/modules/estimate"
	"rideapp/internal/rideapi"
)

func printEstimate(out io.Writer, sess *estimate.Session) {
	est := sess.RideEstimate()
	summary := maps.Summarize(est)
	fmt.Fprintf(out, "\n%s -> %s\n", sess.OriginAddress(), sess.DestinationAddress())
	fmt.Fprintf(out, "Distância: %s  Duração: %s  Pontos da rota: %d\n\n",
		display.Kilometres(summary.DistanceMeters),
		display.Duration(summary.DurationSeconds),
		summary.Points,
	)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMOTORISTA\tVEÍCULO\tAVALIAÇÃO\tVALOR")
	for _, o := range sess.Options() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d/5\t%s\n", o.ID, o.Name, o.Vehicle, o.Review.Rating, display.Money(o.Value))
	}
	_ = w.Flush()
}

func printHistory(out io.Writer, rides []rideapi.Ride, catalog messages.Catalog) {
	if len(rides) == 0 {
		fmt.Fprintln(out, catalog.NoRidesForDriver())
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATA\tMOTORISTA\tORIGEM\tDESTINO\tDISTÂNCIA\tDURAÇÃO\tVALOR")
	for _, r := range rides {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f km\t%s\t%s\n",
			display.DateTime(r.Date), r.Driver.Name, r.Origin, r.Destination, r.Distance, r.Duration, display.Money(r.Value))
	}
	_ = w.Flush()
}
