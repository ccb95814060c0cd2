// README: Command-line client; runs the estimate, confirm and history flows against the ride API.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"rideapp/internal/config"
	"rideapp/internal/logger"
	"rideapp/internal/messages"
	"rideapp/internal/modules/estimate"
	"rideapp/internal/modules/history"
	"rideapp/internal/modules/ride"
	"rideapp/internal/rideapi"
	"rideapp/internal/state"
)

const usage = `usage: ride-cli <command> [flags]

commands:
  estimate  -customer ID -origin ADDR -destination ADDR
  confirm   -customer ID -origin ADDR -destination ADDR -driver ID
  history   -customer ID -driver-id ID [-driver-name NAME]
`

type app struct {
	rides    *ride.Repository
	messages messages.Catalog
	log      logger.Logger
	out      io.Writer
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	os.Exit(run(os.Args[1], os.Args[2:], os.Stdout, os.Stderr))
}

func run(cmd string, args []string, stdout, stderr io.Writer) int {
	defaults, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	baseURL := fs.String("base-url", defaults.API.BaseURL, "ride API base URL")
	timeout := fs.Duration("timeout", defaults.API.Timeout, "request timeout")
	logLevel := fs.String("log-level", defaults.Log.Level, "log level (DEBUG, INFO, WARN, ERROR)")
	customer := fs.String("customer", "", "customer id")
	origin := fs.String("origin", "", "origin address")
	destination := fs.String("destination", "", "destination address")
	driver := fs.Int("driver", 0, "driver option id to confirm")
	driverID := fs.Int("driver-id", 0, "driver id for history")
	driverName := fs.String("driver-name", history.AllDrivers, "driver name filter for history")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if err := config.ValidateBaseURL(*baseURL); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := logger.New(strings.ToUpper(*logLevel), stderr)
	catalog := messages.Default()
	api := rideapi.NewClient(strings.TrimRight(*baseURL, "/"), *timeout, log)
	a := &app{
		rides:    ride.NewRepository(api, catalog, log),
		messages: catalog,
		log:      log,
		out:      stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	scope := state.NewScope(ctx)
	defer scope.Close()

	var msg string
	switch cmd {
	case "estimate":
		msg = a.estimate(scope, *customer, *origin, *destination, 0)
	case "confirm":
		msg = a.estimate(scope, *customer, *origin, *destination, *driver)
	case "history":
		msg = a.history(scope, *customer, *driverID, *driverName)
	default:
		fmt.Fprint(stderr, usage)
		return 2
	}
	if msg != "" {
		fmt.Fprintln(stderr, msg)
		return 1
	}
	return 0
}

// estimate prices the trip and, when driver is set, confirms that option.
// It returns the user-facing message of a failed step.
func (a *app) estimate(scope *state.Scope, customer, origin, destination string, driver int) string {
	sess := estimate.NewSession(scope, a.rides, a.messages, a.log)

	stop := watch(sess.PriceCalculation(), "estimativa", a.out)
	sess.FetchRidePrices(customer, origin, destination)
	sess.Wait()
	stop()

	priced := sess.PriceCalculation().Value()
	if priced.Status == state.StatusError {
		return priced.Message
	}
	printEstimate(a.out, sess)
	if driver == 0 {
		return ""
	}

	stop = watch(sess.RideConfirmation(), "confirmação", a.out)
	sess.ConfirmOption(driver)
	sess.Wait()
	stop()

	confirmed := sess.RideConfirmation().Value()
	if confirmed.Status == state.StatusError {
		return confirmed.Message
	}
	opt, _ := sess.Option(sess.DriverID())
	fmt.Fprintf(a.out, "\nViagem confirmada com %s.\n", opt.Name)
	return ""
}

func (a *app) history(scope *state.Scope, customer string, driverID int, driverName string) string {
	sess := history.NewSession(scope, a.rides, a.messages, a.log)

	stop := watch(sess.RideHistory(), "histórico", a.out)
	sess.FetchRideHistory(customer, driverID)
	sess.Wait()
	stop()

	got := sess.RideHistory().Value()
	if got.Status == state.StatusError {
		return got.Message
	}
	printHistory(a.out, history.Filter(got.Data.Rides, driverName), a.messages)
	return ""
}

// watch prints loading transitions of flow until stop is called. States
// buffered at stop are still drained.
func watch[T any](flow *state.Flow[T], label string, out io.Writer) (stop func()) {
	ch, cancel := flow.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range ch {
			if s.Status == state.StatusLoading {
				fmt.Fprintf(out, "carregando %s...\n", label)
			}
		}
	}()
	return func() {
		cancel()
		<-done
	}
}
