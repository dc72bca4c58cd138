package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocomet/ride-matching/internal/service/matching"
	"github.com/gocomet/ride-matching/internal/service/registry"
	"github.com/gocomet/ride-matching/internal/service/ridesharing"
	apperrors "github.com/gocomet/ride-matching/pkg/errors"
	"github.com/gocomet/ride-matching/pkg/logger"
)

// Command names
const (
	AddDriver = "ADD_DRIVER"
	AddRider  = "ADD_RIDER"
	Match     = "MATCH"
	StartRide = "START_RIDE"
	StopRide  = "STOP_RIDE"
	Bill      = "BILL"
)

// Result lines that carry no arguments
const (
	ResultNoDriversAvailable = "NO_DRIVERS_AVAILABLE"
	ResultDriversMatched     = "DRIVERS_MATCHED"
	ResultRideStarted        = "RIDE_STARTED"
	ResultRideStopped        = "RIDE_STOPPED"
)

type handlerFunc func(ctx context.Context, args []string) error

// Dispatcher turns command lines into service calls and writes one result
// line per reportable outcome
type Dispatcher struct {
	drivers *registry.DriverService
	riders  *registry.RiderService
	matcher *matching.Service
	rides   *ridesharing.Service
	out     io.Writer
	logger  *logger.Logger

	handlers map[string]handlerFunc
}

// NewDispatcher creates a dispatcher writing results to out
func NewDispatcher(
	drivers *registry.DriverService,
	riders *registry.RiderService,
	matcher *matching.Service,
	rides *ridesharing.Service,
	out io.Writer,
	log *logger.Logger,
) *Dispatcher {
	d := &Dispatcher{
		drivers: drivers,
		riders:  riders,
		matcher: matcher,
		rides:   rides,
		out:     out,
		logger:  log,
	}
	d.handlers = map[string]handlerFunc{
		AddDriver: d.handleAddDriver,
		AddRider:  d.handleAddRider,
		Match:     d.handleMatch,
		StartRide: d.handleStartRide,
		StopRide:  d.handleStopRide,
		Bill:      d.handleBill,
	}
	return d
}

// Run processes every line of r in order. Failures of a single command are
// reported and never stop the stream; only read and write errors are
// returned.
func (d *Dispatcher) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.Execute(ctx, scanner.Text()); err != nil {
			if isWriteError(err) {
				return err
			}
			d.logger.Error("Error processing command",
				logger.Int("line", lineNo),
				logger.String("input", strings.TrimSpace(scanner.Text())),
				logger.Err(err),
			)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}

	if active, err := d.rides.ActiveRides(ctx); err == nil && len(active) > 0 {
		d.logger.Info("Rides still active at end of input", logger.Int("active_rides", len(active)))
	}
	d.logger.Debug("Command stream processed", logger.Int("lines", lineNo))
	return nil
}

// Execute runs a single command line. Routine failures are written as
// result lines and reported as nil.
func (d *Dispatcher) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name := strings.ToUpper(fields[0])
	handler, ok := d.handlers[name]
	if !ok {
		return fmt.Errorf("invalid command: %s", fields[0])
	}

	err := handler(ctx, fields[1:])
	if err == nil {
		return nil
	}

	if appErr := apperrors.GetAppError(err); appErr.Routine() {
		return d.emit(appErr.Code)
	}
	return fmt.Errorf("%s: %w", name, err)
}

func (d *Dispatcher) handleAddDriver(ctx context.Context, args []string) error {
	if err := arity(AddDriver, args, 3); err != nil {
		return err
	}
	x, y, err := parseCoordinates(args[1], args[2])
	if err != nil {
		return err
	}
	return d.drivers.AddDriver(ctx, args[0], x, y)
}

func (d *Dispatcher) handleAddRider(ctx context.Context, args []string) error {
	if err := arity(AddRider, args, 3); err != nil {
		return err
	}
	x, y, err := parseCoordinates(args[1], args[2])
	if err != nil {
		return err
	}
	return d.riders.AddRider(ctx, args[0], x, y)
}

func (d *Dispatcher) handleMatch(ctx context.Context, args []string) error {
	if err := arity(Match, args, 1); err != nil {
		return err
	}
	candidates, err := d.matcher.FindDriverNearRider(ctx, args[0])
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return d.emit(ResultNoDriversAvailable)
	}
	return d.emit(ResultDriversMatched, matching.DriverIDs(candidates)...)
}

func (d *Dispatcher) handleStartRide(ctx context.Context, args []string) error {
	if err := arity(StartRide, args, 3); err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return apperrors.Validation(fmt.Sprintf("invalid driver rank %q", args[1]), err)
	}
	started, err := d.rides.StartRide(ctx, args[0], n, args[2])
	if err != nil {
		return err
	}
	return d.emit(ResultRideStarted, started.ID)
}

func (d *Dispatcher) handleStopRide(ctx context.Context, args []string) error {
	if err := arity(StopRide, args, 4); err != nil {
		return err
	}
	x, y, err := parseCoordinates(args[1], args[2])
	if err != nil {
		return err
	}
	timeTaken, err := parseNumber(args[3])
	if err != nil {
		return err
	}
	stopped, err := d.rides.EndRide(ctx, args[0], x, y, timeTaken)
	if err != nil {
		return err
	}
	return d.emit(ResultRideStopped, stopped.ID)
}

func (d *Dispatcher) handleBill(ctx context.Context, args []string) error {
	if err := arity(Bill, args, 1); err != nil {
		return err
	}
	bill, err := d.rides.Bill(ctx, args[0])
	if err != nil {
		return err
	}
	return d.emitLine(bill.String())
}

type writeError struct{ err error }

func (e *writeError) Error() string { return "failed to write result: " + e.err.Error() }
func (e *writeError) Unwrap() error { return e.err }

func isWriteError(err error) bool {
	var we *writeError
	return errors.As(err, &we)
}

func (d *Dispatcher) emit(result string, args ...string) error {
	if len(args) == 0 {
		return d.emitLine(result)
	}
	return d.emitLine(result + " " + strings.Join(args, " "))
}

func (d *Dispatcher) emitLine(line string) error {
	if _, err := fmt.Fprintln(d.out, line); err != nil {
		return &writeError{err: err}
	}
	return nil
}

func arity(command string, args []string, want int) error {
	if len(args) != want {
		return apperrors.Validation(fmt.Sprintf("Invalid argument count for %s", command), nil)
	}
	return nil
}

func parseCoordinates(xs, ys string) (float64, float64, error) {
	x, err := parseNumber(xs)
	if err != nil {
		return 0, 0, err
	}
	y, err := parseNumber(ys)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, apperrors.Validation(fmt.Sprintf("invalid number %q", s), err)
	}
	return v, nil
}
