package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"sync"
	"time"

	"github.com/MKhiriev/go-cinema-client/internal/app"
	"github.com/MKhiriev/go-cinema-client/internal/commands"
	"github.com/MKhiriev/go-cinema-client/internal/config"
	"github.com/MKhiriev/go-cinema-client/internal/console"
	"github.com/MKhiriev/go-cinema-client/internal/logger"
	"github.com/MKhiriev/go-cinema-client/internal/service"
	"github.com/MKhiriev/go-cinema-client/models"
)

// State is the lifecycle state of a session.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

// ErrCommandPanicked wraps a panic recovered from a command.
var ErrCommandPanicked = errors.New("command panicked")

type App struct {
	conn       io.Closer
	svc        service.CinemaService
	reader     LineReader
	dispatcher Dispatcher
	out        Output
	cooldown   time.Duration
	logger     *logger.Logger

	state     State
	closeOnce sync.Once
	closeErr  error

	// sleep pauses for d or until ctx is done.
	sleep func(ctx context.Context, d time.Duration)
}

var _ Client = (*App)(nil)

func NewApp(
	conn io.Closer,
	svc service.CinemaService,
	reader LineReader,
	dispatcher Dispatcher,
	out Output,
	cfg config.ClientSession,
	log *logger.Logger,
) *App {
	return &App{
		conn:       conn,
		svc:        svc,
		reader:     reader,
		dispatcher: dispatcher,
		out:        out,
		cooldown:   cfg.Cooldown,
		logger:     log,
		state:      StateRunning,
		sleep:      sleepContext,
	}
}

// Run drives the session until it terminates. It returns nil for a normal
// end ("exit", end of input, canceled ctx) and an error only when the input
// itself fails or the connection cannot be released.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := a.close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	a.logger.Info().Msg("session started")

	for a.state == StateRunning {
		if ctx.Err() != nil {
			a.logger.Info().Msg("session canceled")
			a.state = StateTerminated
			break
		}

		line, readErr := a.reader.ReadLine()
		if readErr != nil {
			a.state = StateTerminated
			if errors.Is(readErr, console.ErrEndOfInput) {
				a.out.Message(app.MsgEndOfInput)
				break
			}
			return fmt.Errorf("read command: %w", readErr)
		}

		cmd, ok := console.ParseCommand(line)
		if !ok {
			continue
		}

		outcome := a.dispatch(ctx, cmd)
		switch outcome.Kind {
		case commands.OutcomeTerminate:
			a.state = StateTerminated
		case commands.OutcomeError:
			a.out.Error(outcome.Err)
			if errors.Is(outcome.Err, service.ErrCommunication) || errors.Is(outcome.Err, ErrCommandPanicked) {
				a.sleep(ctx, a.cooldown)
			}
		}
	}

	a.logger.Info().Msg("session finished")
	return nil
}

// State reports the current lifecycle state.
func (a *App) State() State {
	return a.state
}

// dispatch turns a panic escaping the command into an error outcome.
func (a *App) dispatch(ctx context.Context, cmd models.Command) (outcome commands.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error().
				Str("command", cmd.Name).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("command panicked")
			outcome = commands.Outcome{
				Kind: commands.OutcomeError,
				Err:  fmt.Errorf("%w: %v", ErrCommandPanicked, r),
			}
		}
	}()

	return a.dispatcher.Dispatch(ctx, a.svc, cmd)
}

func (a *App) close() error {
	a.closeOnce.Do(func() {
		a.closeErr = a.conn.Close()
		if a.closeErr != nil {
			a.logger.Error().Err(a.closeErr).Msg("failed to close connection")
		}
	})
	return a.closeErr
}

func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
