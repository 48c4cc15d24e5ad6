// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package commands maps parsed user commands onto cinema service calls and
// renders their results.
package commands

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cinema-client/internal/app"
	"github.com/MKhiriev/go-cinema-client/internal/logger"
	"github.com/MKhiriev/go-cinema-client/internal/service"
	"github.com/MKhiriev/go-cinema-client/internal/utils"
	"github.com/MKhiriev/go-cinema-client/models"
)

// OutcomeKind tells the session loop what to do after a command.
type OutcomeKind int

const (
	// OutcomeContinue keeps the session running.
	OutcomeContinue OutcomeKind = iota
	// OutcomeTerminate ends the session normally.
	OutcomeTerminate
	// OutcomeError reports a failed command; Outcome.Err holds the cause.
	OutcomeError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeContinue:
		return "continue"
	case OutcomeTerminate:
		return "terminate"
	case OutcomeError:
		return "error"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the result of dispatching one command.
type Outcome struct {
	Kind OutcomeKind
	Err  error
}

var (
	continueOutcome  = Outcome{Kind: OutcomeContinue}
	terminateOutcome = Outcome{Kind: OutcomeTerminate}
)

func errorOutcome(err error) Outcome {
	return Outcome{Kind: OutcomeError, Err: err}
}

// IdentifierReader collects identifier lists from the user.
type IdentifierReader interface {
	ReadIdentifierList(label string) (models.IdentifierList, error)
}

// Output renders results and messages to the user.
type Output interface {
	Films([]models.Film)
	Screenings([]models.Screening)
	Error(error)
	Notice(string)
	Message(string)
}

// Handler executes one command against svc.
type Handler func(ctx context.Context, svc service.CinemaService, cmd models.Command) Outcome

// Command describes a registered command.
type Command struct {
	Name        string
	Description string
	Usage       string
	Handler     Handler
}

// Dispatcher routes commands by name to their handlers.
type Dispatcher struct {
	commands map[string]*Command

	reader IdentifierReader
	out    Output
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

func NewDispatcher(reader IdentifierReader, out Output, log *logger.Logger) *Dispatcher {
	d := &Dispatcher{
		commands: make(map[string]*Command),
		reader:   reader,
		out:      out,
		ids:      utils.NewUUIDGenerator(),
		logger:   log,
	}

	d.registerCinemaCommands()
	d.Register(&Command{
		Name:        models.CommandExit,
		Description: "End the session",
		Usage:       "exit",
		Handler:     d.exitHandler,
	})

	return d
}

// Register adds cmd, replacing any command with the same name.
func (d *Dispatcher) Register(cmd *Command) {
	d.commands[cmd.Name] = cmd
}

// Dispatch runs cmd with a fresh trace id attached to ctx. The session
// handle svc is passed per call; the dispatcher keeps no session state.
func (d *Dispatcher) Dispatch(ctx context.Context, svc service.CinemaService, cmd models.Command) Outcome {
	traceID := d.ids.Generate()
	ctx = utils.WithTraceID(ctx, traceID)
	ctx, log := d.logger.WithTraceID(ctx, traceID)

	c, ok := d.commands[cmd.Name]
	if !ok {
		log.Debug().Str("command", cmd.Name).Msg("unknown command")
		d.out.Message(fmt.Sprintf(app.MsgUnknownCommand, cmd.Name))
		return continueOutcome
	}

	log.Info().Str("command", cmd.Name).Str("argument", cmd.Argument).Msg("dispatching command")

	outcome := c.Handler(ctx, svc, cmd)

	event := log.Info()
	if outcome.Err != nil {
		event = log.Warn().Err(outcome.Err)
	}
	event.Str("command", cmd.Name).Stringer("outcome", outcome.Kind).Msg("command finished")

	return outcome
}

func (d *Dispatcher) exitHandler(context.Context, service.CinemaService, models.Command) Outcome {
	d.out.Message(app.MsgExit)
	return terminateOutcome
}
