// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Command names understood by the client. Names are case-sensitive.
const (
	CommandFilms      = "films"
	CommandScreenings = "screenings"
	CommandSubscribe  = "subscribe"
	CommandExit       = "exit"
)

// Command is a single user command parsed from one input line.
//
// Argument is the first token after the command name. HasArgument is
// false when no token followed the name.
type Command struct {
	Name        string
	Argument    string
	HasArgument bool
}
