// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// cinema client's command dispatcher, input reader, and session loop.
//
// All Msg* constants are human-readable strings printed to the user. Keeping
// them in one place ensures consistent wording throughout the session.
package app

const (
	// MsgPrompt is the prompt of the main command loop.
	MsgPrompt = ">>> "

	// MsgIdentifierPrompt is the prompt shown while collecting identifiers
	// for a subscription.
	MsgIdentifierPrompt = "    >>> "

	// MsgEnterIdentifiers introduces identifier collection for one axis.
	// The verb is the axis label ("film" or "venue").
	MsgEnterIdentifiers = "    Enter %s identifiers (empty line stops the reading)"

	// MsgExit is printed when the user ends the session with "exit".
	MsgExit = "exit command, goodbye! =)"

	// MsgEndOfInput is printed when input is exhausted at the command prompt.
	MsgEndOfInput = "EOF, goodbye! =)"

	// MsgEndOfInputDuringIdentifiers is printed when input is exhausted while
	// identifiers are being collected.
	MsgEndOfInputDuringIdentifiers = "EOF, don't do it again =("

	// MsgUnknownCommand is printed for any command outside the vocabulary.
	// The verb is the offending command name.
	MsgUnknownCommand = "Unknown command '%s'"

	// MsgSubscriptionEnded is printed when the screening feed is closed by
	// the service.
	MsgSubscriptionEnded = "subscription closed by the service"

	// MsgSubscriptionCanceled is printed when the screening feed stops
	// because the session is shutting down.
	MsgSubscriptionCanceled = "subscription canceled"

	// MsgNoFilms is printed when the service returns an empty film list.
	MsgNoFilms = "No films."

	// MsgNoScreenings is printed when a screening list is empty.
	MsgNoScreenings = "No screenings."
)
