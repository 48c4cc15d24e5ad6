// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive cinema session.
//
// [App] reads commands one at a time, hands them to the command dispatcher
// and keeps the session alive across failures: a failed remote call or a
// panic inside a command is reported, followed by a short cooldown, and the
// next command is read. The session ends on "exit", at the end of input, or
// when its context is canceled, and the connection to the cinema service is
// released exactly once.
package client
