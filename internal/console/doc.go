// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package console reads the user's input for the interactive session.
//
// A [LineSource] delivers raw lines: an interactive terminal gets a
// readline instance with history and line editing, piped input gets a plain
// line reader. [Reader] layers the session's prompts on top and turns lines
// into commands ([ParseCommand]) and identifier lists
// ([Reader.ReadIdentifierList]).
package console
