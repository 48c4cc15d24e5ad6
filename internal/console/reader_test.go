// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"errors"
	"io"
	"strconv"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cinema-client/models"
)

// fakeSource replays scripted lines and records the prompt of every read.
type fakeSource struct {
	lines   []string
	errs    map[int]error
	prompt  string
	prompts []string
	reads   int
	closed  bool
}

func (f *fakeSource) Readline() (string, error) {
	f.prompts = append(f.prompts, f.prompt)
	i := f.reads
	f.reads++
	if err, ok := f.errs[i]; ok {
		return "", err
	}
	if i >= len(f.lines) {
		return "", io.EOF
	}
	return f.lines[i], nil
}

func (f *fakeSource) SetPrompt(prompt string) { f.prompt = prompt }
func (f *fakeSource) Close() error            { f.closed = true; return nil }

// recordingOutput captures what the reader shows to the user.
type recordingOutput struct {
	errors   []error
	messages []string
}

func (o *recordingOutput) Error(err error)    { o.errors = append(o.errors, err) }
func (o *recordingOutput) Message(msg string) { o.messages = append(o.messages, msg) }

func newTestReader(lines ...string) (*Reader, *fakeSource, *recordingOutput) {
	src := &fakeSource{lines: lines}
	out := &recordingOutput{}
	return NewReader(src, out), src, out
}

// ── ReadLine ─────────────────────────────────────────────────────────────────

func TestReadLine(t *testing.T) {
	r, src, _ := newTestReader("films")

	line, err := r.ReadLine()

	require.NoError(t, err)
	assert.Equal(t, "films", line)
	assert.Equal(t, []string{">>> "}, src.prompts)
}

func TestReadLine_EndOfInput(t *testing.T) {
	r, _, _ := newTestReader()

	_, err := r.ReadLine()

	assert.ErrorIs(t, err, ErrEndOfInput)
}

func TestReadLine_InterruptYieldsEmptyLine(t *testing.T) {
	r, src, _ := newTestReader("films")
	src.errs = map[int]error{0: readline.ErrInterrupt}

	line, err := r.ReadLine()

	require.NoError(t, err)
	assert.Empty(t, line)
}

func TestReadLine_SourceFailure(t *testing.T) {
	r, src, _ := newTestReader()
	boom := errors.New("tty gone")
	src.errs = map[int]error{0: boom}

	_, err := r.ReadLine()

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrEndOfInput)
}

// ── ReadIdentifierList ───────────────────────────────────────────────────────

func TestReadIdentifierList(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  models.IdentifierList
	}{
		{name: "immediate blank line is absent", lines: []string{""}, want: nil},
		{name: "whitespace line ends reading", lines: []string{"1", "   \t"}, want: models.IdentifierList{1}},
		{name: "keeps order and duplicates", lines: []string{"3", "1", "3", ""}, want: models.IdentifierList{3, 1, 3}},
		{name: "surrounding spaces", lines: []string{"  7 ", ""}, want: models.IdentifierList{7}},
		{name: "max int32", lines: []string{"2147483647", ""}, want: models.IdentifierList{2147483647}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestReader(tt.lines...)

			ids, err := r.ReadIdentifierList("film")

			require.NoError(t, err)
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestReadIdentifierList_Prompts(t *testing.T) {
	r, src, out := newTestReader("1", "")

	_, err := r.ReadIdentifierList("venue")

	require.NoError(t, err)
	assert.Equal(t, []string{"    Enter venue identifiers (empty line stops the reading)"}, out.messages)
	assert.Empty(t, out.errors)
	assert.Equal(t, []string{"    >>> ", "    >>> "}, src.prompts)
}

func TestReadIdentifierList_Aborted(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "not a number", line: "abc"},
		{name: "negative", line: "-1"},
		{name: "overflow", line: "2147483648"},
		{name: "fraction", line: "1.5"},
		{name: "two numbers", line: "1 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, src, out := newTestReader("5", tt.line, "6", "")

			ids, err := r.ReadIdentifierList("film")

			require.Error(t, err)
			assert.Nil(t, ids)
			assert.ErrorIs(t, err, ErrAborted)

			var parseErr *InputParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.line, parseErr.Input)
			require.Len(t, out.errors, 1)
			assert.Same(t, parseErr, errorsAsParse(t, out.errors[0]))
			assert.Equal(t, 2, src.reads, "reading must stop at the malformed line")
		})
	}
}

func TestReadIdentifierList_EndOfInput(t *testing.T) {
	r, _, out := newTestReader("1", "2")

	ids, err := r.ReadIdentifierList("film")

	assert.Nil(t, ids)
	assert.ErrorIs(t, err, ErrEndOfInput)
	require.NotEmpty(t, out.messages)
	assert.Equal(t, "EOF, don't do it again =(", out.messages[len(out.messages)-1])
}

// ── ParseCommand ─────────────────────────────────────────────────────────────

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   models.Command
		wantOK bool
	}{
		{name: "empty", line: "", wantOK: false},
		{name: "blank", line: "  \t ", wantOK: false},
		{name: "name only", line: "films", want: models.Command{Name: "films"}, wantOK: true},
		{
			name:   "with argument",
			line:   "screenings 42",
			want:   models.Command{Name: "screenings", Argument: "42", HasArgument: true},
			wantOK: true,
		},
		{
			name:   "extra tokens ignored",
			line:   "  screenings   42 43 ",
			want:   models.Command{Name: "screenings", Argument: "42", HasArgument: true},
			wantOK: true,
		},
		{name: "case preserved", line: "FILMS", want: models.Command{Name: "FILMS"}, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCommand(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── ParseInt32 ───────────────────────────────────────────────────────────────

func TestParseInt32(t *testing.T) {
	v, err := ParseInt32("-2147483648")
	require.NoError(t, err)
	assert.Equal(t, int32(-2147483648), v)

	_, err = ParseInt32("2147483648")
	var parseErr *InputParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = ParseInt32("x")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestReaderClose(t *testing.T) {
	r, src, _ := newTestReader()
	require.NoError(t, r.Close())
	assert.True(t, src.closed)
}

func errorsAsParse(t *testing.T, err error) *InputParseError {
	t.Helper()
	var parseErr *InputParseError
	require.ErrorAs(t, err, &parseErr)
	return parseErr
}
