package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/MKhiriev/go-cinema-client/internal/app"
)

// LineSource delivers one line of user input at a time. Readline returns
// io.EOF once the input is exhausted. *readline.Instance satisfies it.
type LineSource interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

var _ LineSource = (*readline.Instance)(nil)

// NewLineSource picks the line source for in: readline with history when in
// is a terminal, a [PipeSource] otherwise. An empty historyFile disables
// history.
func NewLineSource(in *os.File, out io.Writer, historyFile string) (LineSource, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return NewPipeSource(in, out), nil
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          app.MsgPrompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		Stdin:           in,
		Stdout:          out,
	})
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}

	return rl, nil
}

// PipeSource reads newline-terminated lines from a non-interactive reader,
// echoing the prompt before each one. Lines have no length limit.
type PipeSource struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

func NewPipeSource(in io.Reader, out io.Writer) *PipeSource {
	return &PipeSource{
		in:     bufio.NewReader(in),
		out:    out,
		prompt: app.MsgPrompt,
	}
}

// Readline returns the next line without its line terminator. A last line
// with no trailing newline is still returned; io.EOF follows on the next
// call.
func (s *PipeSource) Readline() (string, error) {
	fmt.Fprint(s.out, s.prompt)

	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (s *PipeSource) SetPrompt(prompt string) {
	s.prompt = prompt
}

func (s *PipeSource) Close() error {
	return nil
}
