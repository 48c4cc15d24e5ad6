package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/MKhiriev/go-cinema-client/internal/app"
	"github.com/MKhiriev/go-cinema-client/models"
)

// Output shows the reader's notices and input errors to the user.
type Output interface {
	Error(error)
	Message(string)
}

// Reader prompts the user and reads commands and identifiers.
type Reader struct {
	src LineSource
	out Output
}

func NewReader(src LineSource, out Output) *Reader {
	return &Reader{src: src, out: out}
}

// ReadLine reads one line at the main prompt. It returns ErrEndOfInput when
// the input is exhausted. Ctrl-C at the prompt discards the line and yields
// an empty one.
func (r *Reader) ReadLine() (string, error) {
	return r.readLine(app.MsgPrompt)
}

// ReadIdentifierList collects identifiers for the axis named label, one per
// line, until a blank line. No identifiers at all yields a nil (absent)
// list.
//
// A malformed line stops the collection: the parse error is shown and the
// returned error matches both ErrAborted and *InputParseError. End of input
// shows a notice and returns ErrEndOfInput.
func (r *Reader) ReadIdentifierList(label string) (models.IdentifierList, error) {
	r.out.Message(fmt.Sprintf(app.MsgEnterIdentifiers, label))

	var ids models.IdentifierList
	for {
		line, err := r.readLine(app.MsgIdentifierPrompt)
		if err != nil {
			if errors.Is(err, ErrEndOfInput) {
				r.out.Message(app.MsgEndOfInputDuringIdentifiers)
			}
			return nil, err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return ids, nil
		}

		id, err := parseIdentifier(line)
		if err != nil {
			r.out.Error(err)
			return nil, fmt.Errorf("%w: %w", ErrAborted, err)
		}
		ids = append(ids, id)
	}
}

// Close releases the underlying line source.
func (r *Reader) Close() error {
	return r.src.Close()
}

func (r *Reader) readLine(prompt string) (string, error) {
	r.src.SetPrompt(prompt)

	line, err := r.src.Readline()
	switch {
	case err == nil:
		return line, nil
	case errors.Is(err, readline.ErrInterrupt):
		return "", nil
	case errors.Is(err, io.EOF):
		return "", ErrEndOfInput
	default:
		return "", fmt.Errorf("read line: %w", err)
	}
}

// ParseCommand splits line on whitespace into a command name and an
// optional argument. Tokens after the argument are ignored. It reports false
// for a blank line.
func ParseCommand(line string) (models.Command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return models.Command{}, false
	}

	cmd := models.Command{Name: fields[0]}
	if len(fields) > 1 {
		cmd.Argument = fields[1]
		cmd.HasArgument = true
	}

	return cmd, true
}

// ParseInt32 parses s as a base-10 32-bit signed integer.
func ParseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &InputParseError{Input: s, Err: err}
	}
	return int32(v), nil
}

var errNegativeIdentifier = errors.New("identifier must not be negative")

func parseIdentifier(s string) (int32, error) {
	id, err := ParseInt32(s)
	if err != nil {
		return 0, err
	}
	if id < 0 {
		return 0, &InputParseError{Input: s, Err: errNegativeIdentifier}
	}
	return id, nil
}
