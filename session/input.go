package session

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// KeyInput reads single keystrokes and whole lines from a stream. When the stream is
// a terminal each keystroke is read in raw mode, so no Enter is needed.
type KeyInput struct {
	reader *bufio.Reader
	fd     int
	raw    bool
}

// NewKeyInput wraps r, enabling raw keystroke reads when r is a terminal
func NewKeyInput(r io.Reader) *KeyInput {
	in := &KeyInput{reader: bufio.NewReader(r)}
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		in.fd = int(f.Fd())
		in.raw = true
	}
	return in
}

// ReadKey blocks until one keystroke is available. Line breaks are skipped when the
// input is not a terminal.
func (in *KeyInput) ReadKey() (rune, error) {
	if in.raw {
		state, err := term.MakeRaw(in.fd)
		if err != nil {
			return 0, errors.Wrap(err, "[ReadKey] failed to enter raw mode")
		}
		defer term.Restore(in.fd, state)

		r, _, err := in.reader.ReadRune()
		if err != nil {
			return 0, err
		}
		return r, nil
	}

	for {
		r, _, err := in.reader.ReadRune()
		if err != nil {
			return 0, err
		}
		if r != '\n' && r != '\r' {
			in.skipLineEnding()
			return r, nil
		}
	}
}

// skipLineEnding drops a line ending directly after a keystroke so a following
// ReadLine sees the next line rather than an empty one.
func (in *KeyInput) skipLineEnding() {
	if b, err := in.reader.Peek(1); err == nil && b[0] == '\r' {
		in.reader.Discard(1)
	}
	if b, err := in.reader.Peek(1); err == nil && b[0] == '\n' {
		in.reader.Discard(1)
	}
}

// ReadLine blocks until a full line is available and returns it without the line ending
func (in *KeyInput) ReadLine() (string, error) {
	line, err := in.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
