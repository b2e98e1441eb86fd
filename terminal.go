package askline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// Terminal abstracts the interactive line source and prompt writer pair for
// testability and cross-platform compatibility.
//
// This interface is the seam between the retry logic and the platform:
// implementations deliver one line of already-delimited input per read and
// write prompt text to the interactive output. The Asker never touches the
// process streams directly, so test doubles and non-terminal hosts can be
// injected via NewWithTerminal.
//
// Implementations:
//   - ttyTerminal: drives a real terminal through go-tty (used by New when
//     stdin is a terminal)
//   - readerTerminal: wraps arbitrary io.Reader/io.Writer streams (pipes,
//     CI, tests), created with NewReaderTerminal
type Terminal interface {
	ReadLine() (string, error)     // Deliver the next line, line separator stripped
	ReadPassword() (string, error) // Read a line without echoing typed characters
	WriteString(s string) error    // Write literal text to the interactive output now
	Close() error                  // Release terminal resources
}

// ttyTerminal implements Terminal against a real terminal.
//
// Line reading is delegated to go-tty, which owns echoing, backspace handling
// and the platform details of cooked input. Password reads go through
// golang.org/x/term on the tty's input descriptor so typed characters are
// never echoed. Output uses go-colorable on Windows for ANSI escape sequence
// support, the same arrangement the rest of the mattn terminal stack expects.
type ttyTerminal struct {
	tty    *tty.TTY
	output io.Writer
	closed bool // Track if terminal is already closed to prevent double-close panic on Windows
}

func newTTYTerminal() (*ttyTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	var output io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		// Use colorable for Windows ANSI color support
		output = colorable.NewColorableStdout()
	}

	return &ttyTerminal{tty: t, output: output}, nil
}

func (t *ttyTerminal) ReadLine() (string, error) {
	return t.tty.ReadString()
}

func (t *ttyTerminal) ReadPassword() (string, error) {
	line, err := term.ReadPassword(int(t.tty.Input().Fd()))
	if err != nil {
		return "", err
	}
	// The user's Enter is not echoed in no-echo mode; emit the newline so the
	// next prompt starts on its own line.
	fmt.Fprint(t.output, "\n")
	return string(line), nil
}

func (t *ttyTerminal) WriteString(s string) error {
	_, err := fmt.Fprint(t.output, s)
	return err
}

func (t *ttyTerminal) Close() error {
	// Prevent double-close which causes panic on Windows
	if t.closed {
		return nil
	}
	t.closed = true
	if t.tty != nil {
		return t.tty.Close()
	}
	return nil
}

// readerTerminal implements Terminal over plain streams. It backs piped
// stdin and test setups where no terminal is available. A plain reader has
// no echo to suppress, so ReadPassword reads a line like ReadLine does.
type readerTerminal struct {
	reader *bufio.Reader
	output io.Writer
}

// NewReaderTerminal creates a Terminal over arbitrary streams. It is the
// injection point for tests and for hosts whose input does not come from a
// real terminal:
//
//	terminal := askline.NewReaderTerminal(strings.NewReader("yes\n"), os.Stdout)
//	asker := askline.NewWithTerminal(terminal)
func NewReaderTerminal(r io.Reader, w io.Writer) Terminal {
	return &readerTerminal{
		reader: bufio.NewReader(r),
		output: w,
	}
}

func (t *readerTerminal) ReadLine() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil {
		// A final line without a trailing separator still counts as a line.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *readerTerminal) ReadPassword() (string, error) {
	return t.ReadLine()
}

func (t *readerTerminal) WriteString(s string) error {
	_, err := fmt.Fprint(t.output, s)
	return err
}

func (t *readerTerminal) Close() error {
	return nil
}
