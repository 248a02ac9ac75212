package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal is a terminal used for input. If `nil`, stdin is used.
var Terminal *term.Terminal

// ReadWriter combines reader and writer.
type ReadWriter struct {
	io.Reader
	io.Writer
}

// ReadLine reads a line from the input without trailing '\n'. The prompt is
// written to w unless Terminal is set. Non-terminal stdin (like a pipe) is
// read as is.
func ReadLine(w io.Writer, prompt string) (string, error) {
	trm := Terminal
	if trm == nil {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			fmt.Fprint(w, prompt)
			return readPlainLine(os.Stdin)
		}
		s, err := term.MakeRaw(fd)
		if err != nil {
			return "", err
		}
		defer func() { _ = term.Restore(fd, s) }()
		trm = term.NewTerminal(ReadWriter{Reader: os.Stdin, Writer: w}, "")
	}
	return readLine(trm, prompt)
}

func readLine(trm *term.Terminal, prompt string) (string, error) {
	_, err := trm.Write([]byte(prompt))
	if err != nil {
		return "", err
	}
	return trm.ReadLine()
}

func readPlainLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) != 0) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
