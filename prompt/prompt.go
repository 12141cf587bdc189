package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ReadPassword reads a single password from in, masking the input when
// in is a terminal. The prompt is written to out so that stdout stays
// clean for the report.
func ReadPassword(in *os.File, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter password to assess (hidden): ")

	if isatty.IsTerminal(in.Fd()) {
		defer fmt.Fprintln(out)

		raw, err := term.ReadPassword(int(in.Fd()))
		if err != nil {
			return "", err
		}

		return string(raw), nil
	}

	// in is a pipe or a file; nothing is echoed anyway
	reader := bufio.NewReader(in)

	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
