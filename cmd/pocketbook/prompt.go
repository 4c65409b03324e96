package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// promptPassword reads a password from the terminal without echo. When
// stdin is not a terminal (pipes, scripts) it falls back to reading a
// plain line.
func promptPassword(w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		pw, err := readPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(pw), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
