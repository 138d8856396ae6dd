package main

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	shellwords "github.com/junegunn/go-shellwords"
)

// previewCommand parses a user-supplied preview command string (e.g.
// "bat --color=always {}") the way fzf parses its own --preview argument,
// substitutes {} with the selected candidate, and runs it, returning its
// combined output.
func previewCommand(cmdline, candidate string) (string, error) {
	substituted := strings.ReplaceAll(cmdline, "{}", candidate)
	parser := shellwords.NewParser()
	args, err := parser.Parse(substituted)
	if err != nil {
		return "", fmt.Errorf("preview: parse %q: %w", cmdline, err)
	}
	if len(args) == 0 {
		return "", nil
	}

	cmd := exec.Command(args[0], args[1:]...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return out.String(), fmt.Errorf("preview: run %q: %w", cmdline, err)
	}
	return out.String(), nil
}
