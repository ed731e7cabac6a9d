package file

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// PromptToken interactively reads the management token without echoing it.
// Returns an error when stdin is not a terminal; non-interactive callers
// must provide the token via config or environment.
func PromptToken() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal, set %s instead", EnvToken)
	}

	fmt.Fprint(os.Stderr, "Management API token: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", fmt.Errorf("empty token")
	}
	return token, nil
}
