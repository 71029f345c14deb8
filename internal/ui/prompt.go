package ui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	pkgtypes "github.com/vietdv277/smf/pkg/types"
)

// ErrCancelled is returned when the user backs out of a picker
var ErrCancelled = errors.New("selection cancelled")

// NumberedChooser lists candidates as "i: name" and reads a single index.
// There is one prompt and no retry: bad input is an error.
type NumberedChooser struct {
	In  io.Reader
	Out io.Writer
}

// Choose implements the secrets chooser
func (c *NumberedChooser) Choose(prompt string, candidates []pkgtypes.Secret) (int, error) {
	if len(candidates) == 0 {
		return 0, errors.New("no secrets to choose from")
	}

	fmt.Fprintln(c.Out, "Multiple secrets were found")
	for i, s := range candidates {
		fmt.Fprintf(c.Out, "%s %s\n", HintStyle.Render(fmt.Sprintf("%d:", i)), NameStyle.Render(s.Name))
	}
	fmt.Fprintf(c.Out, "\n%s: ", prompt)

	line, err := readLine(c.In)
	if err != nil {
		return 0, err
	}

	idx, err := strconv.Atoi(line)
	if err != nil {
		return 0, errors.New("please enter an integer value")
	}
	maxIdx := len(candidates) - 1
	if idx < 0 || idx > maxIdx {
		return 0, fmt.Errorf("please enter a value between 0 and %d", maxIdx)
	}
	return idx, nil
}

// Confirmer asks a yes/no question on a terminal
type Confirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm prints the question and reports whether the answer was affirmative.
// Read errors other than EOF are returned; EOF counts as "no".
func (c *Confirmer) Confirm(question string) (bool, error) {
	fmt.Fprintf(c.Out, "%s [y/N]? ", question)

	line, err := readLine(c.In)
	if err != nil {
		return false, err
	}
	return IsAffirmative(line), nil
}

// IsAffirmative accepts exactly "y" or anything starting with "yes", any case
func IsAffirmative(resp string) bool {
	resp = strings.TrimSpace(resp)
	return resp == "y" || strings.HasPrefix(strings.ToLower(resp), "yes")
}

// readLine reads up to and including the next newline one byte at a time, so
// consecutive prompts on the same stream each get their own line.
func readLine(r io.Reader) (string, error) {
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			sb.WriteByte(buf[0])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
