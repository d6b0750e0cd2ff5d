// Package seedinput turns user-entered text into an optional seed.
package seedinput

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/blendrand/internal/blend"
)

// PromptText is shown before reading a seed.
const PromptText = "Enter a seed value (press Enter for default): "

// ErrInvalidSeedInput matches any *InvalidSeedError.
var ErrInvalidSeedInput = errors.New("invalid seed input")

// InvalidSeedError reports seed text that is not a base-10 integer.
type InvalidSeedError struct {
	Input string
	Err   error
}

func (e *InvalidSeedError) Error() string {
	return fmt.Sprintf("invalid seed %q: must be a base-10 integer", e.Input)
}

func (e *InvalidSeedError) Unwrap() error { return e.Err }

func (e *InvalidSeedError) Is(target error) bool { return target == ErrInvalidSeedInput }

// Parse converts seed text. Empty or whitespace-only text means no seed.
func Parse(text string) (blend.Seed, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return blend.NoSeed, nil
	}
	v, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return blend.NoSeed, &InvalidSeedError{Input: trimmed, Err: err}
	}
	return blend.SeedOf(v), nil
}

// ReadLine writes the prompt to w and parses one line from r. End of input
// without any text counts as an empty line.
func ReadLine(r io.Reader, w io.Writer) (blend.Seed, error) {
	if _, err := io.WriteString(w, PromptText); err != nil {
		return blend.NoSeed, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return blend.NoSeed, fmt.Errorf("failed to read seed: %w", err)
	}
	return Parse(line)
}
