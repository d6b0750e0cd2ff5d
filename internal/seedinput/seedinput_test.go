package seedinput

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/lox/blendrand/internal/blend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    blend.Seed
		wantErr bool
	}{
		{name: "empty", input: "", want: blend.NoSeed},
		{name: "whitespace only", input: " \t\r\n", want: blend.NoSeed},
		{name: "zero is a seed", input: "0", want: blend.SeedOf(0)},
		{name: "positive", input: "12345", want: blend.SeedOf(12345)},
		{name: "negative", input: "-42", want: blend.SeedOf(-42)},
		{name: "surrounding spaces", input: "  7 \n", want: blend.SeedOf(7)},
		{name: "explicit plus", input: "+9", want: blend.SeedOf(9)},
		{name: "letters", input: "abc", wantErr: true},
		{name: "float", input: "1.5", wantErr: true},
		{name: "hex", input: "0x10", wantErr: true},
		{name: "overflow", input: "99999999999999999999", wantErr: true},
		{name: "inner space", input: "1 2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidSeedInput))

				var seedErr *InvalidSeedError
				require.True(t, errors.As(err, &seedErr))
				assert.Equal(t, strings.TrimSpace(tt.input), seedErr.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrorUnwrapsNumError(t *testing.T) {
	t.Parallel()

	_, err := Parse("nope")
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestReadLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    blend.Seed
		wantErr bool
	}{
		{name: "seed line", input: "55\n", want: blend.SeedOf(55)},
		{name: "only first line", input: "1\n2\n", want: blend.SeedOf(1)},
		{name: "empty line", input: "\n", want: blend.NoSeed},
		{name: "eof without newline", input: "8", want: blend.SeedOf(8)},
		{name: "immediate eof", input: "", want: blend.NoSeed},
		{name: "bad input", input: "x\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := ReadLine(strings.NewReader(tt.input), &out)
			assert.Equal(t, PromptText, out.String())
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSeedInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
