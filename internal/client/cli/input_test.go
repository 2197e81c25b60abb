package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsNewline(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("jane\n"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Enter user name", &out)

	require.NoError(t, err)
	assert.Equal(t, "jane", got)
	assert.Contains(t, out.String(), "Enter user name")
}

func TestGetSimpleText_PartialLineOnEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("jane"))
	var out bytes.Buffer

	got, err := GetSimpleText(reader, "Enter user name", &out)

	require.NoError(t, err)
	assert.Equal(t, "jane", got)
}

func TestGetSimpleText_EmptyInputReturnsEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	_, err := GetSimpleText(reader, "Enter user name", &out)

	assert.Error(t, err)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) {
		return []byte("hunter22"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(&out)

	require.NoError(t, err)
	assert.Equal(t, []byte("hunter22"), pw)
	assert.Contains(t, out.String(), "Enter password")
}

func TestGetPassword_PropagatesError(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) {
		return nil, errors.New("not a terminal")
	}

	var out bytes.Buffer
	_, err := GetPassword(&out)

	assert.Error(t, err)
}
