package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Contains(t, out.String(), "Name?")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "lastline", got)
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	in := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer
	_, err := GetSimpleText(in, "Name?", &out)
	require.Error(t, err)
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out, "Enter password: ")
	require.Error(t, err)
}

func TestGetPassword_PromptWritten(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return []byte("pw"), nil
	}
	var out bytes.Buffer
	pw, err := GetPassword(&out, "Confirm password: ")
	require.NoError(t, err)
	require.Equal(t, []byte("pw"), pw)
	require.Contains(t, out.String(), "Confirm password: ")
}

func TestGetConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"whatever\n", false},
	}

	for _, tc := range tests {
		t.Run(strings.TrimSpace(tc.input)+"_input", func(t *testing.T) {
			in := bufio.NewReader(strings.NewReader(tc.input))
			var out bytes.Buffer
			got, err := GetConfirm(in, "Sure?", &out)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
