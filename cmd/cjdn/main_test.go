package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestConvertCmd(t *testing.T) {
	out, err := execute(t, newConvertCmd(), "gregorian", "julian", "2000", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "1999-12-19\n", out)
}

func TestConvertCmdStrict(t *testing.T) {
	// Without --strict the nonexistent leap day converts arithmetically.
	out, err := execute(t, newConvertCmd(), "gregorian", "julian", "1900", "2", "29")
	require.NoError(t, err)
	assert.Equal(t, "1900-02-17\n", out)

	_, err = execute(t, newConvertCmd(), "--strict", "gregorian", "julian", "1900", "2", "29")
	assert.Error(t, err)
}

func TestFromCmdFieldSelection(t *testing.T) {
	out, err := execute(t, newFromCmd(), "julian", "2451545", "--year", "--day")
	require.NoError(t, err)
	assert.Equal(t, "1999\n", out) // year wins over day
}
