package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombosCmdRejectsBadNotation(t *testing.T) {
	cmd := &CombosCmd{Notation: "ZZ"}
	assert.Error(t, cmd.Run())
}

func TestExportCmdRejectsBadNotation(t *testing.T) {
	cmd := &ExportCmd{Notation: "AKs-QJs"}
	assert.Error(t, cmd.Run(), "spans must share a high card")
}

func TestCombosCmdAcceptsRange(t *testing.T) {
	cmd := &CombosCmd{Notation: "QQ+,AKs"}
	require.NoError(t, cmd.Run())
}
