package handlers

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minesweep/internal/game"
	"minesweep/internal/mines"
)

func newTestController() *game.Controller {
	return game.New(mines.Beginner, rand.New(rand.NewPCG(1, 2)), nil)
}

func TestExecuteCommandErrors(t *testing.T) {
	ctrl := newTestController()
	tests := []struct {
		name    string
		command string
	}{
		{"unknown command", "x 1 2"},
		{"missing arguments", "r 1"},
		{"extra arguments", "m 1 2 3"},
		{"non-numeric row", "r one 2"},
		{"non-numeric col", "r 1 two"},
		{"bad difficulty", "n impossible"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := executeCommand(ctrl, test.command)
			assert.Error(t, err)
		})
	}
}

func TestExecuteCommandMark(t *testing.T) {
	ctrl := newTestController()
	_, err := executeCommand(ctrl, "m 0 0")
	require.NoError(t, err)
	assert.Equal(t, mines.ViewFlag, ctrl.Snapshot().Grid[0])
}

func TestExecuteCommandPreview(t *testing.T) {
	ctrl := newTestController()
	preview, err := executeCommand(ctrl, "p 0 0")
	require.NoError(t, err)
	// covered cell: preview is defined and empty
	assert.NotNil(t, preview)
	assert.Empty(t, preview)
}

func TestExecuteCommandNewGame(t *testing.T) {
	ctrl := newTestController()
	_, err := executeCommand(ctrl, "m 0 0")
	require.NoError(t, err)

	_, err = executeCommand(ctrl, "n expert")
	require.NoError(t, err)
	snap := ctrl.Snapshot()
	assert.Equal(t, 16, snap.Rows)
	assert.Equal(t, 30, snap.Cols)
	assert.Equal(t, 99, snap.MineCount)
	assert.Equal(t, mines.ViewCovered, snap.Grid[0])
}

func TestExecuteCommandRevealTerminates(t *testing.T) {
	ctrl := newTestController()
	// whitespace around a command is tolerated
	_, err := executeCommand(ctrl, "  r 4 4 ")
	require.NoError(t, err)
}
