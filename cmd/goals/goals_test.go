package goals_test

import (
	"path/filepath"
	"testing"

	"finai/cmd/goals"
	"finai/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "goals", goals.Cmd.Use)
	assert.Contains(t, goals.Cmd.Short, "savings goal")
	assert.Contains(t, goals.Cmd.Long, "no history")
	assert.NotNil(t, goals.Cmd.Run)
}

func TestGoalsCommand_SetFlag(t *testing.T) {
	setFlag := goals.Cmd.Flags().Lookup("set")
	assert.NotNil(t, setFlag)
	assert.Equal(t, "g", setFlag.Shorthand)
	assert.Equal(t, "", setFlag.DefValue)
}

func TestGoalsCommand_SetGoalPersists(t *testing.T) {
	originalSessionFile := root.SessionFile
	originalSetGoal := root.SetGoal
	defer func() {
		root.SessionFile = originalSessionFile
		root.SetGoal = originalSetGoal
	}()

	root.SessionFile = filepath.Join(t.TempDir(), "session.yaml")
	root.SetGoal = "2500"

	assert.NotPanics(t, func() {
		goals.Cmd.Run(&cobra.Command{}, []string{})
	})

	session, err := root.OpenStore().Load()
	require.NoError(t, err)
	assert.Equal(t, "2500.00", session.Profile.SavingsGoal.StringFixed(2))
}

func TestGoalsCommand_NegativeGoalClampedToZero(t *testing.T) {
	originalSessionFile := root.SessionFile
	originalSetGoal := root.SetGoal
	defer func() {
		root.SessionFile = originalSessionFile
		root.SetGoal = originalSetGoal
	}()

	root.SessionFile = filepath.Join(t.TempDir(), "session.yaml")
	root.SetGoal = "-100"

	assert.NotPanics(t, func() {
		goals.Cmd.Run(&cobra.Command{}, []string{})
	})

	session, err := root.OpenStore().Load()
	require.NoError(t, err)
	assert.True(t, session.Profile.SavingsGoal.IsZero())
}
