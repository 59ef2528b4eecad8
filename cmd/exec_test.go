package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStart_RunsAllScenarios(t *testing.T) {
	require.NoError(t, Start())
}
