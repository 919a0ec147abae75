package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCommandDefaults(t *testing.T) {
	isolate(t)

	output, err := executeCommand(t, "config")
	require.NoError(t, err)
	assert.Contains(t, output, "# source: defaults")
	assert.Contains(t, output, "origin: http://127.0.0.1:8080")
	assert.Contains(t, output, "reconnect_delay: 2s")
}

func TestConfigCommandLayers(t *testing.T) {
	isolate(t)
	writeConfig(t, ".pcmon.yaml", "origin: http://file:8080\nprocesses:\n  limit: 4\n")
	t.Setenv("PCMON_RECONNECT_DELAY", "3s")

	output, err := executeCommand(t, "config", "--origin", "https://flag:9443")
	require.NoError(t, err)
	assert.Regexp(t, `# source: .*\.pcmon\.yaml`, output)
	assert.Contains(t, output, "origin: https://flag:9443")
	assert.Contains(t, output, "reconnect_delay: 3s")
	assert.Contains(t, output, "limit: 4")
}

func TestConfigCommandInvalid(t *testing.T) {
	isolate(t)

	_, err := executeCommand(t, "config", "--origin", "ws://nope")
	require.Error(t, err)
}

func TestCompletionCommand(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "# bash completion"},
		{"zsh", "#compdef pcmon"},
		{"fish", "complete -c pcmon"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			isolate(t)
			output, err := executeCommand(t, "completion", tt.shell)
			require.NoError(t, err)
			assert.Contains(t, output, tt.want)
		})
	}
}

func TestCompletionCommandRejectsUnknownShell(t *testing.T) {
	isolate(t)

	_, err := executeCommand(t, "completion", "tcsh")
	require.Error(t, err)
}

func TestRootRejectsArgs(t *testing.T) {
	isolate(t)

	_, err := executeCommand(t, "stray")
	require.Error(t, err)
}
