package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScriptEngineRegistersCommands(t *testing.T) {
	dir := t.TempDir()
	script := `
register_command("greet", function(uid, args)
    local name = args[1] or "stranger"
    return { "hello " .. name, "uid " .. uid }
end)
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "greet.lua"), []byte(script), 0o644))

	manager := NewCommandManager()
	engine, err := NewScriptEngine(dir, manager, zap.NewNop())
	require.NoError(t, err)
	defer engine.Close()

	lines := manager.HandleCommand("greet", 7, []string{"rider"})
	require.Equal(t, []string{"hello rider", "uid 7"}, lines)
}

func TestScriptEngineMissingDirectory(t *testing.T) {
	manager := NewCommandManager()
	engine, err := NewScriptEngine(filepath.Join(t.TempDir(), "absent"), manager, zap.NewNop())
	require.NoError(t, err)
	defer engine.Close()

	require.Equal(t, []string{"Unknown command"}, manager.HandleCommand("greet", 1, nil))
}

func TestScriptEngineBadScriptFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.lua"), []byte("this is not lua ("), 0o644))

	_, err := NewScriptEngine(dir, NewCommandManager(), zap.NewNop())
	require.Error(t, err)
}
