package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aliciago/server/internal/data"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// ScriptEngine loads Lua chat command scripts. A script contributes
// commands by calling
//
//	register_command("roll", function(uid, args)
//	    return { "rolled a 4" }
//	end)
//
// and the returned lines are shown only to the sender.
type ScriptEngine struct {
	mu    sync.Mutex
	state *lua.LState
	log   *zap.Logger
}

// NewScriptEngine loads every *.lua file under dir and registers the
// contributed commands on the manager. A missing directory simply loads
// nothing.
func NewScriptEngine(dir string, manager *CommandManager, log *zap.Logger) (*ScriptEngine, error) {
	engine := &ScriptEngine{
		state: lua.NewState(),
		log:   log,
	}

	engine.state.SetGlobal("register_command", engine.state.NewFunction(func(L *lua.LState) int {
		literal := L.CheckString(1)
		fn := L.CheckFunction(2)
		manager.RegisterCommand(literal, engine.scriptedHandler(literal, fn))
		log.Debug("registered scripted chat command", zap.String("command", literal))
		return 0
	}))

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return engine, nil
		}
		return nil, fmt.Errorf("read script directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".lua") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := engine.state.DoFile(path); err != nil {
			return nil, fmt.Errorf("load script %s: %w", path, err)
		}
		log.Info("loaded chat script", zap.String("script", entry.Name()))
	}

	return engine, nil
}

// Close releases the Lua state.
func (e *ScriptEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Close()
}

// scriptedHandler wraps a Lua function as a chat command handler. Lua
// state access is serialized.
func (e *ScriptEngine) scriptedHandler(literal string, fn *lua.LFunction) CommandHandler {
	return func(characterUid data.Uid, arguments []string) []string {
		e.mu.Lock()
		defer e.mu.Unlock()

		argTable := e.state.NewTable()
		for _, argument := range arguments {
			argTable.Append(lua.LString(argument))
		}

		err := e.state.CallByParam(lua.P{
			Fn:      fn,
			NRet:    1,
			Protect: true,
		}, lua.LNumber(characterUid), argTable)
		if err != nil {
			e.log.Error("scripted command failed",
				zap.String("command", literal),
				zap.Error(err))
			return []string{"Command failed"}
		}

		result := e.state.Get(-1)
		e.state.Pop(1)

		lines := []string{}
		if table, ok := result.(*lua.LTable); ok {
			table.ForEach(func(_, value lua.LValue) {
				lines = append(lines, value.String())
			})
		}
		return lines
	}
}
