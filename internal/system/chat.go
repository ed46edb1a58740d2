package system

import (
	"fmt"
	"strings"

	"github.com/aliciago/server/internal/data"
	"github.com/aliciago/server/internal/data/cache"
	"go.uber.org/zap"
)

// commandPrefix marks a chat message as a command invocation.
const commandPrefix = "//"

// CommandHandler executes one chat command. The returned lines are shown
// only to the sender.
type CommandHandler func(characterUid data.Uid, arguments []string) []string

// CommandManager maps command literals to handlers.
type CommandManager struct {
	commands map[string]CommandHandler
}

func NewCommandManager() *CommandManager {
	return &CommandManager{commands: make(map[string]CommandHandler)}
}

// RegisterCommand binds a literal to a handler. Last write wins.
func (m *CommandManager) RegisterCommand(literal string, handler CommandHandler) {
	m.commands[literal] = handler
}

// HandleCommand dispatches a literal. Unknown literals report back to
// the sender instead of failing.
func (m *CommandManager) HandleCommand(literal string, characterUid data.Uid, arguments []string) []string {
	handler, ok := m.commands[literal]
	if !ok {
		return []string{"Unknown command"}
	}
	return handler(characterUid, arguments)
}

// ChatStore is the slice of the data director the chat system reads and
// writes through.
type ChatStore interface {
	GetCharacter(uid data.Uid) (cache.Record[data.Character], bool)
	SaveCharacter(uid data.Uid)
}

// Presence reports who is currently online, for roster commands.
type Presence interface {
	OnlineCharacterNames() []string
}

// CommandVerdict is the sender-only result of a command message.
type CommandVerdict struct {
	Result []string
}

// ChatVerdict is the outcome of processing one chat line: either a
// message to broadcast, or a command verdict returned to the sender.
type ChatVerdict struct {
	Message        string
	CommandVerdict *CommandVerdict
}

// ChatSystem routes chat lines: messages starting with the command
// prefix go to the command manager, everything else is returned for the
// calling director to broadcast.
type ChatSystem struct {
	store    ChatStore
	presence Presence
	log      *zap.Logger

	commandManager *CommandManager
}

func NewChatSystem(store ChatStore, presence Presence, log *zap.Logger) *ChatSystem {
	s := &ChatSystem{
		store:          store,
		presence:       presence,
		log:            log,
		commandManager: NewCommandManager(),
	}
	s.registerUserCommands()
	s.registerAdminCommands()
	return s
}

// CommandManager exposes the manager so scripted commands can register.
func (s *ChatSystem) CommandManager() *CommandManager {
	return s.commandManager
}

// ProcessChatMessage routes one chat line from a character.
func (s *ChatSystem) ProcessChatMessage(characterUid data.Uid, message string) ChatVerdict {
	if strings.HasPrefix(message, commandPrefix) {
		verdict := s.ProcessCommandMessage(characterUid, message)
		return ChatVerdict{CommandVerdict: &verdict}
	}
	return ChatVerdict{Message: message}
}

// ProcessCommandMessage tokenizes and dispatches a command line.
func (s *ChatSystem) ProcessCommandMessage(characterUid data.Uid, message string) CommandVerdict {
	tokens := strings.Fields(strings.TrimPrefix(message, commandPrefix))
	if len(tokens) == 0 {
		return CommandVerdict{Result: []string{"Unknown command"}}
	}

	literal := tokens[0]
	arguments := tokens[1:]
	return CommandVerdict{
		Result: s.commandManager.HandleCommand(literal, characterUid, arguments),
	}
}

// isGameMaster checks the sender's role. Admin commands silently no-op
// for everyone else.
func (s *ChatSystem) isGameMaster(characterUid data.Uid) bool {
	record, ok := s.store.GetCharacter(characterUid)
	if !ok {
		return false
	}
	var role data.Role
	record.Immutable(func(character *data.Character) {
		role = character.Role.Get()
	})
	return role >= data.RoleGameMaster
}

func (s *ChatSystem) registerUserCommands() {
	s.commandManager.RegisterCommand("help", func(data.Uid, []string) []string {
		return []string{
			"//help - this list",
			"//online - who is online",
		}
	})

	s.commandManager.RegisterCommand("online", func(data.Uid, []string) []string {
		names := s.presence.OnlineCharacterNames()
		if len(names) == 0 {
			return []string{"Nobody is online"}
		}
		return []string{fmt.Sprintf("Online (%d): %s", len(names), strings.Join(names, ", "))}
	})
}

func (s *ChatSystem) registerAdminCommands() {
	s.commandManager.RegisterCommand("give", func(characterUid data.Uid, arguments []string) []string {
		if !s.isGameMaster(characterUid) {
			return nil
		}
		if len(arguments) < 2 || arguments[0] != "carrots" {
			return []string{"Usage: //give carrots <amount>"}
		}
		amount, err := parseInt32(arguments[1])
		if err != nil {
			return []string{"Usage: //give carrots <amount>"}
		}

		record, ok := s.store.GetCharacter(characterUid)
		if !ok {
			return []string{"Character not available"}
		}
		var total int32
		record.Mutable(func(character *data.Character) {
			total = character.Carrots.Get() + amount
			character.Carrots.Set(total)
		})
		s.store.SaveCharacter(characterUid)
		return []string{fmt.Sprintf("Carrots: %d", total)}
	})

	s.commandManager.RegisterCommand("mute", func(characterUid data.Uid, arguments []string) []string {
		if !s.isGameMaster(characterUid) {
			return nil
		}
		if len(arguments) < 1 {
			return []string{"Usage: //mute <character uid>"}
		}
		target, err := parseUid(arguments[0])
		if err != nil {
			return []string{"Usage: //mute <character uid>"}
		}

		record, ok := s.store.GetCharacter(target)
		if !ok {
			return []string{"Character not available"}
		}
		record.Mutable(func(character *data.Character) {
			character.Muted.Set(true)
		})
		s.store.SaveCharacter(target)
		return []string{fmt.Sprintf("Muted %d", target)}
	})

	s.commandManager.RegisterCommand("unmute", func(characterUid data.Uid, arguments []string) []string {
		if !s.isGameMaster(characterUid) {
			return nil
		}
		if len(arguments) < 1 {
			return []string{"Usage: //unmute <character uid>"}
		}
		target, err := parseUid(arguments[0])
		if err != nil {
			return []string{"Usage: //unmute <character uid>"}
		}

		record, ok := s.store.GetCharacter(target)
		if !ok {
			return []string{"Character not available"}
		}
		record.Mutable(func(character *data.Character) {
			character.Muted.Set(false)
		})
		s.store.SaveCharacter(target)
		return []string{fmt.Sprintf("Unmuted %d", target)}
	})
}

func parseInt32(s string) (int32, error) {
	var v int32
	_, err := fmt.Sscanf(s, "%d", &v)
	return v, err
}

func parseUid(s string) (data.Uid, error) {
	var v uint32
	_, err := fmt.Sscanf(s, "%d", &v)
	return v, err
}
