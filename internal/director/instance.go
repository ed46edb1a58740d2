package director

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/aliciago/server/internal/config"
	"github.com/aliciago/server/internal/persist"
	"github.com/aliciago/server/internal/system"
	"go.uber.org/zap"
)

// ServerInstance is the unique owner of the data director, the systems
// and the service directors. Directors hold plain non-owning references
// valid for the instance's lifetime.
type ServerInstance struct {
	cfg *config.Config
	log *zap.Logger

	dataDirector *DataDirector

	otpSystem        *system.OtpSystem
	roomSystem       *system.RoomSystem
	infractionSystem *system.InfractionSystem
	chatSystem       *system.ChatSystem
	scriptEngine     *system.ScriptEngine

	lobbyDirector     *LobbyDirector
	ranchDirector     *RanchDirector
	raceDirector      *RaceDirector
	messengerDirector *MessengerDirector

	shouldRun atomic.Bool
	wg        sync.WaitGroup
}

// NewServerInstance wires the instance from the configuration. The
// resource directory prefixes relative data paths.
func NewServerInstance(cfg *config.Config, resourceDir string, log *zap.Logger) (*ServerInstance, error) {
	instance := &ServerInstance{cfg: cfg, log: log}

	var source persist.Source
	switch cfg.Data.Source {
	case "postgres":
		db, err := persist.NewDB(context.Background(), cfg.Data.Postgres.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("postgres data source: %w", err)
		}
		source = persist.NewPgSource(db)
	default:
		basePath := cfg.Data.File.BasePath
		if resourceDir != "" && !filepath.IsAbs(basePath) {
			basePath = filepath.Join(resourceDir, basePath)
		}
		source = persist.NewFileSource(basePath)
	}

	instance.dataDirector = NewDataDirector(source, log.Named("data"))

	instance.otpSystem = system.NewOtpSystem()
	instance.roomSystem = system.NewRoomSystem()
	instance.infractionSystem = system.NewInfractionSystem(instance.dataDirector)

	instance.lobbyDirector = NewLobbyDirector(
		instance.dataDirector,
		instance.otpSystem,
		instance.roomSystem,
		instance.infractionSystem,
		cfg.Lobby,
		cfg.General.Brand,
		cfg.Net.ScrambleOutbound,
		log.Named("lobby"),
	)

	instance.chatSystem = system.NewChatSystem(
		instance.dataDirector,
		instance.lobbyDirector,
		log.Named("chat"),
	)

	scriptsDir := "scripts"
	if resourceDir != "" {
		scriptsDir = filepath.Join(resourceDir, scriptsDir)
	}
	scriptEngine, err := system.NewScriptEngine(
		scriptsDir, instance.chatSystem.CommandManager(), log.Named("scripts"))
	if err != nil {
		return nil, fmt.Errorf("chat scripts: %w", err)
	}
	instance.scriptEngine = scriptEngine

	instance.ranchDirector = NewRanchDirector(
		instance.dataDirector,
		instance.otpSystem,
		instance.chatSystem,
		cfg.Ranch,
		cfg.Net.ScrambleOutbound,
		log.Named("ranch"),
	)
	instance.raceDirector = NewRaceDirector(
		instance.dataDirector,
		instance.otpSystem,
		instance.roomSystem,
		instance.chatSystem,
		cfg.Race,
		cfg.Net.ScrambleOutbound,
		log.Named("race"),
	)
	instance.messengerDirector = NewMessengerDirector(
		instance.dataDirector,
		instance.otpSystem,
		instance.lobbyDirector,
		cfg.Messenger,
		log.Named("messenger"),
	)

	return instance, nil
}

// Initialize brings the data director and the enabled services up and
// starts the tick loops.
func (s *ServerInstance) Initialize() error {
	if err := s.dataDirector.Initialize(); err != nil {
		return err
	}

	s.shouldRun.Store(true)
	running := func() bool { return s.shouldRun.Load() }

	s.runLoop(func() { s.dataDirector.RunTickLoop(running) })

	if s.cfg.Lobby.Enabled {
		if err := s.lobbyDirector.Initialize(); err != nil {
			return fmt.Errorf("lobby: %w", err)
		}
		s.log.Info("lobby listening", zap.String("address", s.cfg.Lobby.Listen.Addr()))
		s.runLoop(func() { runTickLoop(s.runOtpAndLobbyTick, running, s.log) })
	}
	if s.cfg.Ranch.Enabled {
		if err := s.ranchDirector.Initialize(); err != nil {
			return fmt.Errorf("ranch: %w", err)
		}
		s.log.Info("ranch listening", zap.String("address", s.cfg.Ranch.Listen.Addr()))
		s.runLoop(func() { runTickLoop(s.ranchDirector.Tick, running, s.log) })
	}
	if s.cfg.Race.Enabled {
		if err := s.raceDirector.Initialize(); err != nil {
			return fmt.Errorf("race: %w", err)
		}
		s.log.Info("race listening", zap.String("address", s.cfg.Race.Listen.Addr()))
		s.runLoop(func() { runTickLoop(s.raceDirector.Tick, running, s.log) })
	}
	if s.cfg.Messenger.Enabled {
		if err := s.messengerDirector.Initialize(); err != nil {
			return fmt.Errorf("messenger: %w", err)
		}
		s.log.Info("messenger listening", zap.String("address", s.cfg.Messenger.Listen.Addr()))
		s.runLoop(func() { runTickLoop(s.messengerDirector.Tick, running, s.log) })
	}

	return nil
}

// runOtpAndLobbyTick advances the lobby pipeline and expires stale OTP
// codes on the lobby cadence.
func (s *ServerInstance) runOtpAndLobbyTick() {
	s.otpSystem.Tick()
	s.lobbyDirector.Tick()
}

func (s *ServerInstance) runLoop(loop func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		loop()
	}()
}

// Terminate stops the tick loops, closes every listener and flushes the
// caches.
func (s *ServerInstance) Terminate() {
	s.shouldRun.Store(false)

	s.lobbyDirector.Terminate()
	s.ranchDirector.Terminate()
	s.raceDirector.Terminate()
	s.messengerDirector.Terminate()

	s.wg.Wait()

	s.dataDirector.Terminate()
	s.scriptEngine.Close()
}
