// Package config loads the server configuration: a YAML file with
// general/lobby/ranch/race/messenger/data sections, overridden by
// environment variables. Hostnames are resolved to IPv4 at load time.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Listen is one resolved address/port endpoint.
type Listen struct {
	Address net.IP
	Port    uint16
}

// Addr formats the endpoint for net.Listen.
func (l Listen) Addr() string {
	return fmt.Sprintf("%s:%d", l.Address.String(), l.Port)
}

// AdvertisedAddress returns the IPv4 address packed for the service
// advertisements: the u32 value that, written little-endian, puts the
// octets on the wire in network byte order.
func (l Listen) AdvertisedAddress() uint32 {
	v4 := l.Address.To4()
	if v4 == nil {
		return 0
	}
	return uint32(v4[0]) | uint32(v4[1])<<8 | uint32(v4[2])<<16 | uint32(v4[3])<<24
}

// Advertisement holds the next-hop endpoints the lobby hands out.
type Advertisement struct {
	Ranch     Listen
	Race      Listen
	Messenger Listen
}

// LobbyConfig configures the lobby service.
type LobbyConfig struct {
	Enabled       bool
	Listen        Listen
	Advertisement Advertisement
}

// ServiceConfig configures one of the plain services.
type ServiceConfig struct {
	Enabled bool
	Listen  Listen
}

// DataConfig selects and configures the data source.
type DataConfig struct {
	Source string // "file" or "postgres"
	File   struct {
		BasePath string
	}
	Postgres struct {
		DSN string
	}
}

// GeneralConfig holds branding.
type GeneralConfig struct {
	Brand string
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	Level  string
	Format string // "json" or "console"
}

// NetConfig holds protocol knobs.
type NetConfig struct {
	// ScrambleOutbound breaks the reference asymmetry when enabled: the
	// observed client flows expect clientbound payloads unscrambled.
	ScrambleOutbound bool
}

type Config struct {
	General   GeneralConfig
	Lobby     LobbyConfig
	Ranch     ServiceConfig
	Race      ServiceConfig
	Messenger ServiceConfig
	Data      DataConfig
	Logging   LoggingConfig
	Net       NetConfig
}

// yamlConfig is the on-disk shape under the top-level "server" key.
type yamlConfig struct {
	Server struct {
		General struct {
			Brand string `yaml:"brand"`
		} `yaml:"general"`
		Lobby struct {
			Enabled       bool       `yaml:"enabled"`
			Listen        yamlListen `yaml:"listen"`
			Advertisement struct {
				Ranch     yamlListen `yaml:"ranch"`
				Race      yamlListen `yaml:"race"`
				Messenger yamlListen `yaml:"messenger"`
			} `yaml:"advertisement"`
		} `yaml:"lobby"`
		Ranch     yamlService `yaml:"ranch"`
		Race      yamlService `yaml:"race"`
		Messenger yamlService `yaml:"messenger"`
		Data      struct {
			Source string `yaml:"source"`
			File   struct {
				BasePath string `yaml:"basePath"`
			} `yaml:"file"`
			Postgres struct {
				DSN string `yaml:"dsn"`
			} `yaml:"postgres"`
		} `yaml:"data"`
		Logging struct {
			Level  string `yaml:"level"`
			Format string `yaml:"format"`
		} `yaml:"logging"`
		Net struct {
			ScrambleOutbound bool `yaml:"scrambleOutbound"`
		} `yaml:"net"`
	} `yaml:"server"`
}

type yamlListen struct {
	Address string `yaml:"address"`
	Port    uint16 `yaml:"port"`
}

type yamlService struct {
	Enabled bool       `yaml:"enabled"`
	Listen  yamlListen `yaml:"listen"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	localhost := net.IPv4(127, 0, 0, 1)
	cfg := &Config{
		General: GeneralConfig{Brand: "<not set>"},
		Lobby: LobbyConfig{
			Enabled: true,
			Listen:  Listen{Address: localhost, Port: 10030},
			Advertisement: Advertisement{
				Ranch:     Listen{Address: localhost, Port: 10031},
				Race:      Listen{Address: localhost, Port: 10032},
				Messenger: Listen{Address: localhost, Port: 10033},
			},
		},
		Ranch:     ServiceConfig{Enabled: true, Listen: Listen{Address: localhost, Port: 10031}},
		Race:      ServiceConfig{Enabled: true, Listen: Listen{Address: localhost, Port: 10032}},
		Messenger: ServiceConfig{Enabled: true, Listen: Listen{Address: localhost, Port: 10033}},
		Logging:   LoggingConfig{Level: "debug", Format: "console"},
	}
	cfg.Data.Source = "file"
	cfg.Data.File.BasePath = "data"
	return cfg
}

// Load reads the YAML file into the defaults and applies environment
// overrides. A missing file leaves the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err == nil {
		parsed := yamlConfig{}
		if err := yaml.Unmarshal(raw, &parsed); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if err := cfg.apply(&parsed); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.loadFromEnvironment(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(parsed *yamlConfig) error {
	server := &parsed.Server

	if server.General.Brand != "" {
		c.General.Brand = server.General.Brand
	}

	c.Lobby.Enabled = server.Lobby.Enabled
	if err := applyListen(&c.Lobby.Listen, server.Lobby.Listen); err != nil {
		return fmt.Errorf("lobby listen: %w", err)
	}
	if err := applyListen(&c.Lobby.Advertisement.Ranch, server.Lobby.Advertisement.Ranch); err != nil {
		return fmt.Errorf("lobby ranch advertisement: %w", err)
	}
	if err := applyListen(&c.Lobby.Advertisement.Race, server.Lobby.Advertisement.Race); err != nil {
		return fmt.Errorf("lobby race advertisement: %w", err)
	}
	if err := applyListen(&c.Lobby.Advertisement.Messenger, server.Lobby.Advertisement.Messenger); err != nil {
		return fmt.Errorf("lobby messenger advertisement: %w", err)
	}

	c.Ranch.Enabled = server.Ranch.Enabled
	if err := applyListen(&c.Ranch.Listen, server.Ranch.Listen); err != nil {
		return fmt.Errorf("ranch listen: %w", err)
	}
	c.Race.Enabled = server.Race.Enabled
	if err := applyListen(&c.Race.Listen, server.Race.Listen); err != nil {
		return fmt.Errorf("race listen: %w", err)
	}
	c.Messenger.Enabled = server.Messenger.Enabled
	if err := applyListen(&c.Messenger.Listen, server.Messenger.Listen); err != nil {
		return fmt.Errorf("messenger listen: %w", err)
	}

	if server.Data.Source != "" {
		switch server.Data.Source {
		case "file", "postgres":
			c.Data.Source = server.Data.Source
		default:
			return fmt.Errorf("unsupported data source type: %s", server.Data.Source)
		}
	}
	if server.Data.File.BasePath != "" {
		c.Data.File.BasePath = server.Data.File.BasePath
	}
	if server.Data.Postgres.DSN != "" {
		c.Data.Postgres.DSN = server.Data.Postgres.DSN
	}

	if server.Logging.Level != "" {
		c.Logging.Level = server.Logging.Level
	}
	if server.Logging.Format != "" {
		c.Logging.Format = server.Logging.Format
	}

	c.Net.ScrambleOutbound = server.Net.ScrambleOutbound
	return nil
}

func applyListen(target *Listen, parsed yamlListen) error {
	if parsed.Address != "" {
		address, err := ResolveHostName(parsed.Address)
		if err != nil {
			return err
		}
		target.Address = address
	}
	if parsed.Port != 0 {
		target.Port = parsed.Port
	}
	return nil
}

func (c *Config) loadFromEnvironment() error {
	overrides := []struct {
		addressVar string
		portVar    string
		target     *Listen
	}{
		{"LOBBY_SERVER_ADDRESS", "LOBBY_SERVER_PORT", &c.Lobby.Listen},
		{"LOBBY_ADVERTISED_RANCH_ADDRESS", "LOBBY_ADVERTISED_RANCH_PORT", &c.Lobby.Advertisement.Ranch},
		{"LOBBY_ADVERTISED_RACE_ADDRESS", "LOBBY_ADVERTISED_RACE_PORT", &c.Lobby.Advertisement.Race},
		{"RANCH_SERVER_ADDRESS", "RANCH_SERVER_PORT", &c.Ranch.Listen},
		{"RACE_SERVER_ADDRESS", "RACE_SERVER_PORT", &c.Race.Listen},
	}

	for _, override := range overrides {
		if value := os.Getenv(override.addressVar); value != "" {
			address, err := ResolveHostName(value)
			if err != nil {
				return fmt.Errorf("%s: %w", override.addressVar, err)
			}
			override.target.Address = address
		}
		if value := os.Getenv(override.portVar); value != "" {
			port, err := strconv.ParseUint(value, 10, 16)
			if err != nil {
				return fmt.Errorf("%s: %w", override.portVar, err)
			}
			override.target.Port = uint16(port)
		}
	}
	return nil
}

// ResolveHostName parses an IP literal directly, otherwise resolves the
// hostname to its first IPv4 address.
func ResolveHostName(host string) (net.IP, error) {
	if ip := net.ParseIP(host); ip != nil {
		if v4 := ip.To4(); v4 != nil {
			return v4, nil
		}
		return nil, fmt.Errorf("address %s is not IPv4", host)
	}

	addrs, err := net.LookupIP(host)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", host, err)
	}
	for _, addr := range addrs {
		if v4 := addr.To4(); v4 != nil {
			return v4, nil
		}
	}
	return nil, fmt.Errorf("hostname %s does not resolve to any IPv4 address", host)
}
