package config

import (
	"fmt"
	"log"
	"os"

	"github.com/decker502/nuclear-survival/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the embedded location of the game configuration.
const DefaultConfigPath = "data/game.yaml"

// GameConfig holds every tunable of a run.
//
// Configuration file: data/game.yaml
type GameConfig struct {
	Window WindowConfig `yaml:"window"`
	Field  FieldConfig  `yaml:"field"`
	Player PlayerConfig `yaml:"player"`
	Bullet BulletConfig `yaml:"bullet"`
	Zombie ZombieConfig `yaml:"zombie"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Audio  AudioConfig  `yaml:"audio"`
}

// WindowConfig describes the logical screen and the tick rate.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"` // target ticks per second
}

// FieldConfig describes the scrollable square field.
type FieldConfig struct {
	Size float64 `yaml:"size"` // side length in pixels
}

// PlayerConfig describes the player fixed at the screen centre.
type PlayerConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`  // field shift per tick while a movement key is held
	Health int     `yaml:"health"` // health at the start of a run
}

// BulletConfig describes projectiles.
type BulletConfig struct {
	Radius     float64 `yaml:"radius"`
	Speed      float64 `yaml:"speed"`
	CooldownMs int64   `yaml:"cooldownMs"`

	// CullOffField removes bullets that left the field far enough that they
	// can no longer touch a zombie.
	CullOffField bool `yaml:"cullOffField"`
}

// ZombieConfig describes zombies.
type ZombieConfig struct {
	Radius            float64 `yaml:"radius"`
	Speed             float64 `yaml:"speed"`
	Health            int     `yaml:"health"`
	ContactCooldownMs int64   `yaml:"contactCooldownMs"`
}

// SpawnConfig describes the spawn-interval ramp.
type SpawnConfig struct {
	// InitialInterval is measured in frames. Zero spawns a zombie every frame.
	InitialInterval float64 `yaml:"initialInterval"`
	DecayPerFrame   float64 `yaml:"decayPerFrame"`
}

// AudioConfig describes the optional audio resources.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	MusicPath   string  `yaml:"musicPath"`
	MusicVolume float64 `yaml:"musicVolume"`
	GunshotPath string  `yaml:"gunshotPath"`
	SoundVolume float64 `yaml:"soundVolume"`
}

// DefaultGameConfig returns the built-in configuration.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Title:  "Zombie Shooter Game",
			Width:  800,
			Height: 600,
			TPS:    60,
		},
		Field: FieldConfig{Size: 1000},
		Player: PlayerConfig{
			Radius: 30,
			Speed:  5,
			Health: 3,
		},
		Bullet: BulletConfig{
			Radius:       5,
			Speed:        10,
			CooldownMs:   200,
			CullOffField: true,
		},
		Zombie: ZombieConfig{
			Radius:            25,
			Speed:             2,
			Health:            5,
			ContactCooldownMs: 1000,
		},
		Spawn: SpawnConfig{
			InitialInterval: 120,
			DecayPerFrame:   0.01,
		},
		Audio: AudioConfig{
			Enabled:     true,
			MusicPath:   "assets/audio/music.mp3",
			MusicVolume: 0.7,
			GunshotPath: "assets/audio/gunshot.wav",
			SoundVolume: 1.0,
		},
	}
}

// LoadGameConfig loads a YAML game configuration from disk.
//
// Parameters:
//   - path: configuration file path (e.g. "data/game.yaml")
//
// Returns:
//   - *GameConfig: the validated configuration
//   - error: read, parse or validation failure
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig parses YAML bytes on top of DefaultGameConfig, so a file
// only needs to list the values it changes.
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate checks that every value is usable by the simulation.
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be > 0, got %d", c.Window.TPS)
	}
	if c.Field.Size <= 0 {
		return fmt.Errorf("field.size must be > 0, got %.1f", c.Field.Size)
	}
	if c.Player.Radius <= 0 || c.Bullet.Radius <= 0 || c.Zombie.Radius <= 0 {
		return fmt.Errorf("radii must be > 0 (player=%.1f bullet=%.1f zombie=%.1f)",
			c.Player.Radius, c.Bullet.Radius, c.Zombie.Radius)
	}
	if 2*c.Player.Radius >= c.Field.Size {
		return fmt.Errorf("player diameter %.1f does not fit into field %.1f", 2*c.Player.Radius, c.Field.Size)
	}
	if c.Player.Speed <= 0 || c.Bullet.Speed <= 0 || c.Zombie.Speed <= 0 {
		return fmt.Errorf("speeds must be > 0 (player=%.1f bullet=%.1f zombie=%.1f)",
			c.Player.Speed, c.Bullet.Speed, c.Zombie.Speed)
	}
	if c.Player.Health <= 0 {
		return fmt.Errorf("player.health must be > 0, got %d", c.Player.Health)
	}
	if c.Zombie.Health <= 0 {
		return fmt.Errorf("zombie.health must be > 0, got %d", c.Zombie.Health)
	}
	if c.Bullet.CooldownMs < 0 || c.Zombie.ContactCooldownMs < 0 {
		return fmt.Errorf("cooldowns must be >= 0 (bullet=%d zombie=%d)",
			c.Bullet.CooldownMs, c.Zombie.ContactCooldownMs)
	}
	if c.Spawn.InitialInterval < 0 {
		return fmt.Errorf("spawn.initialInterval must be >= 0, got %.2f", c.Spawn.InitialInterval)
	}
	if c.Spawn.DecayPerFrame < 0 {
		return fmt.Errorf("spawn.decayPerFrame must be >= 0, got %.4f", c.Spawn.DecayPerFrame)
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		return fmt.Errorf("audio.musicVolume must be within [0, 1], got %.2f", c.Audio.MusicVolume)
	}
	if c.Audio.SoundVolume < 0 || c.Audio.SoundVolume > 1 {
		return fmt.Errorf("audio.soundVolume must be within [0, 1], got %.2f", c.Audio.SoundVolume)
	}
	return nil
}

// CenterX returns the player's fixed screen X coordinate.
func (c *GameConfig) CenterX() float64 {
	return float64(c.Window.Width / 2)
}

// CenterY returns the player's fixed screen Y coordinate.
func (c *GameConfig) CenterY() float64 {
	return float64(c.Window.Height / 2)
}

// DefaultFieldOffset returns the field offset that centres the field on the player.
//
// 示例: 800x600 屏幕, 1000 场地 -> (-100, -200)
func (c *GameConfig) DefaultFieldOffset() (x, y float64) {
	half := float64(int(c.Field.Size) / 2)
	return c.CenterX() - half, c.CenterY() - half
}

// Load resolves the configuration used by the binaries.
// A non-empty path is read from disk. Otherwise the embedded data/game.yaml is
// used, or the built-in defaults when no embedded data was registered.
func Load(path string) (*GameConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading %s", path)
		return LoadGameConfig(path)
	}
	if !embedded.IsInitialized() {
		log.Printf("[Config] Embedded data not initialized, using defaults")
		return DefaultGameConfig(), nil
	}
	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded %s: %w", DefaultConfigPath, err)
	}
	log.Printf("[Config] Loading embedded %s", DefaultConfigPath)
	return ParseGameConfig(data)
}
