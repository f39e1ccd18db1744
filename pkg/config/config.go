package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/danhquyen2004/Block-Blast/pkg/game"
	"github.com/danhquyen2004/Block-Blast/pkg/game/constants"
	"github.com/danhquyen2004/Block-Blast/pkg/game/score"
)

// Config is the server configuration, read from BLOCKBLAST_* environment variables.
type Config struct {
	Port        int    `env:"BLOCKBLAST_PORT" envDefault:"9090"`
	LogLevel    string `env:"BLOCKBLAST_LOG_LEVEL" envDefault:"info"`
	TLSCertFile string `env:"BLOCKBLAST_TLS_CERT_FILE"`
	TLSKeyFile  string `env:"BLOCKBLAST_TLS_KEY_FILE"`

	// DatabaseURL selects the repository: sqlite://<path>, postgresql://..., file://<dir> or memory://
	DatabaseURL   string        `env:"BLOCKBLAST_DATABASE_URL" envDefault:"sqlite://blockblast.db"`
	MigrationsDir string        `env:"BLOCKBLAST_MIGRATIONS_DIR" envDefault:"./migrations/sqlite"`
	SaveQueueSize int           `env:"BLOCKBLAST_SAVE_QUEUE_SIZE" envDefault:"100"`
	SaveTimeout   time.Duration `env:"BLOCKBLAST_SAVE_TIMEOUT" envDefault:"5s"`

	SessionIdleTimeout time.Duration `env:"BLOCKBLAST_SESSION_IDLE_TIMEOUT" envDefault:"30m"`
	ReapInterval       time.Duration `env:"BLOCKBLAST_REAP_INTERVAL" envDefault:"1m"`

	Game Game `envPrefix:"BLOCKBLAST_"`
}

// Game holds the rule parameters.
type Game struct {
	BoardWidth          int     `env:"BOARD_WIDTH"`
	BoardHeight         int     `env:"BOARD_HEIGHT"`
	PendingCount        int     `env:"PENDING_COUNT"`
	VariantCount        int     `env:"VARIANT_COUNT"`
	BasePerCell         int     `env:"BASE_PER_CELL"`
	BasePerLine         int     `env:"BASE_PER_LINE"`
	ComboMultiplier     float64 `env:"COMBO_MULTIPLIER"`
	ComboDecayThreshold int     `env:"COMBO_DECAY_THRESHOLD"`
	ComboPerLine        bool    `env:"COMBO_PER_LINE"`
}

// DefaultGame returns the standard rules.
func DefaultGame() Game {
	return Game{
		BoardWidth:          constants.BoardWidth,
		BoardHeight:         constants.BoardHeight,
		PendingCount:        constants.PendingCount,
		VariantCount:        constants.VariantCount,
		BasePerCell:         constants.BasePerCell,
		BasePerLine:         constants.BasePerLine,
		ComboMultiplier:     constants.ComboMultiplier,
		ComboDecayThreshold: constants.ComboDecayThreshold,
		ComboPerLine:        true,
	}
}

// Score returns the scoring rules.
func (g Game) Score() score.Config {
	return score.Config{
		BasePerCell:         g.BasePerCell,
		BasePerLine:         g.BasePerLine,
		ComboMultiplier:     g.ComboMultiplier,
		ComboDecayThreshold: g.ComboDecayThreshold,
		ComboPerLine:        g.ComboPerLine,
	}
}

// Rules returns the session rules.
func (g Game) Rules() game.Rules {
	return game.Rules{
		BoardWidth:   g.BoardWidth,
		BoardHeight:  g.BoardHeight,
		PendingCount: g.PendingCount,
		VariantCount: g.VariantCount,
		Score:        g.Score(),
	}
}

// Validate rejects rule values the engine cannot run with.
func (g Game) Validate() error {
	if g.BoardWidth <= 0 || g.BoardHeight <= 0 {
		return fmt.Errorf("invalid board size %dx%d", g.BoardWidth, g.BoardHeight)
	}
	if g.PendingCount <= 0 {
		return fmt.Errorf("pending count must be positive, got %d", g.PendingCount)
	}
	if g.VariantCount <= 0 {
		return fmt.Errorf("variant count must be positive, got %d", g.VariantCount)
	}
	if g.ComboDecayThreshold <= 0 {
		return fmt.Errorf("combo decay threshold must be positive, got %d", g.ComboDecayThreshold)
	}
	if g.ComboMultiplier < 0 {
		return fmt.Errorf("combo multiplier must not be negative, got %v", g.ComboMultiplier)
	}
	return nil
}

// Validate checks the server settings and the game rules.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.SaveQueueSize <= 0 {
		return fmt.Errorf("save queue size must be positive, got %d", c.SaveQueueSize)
	}
	if c.SaveTimeout < 0 {
		return fmt.Errorf("save timeout must not be negative, got %v", c.SaveTimeout)
	}
	if c.SessionIdleTimeout <= 0 {
		return fmt.Errorf("session idle timeout must be positive, got %v", c.SessionIdleTimeout)
	}
	if c.ReapInterval <= 0 {
		return fmt.Errorf("reap interval must be positive, got %v", c.ReapInterval)
	}
	if err := c.Game.Validate(); err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}
	return nil
}

// Load reads the configuration from the environment on top of the defaults.
func Load() (*Config, error) {
	cfg := &Config{Game: DefaultGame()}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
