package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Table TableConfig `mapstructure:"table"`
	Data  DataConfig  `mapstructure:"data"`
	Log   LogConfig   `mapstructure:"log"`
}

// TableConfig holds table defaults. Feature switches can be overridden on
// the command line.
type TableConfig struct {
	RowsPerPage        int   `mapstructure:"rows_per_page"`
	RowsPerPageOptions []int `mapstructure:"rows_per_page_options"`
	DefaultWidth       int   `mapstructure:"default_width"`
	CellPx             int   `mapstructure:"cell_px"`
	WithSearch         bool  `mapstructure:"with_search"`
	WithPagination     bool  `mapstructure:"with_pagination"`
	WithColumnFilter   bool  `mapstructure:"with_column_filter"`
	WithActions        bool  `mapstructure:"with_actions"`
}

// DataConfig selects where rows come from. An empty Path and DBPath means
// the built-in reference dataset.
type DataConfig struct {
	Path   string `mapstructure:"path"`
	DBPath string `mapstructure:"db_path"`
}

// LogConfig holds logger settings. Logs go to File while the TUI owns the
// terminal; an empty File discards them.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// DefaultPath is where Load looks when no explicit path is given.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "datatable", "config.toml")
}

// ResolvePath picks the config file: path if set, else DATATABLE_CONFIG,
// else DefaultPath.
func ResolvePath(path string) string {
	if path == "" {
		path = os.Getenv("DATATABLE_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	return path
}

// Load reads configuration from the file chosen by ResolvePath and from env.
// A missing file is not an error; a malformed one is. Env var overrides use
// prefix DATATABLE_.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("table.rows_per_page", 5)
	v.SetDefault("table.rows_per_page_options", []int{2, 5, 10, 15})
	v.SetDefault("table.default_width", 150)
	v.SetDefault("table.cell_px", 10)
	v.SetDefault("table.with_search", false)
	v.SetDefault("table.with_pagination", false)
	v.SetDefault("table.with_column_filter", false)
	v.SetDefault("table.with_actions", false)
	v.SetDefault("data.path", "")
	v.SetDefault("data.db_path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	path = ResolvePath(path)
	v.SetConfigFile(path)

	v.SetEnvPrefix("DATATABLE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !missing(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func missing(err error) bool {
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return true
	}
	return os.IsNotExist(err)
}

// Save writes cfg as TOML to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("table.rows_per_page", cfg.Table.RowsPerPage)
	v.Set("table.rows_per_page_options", cfg.Table.RowsPerPageOptions)
	v.Set("table.default_width", cfg.Table.DefaultWidth)
	v.Set("table.cell_px", cfg.Table.CellPx)
	v.Set("table.with_search", cfg.Table.WithSearch)
	v.Set("table.with_pagination", cfg.Table.WithPagination)
	v.Set("table.with_column_filter", cfg.Table.WithColumnFilter)
	v.Set("table.with_actions", cfg.Table.WithActions)
	v.Set("data.path", cfg.Data.Path)
	v.Set("data.db_path", cfg.Data.DBPath)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
