package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config provides the location of the activity database.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store location from a .dayplan config file or
// DAYPLAN_* environment variables, defaulting to ~/.dayplan.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.dayplan.db")
	viper.SetConfigName(".dayplan") // .yaml is implicit
	viper.SetEnvPrefix("DAYPLAN")
	viper.AutomaticEnv()

	if override := os.Getenv("DAYPLAN_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
