package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the base path for on-disk storage.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the storage location from a .oneiro config file or
// ONEIRO_* environment variables, defaulting to ~/.oneiro.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.oneiro.db")
	viper.SetConfigName(".oneiro") // .yaml is implicit
	viper.SetEnvPrefix("ONEIRO")
	viper.AutomaticEnv()

	if override := os.Getenv("ONEIRO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
