package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk store.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store path from a .scriv config file or the
// SCRIV_PATH environment variable, defaulting to ~/.scriv.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.scriv.db")
	viper.SetConfigName(".scriv") // .yaml is implicit
	viper.SetEnvPrefix("SCRIV")
	viper.AutomaticEnv()

	if override := os.Getenv("SCRIV_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
