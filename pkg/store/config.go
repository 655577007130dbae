package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// LoadConfig resolves the storage location from a .taskview config file or
// TASKVIEW_* environment variables, defaulting to ~/.taskview.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.taskview.db")
	viper.SetConfigName(".taskview") // .yaml is implicit
	viper.SetEnvPrefix("TASKVIEW")
	viper.AutomaticEnv()

	if override := os.Getenv("TASKVIEW_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
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
