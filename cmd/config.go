package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/todo/types"
	"github.com/spf13/viper"
)

const (
	configName = ".todo"
	envPrefix  = "TODO"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single instance of Translate, it caches struct info
var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("config", "")
	v.SetDefault("data.file", "db/tasks.json")
	v.SetDefault("data.format", "json")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.crashDir", "")
	v.SetDefault("ui.mode", "auto")
}

// InitConfig layers defaults, the config file, .env, environment variables
// and flags into GlobalAppConfig, then validates it.
func InitConfig(v *viper.Viper) error {
	// It's okay if .env file doesn't exist.
	_ = godotenv.Load()

	v.SetEnvPrefix(envPrefix)                          // e.g., TODO_DATA_FILE
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // data.file -> DATA_FILE
	v.AutomaticEnv()
	setDefaults(v)

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(configName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	var config types.AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate.Struct(&config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	GlobalAppConfig = config
	return nil
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
