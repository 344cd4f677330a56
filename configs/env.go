package configs

import (
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	AQIAPIToken     string
	ContextPath     string
}

var Env *EnvConfig

func init() {
	viper.AutomaticEnv()

	// A missing AQI_API_TOKEN is not fatal here: it degrades every city fetch
	// into a sentinel reading instead of aborting startup.
	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "aqi-dashboard"),
		AQIAPIToken:     viper.GetString("AQI_API_TOKEN"),
		ContextPath:     getStringOrDefault("CONTEXT_PATH", "/aqi"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
