package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

func setConfigDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")

	viper.SetDefault("USE_RATE_LIMIT", false)
	viper.SetDefault("RATE_LIMIT_RPS", 20.0)
	viper.SetDefault("RATE_LIMIT_BURST", 40)

	viper.SetDefault("SNAPSHOT_SOURCE", "file")
	viper.SetDefault("SNAPSHOT_FILE", "./data/campus_graph.json")
	viper.SetDefault("SNAPSHOT_REST_URL", "")
	viper.SetDefault("SNAPSHOT_REST_API_KEY", "")
	viper.SetDefault("SNAPSHOT_REST_TIMEOUT", "10s")

	viper.SetDefault("LOCATOR_SEARCH_RADIUS", 0.002)
	viper.SetDefault("SEARCH_MAX_FRONTIER", 0)

	viper.SetDefault("BATCH_WORKERS", 8)
	viper.SetDefault("BATCH_MAX_QUERIES", 100)
}

// ReadConfig. reads ./data/config.yaml on top of the defaults. a missing config file is not an error,
// environment variables always take precedence.
func ReadConfig() error {
	setConfigDefaults()

	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
