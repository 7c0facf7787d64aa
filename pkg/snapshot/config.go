package snapshot

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	SOURCE_FILE = "file"
	SOURCE_REST = "rest"
)

// NewProviderFromConfig. picks the graph store from SNAPSHOT_SOURCE.
func NewProviderFromConfig(log *zap.Logger) (Provider, error) {
	switch source := viper.GetString("SNAPSHOT_SOURCE"); source {
	case SOURCE_FILE:
		path := viper.GetString("SNAPSHOT_FILE")
		log.Info("using file graph snapshot", zap.String("path", path))
		return NewFileProvider(path, log), nil
	case SOURCE_REST:
		baseURL := viper.GetString("SNAPSHOT_REST_URL")
		if baseURL == "" {
			return nil, fmt.Errorf("SNAPSHOT_REST_URL must be set when SNAPSHOT_SOURCE is %q", SOURCE_REST)
		}
		log.Info("using rest graph snapshot", zap.String("url", baseURL))
		return NewRestProvider(baseURL, viper.GetString("SNAPSHOT_REST_API_KEY"),
			viper.GetDuration("SNAPSHOT_REST_TIMEOUT"), log), nil
	default:
		return nil, fmt.Errorf("unknown SNAPSHOT_SOURCE %q, expected %q or %q", source, SOURCE_FILE, SOURCE_REST)
	}
}
