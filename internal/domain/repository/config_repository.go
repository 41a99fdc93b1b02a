package repository

import (
	"github.com/diillson/optiscale-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	ApplyEnvOverrides(config *types.Config)
}
