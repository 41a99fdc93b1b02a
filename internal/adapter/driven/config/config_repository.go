package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/optiscale-go/internal/domain/repository"
	"github.com/diillson/optiscale-go/internal/shared/types"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := types.DefaultConfig()

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return config, nil
}

// ApplyEnvOverrides sobrepõe a configuração com variáveis de ambiente.
// Um arquivo .env no diretório atual é carregado primeiro, quando existe.
func (r *ConfigRepositoryImpl) ApplyEnvOverrides(config *types.Config) {
	// Ausência de .env não é erro.
	_ = godotenv.Load()

	if v := os.Getenv("OPTISCALE_PROVIDER"); v != "" {
		config.CloudProvider = v
	}
	if v := os.Getenv("OPTISCALE_CURRENCY"); v != "" {
		config.Currency = v
	}
	if v := os.Getenv("OPTISCALE_AUDIENCE"); v != "" {
		config.Audience = v
	}
	if v := os.Getenv("OPTISCALE_REPORT_DIR"); v != "" {
		config.Dir = v
	}
}
