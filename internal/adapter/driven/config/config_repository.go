package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/sme-health-dashboard-go/internal/domain/repository"
	"github.com/diillson/sme-health-dashboard-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Formatos de relatório e idiomas aceitos no arquivo de configuração.
var (
	supportedReportTypes = map[string]bool{"csv": true, "json": true, "pdf": true}
	supportedLanguages   = map[string]bool{"en": true, "ta": true, "both": true}
)

type decoder func(data []byte, v interface{}) error

var decoders = map[string]struct {
	name   string
	decode decoder
}{
	".toml": {"TOML", toml.Unmarshal},
	".yaml": {"YAML", yaml.Unmarshal},
	".yml":  {"YAML", yaml.Unmarshal},
	".json": {"JSON", json.Unmarshal},
}

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON e
// valida os valores que o dashboard não consegue interpretar.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	format, ok := decoders[fileExtension]
	if !ok {
		return nil, fmt.Errorf("unsupported config file format: %q", fileExtension)
	}

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

	var config types.Config
	if err := format.decode(fileData, &config); err != nil {
		return nil, fmt.Errorf("error parsing %s file: %w", format.name, err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}

	return &config, nil
}

func validate(config *types.Config) error {
	for i, reportType := range config.ReportType {
		reportType = strings.ToLower(strings.TrimSpace(reportType))
		if !supportedReportTypes[reportType] {
			return fmt.Errorf("%w: %q", types.ErrUnsupportedReportType, reportType)
		}
		config.ReportType[i] = reportType
	}

	if config.Language != "" {
		config.Language = strings.ToLower(strings.TrimSpace(config.Language))
		if !supportedLanguages[config.Language] {
			return fmt.Errorf("%w: %q", types.ErrUnsupportedLanguage, config.Language)
		}
	}

	return nil
}
