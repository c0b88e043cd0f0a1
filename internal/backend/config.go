package backend

import (
	"fmt"
	"strings"

	"fintrack/internal/config"
)

// Config selects and configures the export backend.
type Config struct {
	Type BackendType

	// xlsx
	ExportDir string

	// google
	GoogleSpreadsheetID string
}

// FromAppConfig converts the application config to backend config
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := BackendType(strings.ToLower(strings.TrimSpace(appConfig.ExportBackend)))
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid export backend in config: %s (want one of %s)",
			appConfig.ExportBackend, strings.Join(GetBackendTypeStrings(), ", "))
	}

	return Config{
		Type:                backendType,
		ExportDir:           appConfig.ExportDir,
		GoogleSpreadsheetID: appConfig.GoogleSpreadsheetID,
	}, nil
}

// Validate validates the backend configuration
func (c Config) Validate() error {
	switch c.Type {
	case XLSXBackend:
		if c.ExportDir == "" {
			return fmt.Errorf("export directory is required for xlsx backend")
		}
	case SheetsBackend:
		if c.GoogleSpreadsheetID == "" {
			return fmt.Errorf("Google Spreadsheet ID is required for google backend")
		}
	case MemoryBackend:
	default:
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}
	return nil
}

// GetBackendTypeStrings returns all valid backend type strings
func GetBackendTypeStrings() []string {
	types := []BackendType{XLSXBackend, SheetsBackend, MemoryBackend}
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.String()
	}
	return out
}
