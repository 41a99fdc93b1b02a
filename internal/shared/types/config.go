package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	CloudProvider string   `json:"cloud_provider" yaml:"cloud_provider" toml:"cloud_provider"`
	Currency      string   `json:"currency" yaml:"currency" toml:"currency"`
	Audience      string   `json:"audience" yaml:"audience" toml:"audience"`
	ReportName    string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType    []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir           string   `json:"dir" yaml:"dir" toml:"dir"`
}

// Valores padrão da aplicação, sobrescritos por arquivo de config,
// variáveis de ambiente e flags, nessa ordem.
const (
	AppName         = "optiscale"
	DefaultProvider = "aws"
	DefaultCurrency = "USD"
	DefaultAudience = "cxo"
)

// DefaultConfig returns a Config populated with application defaults.
func DefaultConfig() *Config {
	return &Config{
		CloudProvider: DefaultProvider,
		Currency:      DefaultCurrency,
		Audience:      DefaultAudience,
		ReportName:    AppName + "_report",
	}
}
