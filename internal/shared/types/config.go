package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	File       string       `json:"file" yaml:"file" toml:"file"`
	ReportName string       `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string     `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string       `json:"dir" yaml:"dir" toml:"dir"`
	Language   string       `json:"language" yaml:"language" toml:"language"`
	Trend      bool         `json:"trend" yaml:"trend" toml:"trend"`
	PDFFont    string       `json:"pdf_font" yaml:"pdf_font" toml:"pdf_font"`
	AWS        AWSConfig    `json:"aws" yaml:"aws" toml:"aws"`
	Server     ServerConfig `json:"server" yaml:"server" toml:"server"`
}

// AWSConfig holds the settings used to read record sets from S3.
type AWSConfig struct {
	Profile string `json:"profile" yaml:"profile" toml:"profile"`
	Region  string `json:"region" yaml:"region" toml:"region"`
}

// ServerConfig holds the settings of the web dashboard.
type ServerConfig struct {
	Addr     string `json:"addr" yaml:"addr" toml:"addr"`
	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`
}
