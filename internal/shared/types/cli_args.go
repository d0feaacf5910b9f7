package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	File       string
	ReportName string
	ReportType []string
	Dir        string
	Language   string
	Trend      bool
	PDFFont    string
	AWSProfile string
	AWSRegion  string
}

// ServeArgs represents the arguments of the serve command.
type ServeArgs struct {
	Addr     string
	LogLevel string
}
