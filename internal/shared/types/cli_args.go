package types

// CLIArgs represents the command-line arguments shared by all subcommands.
type CLIArgs struct {
	ConfigFile    string
	CloudProvider string
	Currency      string
	Audience      string
	InputFile     string
	ReportName    string
	ReportType    []string
	Dir           string
}
