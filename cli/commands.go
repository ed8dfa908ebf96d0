package cli

var (
	Version   = ""
	CommitSHA = ""
)

func versionString() string {
	version := Version
	if version == "" {
		version = "dev"
	}
	if CommitSHA != "" {
		version += " (" + CommitSHA + ")"
	}
	return version
}

// Globals defines global flags available to all commands.
type Globals struct {
	ConfigFile string `name:"config" help:"Path to the config file." type:"path" placeholder:"PATH"`
	DataDir    string `help:"Directory holding the budget and expenses." type:"path" placeholder:"DIR"`
	Backend    string `help:"Storage backend: json, sqlite or memory." placeholder:"NAME"`
	LogLevel   string `help:"Log level: debug, info, warn or error." placeholder:"LEVEL"`
	Telemetry  bool   `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Summary SummaryCmd `cmd:"" default:"1" help:"Show the remaining purse and spending by date."`
	List    ListCmd    `cmd:"" help:"List expenses, newest first."`
	Add     AddCmd     `cmd:"" help:"Add an expense."`
	Edit    EditCmd    `cmd:"" help:"Edit an expense."`
	Rm      RmCmd      `cmd:"" help:"Delete an expense."`
	Budget  BudgetCmd  `cmd:"" help:"Set the monthly purse amount."`
	Reset   ResetCmd   `cmd:"" help:"Reset the budget and clear all expenses for the month."`
	Export  ExportCmd  `cmd:"" help:"Export the monthly expense report as PDF."`
	Watch   WatchCmd   `cmd:"" help:"Show the summary and refresh it when the data changes."`
	Config  ConfigCmd  `cmd:"" help:"Show or initialize the configuration."`
	Doctor  DoctorCmd  `cmd:"" help:"Doctor utilities for debugging stored data."`
}
