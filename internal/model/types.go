package model

// Config holds settings loaded from the claude-runner config file.
type Config struct {
	Binary     string            `toml:"binary"`
	Model      string            `toml:"model"`
	StateDir   string            `toml:"state_dir"`
	RecordRuns *bool             `toml:"record_runs"`
	Env        map[string]string `toml:"env"`
}

// ShouldRecordRuns reports whether launches are written to the run registry.
// Recording is on unless the config turns it off explicitly.
func (c *Config) ShouldRecordRuns() bool {
	if c == nil || c.RecordRuns == nil {
		return true
	}
	return *c.RecordRuns
}

// ArgsDescriptionFunc is set by package main to provide colored help text.
// If nil, Description() returns a plain one-liner.
var ArgsDescriptionFunc func() string

// Args holds CLI arguments parsed by go-arg.
type Args struct {
	Prompt          string `arg:"-p,--prompt" help:"Prompt passed to the agent CLI (required to launch)"`
	Workdir         string `arg:"-w,--workdir" help:"Working directory for the agent [default: current directory]"`
	Model           string `arg:"-m,--model,env:CLAUDE_RUNNER_MODEL" help:"Model to use"`
	Output          string `arg:"-o,--output" help:"File receiving the agent's stdout and stderr (required to launch)"`
	Extra           string `arg:"--extra" help:"Extra arguments for the agent (currently not forwarded)"`
	SkipPermissions bool   `arg:"--dangerously-skip-permissions" help:"Skip permission prompts (always applied)"`
	Binary          string `arg:"--binary,env:CLAUDE_RUNNER_BIN" help:"Agent executable [default: claude]"`
	DryRun          bool   `arg:"--dry-run" help:"Print the command that would run and exit"`
	Status          bool   `arg:"--status" help:"List background runs started by claude-runner"`
	Cancel          int    `arg:"--cancel" placeholder:"PID" help:"Terminate a background run by PID"`
	Prune           bool   `arg:"--prune" help:"Forget runs whose process has exited"`
	Completion      string `arg:"--completion" placeholder:"SHELL" help:"Print a completion script (bash, zsh, fish, powershell)"`
}

// Description provides custom help text for go-arg.
func (Args) Description() string {
	if ArgsDescriptionFunc != nil {
		return ArgsDescriptionFunc()
	}
	return "Run Claude Code in the background (non-blocking)\n"
}

// IsLaunch reports whether the args request a launch rather than a registry command.
func (a *Args) IsLaunch() bool {
	return !a.Status && !a.Prune && a.Cancel == 0 && a.Completion == ""
}

// LaunchRequest is the resolved input for a single background launch.
type LaunchRequest struct {
	Prompt          string
	Workdir         string
	Model           string
	OutputPath      string
	Extra           string
	SkipPermissions bool
	Binary          string
	Env             map[string]string
}

// RunRecord describes a background run started by the launcher.
type RunRecord struct {
	ID        string   `json:"id"`
	PID       int      `json:"pid"`
	Binary    string   `json:"binary"`
	Args      []string `json:"args"`
	Workdir   string   `json:"workdir"`
	Output    string   `json:"output"`
	StartedAt string   `json:"startedAt"`
	// StartTime identifies the process instance behind PID so a reused PID
	// is not mistaken for the run. Zero when the platform cannot report it.
	StartTime uint64 `json:"startTime,omitempty"`
}
