package model

// Agent invocation constants.
const (
	DefaultBinary = "claude"

	SkipPermissionsFlag = "--dangerously-skip-permissions"
	ModelFlag           = "-m"
	PromptFlag          = "-p"

	// NonessentialTrafficEnvVar tells the agent CLI to skip telemetry and update checks.
	NonessentialTrafficEnvVar = "CLAUDE_CODE_DISABLE_NONESSENTIAL_TRAFFIC"
)

// Launcher environment variables.
const (
	StateDirEnvVar = "CLAUDE_RUNNER_STATE_DIR"
	ThemeEnvVar    = "CLAUDE_RUNNER_THEME"
)

// Run states reported by the registry.
const (
	RunStateRunning = "running"
	RunStateExited  = "exited"
)
