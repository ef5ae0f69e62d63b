package model

import "errors"

// Sentinel errors for launcher operations.
var (
	// ErrUsage marks invalid or missing command-line input.
	ErrUsage = errors.New("invalid usage")
	// ErrOpenOutput is returned when the output file cannot be opened for writing.
	ErrOpenOutput = errors.New("failed to open output file")
	// ErrSpawn is returned when the agent process cannot be started.
	ErrSpawn = errors.New("failed to start agent process")
	// ErrRunNotFound is returned when no run record matches a PID.
	ErrRunNotFound = errors.New("run not found")
	// ErrRunExited is returned when a recorded run's process is gone or its
	// PID now belongs to another process.
	ErrRunExited = errors.New("run has already exited")
)
