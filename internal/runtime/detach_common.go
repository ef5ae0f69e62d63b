package runtime

import (
	"os"
	"os/exec"
)

// SpawnSpec describes a process to start in the background.
type SpawnSpec struct {
	Path   string
	Args   []string
	Dir    string
	Env    []string
	Output *os.File
}

// SpawnDetached starts the process described by spec in its own session with
// stdin on the null device and stdout/stderr both on spec.Output. It does not
// wait for the process; the returned PID is the only handle kept.
func SpawnDetached(spec SpawnSpec) (int, error) {
	cmd := exec.Command(spec.Path, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env
	cmd.Stdin = nil
	cmd.Stdout = spec.Output
	cmd.Stderr = spec.Output
	cmd.SysProcAttr = detachAttrs()
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	_ = cmd.Process.Release()
	return pid, nil
}
