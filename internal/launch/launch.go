// Package launch starts the agent CLI as a detached background process.
package launch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jmagar/claude-runner/internal/helpers"
	"github.com/jmagar/claude-runner/internal/model"
	"github.com/jmagar/claude-runner/internal/runtime"
)

// Result describes a process started by Launch.
type Result struct {
	PID     int
	Binary  string
	Args    []string
	Workdir string
	Output  string
}

// BuildArgs returns the agent arguments for req. The permission-skip flag is
// always included, whatever req.SkipPermissions says.
func BuildArgs(req model.LaunchRequest) []string {
	args := []string{model.SkipPermissionsFlag}
	if req.Model != "" {
		args = append(args, model.ModelFlag, req.Model)
	}
	return append(args, model.PromptFlag, req.Prompt)
}

// ResolveWorkdir returns dir as an absolute path when it names an existing
// directory, and the current working directory otherwise.
func ResolveWorkdir(dir string) (string, error) {
	if helpers.DirExists(dir) {
		if abs, err := filepath.Abs(dir); err == nil {
			return abs, nil
		}
		return dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve workdir: %w", err)
	}
	return cwd, nil
}

// BuildEnv copies base and applies overrides followed by the nonessential
// traffic switch. Later keys replace earlier ones in place.
func BuildEnv(base []string, overrides map[string]string) []string {
	env := make([]string, 0, len(base)+len(overrides)+1)
	index := make(map[string]int, len(base))
	set := func(key, value string) {
		kv := key + "=" + value
		if i, ok := index[key]; ok {
			env[i] = kv
			return
		}
		index[key] = len(env)
		env = append(env, kv)
	}

	for _, kv := range base {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		set(key, value)
	}
	for key, value := range overrides {
		set(key, value)
	}
	set(model.NonessentialTrafficEnvVar, "1")
	return env
}

// ResolveBinary finds the agent executable. An empty name means the default
// agent; for it the per-user install locations are tried when PATH has no match.
// Names that cannot be resolved are returned unchanged so the spawn error surfaces.
func ResolveBinary(name string) string {
	if name == "" {
		name = model.DefaultBinary
	}
	if resolved, err := exec.LookPath(name); err == nil {
		return resolved
	}
	if name != model.DefaultBinary {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	for _, candidate := range []string{
		filepath.Join(home, ".claude", "local", model.DefaultBinary),
		filepath.Join(home, ".local", "bin", model.DefaultBinary),
	} {
		if ok, _ := helpers.FileExists(candidate); ok {
			return candidate
		}
	}
	return name
}

// Plan resolves everything Launch needs without touching the output file or
// starting a process.
func Plan(req model.LaunchRequest) (Result, error) {
	workdir, err := ResolveWorkdir(req.Workdir)
	if err != nil {
		return Result{}, err
	}
	output := req.OutputPath
	if abs, err := filepath.Abs(output); err == nil {
		output = abs
	}
	return Result{
		Binary:  ResolveBinary(req.Binary),
		Args:    BuildArgs(req),
		Workdir: workdir,
		Output:  output,
	}, nil
}

// Launch starts the agent for req in the background and returns without
// waiting for it. The output file is truncated and receives both stdout and
// stderr of the child.
func Launch(req model.LaunchRequest) (Result, error) {
	res, err := Plan(req)
	if err != nil {
		return Result{}, err
	}

	out, err := os.OpenFile(req.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return Result{}, fmt.Errorf("%w %q: %w", model.ErrOpenOutput, req.OutputPath, err)
	}
	defer out.Close()

	pid, err := runtime.SpawnDetached(runtime.SpawnSpec{
		Path:   res.Binary,
		Args:   res.Args,
		Dir:    res.Workdir,
		Env:    BuildEnv(os.Environ(), req.Env),
		Output: out,
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w %q: %w", model.ErrSpawn, res.Binary, err)
	}
	res.PID = pid
	return res, nil
}
