package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jmagar/claude-runner/internal/helpers"
	"github.com/jmagar/claude-runner/internal/model"
	"github.com/jmagar/claude-runner/internal/ui"
)

// LoadedConfigPath tracks which config file was loaded, empty when none was found.
var LoadedConfigPath string

// ConfigPaths returns the config file locations in lookup order.
func ConfigPaths() ([]string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return []string{
		"claude-runner.toml",
		filepath.Join(homeDir, ".claude-runner", "config.toml"),
		filepath.Join(homeDir, ".config", "claude-runner", "config.toml"),
	}, nil
}

// ReadConfig loads the first config file found. No config file is not an error.
func ReadConfig() (*model.Config, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return nil, err
	}
	LoadedConfigPath = ""
	for _, path := range paths {
		cfg, err := readConfigFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		LoadedConfigPath = path
		return cfg, nil
	}
	return &model.Config{}, nil
}

func readConfigFile(path string) (*model.Config, error) {
	var cfg model.Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to parse config at %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		ui.PrintWarning(fmt.Sprintf("Ignoring unknown config keys in %s: %s", path, strings.Join(keys, ", ")))
	}
	return &cfg, nil
}

// BuildRequest merges CLI args over config values into a launch request.
func BuildRequest(args *model.Args, cfg *model.Config) (model.LaunchRequest, error) {
	if cfg == nil {
		cfg = &model.Config{}
	}
	if args.Prompt == "" {
		return model.LaunchRequest{}, fmt.Errorf("%w: --prompt is required", model.ErrUsage)
	}
	// The output path is opened exactly as given.
	output := args.Output
	if output == "" {
		return model.LaunchRequest{}, fmt.Errorf("%w: --output is required", model.ErrUsage)
	}

	req := model.LaunchRequest{
		Prompt:          args.Prompt,
		Workdir:         args.Workdir,
		Model:           firstNonEmpty(args.Model, cfg.Model),
		OutputPath:      output,
		Extra:           args.Extra,
		SkipPermissions: args.SkipPermissions,
		Binary:          firstNonEmpty(args.Binary, cfg.Binary),
		Env:             cfg.Env,
	}
	if req.Binary != "" {
		binary, err := helpers.ExpandHome(req.Binary)
		if err != nil {
			return model.LaunchRequest{}, err
		}
		req.Binary = binary
	}
	return req, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
