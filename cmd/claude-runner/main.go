package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alexflint/go-arg"

	"github.com/jmagar/claude-runner/internal/completion"
	"github.com/jmagar/claude-runner/internal/config"
	"github.com/jmagar/claude-runner/internal/helpers"
	"github.com/jmagar/claude-runner/internal/launch"
	"github.com/jmagar/claude-runner/internal/model"
	"github.com/jmagar/claude-runner/internal/runtime"
	"github.com/jmagar/claude-runner/internal/ui"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func init() {
	model.ArgsDescriptionFunc = argsDescription
}

func argsDescription() string {
	return fmt.Sprintf("%sRun Claude Code in the background (non-blocking)%s\n\n"+
		"Examples:\n"+
		"  claude-runner -p \"fix the flaky test\" -o /tmp/fix.log -w ~/src/app\n"+
		"  claude-runner --status\n"+
		"  claude-runner --cancel <pid>\n",
		ui.ColorBold, ui.ColorReset)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	args, parser, err := config.ParseArgs(argv)
	if err != nil {
		if errors.Is(err, arg.ErrHelp) && parser != nil {
			parser.WriteHelp(os.Stdout)
			return exitOK
		}
		return usageFailure(parser, err)
	}

	if args.Completion != "" {
		if err := completion.Write(os.Stdout, args.Completion); err != nil {
			ui.PrintError(err.Error())
			return exitUsage
		}
		return exitOK
	}

	cfg, err := config.ReadConfig()
	if err != nil {
		ui.PrintError(err.Error())
		return exitFailure
	}

	if !args.IsLaunch() {
		return runRegistryCommand(args, cfg)
	}

	req, err := config.BuildRequest(args, cfg)
	if err != nil {
		if errors.Is(err, model.ErrUsage) {
			return usageFailure(parser, err)
		}
		ui.PrintError(err.Error())
		return exitFailure
	}
	if req.Extra != "" {
		ui.PrintWarning("--extra is accepted but not forwarded to the agent")
	}

	if args.DryRun {
		plan, err := launch.Plan(req)
		if err != nil {
			ui.PrintError(err.Error())
			return exitFailure
		}
		printPlan(plan)
		return exitOK
	}

	res, err := launch.Launch(req)
	if err != nil {
		ui.PrintError(err.Error())
		return exitFailure
	}
	if cfg.ShouldRecordRuns() {
		recordRun(cfg, res)
	}
	ui.PrintLaunch("Task started in background")
	ui.PrintInfo(fmt.Sprintf("pid=%d %s %s", res.PID, ui.SymbolArrow, res.Output))
	return exitOK
}

func usageFailure(parser *arg.Parser, err error) int {
	if parser != nil {
		parser.WriteUsage(ui.Output)
	}
	ui.PrintError(err.Error())
	return exitUsage
}

// recordRun stores the launch in the run registry. The agent is already
// running, so failures only warn.
func recordRun(cfg *model.Config, res launch.Result) {
	stateDir, err := helpers.GetStateDir(cfg.StateDir)
	if err != nil {
		ui.PrintWarning(fmt.Sprintf("Run not recorded: %v", err))
		return
	}
	rec := runtime.NewRunRecord(res.PID, res.Binary, res.Args, res.Workdir, res.Output)
	if _, err := runtime.WriteRunRecord(stateDir, rec); err != nil {
		ui.PrintWarning(fmt.Sprintf("Run not recorded: %v", err))
	}
}

func runRegistryCommand(args *model.Args, cfg *model.Config) int {
	stateDir, err := helpers.GetStateDir(cfg.StateDir)
	if err != nil {
		ui.PrintError(err.Error())
		return exitFailure
	}

	switch {
	case args.Cancel != 0:
		rec, err := runtime.FindRunByPID(stateDir, args.Cancel)
		if err != nil {
			ui.PrintError(err.Error())
			return exitFailure
		}
		if err := runtime.CancelRun(rec); err != nil {
			if errors.Is(err, model.ErrRunExited) {
				ui.PrintWarning(fmt.Sprintf("Run %d has already exited", rec.PID))
				return exitOK
			}
			ui.PrintError(fmt.Sprintf("Failed to cancel pid %d: %v", rec.PID, err))
			return exitFailure
		}
		ui.PrintSuccess(fmt.Sprintf("Cancel signal sent to pid %d", rec.PID))
	case args.Prune:
		removed, err := runtime.PruneRunRecords(stateDir)
		if err != nil {
			ui.PrintError(err.Error())
			return exitFailure
		}
		ui.PrintSuccess(fmt.Sprintf("Pruned %d finished run(s)", removed))
	case args.Status:
		if err := runtime.PrintRunStatus(stateDir); err != nil {
			ui.PrintError(err.Error())
			return exitFailure
		}
		ui.PrintKeyValue("Config", configSource(), ui.ColorCyan)
	}
	return exitOK
}

func printPlan(plan launch.Result) {
	quoted := make([]string, len(plan.Args))
	for i, a := range plan.Args {
		quoted[i] = strconv.Quote(a)
	}
	ui.PrintInfo("Dry run: nothing was started")
	ui.PrintKeyValue("Binary", plan.Binary, ui.ColorCyan)
	ui.PrintKeyValue("Args", strings.Join(quoted, " "), ui.ColorYellow)
	ui.PrintKeyValue("Workdir", plan.Workdir, ui.ColorCyan)
	ui.PrintKeyValue("Output", plan.Output, ui.ColorCyan)
	ui.PrintKeyValue("Config", configSource(), ui.ColorCyan)
}

func configSource() string {
	if config.LoadedConfigPath == "" {
		return "none"
	}
	return config.LoadedConfigPath
}
