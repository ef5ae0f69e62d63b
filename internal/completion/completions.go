package completion

import (
	"fmt"
	"io"
	"strings"
)

// Write prints the completion script for shell to w.
func Write(w io.Writer, shell string) error {
	switch strings.ToLower(strings.TrimSpace(shell)) {
	case "bash":
		_, err := io.WriteString(w, BashCompletion)
		return err
	case "zsh":
		_, err := io.WriteString(w, ZshCompletion)
		return err
	case "fish":
		_, err := io.WriteString(w, FishCompletion)
		return err
	case "powershell", "pwsh":
		_, err := io.WriteString(w, PowershellCompletion)
		return err
	default:
		return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish, powershell)", shell)
	}
}

// BashCompletion is the bash completion script.
const BashCompletion = `# claude-runner bash completion script
# Installation: claude-runner --completion bash > ~/.bash_completion.d/claude-runner

_claude_runner_completion() {
    local cur prev words cword
    _init_completion || return

    local flags="-p --prompt -w --workdir -m --model -o --output --extra --binary --dangerously-skip-permissions --dry-run --status --cancel --prune --completion -h --help"

    case "$prev" in
        -w|--workdir)
            COMPREPLY=($(compgen -d -- "$cur"))
            return
            ;;
        -o|--output|--binary)
            COMPREPLY=($(compgen -f -- "$cur"))
            return
            ;;
        -m|--model)
            COMPREPLY=($(compgen -W "opus sonnet haiku" -- "$cur"))
            return
            ;;
        --completion)
            COMPREPLY=($(compgen -W "bash zsh fish powershell" -- "$cur"))
            return
            ;;
        -p|--prompt|--extra|--cancel)
            return
            ;;
    esac

    COMPREPLY=($(compgen -W "$flags" -- "$cur"))
}

complete -F _claude_runner_completion claude-runner
`

// ZshCompletion is the zsh completion script.
const ZshCompletion = `#compdef claude-runner
# Installation: claude-runner --completion zsh > ~/.zsh/completion/_claude-runner

_arguments \
    '(-p --prompt)'{-p,--prompt}'[Prompt passed to the agent]:prompt:' \
    '(-w --workdir)'{-w,--workdir}'[Working directory]:directory:_files -/' \
    '(-m --model)'{-m,--model}'[Model to use]:model:(opus sonnet haiku)' \
    '(-o --output)'{-o,--output}'[Output file]:file:_files' \
    '--extra[Extra arguments (not forwarded)]:args:' \
    '--binary[Agent executable]:file:_files' \
    '--dangerously-skip-permissions[Skip permission prompts]' \
    '--dry-run[Print the command and exit]' \
    '--status[List background runs]' \
    '--cancel[Terminate a background run]:pid:' \
    '--prune[Forget finished runs]' \
    '--completion[Print a completion script]:shell:(bash zsh fish powershell)' \
    '(-h --help)'{-h,--help}'[Show help]'
`

// FishCompletion is the fish completion script.
const FishCompletion = `# claude-runner fish completion script
# Installation: claude-runner --completion fish > ~/.config/fish/completions/claude-runner.fish

complete -c claude-runner -s p -l prompt -r -d 'Prompt passed to the agent'
complete -c claude-runner -s w -l workdir -r -a '(__fish_complete_directories)' -d 'Working directory'
complete -c claude-runner -s m -l model -r -a 'opus sonnet haiku' -d 'Model to use'
complete -c claude-runner -s o -l output -r -F -d 'Output file'
complete -c claude-runner -l extra -r -d 'Extra arguments (not forwarded)'
complete -c claude-runner -l binary -r -F -d 'Agent executable'
complete -c claude-runner -l dangerously-skip-permissions -d 'Skip permission prompts'
complete -c claude-runner -l dry-run -d 'Print the command and exit'
complete -c claude-runner -l status -d 'List background runs'
complete -c claude-runner -l cancel -r -d 'Terminate a background run by PID'
complete -c claude-runner -l prune -d 'Forget finished runs'
complete -c claude-runner -l completion -r -a 'bash zsh fish powershell' -d 'Print a completion script'
`

// PowershellCompletion is the PowerShell completion script.
const PowershellCompletion = `# claude-runner PowerShell completion script
# Installation: claude-runner --completion powershell >> $PROFILE

Register-ArgumentCompleter -Native -CommandName claude-runner -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $flags = @(
        '-p', '--prompt', '-w', '--workdir', '-m', '--model', '-o', '--output',
        '--extra', '--binary', '--dangerously-skip-permissions', '--dry-run',
        '--status', '--cancel', '--prune', '--completion', '-h', '--help'
    )

    $flags | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)
    }
}
`
