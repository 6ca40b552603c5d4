package completions

import (
	"fmt"
	"strings"
)

// Bash generates bash completion script
func Bash() string {
	return `# logscope bash completion script
# Add to ~/.bashrc: eval "$(logscope completions bash)"

_logscope_completions() {
    local cur prev commands
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    commands="audit rules detect completions version help"

    case "${prev}" in
        logscope)
            COMPREPLY=( $(compgen -W "${commands} --config --log-level --log-format --debug" -- "${cur}") )
            return 0
            ;;
        audit|detect|--ignore)
            # Complete with directories
            COMPREPLY=( $(compgen -d -- "${cur}") )
            return 0
            ;;
        --format|-f)
            COMPREPLY=( $(compgen -W "text json yaml" -- "${cur}") )
            return 0
            ;;
        --log-level)
            COMPREPLY=( $(compgen -W "trace debug info warn error disabled" -- "${cur}") )
            return 0
            ;;
        --log-format)
            COMPREPLY=( $(compgen -W "console json" -- "${cur}") )
            return 0
            ;;
        --config)
            COMPREPLY=( $(compgen -f -X '!*.yml' -- "${cur}") $(compgen -f -X '!*.yaml' -- "${cur}") $(compgen -f -X '!*.toml' -- "${cur}") )
            return 0
            ;;
        completions)
            COMPREPLY=( $(compgen -W "bash zsh fish" -- "${cur}") )
            return 0
            ;;
        *)
            ;;
    esac

    if [[ "${COMP_WORDS[1]}" == "audit" && "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "--format --strict --check --pick --skip-hidden --ignore" -- "${cur}") )
        return 0
    fi

    # Default to commands if nothing else matches
    COMPREPLY=( $(compgen -W "${commands}" -- "${cur}") )
}

complete -F _logscope_completions logscope
`
}

// Zsh generates zsh completion script
func Zsh() string {
	return `#compdef logscope
# logscope zsh completion script
# Add to ~/.zshrc: eval "$(logscope completions zsh)"

_logscope() {
    local -a commands

    commands=(
        'audit:Audit logger usage of every service directory'
        'rules:Show the language pattern table'
        'detect:Detect the language of one directory'
        'completions:Generate shell completions'
        'version:Show version'
        'help:Show help'
    )

    _arguments -C \
        '--config[config file]:file:_files -g "*.(yaml|yml|toml)"' \
        '--log-level[diagnostic log level]:level:(trace debug info warn error disabled)' \
        '--log-format[diagnostic log format]:format:(console json)' \
        '--debug[enable debug diagnostics]' \
        '1: :->command' \
        '*: :->args'

    case $state in
        command)
            _describe -t commands 'logscope commands' commands
            ;;
        args)
            case $words[2] in
                audit)
                    _arguments \
                        '(-f --format)'{-f,--format}'[report format]:format:(text json yaml)' \
                        '--strict[abort on the first unreadable file]' \
                        '--check[exit 2 when a service is not compliant]' \
                        '--pick[choose services interactively]' \
                        '--skip-hidden[skip hidden service directories]' \
                        '*--ignore[service to skip]:service:_files -/' \
                        '1:root:_files -/'
                    ;;
                detect)
                    _files -/
                    ;;
                completions)
                    _values 'shells' 'bash' 'zsh' 'fish'
                    ;;
            esac
            ;;
    esac
}

_logscope "$@"
`
}

// Fish generates fish completion script
func Fish() string {
	return `# logscope fish completion script
# Add to ~/.config/fish/completions/logscope.fish

# Disable file completion by default
complete -c logscope -f

# Commands
complete -c logscope -n "__fish_use_subcommand" -a "audit" -d "Audit logger usage of every service directory"
complete -c logscope -n "__fish_use_subcommand" -a "rules" -d "Show the language pattern table"
complete -c logscope -n "__fish_use_subcommand" -a "detect" -d "Detect the language of one directory"
complete -c logscope -n "__fish_use_subcommand" -a "completions" -d "Generate shell completions"
complete -c logscope -n "__fish_use_subcommand" -a "version" -d "Show version"
complete -c logscope -n "__fish_use_subcommand" -a "help" -d "Show help"

# Global flags
complete -c logscope -l config -d "Config file" -r -F
complete -c logscope -l log-level -d "Diagnostic log level" -x -a "trace debug info warn error disabled"
complete -c logscope -l log-format -d "Diagnostic log format" -x -a "console json"
complete -c logscope -l debug -d "Enable debug diagnostics"

# Directory completion for audit/detect
complete -c logscope -n "__fish_seen_subcommand_from audit detect" -a "(__fish_complete_directories)"

# Audit flags
complete -c logscope -n "__fish_seen_subcommand_from audit" -s f -l format -d "Report format" -x -a "text json yaml"
complete -c logscope -n "__fish_seen_subcommand_from audit" -l strict -d "Abort on the first unreadable file"
complete -c logscope -n "__fish_seen_subcommand_from audit" -l check -d "Exit 2 when a service is not compliant"
complete -c logscope -n "__fish_seen_subcommand_from audit" -l pick -d "Choose services interactively"
complete -c logscope -n "__fish_seen_subcommand_from audit" -l skip-hidden -d "Skip hidden service directories"
complete -c logscope -n "__fish_seen_subcommand_from audit" -l ignore -d "Service to skip" -x

# Shell completion for completions command
complete -c logscope -n "__fish_seen_subcommand_from completions" -a "bash zsh fish" -d "Shell"
`
}

// Generate returns the completion script for the given shell
func Generate(shell string) (string, error) {
	switch strings.ToLower(shell) {
	case "bash":
		return Bash(), nil
	case "zsh":
		return Zsh(), nil
	case "fish":
		return Fish(), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", shell)
	}
}
