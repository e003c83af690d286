package main

import (
	"flag"
	"fmt"
	"os"
)

func completionCmd() {
	fs := flag.NewFlagSet("completion", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: utmtag completion <bash|zsh|fish>\n\n")
		fmt.Fprintf(os.Stderr, "Generate shell completion scripts.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  # Bash\n")
		fmt.Fprintf(os.Stderr, "  utmtag completion bash > /usr/local/etc/bash_completion.d/utmtag\n")
		fmt.Fprintf(os.Stderr, "  # Zsh\n")
		fmt.Fprintf(os.Stderr, "  utmtag completion zsh > \"${fpath[1]}/_utmtag\"\n")
		fmt.Fprintf(os.Stderr, "  # Fish\n")
		fmt.Fprintf(os.Stderr, "  utmtag completion fish > ~/.config/fish/completions/utmtag.fish\n")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: shell name is required (bash, zsh, or fish)\n\n")
		fs.Usage()
		os.Exit(1)
	}

	shell := fs.Arg(0)
	switch shell {
	case "bash":
		fmt.Print(generateBashCompletion())
	case "zsh":
		fmt.Print(generateZshCompletion())
	case "fish":
		fmt.Print(generateFishCompletion())
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported shell %q (use bash, zsh, or fish)\n", shell)
		os.Exit(1)
	}
}

func generateBashCompletion() string {
	return `# bash completion for utmtag                             -*- shell-script -*-

_utmtag() {
    local cur prev words cword
    _init_completion || return

    local commands="generate history delete export init completion version help"

    local generate_flags="--source --medium --campaign --content --copy"
    local history_flags="--search --json"
    local delete_flags="--yes"
    local export_flags="--all --format --output --color"
    local init_flags="--variant --output --force"

    local export_formats="text json"
    local variants="open fixed"
    local shells="bash zsh fish"

    if [[ ${cword} -eq 1 ]]; then
        COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
        return
    fi

    local command="${words[1]}"

    case "${prev}" in
        --format)
            COMPREPLY=($(compgen -W "${export_formats}" -- "${cur}"))
            return
            ;;
        --variant)
            COMPREPLY=($(compgen -W "${variants}" -- "${cur}"))
            return
            ;;
        --output)
            _filedir
            return
            ;;
        --source|--medium|--campaign|--content|--search)
            return
            ;;
    esac

    case "${command}" in
        generate)
            COMPREPLY=($(compgen -W "${generate_flags}" -- "${cur}"))
            ;;
        history)
            COMPREPLY=($(compgen -W "${history_flags}" -- "${cur}"))
            ;;
        delete)
            COMPREPLY=($(compgen -W "${delete_flags}" -- "${cur}"))
            ;;
        export)
            COMPREPLY=($(compgen -W "${export_flags}" -- "${cur}"))
            ;;
        init)
            COMPREPLY=($(compgen -W "${init_flags}" -- "${cur}"))
            ;;
        completion)
            COMPREPLY=($(compgen -W "${shells}" -- "${cur}"))
            ;;
    esac
}

complete -F _utmtag utmtag
`
}

func generateZshCompletion() string {
	return `#compdef utmtag

# zsh completion for utmtag

_utmtag() {
    local -a commands
    commands=(
        'generate:Tag a URL and add it to the history'
        'history:List generated links, newest first'
        'delete:Delete links from the history by id'
        'export:Export links as text or JSON'
        'init:Write a config file'
        'completion:Generate shell completion scripts'
        'version:Print version information'
        'help:Show help message'
    )

    _arguments -C \
        '1:command:->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe -t commands 'utmtag commands' commands
            ;;
        args)
            case $words[1] in
                generate)
                    _arguments \
                        '--source[utm_source]:source:' \
                        '--medium[utm_medium]:medium:' \
                        '--campaign[utm_campaign]:campaign:' \
                        '--content[utm_content]:content:' \
                        '--copy[Also copy the link to the clipboard]' \
                        '1:url:_urls'
                    ;;
                history)
                    _arguments \
                        '--search[Fuzzy filter]:query:' \
                        '--json[Print the records as JSON]'
                    ;;
                delete)
                    _arguments \
                        '--yes[Do not ask for confirmation]' \
                        '*:id:'
                    ;;
                export)
                    _arguments \
                        '--all[Export the whole history]' \
                        '--format[Export format]:format:(text json)' \
                        '--output[Output file path]:output file:_files' \
                        '--color[Syntax-highlight JSON]' \
                        '*:id:'
                    ;;
                init)
                    _arguments \
                        '--variant[Tagging variant]:variant:(open fixed)' \
                        '--output[Config file path]:config file:_files -g "*.yaml"' \
                        '--force[Overwrite an existing config file]'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_utmtag "$@"
`
}

func generateFishCompletion() string {
	return `# fish completion for utmtag

# Disable file completions by default
complete -c utmtag -f

# Subcommands
complete -c utmtag -n '__fish_use_subcommand' -a generate -d 'Tag a URL and add it to the history'
complete -c utmtag -n '__fish_use_subcommand' -a history -d 'List generated links, newest first'
complete -c utmtag -n '__fish_use_subcommand' -a delete -d 'Delete links from the history by id'
complete -c utmtag -n '__fish_use_subcommand' -a export -d 'Export links as text or JSON'
complete -c utmtag -n '__fish_use_subcommand' -a init -d 'Write a config file'
complete -c utmtag -n '__fish_use_subcommand' -a completion -d 'Generate shell completion scripts'
complete -c utmtag -n '__fish_use_subcommand' -a version -d 'Print version information'
complete -c utmtag -n '__fish_use_subcommand' -a help -d 'Show help message'

# generate flags
complete -c utmtag -n '__fish_seen_subcommand_from generate' -l source -d 'utm_source' -r
complete -c utmtag -n '__fish_seen_subcommand_from generate' -l medium -d 'utm_medium' -r
complete -c utmtag -n '__fish_seen_subcommand_from generate' -l campaign -d 'utm_campaign' -r
complete -c utmtag -n '__fish_seen_subcommand_from generate' -l content -d 'utm_content' -r
complete -c utmtag -n '__fish_seen_subcommand_from generate' -l copy -d 'Also copy the link to the clipboard'

# history flags
complete -c utmtag -n '__fish_seen_subcommand_from history' -l search -d 'Fuzzy filter' -r
complete -c utmtag -n '__fish_seen_subcommand_from history' -l json -d 'Print the records as JSON'

# delete flags
complete -c utmtag -n '__fish_seen_subcommand_from delete' -l yes -d 'Do not ask for confirmation'

# export flags
complete -c utmtag -n '__fish_seen_subcommand_from export' -l all -d 'Export the whole history'
complete -c utmtag -n '__fish_seen_subcommand_from export' -l format -d 'Export format' -ra 'text json'
complete -c utmtag -n '__fish_seen_subcommand_from export' -l output -d 'Output file path' -rF
complete -c utmtag -n '__fish_seen_subcommand_from export' -l color -d 'Syntax-highlight JSON'

# init flags
complete -c utmtag -n '__fish_seen_subcommand_from init' -l variant -d 'Tagging variant' -ra 'open fixed'
complete -c utmtag -n '__fish_seen_subcommand_from init' -l output -d 'Config file path' -rF
complete -c utmtag -n '__fish_seen_subcommand_from init' -l force -d 'Overwrite an existing config file'

# completion - shell names
complete -c utmtag -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish' -d 'Shell type'
`
}
