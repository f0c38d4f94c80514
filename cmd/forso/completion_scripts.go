package main

import (
	"fmt"
	"io"
	"strings"
)

// flagWords lists every spelling of the flags (--long and -s).
func flagWords(flags []flagDef) []string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// flagPattern returns the bash case pattern matching a flag.
func flagPattern(f flagDef) string {
	if f.Short != "" {
		return "-" + f.Short + "|--" + f.Long
	}
	return "--" + f.Long
}

// globs splits a comma-separated glob list.
func globs(pattern string) []string {
	if pattern == "" {
		return nil
	}
	return strings.Split(pattern, ",")
}

func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// -----------------------------------------------------------------------------
// Bash
// -----------------------------------------------------------------------------

func generateBash(w io.Writer, cmds []commandDef) error {
	var b strings.Builder

	b.WriteString("# bash completion for forso\n")
	b.WriteString("_forso_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n", c.Name)

		var valued []flagDef
		for _, f := range c.Flags {
			if f.Type != flagBool {
				valued = append(valued, f)
			}
		}
		if len(valued) > 0 {
			b.WriteString("        case \"$prev\" in\n")
			for _, f := range valued {
				fmt.Fprintf(&b, "        %s)\n", flagPattern(f))
				switch f.Type {
				case flagEnum:
					fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(f.Values, " "))
				case flagFile:
					b.WriteString("            COMPREPLY=($(compgen -f -- \"$cur\"))\n")
				case flagDir:
					b.WriteString("            COMPREPLY=($(compgen -d -- \"$cur\"))\n")
				default:
					b.WriteString("            COMPREPLY=()\n")
				}
				b.WriteString("            return\n")
				b.WriteString("            ;;\n")
			}
			b.WriteString("        esac\n")
		}

		b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(flagWords(c.Flags), " "))
		switch {
		case c.TakesFiles:
			b.WriteString("        else\n")
			b.WriteString("            COMPREPLY=($(compgen -f -- \"$cur\"))\n")
		case len(c.Args) > 0:
			b.WriteString("        else\n")
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(c.Args, " "))
		}
		b.WriteString("        fi\n")
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -F _forso_completions forso\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// -----------------------------------------------------------------------------
// Zsh
// -----------------------------------------------------------------------------

// zshEscape escapes text for use inside a single-quoted _arguments spec.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

// zshFlagSpec returns the _arguments spec for a flag.
func zshFlagSpec(f flagDef) string {
	var action string
	switch f.Type {
	case flagBool:
		action = ""
	case flagEnum:
		action = ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = ":file:_files -g \"" + strings.Join(globs(f.FileGlob), " ") + "\""
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":" + f.Long + ": "
	}

	desc := "[" + zshEscape(f.Desc) + "]"
	if f.Short == "" {
		return "'--" + f.Long + desc + action + "'"
	}
	return "'(-" + f.Short + " --" + f.Long + ")'{-" + f.Short + ",--" + f.Long + "}'" + desc + action + "'"
}

func generateZsh(w io.Writer, cmds []commandDef) error {
	var b strings.Builder

	b.WriteString("#compdef forso\n\n")
	b.WriteString("_forso() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"$words[2]\" in\n")

	for _, c := range cmds {
		var specs []string
		for _, f := range c.Flags {
			specs = append(specs, zshFlagSpec(f))
		}
		switch {
		case c.TakesFiles:
			specs = append(specs, "'*:file:_files -g \""+strings.Join(globs(c.FilePattern), " ")+"\"'")
		case len(c.Args) > 0:
			specs = append(specs, "'1:"+c.Name+":("+strings.Join(c.Args, " ")+")'")
		}
		if len(specs) == 0 {
			continue
		}

		fmt.Fprintf(&b, "    %s)\n", c.Name)
		b.WriteString("        _arguments -s \\\n")
		for i, s := range specs {
			b.WriteString("            " + s)
			if i < len(specs)-1 {
				b.WriteString(" \\")
			}
			b.WriteString("\n")
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("if [ \"$funcstack[1]\" = \"_forso\" ]; then\n")
	b.WriteString("    _forso \"$@\"\n")
	b.WriteString("else\n")
	b.WriteString("    compdef _forso forso\n")
	b.WriteString("fi\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// -----------------------------------------------------------------------------
// Fish
// -----------------------------------------------------------------------------

// fishQuote quotes s for fish single-quoted strings.
func fishQuote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s) + "'"
}

func generateFish(w io.Writer, cmds []commandDef) error {
	var b strings.Builder

	b.WriteString("# fish completion for forso\n")
	b.WriteString("function __fish_forso_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_forso_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c forso -f\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c forso -n __fish_forso_needs_command -a %s -d %s\n", c.Name, fishQuote(c.Desc))
	}

	for _, c := range cmds {
		cond := fishQuote("__fish_forso_using_command " + c.Name)
		for _, f := range c.Flags {
			line := "complete -c forso -n " + cond
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -l " + f.Long
			switch f.Type {
			case flagBool:
			case flagEnum:
				line += " -x -a " + fishQuote(strings.Join(f.Values, " "))
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			default:
				line += " -x"
			}
			line += " -d " + fishQuote(f.Desc)
			b.WriteString(line + "\n")
		}
		switch {
		case c.TakesFiles:
			fmt.Fprintf(&b, "complete -c forso -n %s -F\n", cond)
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "complete -c forso -n %s -a %s\n", cond, fishQuote(strings.Join(c.Args, " ")))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// -----------------------------------------------------------------------------
// PowerShell
// -----------------------------------------------------------------------------

// psQuote quotes s as a PowerShell single-quoted string.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func psList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = psQuote(it)
	}
	return "@(" + strings.Join(quoted, ", ") + ")"
}

func generatePowerShell(w io.Writer, cmds []commandDef) error {
	var b strings.Builder

	b.WriteString("# PowerShell completion for forso\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName forso -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $commands = [ordered]@{\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        %s = %s\n", psQuote(c.Name), psQuote(c.Desc))
	}
	b.WriteString("    }\n")
	b.WriteString("    $candidates = @{\n")
	for _, c := range cmds {
		words := append(flagWords(c.Flags), c.Args...)
		if len(words) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s = %s\n", psQuote(c.Name), psList(words))
	}
	b.WriteString("    }\n\n")
	b.WriteString("    $words = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    if ($words.Count -lt 2 -or ($words.Count -eq 2 -and $wordToComplete)) {\n")
	b.WriteString("        $commands.GetEnumerator() | Where-Object { $_.Key -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_.Key, $_.Key, 'ParameterValue', $_.Value)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $cmd = $words[1]\n")
	b.WriteString("    if ($candidates.ContainsKey($cmd)) {\n")
	b.WriteString("        $candidates[$cmd] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
