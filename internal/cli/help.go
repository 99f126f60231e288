package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdblocklint/internal/ui/pretty"
)

// helpStyles colors the sections of cobra's help output.
type helpStyles struct {
	Command lipgloss.Style
	Heading lipgloss.Style
	Flag    lipgloss.Style
	Dim     lipgloss.Style
}

func newHelpStyles(colorEnabled bool) helpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return helpStyles{Command: plain, Heading: plain, Flag: plain, Dim: plain}
	}
	return helpStyles{
		Command: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Flag:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// applyHelpStyles installs a help function on cmd (inherited by its
// subcommands) that colors cobra's standard help text. The --color flag is
// read when help is rendered; colorMode is the fallback.
func applyHelpStyles(cmd *cobra.Command, colorMode string) {
	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		mode := colorMode
		if flag := command.Flag("color"); flag != nil {
			mode = flag.Value.String()
		}
		styles := newHelpStyles(pretty.IsColorEnabled(mode, command.OutOrStdout()))

		var builder strings.Builder
		if text := strings.TrimSpace(command.Long); text != "" {
			builder.WriteString(text + "\n\n")
		} else if command.Short != "" {
			builder.WriteString(command.Short + "\n\n")
		}
		builder.WriteString(styles.render(command.UsageString()))

		if _, err := fmt.Fprint(command.OutOrStdout(), builder.String()); err != nil {
			command.PrintErrln(err)
		}
	})
}

// render styles a plain usage text line by line.
func (s helpStyles) render(usage string) string {
	lines := strings.Split(usage, "\n")
	section := ""

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			continue
		case !strings.HasPrefix(line, " ") && strings.HasSuffix(line, ":"):
			section = trimmed
			lines[i] = s.Heading.Render(line)
		case strings.HasPrefix(trimmed, "-"):
			lines[i] = s.flagLine(line)
		case section == "Usage:":
			lines[i] = indentOf(line) + s.Command.Render(trimmed)
		case section == "Available Commands:":
			name, rest, _ := strings.Cut(trimmed, " ")
			lines[i] = indentOf(line) + s.Command.Render(name) + " " + rest
		}
	}

	return strings.Join(lines, "\n")
}

// flagLine styles "  -f, --flag type   description": flag names in Flag,
// the value type dimmed.
func (s helpStyles) flagLine(line string) string {
	indent := indentOf(line)
	body := line[len(indent):]

	spec, desc, found := strings.Cut(body, "   ")
	if !found {
		spec = body
	}

	tokens := strings.Fields(spec)
	for i, token := range tokens {
		if strings.HasPrefix(token, "-") {
			name, comma := strings.CutSuffix(token, ",")
			tokens[i] = s.Flag.Render(name)
			if comma {
				tokens[i] += ","
			}
		} else {
			tokens[i] = s.Dim.Render(token)
		}
	}

	styled := indent + strings.Join(tokens, " ")
	if found {
		styled += "   " + strings.TrimLeft(desc, " ")
	}
	return styled
}

func indentOf(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " "))]
}
