package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	shortcuts := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("KEYBOARD SHORTCUTS"),
		shortcutHelp(),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	return description + usage + version + commands + options + shortcuts + env
}

func shortcutHelp() string {
	return `
space         start, pause or resume
l             record a lap (while running)
ctrl+r        reset
ctrl+d        toggle dark mode
s / v         toggle sound / haptics
e             export laps to CSV
?             show or hide shortcuts
q, ctrl+c     quit`
}

func envHelp() string {
	return `
LAPWATCH_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

LAPWATCH_DEBUG: set to any value to write debug logs.

LAPWATCH_ENV: suffix for the config, database and log file names, e.g. 'dev'.`
}
