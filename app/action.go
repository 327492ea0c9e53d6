package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/lapwatch/internal/config"
	"github.com/ayoisaiah/lapwatch/internal/export"
	"github.com/ayoisaiah/lapwatch/internal/feedback"
	"github.com/ayoisaiah/lapwatch/internal/pathutil"
	"github.com/ayoisaiah/lapwatch/internal/stopwatch"
	"github.com/ayoisaiah/lapwatch/internal/timeutil"
	"github.com/ayoisaiah/lapwatch/internal/ui"
	"github.com/ayoisaiah/lapwatch/report"
	"github.com/ayoisaiah/lapwatch/store"
	"github.com/ayoisaiah/lapwatch/timer"
)

const (
	envNoColor         = "NO_COLOR"
	envLapwatchNoColor = "LAPWATCH_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig resolves file locations and builds the configuration for this
// run.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	paths, err := pathutil.Resolve()
	if err != nil {
		return nil, err
	}

	return config.New(
		config.WithPaths(paths.DBFile, paths.LogFile),
		config.WithViperConfig(paths.ConfigFile),
		config.WithCLIConfig(ctx),
		config.WithEnv(),
	)
}

// setupLogging sends structured logs to a rotated file.
func setupLogging(cfg *config.Config) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}

	w := &lumberjack.Logger{
		Filename:   cfg.System.LogPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))

	slog.SetDefault(logger)
}

// newFeedback builds the feedback port from the config and per-run flags.
func newFeedback(cfg *config.Config) feedback.Feedback {
	var fb feedback.Multi

	if !cfg.CLI.Mute {
		fb.Sound = feedback.NewSpeaker(feedback.Tone{
			Frequency: cfg.Sound.Frequency,
			Volume:    cfg.Sound.Volume,
			Duration:  cfg.Sound.Duration,
		})
	}

	if !cfg.CLI.NoHaptic {
		fb.Haptic = feedback.NewBuzzer(cfg.Haptic.Frequency)
	}

	return fb
}

// openStopwatch loads the config and restores the saved stopwatch. The
// returned client must be closed by the caller.
func openStopwatch(
	ctx *cli.Context,
	fb func(*config.Config) feedback.Feedback,
) (*stopwatch.Stopwatch, *store.Client, *config.Config, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	setupLogging(cfg)

	client, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return nil, nil, nil, err
	}

	sw := stopwatch.New(client, fb(cfg))

	ui.DarkTheme = sw.Prefs().DarkMode

	return sw, client, cfg, nil
}

// silent is used by commands that must not beep.
func silent(*config.Config) feedback.Feedback {
	return feedback.Nop{}
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, cfg.System.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// applyExportFlags lets the export command's own flags override the global
// --export-dir flag and the config file.
func applyExportFlags(ctx *cli.Context, cfg *config.Config) {
	if ctx.IsSet(dirFlag.Name) {
		cfg.Export.Dir = ctx.String(dirFlag.Name)
	}

	if ctx.IsSet(exportNameFlag.Name) {
		cfg.Export.Filename = ctx.String(exportNameFlag.Name)
	}
}

// exportAction writes the saved laps to a CSV file.
func exportAction(ctx *cli.Context) error {
	sw, client, cfg, err := openStopwatch(ctx, silent)
	if err != nil {
		return err
	}

	defer client.Close()

	if !sw.CanExport() {
		report.NoLaps()
		return nil
	}

	applyExportFlags(ctx, cfg)

	path, err := export.WriteFile(cfg.Export.Dir, cfg.Export.Filename, sw.Laps())
	if err != nil {
		return err
	}

	report.Exported(path, len(sw.Laps()))

	// the file is already written, so a failing hook is not fatal
	if err := export.Run(cfg.Export.Cmd, path); err != nil {
		report.Error(err)
	}

	return nil
}

// lapsAction prints the saved laps as a table or as a JSON array of lap
// records.
func lapsAction(ctx *cli.Context) error {
	sw, client, _, err := openStopwatch(ctx, silent)
	if err != nil {
		return err
	}

	defer client.Close()

	if ctx.Bool("json") {
		b, err := json.Marshal(ui.LapRecords(sw.Laps()))
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	if !sw.CanExport() {
		pterm.Info.Println("no laps recorded yet")
		return nil
	}

	ui.PrintTable(ui.LapRows(sw.Laps()), config.Stdout)

	return nil
}

// statusAction prints the saved stopwatch state.
func statusAction(ctx *cli.Context) error {
	sw, client, _, err := openStopwatch(ctx, silent)
	if errors.Is(err, store.ErrAlreadyRunning) {
		pterm.Info.Println("lapwatch is open in another terminal")
		return nil
	}

	if err != nil {
		return err
	}

	defer client.Close()

	state := "paused"
	if sw.Running() {
		state = "running"
	} else if sw.Elapsed() == 0 {
		state = "stopped"
	}

	fmt.Fprintf(
		config.Stdout,
		"%s %s (%d laps)\n",
		ui.Highlight(timeutil.Format(sw.Elapsed())),
		ui.Yellow("["+state+"]"),
		len(sw.Laps()),
	)

	return nil
}

// resetAction clears the saved stopwatch after confirmation.
func resetAction(ctx *cli.Context) error {
	sw, client, _, err := openStopwatch(ctx, silent)
	if err != nil {
		return err
	}

	defer client.Close()

	confirmed := ctx.Bool("yes")

	if !confirmed {
		err = huh.NewConfirm().
			Title(fmt.Sprintf(
				"Reset the stopwatch at %s and discard %d laps?",
				timeutil.Format(sw.Elapsed()),
				len(sw.Laps()),
			)).
			Affirmative("Reset").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
	}

	if !confirmed {
		return nil
	}

	sw.Reset()

	pterm.Success.Println("stopwatch reset")

	return nil
}

// defaultAction launches the interactive stopwatch.
func defaultAction(ctx *cli.Context) error {
	sw, client, cfg, err := openStopwatch(ctx, newFeedback)
	if err != nil {
		return err
	}

	defer client.Close()

	p := tea.NewProgram(timer.New(sw, cfg))

	_, err = p.Run()

	return err
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		ui.DisableStyling()
	}

	// Disable colour output if LAPWATCH_NO_COLOR is set
	if _, exists := os.LookupEnv(envLapwatchNoColor); exists {
		ui.DisableStyling()
	}

	if ctx.Bool("no-color") {
		ui.DisableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting lapwatch", slog.String("command", strings.Join(ctx.Args().Slice(), " ")))

	return nil
}
