package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/countdown/internal/config"
	"github.com/ayoisaiah/countdown/internal/countdown"
	"github.com/ayoisaiah/countdown/internal/logger"
	"github.com/ayoisaiah/countdown/internal/osutil"
	"github.com/ayoisaiah/countdown/internal/pathutil"
	"github.com/ayoisaiah/countdown/internal/sound"
	"github.com/ayoisaiah/countdown/internal/static"
	"github.com/ayoisaiah/countdown/internal/ui"
	"github.com/ayoisaiah/countdown/report"
	"github.com/ayoisaiah/countdown/timer"
)

const (
	envNoColor          = "NO_COLOR"
	envCountdownNoColor = "COUNTDOWN_NO_COLOR"
)

// alertTimeout bounds how long the headless runner waits for the alert sound
// to finish before exiting.
const alertTimeout = 10 * time.Second

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

// loadConfig builds the configuration from the first-run prompt, the config
// file and the command-line flags, in that order of precedence.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	path := pathutil.ConfigFilePath()

	return config.New(
		config.WithPromptConfig(path),
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	)
}

// prepare loads the configuration, starts file logging and loads the alert
// sound. The returned function releases both.
func prepare(ctx *cli.Context) (*config.Config, *sound.Player, func(), error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	// already validated by config.New
	level, _ := config.ParseLevel(cfg.Log.Level)

	closeLog := logger.Init(pathutil.LogFilePath(), level)

	ui.DarkTheme = cfg.Display.DarkTheme

	player, err := sound.NewPlayer(cfg.Alert.Sound, cfg.Alert.Volume)
	if err != nil {
		_ = closeLog()
		return nil, nil, nil, err
	}

	cleanup := func() {
		player.Close()
		_ = closeLog()
	}

	return cfg, player, cleanup, nil
}

// defaultAction opens the interactive countdown screen.
func defaultAction(ctx *cli.Context) error {
	cfg, player, cleanup, err := prepare(ctx)
	if err != nil {
		return err
	}

	defer cleanup()

	t := timer.New(cfg, player)

	p := tea.NewProgram(t, tea.WithAltScreen())

	err = config.Watch(pathutil.ConfigFilePath(), func(c *config.Config) {
		player.SetVolume(c.Alert.Volume)
		p.Send(timer.ReloadMsg{Config: c})
	}, config.WithCLIConfig(ctx))
	if err != nil {
		slog.Warn("config watcher disabled", slog.Any("error", err))
	}

	slog.Info("starting countdown screen",
		slog.Int("minutes", cfg.Preset.Minutes),
		slog.Int("seconds", cfg.Preset.Seconds),
	)

	_, err = p.Run()

	return err
}

// frame renders one line of the headless countdown.
func frame(s countdown.State) string {
	status := ui.Green("running")
	if !s.Running {
		status = ui.Highlight("done")
	}

	return ui.Yellow(s.Display()) + "  " + status
}

// runAction counts down in the terminal without the interactive screen and
// exits when the countdown expires or is interrupted.
func runAction(ctx *cli.Context) error {
	cfg, player, cleanup, err := prepare(ctx)
	if err != nil {
		return err
	}

	defer cleanup()

	m := countdown.New(player)
	m.EditMinutes(cfg.Preset.Minutes)
	m.EditSeconds(cfg.Preset.Seconds)

	sigCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	area, err := pterm.DefaultArea.Start()
	if err != nil {
		return err
	}

	ticker := countdown.NewTicker(m, countdown.WithFrameFunc(
		func(s countdown.State) {
			area.Update(frame(s))
		},
	))

	outcome, err := ticker.Run(sigCtx)

	_ = area.Stop()

	if errors.Is(err, context.Canceled) {
		pterm.Warning.Printfln("countdown stopped with %s remaining", m.Display())
		return nil
	}

	if err != nil {
		return err
	}

	switch outcome {
	case countdown.Rejected:
		return errInvalidCountdown.Fmt(strings.Join(m.State().Errors, "; "))
	case countdown.Expired:
		slog.Info("countdown expired")
		pterm.Success.Println("Time is up!")

		if err := timer.RunExpiryHooks(cfg.Alert); err != nil {
			report.Error(err)
			slog.Error("expiry hooks failed", slog.Any("error", err))
		}

		waitCtx, cancel := context.WithTimeout(sigCtx, alertTimeout)
		defer cancel()

		_ = player.Wait(waitCtx)
	}

	return nil
}

// soundRows builds the table printed by the sounds command. Bundled sounds
// are referenced by name and user files by path.
func soundRows(names []string, dir string) [][]string {
	rows := [][]string{{"#", "SOUND", "USE AS"}}

	for i, name := range names {
		use := name

		if !static.Exists(name + ".wav") {
			matches, _ := filepath.Glob(filepath.Join(dir, name+".*"))
			for _, match := range matches {
				if sound.Supported(match) {
					use = match
					break
				}
			}
		}

		rows = append(rows, []string{strconv.Itoa(i + 1), name, use})
	}

	return rows
}

// soundsAction lists the bundled sounds and the files in the sounds
// directory.
func soundsAction(_ *cli.Context) error {
	dir := pathutil.StaticDir()

	names, err := sound.Available(dir)
	if err != nil {
		return err
	}

	ui.PrintTable(soundRows(names, dir), config.Stdout)

	pterm.Info.Printfln("add your own sounds to %s", dir)

	return nil
}

// editConfigAction handles the edit-config command which opens the countdown
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	path := pathutil.ConfigFilePath()

	// writes the defaults if the file is missing
	if _, err := config.New(config.WithViperConfig(path)); err != nil {
		return err
	}

	cmd := exec.Command(editor, path)

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
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
		disableStyling()
	}

	// Disable colour output if COUNTDOWN_NO_COLOR is set
	if _, exists := os.LookupEnv(envCountdownNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return errInitPaths.Wrap(err)
	}

	if err := static.CopyToDir(pathutil.StaticDir()); err != nil {
		return errCopyStatic.Wrap(err)
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting countdown")

	return nil
}

// disableStyling disables all styling provided by pterm and lipgloss.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""

	lipgloss.SetColorProfile(termenv.Ascii)
}
