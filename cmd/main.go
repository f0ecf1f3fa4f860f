// 指示: miu200521358
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/miu200521358/mu_smartik/pkg/adapter/io_config"
	"github.com/miu200521358/mu_smartik/pkg/adapter/mpresenter/messages"
)

const (
	commandSimulate = "simulate"
	commandConfig   = "config"
)

// cli はコマンドライン定義を表す。
type cli struct {
	Debug bool `help:"${help_debug}"`

	Simulate struct {
		Scenes     []string `arg:"" name:"scenes" help:"${help_scenes}"`
		Rig        string   `help:"${help_rig}"`
		Ticks      int      `help:"${help_ticks}"`
		Dt         float64  `help:"${help_dt}"`
		Mode       string   `help:"${help_mode}"`
		NoProgress bool     `help:"${help_progress}"`
	} `cmd:"" help:"${help_simulate}"`

	Config struct{} `cmd:"" help:"${help_config}"`
}

// options はCLI引数を保持する。
type options struct {
	command    string
	scenePaths []string
	rigPath    string
	ticks      int
	dt         float64
	mode       string
	debug      bool
	noProgress bool
}

// main はポスト姿勢IKのシミュレーションを実行する。
func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	opts, err := parseOptions(args, out, errOut)
	if err != nil {
		return err
	}
	logger := newLogger(errOut, opts.debug)

	switch opts.command {
	case commandConfig:
		data, err := io_config.MarshalRigConfig(io_config.DefaultRigConfig())
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	case commandSimulate:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return simulate(ctx, opts, out, errOut, &logger)
	default:
		return fmt.Errorf("未対応のコマンドです: %s", opts.command)
	}
}

// parseOptions はCLI引数を解析する。
func parseOptions(args []string, out io.Writer, errOut io.Writer) (options, error) {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("mu_smartik"),
		kong.Description("足接地と注視のポスト姿勢IKシミュレーター"),
		kong.Writers(out, errOut),
		kong.Exit(func(int) {}),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true, Summary: true}),
		kong.Vars{
			"help_debug":    messages.HelpDebug,
			"help_scenes":   messages.HelpScenes,
			"help_rig":      messages.HelpRig,
			"help_ticks":    messages.HelpTicks,
			"help_dt":       messages.HelpDt,
			"help_mode":     messages.HelpMode,
			"help_progress": messages.HelpProgress,
			"help_simulate": messages.HelpSimulate,
			"help_config":   messages.HelpConfig,
		},
	)
	if err != nil {
		return options{}, err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return options{}, err
	}

	opts := options{debug: c.Debug}
	switch kctx.Command() {
	case "simulate <scenes>":
		if len(c.Simulate.Scenes) == 0 {
			return options{}, errors.New(messages.MessageSceneRequired)
		}
		if c.Simulate.Ticks < 0 {
			return options{}, fmt.Errorf("--ticks は0以上で指定してください: %d", c.Simulate.Ticks)
		}
		if c.Simulate.Dt < 0 {
			return options{}, fmt.Errorf("--dt は0以上で指定してください: %v", c.Simulate.Dt)
		}
		opts.command = commandSimulate
		opts.scenePaths = c.Simulate.Scenes
		opts.rigPath = c.Simulate.Rig
		opts.ticks = c.Simulate.Ticks
		opts.dt = c.Simulate.Dt
		opts.mode = c.Simulate.Mode
		opts.noProgress = c.Simulate.NoProgress
	case "config":
		opts.command = commandConfig
	default:
		return options{}, fmt.Errorf("未対応のコマンドです: %s", kctx.Command())
	}
	return opts, nil
}

// newLogger はエラー出力へ書き出すコンソールロガーを生成する。
func newLogger(errOut io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: errOut, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
