// 指示: miu200521358
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"sort"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/miu200521358/mu_smartik/pkg/adapter/io_config"
	"github.com/miu200521358/mu_smartik/pkg/infra/simulation"
)

// batchConfig は一括検証の実行設定を表す。
type batchConfig struct {
	SceneDir string `help:"検証するシーン設定YAMLのディレクトリ" default:""`
	Repeat   int    `help:"決定性確認の繰り返し回数" default:"3"`
	FailFast bool   `help:"失敗時に即時終了する"`
	Debug    bool   `help:"デバッグログを出力する"`
}

// sceneEntry は1シーン分の検証入力情報を表す。
type sceneEntry struct {
	Index  int
	Path   string
	Config *io_config.SceneConfig
}

// sceneResult は1シーン分の検証結果を表す。
type sceneResult struct {
	Entry    sceneEntry
	Status   string
	Duration time.Duration
	Err      error
	Outcome  *simulation.Outcome
}

// main はシーン設定を繰り返し実行し、結果が毎回一致することを検証する。
func main() {
	os.Exit(run())
}

// run は実行設定を解決して一括検証を実行し、終了コードを返す。
func run() int {
	var config batchConfig
	kong.Parse(&config, kong.Name("integration_test"), kong.Description("IKシーン一括決定性検証"))
	if config.SceneDir == "" {
		defaultDir, err := resolveDefaultSceneDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "設定解析に失敗しました: %v\n", err)
			return 2
		}
		config.SceneDir = defaultDir
	}
	if config.Repeat < 2 {
		fmt.Fprintln(os.Stderr, "repeat は2以上で指定してください")
		return 2
	}

	level := zerolog.InfoLevel
	if config.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(level).With().Timestamp().Logger()

	entries, err := buildSceneEntries(config.SceneDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "シーン読み込みに失敗しました: %v\n", err)
		return 2
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "検証対象シーンがありません")
		return 2
	}

	results := executeBatch(config, entries, &logger)
	printBatchSummary(results)

	for _, result := range results {
		if result.Status != "succeeded" {
			return 1
		}
	}
	return 0
}

// resolveDefaultSceneDir はスクリプト配置ディレクトリ基準の既定シーンディレクトリを返す。
func resolveDefaultSceneDir() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("実行ファイル位置を取得できません")
	}
	return filepath.Join(filepath.Dir(currentFilePath), "scenes"), nil
}

// buildSceneEntries はディレクトリ内のシーン設定を名前順に読み込む。
func buildSceneEntries(dir string) ([]sceneEntry, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	entries := make([]sceneEntry, 0, len(paths))
	for i, path := range paths {
		config, err := io_config.LoadSceneConfig(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, sceneEntry{Index: i + 1, Path: path, Config: config})
	}
	return entries, nil
}

// executeBatch は全シーンの検証を順次実行する。
func executeBatch(config batchConfig, entries []sceneEntry, logger *zerolog.Logger) []sceneResult {
	results := make([]sceneResult, 0, len(entries))
	total := len(entries)
	for _, entry := range entries {
		fmt.Printf("[%d/%d] 検証開始: scene=%s\n", entry.Index, total, entry.Config.Name)
		result := verifyScene(config, entry, logger)
		results = append(results, result)
		if result.Status == "succeeded" {
			fmt.Printf(
				"[%d/%d] 検証成功: scene=%s mode=%s airborne=%d elapsed=%s\n",
				entry.Index, total, entry.Config.Name, result.Outcome.ContactMode,
				result.Outcome.AirborneTicks, result.Duration.Round(time.Millisecond),
			)
			continue
		}
		fmt.Printf("[%d/%d] 検証失敗: scene=%s reason=%v\n", entry.Index, total, entry.Config.Name, result.Err)
		if config.FailFast {
			return results
		}
	}
	return results
}

// verifyScene は1シーンを逐次実行と並行実行で繰り返し、最終姿勢の一致を確認する。
func verifyScene(config batchConfig, entry sceneEntry, logger *zerolog.Logger) sceneResult {
	result := sceneResult{Entry: entry, Status: "failed"}
	startedAt := time.Now()

	baseline, err := simulation.NewRunner(entry.Config, logger).Run(context.Background(), nil)
	if err != nil {
		result.Err = err
		return result
	}

	configs := make([]*io_config.SceneConfig, config.Repeat-1)
	for i := range configs {
		configs[i] = entry.Config
	}
	outcomes, errs := simulation.RunAll(context.Background(), configs, logger, nil)
	for i, outcome := range outcomes {
		if errs[i] != nil {
			result.Err = errs[i]
			return result
		}
		if !reflect.DeepEqual(baseline.Final, outcome.Final) {
			result.Err = fmt.Errorf("%d回目の最終姿勢が初回と一致しません", i+2)
			return result
		}
		if !reflect.DeepEqual(baseline.Warnings, outcome.Warnings) {
			result.Err = fmt.Errorf("%d回目の警告集計が初回と一致しません", i+2)
			return result
		}
	}

	result.Status = "succeeded"
	result.Outcome = baseline
	result.Duration = time.Since(startedAt)
	return result
}

// printBatchSummary は検証結果の集計を標準出力へ表示する。
func printBatchSummary(results []sceneResult) {
	succeeded := 0
	for _, result := range results {
		if result.Status == "succeeded" {
			succeeded++
		}
	}
	fmt.Printf("一括検証サマリ: total=%d succeeded=%d failed=%d\n", len(results), succeeded, len(results)-succeeded)
}
