// 指示: miu200521358
package main

import (
	"context"
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"
	"github.com/rs/zerolog"

	"github.com/miu200521358/mu_smartik/pkg/adapter/io_config"
	"github.com/miu200521358/mu_smartik/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_smartik/pkg/domain/model"
	"github.com/miu200521358/mu_smartik/pkg/infra/simulation"
)

// simulate はシーン群を並行実行し、結果を出力する。
func simulate(ctx context.Context, opts options, out io.Writer, errOut io.Writer, logger *zerolog.Logger) error {
	configs, err := loadScenes(opts)
	if err != nil {
		return err
	}
	total := simulation.TotalTicks(configs)
	logger.Info().Msgf(messages.LogSimulateStart, len(configs), total)

	var onTick func()
	var bar *pb.ProgressBar
	if !opts.noProgress {
		bar = pb.New(total).SetWriter(errOut).Start()
		onTick = func() { bar.Increment() }
	}
	outcomes, errs := simulation.RunAll(ctx, configs, logger, onTick)
	if bar != nil {
		bar.Finish()
	}

	failed := 0
	for i, outcome := range outcomes {
		if errs[i] != nil {
			failed++
			logger.Error().Err(errs[i]).Str("scene", configs[i].Name).Msg(messages.MessageSceneFailed)
			continue
		}
		printOutcome(out, outcome)
	}
	logger.Info().Msgf(messages.LogSimulateFinish, len(configs)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%s: %d件", messages.MessageSceneFailed, failed)
	}
	return nil
}

// loadScenes はシーン設定を読み込み、CLI指定で上書きする。
func loadScenes(opts options) ([]*io_config.SceneConfig, error) {
	var rig *io_config.RigConfig
	if opts.rigPath != "" {
		loaded, err := io_config.LoadRigConfig(opts.rigPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", messages.MessageLoadFailed, err)
		}
		rig = loaded
	}
	if opts.mode != "" {
		if _, err := model.ParseContactMode(opts.mode); err != nil {
			return nil, fmt.Errorf("--mode が不正です: %w", err)
		}
	}

	configs := make([]*io_config.SceneConfig, 0, len(opts.scenePaths))
	for _, path := range opts.scenePaths {
		config, err := io_config.LoadSceneConfig(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", messages.MessageLoadFailed, err)
		}
		if rig != nil {
			config.Rig = *rig
		}
		if opts.mode != "" {
			config.Rig.Foot.ContactMode = opts.mode
		}
		if opts.ticks > 0 {
			config.Ticks = opts.ticks
		}
		if opts.dt > 0 {
			config.DeltaTime = opts.dt
		}
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", messages.MessageLoadFailed, path, err)
		}
		configs = append(configs, config)
	}
	return configs, nil
}

// printOutcome は1シーン分の最終状態を出力する。
func printOutcome(out io.Writer, outcome *simulation.Outcome) {
	fmt.Fprintf(out, messages.LogSceneHeader+"\n", outcome.Name, outcome.Ticks, outcome.ContactMode, outcome.AirborneTicks)

	final := outcome.Final
	lastLowestDelta := 0.0
	if outcome.Last != nil && outcome.Last.Foot != nil {
		lastLowestDelta = outcome.Last.Foot.LastLowestDelta
	}
	fmt.Fprintf(out, messages.LogSceneBody+"\n", final.BodyPosition.String(), lastLowestDelta)
	for _, goal := range model.FOOT_IK_GOALS {
		state := final.IkGoals[goal]
		fmt.Fprintf(out, messages.LogSceneFoot+"\n", goal.String(), state.Position.String(), state.Rotation.String())
	}
	for _, bone := range final.Bones {
		fmt.Fprintf(out, messages.LogSceneBone+"\n", bone.Name, bone.Rotation.String())
	}
	for _, id := range outcome.WarningIDs() {
		fmt.Fprintf(out, messages.LogSceneWarning+"\n", id, outcome.Warnings[id])
	}
}
