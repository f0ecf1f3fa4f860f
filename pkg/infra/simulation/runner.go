// 指示: miu200521358
package simulation

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/miu200521358/mu_smartik/pkg/adapter/io_config"
	"github.com/miu200521358/mu_smartik/pkg/domain/model"
	"github.com/miu200521358/mu_smartik/pkg/infra/skeleton"
	"github.com/miu200521358/mu_smartik/pkg/usecase/minteractor"
)

// Outcome は1シーン分のシミュレーション結果を表す。
type Outcome struct {
	Name        string
	Ticks       int
	ContactMode model.ContactMode
	// Final は最終tickのIK適用後の姿勢。
	Final *skeleton.Snapshot
	Last  *minteractor.PostPoseResult
	// AirborneTicks は両足とも接地面がなかったtick数。
	AirborneTicks int
	// Warnings は警告IDごとの発生tick数。
	Warnings map[string]int
}

// WarningIDs は発生した警告IDを名前順で返す。
func (o *Outcome) WarningIDs() []string {
	ids := make([]string, 0, len(o.Warnings))
	for id := range o.Warnings {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Runner は1シーンのtickループを実行する。
type Runner struct {
	config *io_config.SceneConfig
	logger *zerolog.Logger
}

// NewRunner はシーン実行器を生成する。
func NewRunner(config *io_config.SceneConfig, logger *zerolog.Logger) *Runner {
	return &Runner{config: config, logger: logger}
}

// Run はアニメーション評価済み姿勢を毎tick再適用し、ポスト姿勢IKを実行する。
// onTick は各tick完了時に呼ばれる。nil可。
func (r *Runner) Run(ctx context.Context, onTick func()) (*Outcome, error) {
	if r.config == nil {
		return nil, fmt.Errorf("シーン設定が未指定です")
	}
	logger := zerolog.Nop()
	if r.logger != nil {
		logger = r.logger.With().Str("scene", r.config.Name).Logger()
	}

	pose, err := BuildSkeleton(r.config.Character)
	if err != nil {
		return nil, fmt.Errorf("スケルトン構築に失敗しました: %w", err)
	}
	animated, err := pose.Snapshot()
	if err != nil {
		return nil, err
	}
	scene, err := BuildScene(*r.config)
	if err != nil {
		return nil, fmt.Errorf("衝突シーン構築に失敗しました: %w", err)
	}
	rig, target, err := BuildLook(r.config.Look)
	if err != nil {
		return nil, err
	}
	usecase, err := BuildIkRig(r.config.Rig, &logger)
	if err != nil {
		return nil, fmt.Errorf("IKリグ構築に失敗しました: %w", err)
	}

	outcome := &Outcome{
		Name:        r.config.Name,
		ContactMode: usecase.FootSolver().ContactMode(),
		Warnings:    map[string]int{},
	}
	logger.Debug().
		Int("ticks", r.config.Ticks).
		Float64("dt", r.config.DeltaTime).
		Int("colliders", scene.Colliders()).
		Msg("シーン実行開始")

	for tick := 0; tick < r.config.Ticks; tick++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := pose.Restore(animated); err != nil {
			return nil, err
		}
		result, err := usecase.ApplyPostPose(minteractor.PostPoseRequest{
			Pose:      pose,
			Scene:     scene,
			Rig:       rig,
			Target:    target,
			DeltaTime: r.config.DeltaTime,
		})
		if err != nil {
			return nil, fmt.Errorf("tick %d: %w", tick+1, err)
		}
		outcome.collect(result)
		if onTick != nil {
			onTick()
		}
	}

	final, err := pose.Snapshot()
	if err != nil {
		return nil, err
	}
	outcome.Final = final
	logger.Debug().
		Int("airborneTicks", outcome.AirborneTicks).
		Msg("シーン実行完了")
	return outcome, nil
}

// collect はtick結果を集計する。
func (o *Outcome) collect(result *minteractor.PostPoseResult) {
	o.Ticks = result.Tick
	o.Last = result
	var warnings []string
	if result.Foot != nil {
		if result.Foot.Airborne {
			o.AirborneTicks++
		}
		warnings = append(warnings, result.Foot.Warnings...)
	}
	if result.Aim != nil {
		warnings = append(warnings, result.Aim.Warnings...)
	}
	for _, id := range warnings {
		o.Warnings[id]++
	}
}

// RunAll は複数シーンを並行実行する。結果とエラーは入力順に並ぶ。
func RunAll(
	ctx context.Context,
	configs []*io_config.SceneConfig,
	logger *zerolog.Logger,
	onTick func(),
) ([]*Outcome, []error) {
	outcomes := make([]*Outcome, len(configs))
	errs := make([]error, len(configs))

	var wg sync.WaitGroup
	for i, config := range configs {
		wg.Add(1)
		go func(i int, config *io_config.SceneConfig) {
			defer wg.Done()
			outcomes[i], errs[i] = NewRunner(config, logger).Run(ctx, onTick)
		}(i, config)
	}
	wg.Wait()

	return outcomes, errs
}

// TotalTicks は全シーンのtick数合計を返す。
func TotalTicks(configs []*io_config.SceneConfig) int {
	total := 0
	for _, config := range configs {
		total += config.Ticks
	}
	return total
}
