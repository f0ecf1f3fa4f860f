// 指示: miu200521358
package model

import "errors"

var (
	// ErrPoseNotBound はポーズ提供元が未設定のまま実行された。
	ErrPoseNotBound = errors.New("ポーズ提供元が未設定です")
	// ErrCollisionNotBound は衝突判定クエリが未設定のまま実行された。
	ErrCollisionNotBound = errors.New("衝突判定クエリが未設定です")
	// ErrSolverDisabled は無効化済みソルバーが呼ばれた。
	ErrSolverDisabled = errors.New("ソルバーは無効化されています")
	// ErrUnknownContactMode は未対応の接地モードが指定された。
	ErrUnknownContactMode = errors.New("未対応の接地モードです")
)
