// 指示: miu200521358
// Package messages はCLI表示とログに使うメッセージキーを提供する。
package messages

// メッセージキー一覧。
const (
	HelpSimulate = "シーン設定を読み込み、足接地と注視のポスト姿勢IKを指定tick数実行する"
	HelpConfig   = "既定のIKリグ設定をYAMLで出力する"
	HelpScenes   = "シーン設定YAMLファイル"
	HelpRig      = "シーン内のリグ設定を上書きするリグ設定YAMLファイル"
	HelpTicks    = "全シーンのtick数を上書きする"
	HelpDt       = "全シーンのtick間隔(秒)を上書きする"
	HelpMode     = "全シーンの接地モードを上書きする(none/simple/complex)"
	HelpDebug    = "デバッグログを出力する"
	HelpProgress = "進捗バーを表示しない"

	MessageSceneRequired = "シーン設定ファイルを指定してください"
	MessageSceneFailed   = "シーン実行失敗"
	MessageLoadFailed    = "設定読み込み失敗"

	LogSimulateStart  = "シミュレーション開始: scenes=%d ticks=%d"
	LogSimulateFinish = "シミュレーション完了: succeeded=%d failed=%d"
	LogSceneHeader    = "[mu_smartik] scene=%s ticks=%d mode=%s airborne=%d"
	LogSceneBody      = "  体位置: %s lastLowestDelta=%.5f"
	LogSceneFoot      = "  %s: pos=%s rot=%s"
	LogSceneBone      = "  %s: rot=%s"
	LogSceneWarning   = "  警告 %s: %d tick"
)
