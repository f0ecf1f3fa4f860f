// 指示: miu200521358
package model

const (
	// IkWarningZeroTotalWeight は全ボーン群のウェイト合計が0で注視補正を省略した警告。
	IkWarningZeroTotalWeight = "IkWarningZeroTotalWeight"
	// IkWarningDegenerateDirection はリグと注視点が一致し方向を決められない警告。
	IkWarningDegenerateDirection = "IkWarningDegenerateDirection"
	// IkWarningBoneMissing は設定ボーンがポーズに存在しない警告。
	IkWarningBoneMissing = "IkWarningBoneMissing"
	// IkWarningNoGroundContact は両足とも接地面が見つからない警告。
	IkWarningNoGroundContact = "IkWarningNoGroundContact"
	// IkWarningContactModeNone は接地モードがnoneで足接地を省略した警告。
	IkWarningContactModeNone = "IkWarningContactModeNone"
)
