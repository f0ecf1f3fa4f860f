// 指示: miu200521358
package model

import "fmt"

// IkGoal はIK目標の種別を表す。
type IkGoal int

const (
	// IkGoalLeftFoot は左足IK目標。
	IkGoalLeftFoot IkGoal = iota
	// IkGoalRightFoot は右足IK目標。
	IkGoalRightFoot
)

// FOOT_IK_GOALS は足IK目標の処理順。
var FOOT_IK_GOALS = []IkGoal{IkGoalLeftFoot, IkGoalRightFoot}

// String は表示名を返す。
func (g IkGoal) String() string {
	switch g {
	case IkGoalLeftFoot:
		return "左足IK"
	case IkGoalRightFoot:
		return "右足IK"
	default:
		return fmt.Sprintf("IkGoal(%d)", int(g))
	}
}
