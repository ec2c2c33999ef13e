package assessment

type Stage string

const (
	StageUserInfo      Stage = "user_info"
	StageCurrentScore  Stage = "current_score"
	StageDesiredScore  Stage = "desired_score"
	StageSelectItems   Stage = "select_items"
	StageDefineActions Stage = "define_actions"
	StageSummary       Stage = "summary"
)

// ParseStage разбирает строковое значение этапа мастера.
func ParseStage(value string) (Stage, bool) {
	switch Stage(value) {
	case StageUserInfo, StageCurrentScore, StageDesiredScore, StageSelectItems, StageDefineActions, StageSummary:
		return Stage(value), true
	}
	return "", false
}

// SetStage безусловно переводит запись на указанный этап.
// Проверка готовности этапа лежит на вызывающей стороне.
func (r *Record) SetStage(stage Stage) {
	r.Stage = stage
}
