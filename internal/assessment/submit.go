package assessment

// ValidateForSubmission проверяет полноту записи перед отправкой.
// Возвращает ErrMissingUserInfo или IncompleteError с этапом, на который
// нужно вернуть пользователя; запись при этом не меняется.
func (r *Record) ValidateForSubmission() error {
	if r.UserInfo == nil {
		return ErrMissingUserInfo
	}

	for _, score := range r.ItemScores {
		if score.Current == nil {
			return &IncompleteError{Reason: "missing_current_scores", RedirectStage: StageCurrentScore}
		}
	}

	for _, score := range r.ItemScores {
		if score.Desired == nil {
			return &IncompleteError{Reason: "missing_desired_scores", RedirectStage: StageDesiredScore}
		}
	}

	if len(r.Improvements) == 0 {
		return &IncompleteError{Reason: "no_items_selected", RedirectStage: StageSelectItems}
	}

	if !r.PlanComplete() {
		return &IncompleteError{Reason: "incomplete_action_plan", RedirectStage: StageDefineActions}
	}

	return nil
}
