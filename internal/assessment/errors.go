package assessment

import "errors"

var (
	ErrUnknownItem     = errors.New("unknown catalog item")
	ErrScoreOutOfRange = errors.New("score out of range")
	ErrSelectionCap    = errors.New("selection cap reached")
	ErrMissingUserInfo = errors.New("user info missing")
)

// IncompleteError описывает первый непройденный этап проверки перед отправкой.
type IncompleteError struct {
	Reason        string
	RedirectStage Stage
}

func (e *IncompleteError) Error() string {
	return "assessment incomplete: " + e.Reason
}
