package assessment

import (
	"time"

	"example.com/wellbeing-wheel/backend/internal/catalog"
)

const maxImprovements = 3

// SelectItem добавляет пункт в план улучшений с тремя пустыми слотами действий.
// Повторный выбор не меняет запись; четвертый пункт отклоняется с ErrSelectionCap.
func (r *Record) SelectItem(itemID string) error {
	if _, ok := catalog.ItemByID(itemID); !ok {
		return ErrUnknownItem
	}

	if r.IsSelected(itemID) {
		return nil
	}

	if len(r.Improvements) >= maxImprovements {
		return ErrSelectionCap
	}

	improvement := Improvement{ItemID: itemID}
	for slot := range improvement.Actions {
		improvement.Actions[slot] = newAction(itemID, slot)
	}

	r.Improvements = append(r.Improvements, improvement)
	return nil
}

// DeselectItem убирает пункт из плана улучшений вместе со слотами действий.
func (r *Record) DeselectItem(itemID string) {
	for i, improvement := range r.Improvements {
		if improvement.ItemID == itemID {
			r.Improvements = append(r.Improvements[:i], r.Improvements[i+1:]...)
			return
		}
	}
}

// IsSelected сообщает, выбран ли пункт для плана улучшений.
func (r *Record) IsSelected(itemID string) bool {
	return r.improvementFor(itemID) != nil
}

// SetActionText обновляет текст слота действия. Неизвестный пункт или
// слот вне диапазона молча игнорируются.
func (r *Record) SetActionText(itemID string, slot int, text string) {
	improvement := r.improvementFor(itemID)
	if improvement == nil || slot < 0 || slot >= actionSlots {
		return
	}
	improvement.Actions[slot].Text = text
}

// SetActionDate обновляет целевую дату слота действия.
func (r *Record) SetActionDate(itemID string, slot int, date *time.Time) {
	improvement := r.improvementFor(itemID)
	if improvement == nil || slot < 0 || slot >= actionSlots {
		return
	}
	improvement.Actions[slot].DueDate = date
}

// ClearAction очищает текст и дату слота, сохраняя слот на месте.
func (r *Record) ClearAction(itemID string, slot int) {
	improvement := r.improvementFor(itemID)
	if improvement == nil || slot < 0 || slot >= actionSlots {
		return
	}
	improvement.Actions[slot].Text = ""
	improvement.Actions[slot].DueDate = nil
}

// PlanComplete проверяет готовность плана: хотя бы один выбранный пункт,
// в каждом пункте хотя бы один полный слот (текст и дата), и ни одного
// частично заполненного слота.
func (r *Record) PlanComplete() bool {
	if len(r.Improvements) == 0 {
		return false
	}

	for _, improvement := range r.Improvements {
		hasComplete := false
		for _, action := range improvement.Actions {
			if action.Text != "" && action.DueDate == nil {
				return false
			}
			if action.Text != "" && action.DueDate != nil {
				hasComplete = true
			}
		}
		if !hasComplete {
			return false
		}
	}
	return true
}

func (r *Record) improvementFor(itemID string) *Improvement {
	for i := range r.Improvements {
		if r.Improvements[i].ItemID == itemID {
			return &r.Improvements[i]
		}
	}
	return nil
}
