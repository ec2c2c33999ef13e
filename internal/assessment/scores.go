package assessment

import "example.com/wellbeing-wheel/backend/internal/catalog"

type ScoreKind string

const (
	ScoreKindCurrent ScoreKind = "current"
	ScoreKindDesired ScoreKind = "desired"
)

const maxScore = 10

// ParseScoreKind разбирает вид оценки: текущая или желаемая.
func ParseScoreKind(value string) (ScoreKind, bool) {
	switch ScoreKind(value) {
	case ScoreKindCurrent, ScoreKindDesired:
		return ScoreKind(value), true
	}
	return "", false
}

type CategoryPercentage struct {
	CategoryID    catalog.CategoryID `json:"category_id"`
	CategoryName  string             `json:"category_name"`
	CategoryColor string             `json:"category_color"`
	Current       *float64           `json:"current,omitempty"`
	Desired       *float64           `json:"desired,omitempty"`
}

// SetScore записывает оценку пункта, перезаписывая предыдущее значение.
func (r *Record) SetScore(itemID string, kind ScoreKind, value int) error {
	if value < 1 || value > maxScore {
		return ErrScoreOutOfRange
	}

	score := r.scoreFor(itemID)
	if score == nil {
		return ErrUnknownItem
	}

	if kind == ScoreKindDesired {
		score.Desired = &value
	} else {
		score.Current = &value
	}
	return nil
}

// CategoryPercentages считает нормированные проценты по категориям.
// Категория без единой оценки остается без процента: "не оценено"
// отличается от "оценено в минимум".
func (r *Record) CategoryPercentages() []CategoryPercentage {
	result := make([]CategoryPercentage, 0, len(catalog.Categories()))
	for _, category := range catalog.Categories() {
		entry := CategoryPercentage{
			CategoryID:    category.ID,
			CategoryName:  category.Name,
			CategoryColor: category.Color,
		}

		items := catalog.ItemsByCategory(category.ID)

		var currents, desireds []int
		for _, item := range items {
			score := r.scoreFor(item.ID)
			if score == nil {
				continue
			}
			if score.Current != nil {
				currents = append(currents, *score.Current)
			}
			if score.Desired != nil {
				desireds = append(desireds, *score.Desired)
			}
		}

		entry.Current = normalizedPercentage(currents, len(items))
		entry.Desired = normalizedPercentage(desireds, len(items))
		result = append(result, entry)
	}
	return result
}

// normalizedPercentage делит сумму выставленных оценок на максимум всей
// категории: частично оцененная категория не выглядит полностью заполненной.
func normalizedPercentage(scores []int, itemCount int) *float64 {
	if len(scores) == 0 || itemCount == 0 {
		return nil
	}

	sum := 0
	for _, score := range scores {
		sum += score
	}

	percentage := float64(sum) / float64(maxScore*itemCount) * 100
	return &percentage
}
