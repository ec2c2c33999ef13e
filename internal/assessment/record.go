package assessment

import (
	"fmt"
	"sync/atomic"
	"time"

	"example.com/wellbeing-wheel/backend/internal/catalog"
)

const actionSlots = 3

type UserInfo struct {
	FullName string `json:"full_name"`
	JobTitle string `json:"job_title,omitempty"`
	Company  string `json:"company,omitempty"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

type ItemScore struct {
	ItemID  string `json:"item_id"`
	Current *int   `json:"current,omitempty"`
	Desired *int   `json:"desired,omitempty"`
}

type Action struct {
	ID      string     `json:"id"`
	Text    string     `json:"text"`
	DueDate *time.Time `json:"due_date,omitempty"`
}

type Improvement struct {
	ItemID  string              `json:"item_id"`
	Actions [actionSlots]Action `json:"actions"`
}

type Record struct {
	UserInfo     *UserInfo     `json:"user_info,omitempty"`
	ItemScores   []ItemScore   `json:"item_scores"`
	Improvements []Improvement `json:"improvements"`
	Stage        Stage         `json:"stage"`
}

var actionSeq atomic.Uint64

// NewRecord создает запись сессии в стартовом состоянии мастера.
func NewRecord() *Record {
	record := &Record{Stage: StageUserInfo}
	record.initScores()
	return record
}

// Reset возвращает запись в стартовое состояние, стирая все данные.
func (r *Record) Reset() {
	r.UserInfo = nil
	r.Improvements = nil
	r.Stage = StageUserInfo
	r.initScores()
}

func (r *Record) initScores() {
	catalogItems := catalog.Items()
	r.ItemScores = make([]ItemScore, 0, len(catalogItems))
	for _, item := range catalogItems {
		r.ItemScores = append(r.ItemScores, ItemScore{ItemID: item.ID})
	}
}

func (r *Record) scoreFor(itemID string) *ItemScore {
	for i := range r.ItemScores {
		if r.ItemScores[i].ItemID == itemID {
			return &r.ItemScores[i]
		}
	}
	return nil
}

func newAction(itemID string, slot int) Action {
	return Action{ID: fmt.Sprintf("%s-%d-%d", itemID, slot, actionSeq.Add(1))}
}
