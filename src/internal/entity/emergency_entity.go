package entity

import "time"

type EmergencyUpdate struct {
	Date    time.Time `json:"date"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

type Emergency struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"` // HTML
	Images        []string          `json:"images"`
	Target        float64           `json:"target"`
	Raised        float64           `json:"raised"`
	DaysLeft      int               `json:"daysLeft"`
	Beneficiaries int               `json:"beneficiaries"`
	Critical      bool              `json:"critical"`
	Updates       []EmergencyUpdate `json:"updates"`
}

// Progress is raised/target as a percentage capped at 100.
func (e Emergency) Progress() float64 {
	if e.Target <= 0 {
		return 0
	}
	p := e.Raised / e.Target * 100
	if p > 100 {
		return 100
	}
	return p
}
