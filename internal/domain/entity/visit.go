package entity

import "time"

// Visit is one cleaning pass on a sanitary block.
type Visit struct {
	Block   string    `json:"block"`
	Date    time.Time `json:"date"`
	Start   string    `json:"start"`
	End     string    `json:"end"`
	Minutes float64   `json:"minutes"`
}

// BlockVisits aggregates the visits of one sanitary block.
type BlockVisits struct {
	Block          string    `json:"block"`
	Count          int       `json:"count"`
	TotalMinutes   float64   `json:"total_minutes"`
	AverageMinutes float64   `json:"average_minutes"`
	Total          string    `json:"total"`
	Average        string    `json:"average"`
	LastVisit      time.Time `json:"last_visit"`
	Visits         []*Visit  `json:"visits"`
}

// VisitSummary aggregates the sanitary block visits sheet over a period.
type VisitSummary struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Rows    int       `json:"rows"`
	Dropped int       `json:"dropped"`

	TotalMinutes float64        `json:"total_minutes"`
	Total        string         `json:"total"`
	Blocks       []*BlockVisits `json:"blocks"`
}
