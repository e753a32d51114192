// Package queue defines message payloads exchanged over the message broker.
package queue

// OffDayRequestedEvent is published after an off-day request is stored on
// the data platform. It carries enough information for downstream
// consumers (payroll export, rostering, notifications) without them
// querying the platform again.
type OffDayRequestedEvent struct {
	Employee    int     `json:"employee"`
	SingleDay   bool    `json:"single_day"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
	Type        string  `json:"type"`
	Notes       *string `json:"notes,omitempty"`
	RequestedAt string  `json:"requested_at"`
}
