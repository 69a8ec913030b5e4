package project

import (
	"github.com/keelson/sitedesk/internal/domain/bid"
	"github.com/keelson/sitedesk/internal/domain/changeorder"
	"github.com/keelson/sitedesk/internal/domain/document"
	"github.com/keelson/sitedesk/internal/domain/inspection"
)

// Status enumerates the lifecycle states of a project.
type Status string

const (
	StatusPlanning  Status = "planning"
	StatusActive    Status = "active"
	StatusOnHold    Status = "on_hold"
	StatusCompleted Status = "completed"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusPlanning, StatusActive, StatusOnHold, StatusCompleted}

// Valid reports whether s is a known project status.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusActive, StatusOnHold, StatusCompleted:
		return true
	}
	return false
}

// Project represents a construction project together with its nested
// collections. List and Get responses always carry the nested slices so
// the dashboard can render project details without extra round trips.
type Project struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      Status  `json:"status"`
	Phase       string  `json:"phase"`
	Location    string  `json:"location"`
	Budget      float64 `json:"budget"`
	ActualCost  float64 `json:"actual_cost"`
	Progress    int     `json:"progress"`
	StartDate   string  `json:"start_date,omitempty"`
	EndDate     string  `json:"end_date,omitempty"`

	Documents    []document.Document       `json:"documents"`
	Bids         []bid.Bid                 `json:"bids"`
	ChangeOrders []changeorder.ChangeOrder `json:"change_orders"`
	Inspections  []inspection.Inspection   `json:"inspections"`
}

// Variance is the remaining budget headroom: budget minus actual cost.
// A negative variance means the project is over budget.
func (p Project) Variance() float64 {
	return p.Budget - p.ActualCost
}
