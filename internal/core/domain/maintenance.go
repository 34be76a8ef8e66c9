package domain

import "time"

// MaintenanceEventType classifies a scheduled maintenance window.
type MaintenanceEventType string

const (
	TypePreventiveMaintenance MaintenanceEventType = "PREVENTIVE_MAINTENANCE"
	TypeRegularUpdate         MaintenanceEventType = "REGULAR_UPDATE"
	TypeEmergencyMaintenance  MaintenanceEventType = "EMERGENCY_MAINTENANCE"
	TypeServiceDeployment     MaintenanceEventType = "SERVICE_DEPLOYMENT"
)

var maintenanceEventTypes = []MaintenanceEventType{
	TypePreventiveMaintenance,
	TypeRegularUpdate,
	TypeEmergencyMaintenance,
	TypeServiceDeployment,
}

// Valid reports whether t is one of the fixed event types.
func (t MaintenanceEventType) Valid() bool {
	for _, known := range maintenanceEventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// MaintenanceEvent is a scheduled IT maintenance window shown on the
// calendar. EndDate is nil for open-ended windows.
type MaintenanceEvent struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	StartDate   time.Time            `json:"startDate"`
	EndDate     *time.Time           `json:"endDate,omitempty"`
	Type        MaintenanceEventType `json:"type"`
	AuthorID    string               `json:"authorId"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// Upcoming reports whether the event is still relevant at time now: it
// starts in the future, ends in the future, or is open-ended and running.
func (e *MaintenanceEvent) Upcoming(now time.Time) bool {
	if !e.StartDate.Before(now) {
		return true
	}
	if e.EndDate != nil {
		return !e.EndDate.Before(now)
	}
	return true
}
