package Models

import (
	"time"
)

// TransportRequest represents one transport job from creation to completion.
// DriverFee and ClientCharge are derived from the rate table when the record
// is created, but operators may override them afterwards; overridden values
// survive edits unless the distance or vehicle category actually changes.
type TransportRequest struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber"`
	ClientName    string        `json:"clientName" validate:"required"`
	Origin        string        `json:"origin" validate:"required"`
	Destination   string        `json:"destination" validate:"required"`
	VehicleType   VehicleType   `json:"vehicleType" validate:"required"`
	DistanceKm    float64       `json:"distanceKm" validate:"gte=0"`
	DriverFee     float64       `json:"driverFee"`
	ClientCharge  float64       `json:"clientCharge"`
	Status        RequestStatus `json:"status"`
	CreatedAt     string        `json:"createdAt"`
	ScheduledFor  string        `json:"scheduledFor,omitempty"`
	DriverID      string        `json:"driverId,omitempty"`
	ActivityType  ActivityType  `json:"activityType,omitempty"`
	ContactOnSite string        `json:"contactOnSite,omitempty"`
	Observations  string        `json:"observations,omitempty"`
	Waypoints     []string      `json:"waypoints,omitempty"` // Intermediate addresses
	PaymentDate   string        `json:"paymentDate,omitempty"`
}

// IsDelayed reports whether the request is past its schedule without being
// completed. Derived at read time, never persisted.
func (r TransportRequest) IsDelayed(now time.Time) bool {
	if r.Status == StatusCompleted || r.ScheduledFor == "" {
		return false
	}
	scheduled, err := ParseTimestamp(r.ScheduledFor)
	if err != nil {
		return false
	}
	return scheduled.Before(now)
}

// ParseTimestamp accepts the two timestamp shapes the frontends send:
// full RFC3339 and the datetime-local format without zone or seconds.
func ParseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04", value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// Timestamp formats creation times the way every collection stores them.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
