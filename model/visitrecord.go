package model

// Column names recognised in the source sheets. Anything else is carried
// through opaquely in VisitRecord.Extra.
const (
	ColPersonnelName = "Personnel Name"
	ColVisitNumber   = "Visit #"
	ColLocation      = "Location"
	ColCheckInTime   = "Check-In Time"
	ColCheckOutTime  = "Check-Out Time"
	ColLoginTime     = "Login Time"
	ColLogoutTime    = "Logout Time"
	ColMapsLink      = "Maps Link"
	ColSelfie        = "Selfie"
)

// RawRecord is one loosely-typed row as delivered by a source reader:
// column name -> cell value.
type RawRecord map[string]string

// VisitRecord is one row of the normalized dataset: a single
// check-in/check-out event for a person at a location, tagged with the
// weekday sheet it came from. Records are immutable once normalized.
type VisitRecord struct {
	Day             Day               `json:"day"`
	PersonnelName   string            `json:"personnelName"`
	VisitNumber     int               `json:"visitNumber"`
	Location        string            `json:"location"`
	CheckInTime     *TimeOfDay        `json:"checkInTime"`
	CheckOutTime    *TimeOfDay        `json:"checkOutTime"`
	DurationMinutes int               `json:"durationMinutes"`
	LoginTime       *TimeOfDay        `json:"loginTime,omitempty"`
	LogoutTime      *TimeOfDay        `json:"logoutTime,omitempty"`
	MapsLink        string            `json:"mapsLink,omitempty"`
	Selfie          string            `json:"selfie,omitempty"`
	Extra           map[string]string `json:"extra,omitempty"`
}
