package db

// Site represents a clinic site record
type Site struct {
	ID              string
	Name            string
	RequiresClosure bool
	IsFlagship      bool
	Capacity        int // per-period assignment capacity, 0 = unlimited
}

// Person represents a staff member or backup record
type Person struct {
	ID              string
	Name            string
	PreferredSiteID string
	Roles           []string // granted role codes
	IsBackup        bool
}

// Need represents a database coverage-need record
type Need struct {
	ID           string
	Day          string // "2006-01-02"
	SiteID       string
	StartTime    string // "HH:MM", empty for records without clinic hours
	EndTime      string
	SpecialtyID  string
	Kind         string // "physician" or "operating_room"
	PersonID     string
	RequiredRole string
}

// Capacity represents a database availability record
type Capacity struct {
	ID                   string
	Day                  string
	StartTime            string
	EndTime              string
	PersonID             string
	IsBackup             bool
	Specialties          []string
	PrefersAlternateSite bool
}

// Claim represents one held half-day: at most one per (person, day, period),
// enforced by the claim table's composite unique key
type Claim struct {
	ID       string
	PersonID string
	Day      string
	Period   string // "matin" or "apres_midi"
}

// Assignment represents a database assignment record
type Assignment struct {
	ID            string
	NeedSlotID    string
	Day           string
	Period        string
	SiteID        string
	PersonIDs     []string
	RequiredCount int
	AssignedCount int
	Is1R          bool
	Is2F          bool
	Is3F          bool
	Cancelled     bool
}
