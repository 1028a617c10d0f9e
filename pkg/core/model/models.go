package model

// Period is one of the two fixed clinic half-days. Its value doubles as the
// wire token used in slot identifiers.
type Period string

const (
	PeriodMorning   Period = "matin"
	PeriodAfternoon Period = "apres_midi"
)

// AllPeriods lists the periods in canonical order: morning before afternoon.
// Every per-period iteration in this module must follow this order so that
// results are reproducible.
var AllPeriods = []Period{PeriodMorning, PeriodAfternoon}

func (p Period) IsValid() bool {
	return p == PeriodMorning || p == PeriodAfternoon
}

// Bounds returns the period's fixed clinic hours as minutes since midnight,
// half-open: [start, end). Morning is 07:30-12:00, afternoon 13:00-17:00.
// The bounds are site-independent.
func (p Period) Bounds() (start, end int) {
	switch p {
	case PeriodMorning:
		return 7*60 + 30, 12 * 60
	case PeriodAfternoon:
		return 13 * 60, 17 * 60
	default:
		return 0, 0
	}
}

// RoleCode identifies an operating-room or reception competency
type RoleCode string

const (
	RoleInstrumentiste          RoleCode = "instrumentiste"
	RoleAideSalle               RoleCode = "aide_salle"
	RoleInstrumentisteAideSalle RoleCode = "instrumentiste_aide_salle"
	RoleAnesthesiste            RoleCode = "anesthesiste"
	RoleAccueilDermato          RoleCode = "accueil_dermato"
	RoleAccueilOphtalmo         RoleCode = "accueil_ophtalmo"
	RoleAccueil                 RoleCode = "accueil"
)

// NeedKind distinguishes physician consultation needs from operating-room
// role requirements
type NeedKind string

const (
	NeedKindPhysician     NeedKind = "physician"
	NeedKindOperatingRoom NeedKind = "operating_room"
)

// Need is a time-bound coverage requirement at a site. Start and End are
// clock times in "HH:MM" format; either may be empty for records with no
// clinic hours (pure-administrative entries), which decompose to zero slots.
type Need struct {
	ID           string
	Date         string // "2006-01-02"
	SiteID       string
	Start        string
	End          string
	SpecialtyID  string // empty if none
	Kind         NeedKind
	PersonID     string   // empty unless the need is bound to a physician
	RequiredRole RoleCode // empty unless Kind is operating_room
}

// Capacity is a person's availability window on a date
type Capacity struct {
	ID                   string
	Date                 string
	Start                string
	End                  string
	PersonID             string
	IsBackup             bool
	Specialties          []string
	PrefersAlternateSite bool
}

// SlotSource tells which record kind a slot was decomposed from
type SlotSource string

const (
	SlotSourceNeed     SlotSource = "need"
	SlotSourceCapacity SlotSource = "capacity"
)

// Slot is a Need or Capacity clipped to one canonical half-day period.
// Its ID is always "<source_id>-<period>", derived, never generated, so
// re-decomposing the same record yields the same slot.
type Slot struct {
	ID       string
	SourceID string
	Source   SlotSource
	Date     string
	Period   Period

	// Need-side attributes
	SiteID              string
	SiteName            string
	SiteRequiresClosure bool
	SpecialtyID         string
	Kind                NeedKind
	RequiredRole        RoleCode

	// Capacity-side attributes
	PersonID             string
	PersonName           string
	IsBackup             bool
	Specialties          []string
	PrefersAlternateSite bool
}

// Status classifies how well an assignment covers its need
type Status string

const (
	StatusSatisfied   Status = "satisfied"
	StatusRoundedDown Status = "rounded_down"
	StatusUnsatisfied Status = "unsatisfied"
)

// Assignment is one solver output row: people matched to a need slot.
// Status is always derived from the counts, never stored independently.
type Assignment struct {
	NeedSlotID    string
	Date          string
	Period        Period
	SiteID        string
	PersonIDs     []string
	RequiredCount int
	AssignedCount int
	Status        Status

	// Closing-responsibility markers for sites requiring formal closure
	Is1R bool
	Is2F bool
	Is3F bool

	Cancelled bool
}

// ClosureDayStatus reports closing-responsibility coverage for one site day.
// Understaffed (no holder, HasUniqueX false) and overstaffed (MultipleX true)
// are distinct failure modes and must be reported as such.
type ClosureDayStatus struct {
	Date        string
	HasUnique1R bool
	HasUnique2F bool
	Multiple1R  bool
	Multiple2F  bool
	Multiple3F  bool
}

// Compliant reports whether the day meets the closure rule: exactly one
// holder for each of 1R and 2F, and no duplicated holder for any marker.
func (s ClosureDayStatus) Compliant() bool {
	return s.HasUnique1R && s.HasUnique2F && !s.Multiple1R && !s.Multiple2F && !s.Multiple3F
}
