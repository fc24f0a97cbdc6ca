package commission

// Status represents the lifecycle label of a commission
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses returns the canonical statuses in lifecycle order.
func Statuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusCompleted}
}

// Valid reports whether s is one of the canonical statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Active reports whether work on the commission is still outstanding.
func (s Status) Active() bool {
	return s == StatusNotStarted || s == StatusInProgress
}

// Type is the kind of artwork a commission asks for
type Type string

const (
	TypePortrait    Type = "Portrait"
	TypeHalfBody    Type = "Half Body"
	TypeFullBody    Type = "Full Body"
	TypeChibi       Type = "Chibi"
	TypeEmote       Type = "Emote"
	TypeEnvironment Type = "Environment"
	TypeOther       Type = "Other"
)

// Types returns the display vocabulary for commission types.
func Types() []Type {
	return []Type{TypePortrait, TypeHalfBody, TypeFullBody, TypeChibi, TypeEmote, TypeEnvironment, TypeOther}
}

// Valid reports whether t belongs to the type vocabulary.
func (t Type) Valid() bool {
	for _, known := range Types() {
		if t == known {
			return true
		}
	}
	return false
}

// Commission is one tracked unit of commissioned work.
// Field order mirrors the column order of the commissions table.
type Commission struct {
	ID       int64   `json:"id"`
	Client   string  `json:"client"`
	Title    string  `json:"title"`
	Type     Type    `json:"type"`
	Price    float64 `json:"price"`
	Deadline string  `json:"deadline"`
	Status   Status  `json:"status"`
	Notes    string  `json:"notes"`
}

// Input carries the caller-supplied fields for create and update.
// A nil Price is stored as 0.
type Input struct {
	Client   string
	Title    string
	Type     Type
	Price    *float64
	Deadline string
	Status   Status
	Notes    string
}
