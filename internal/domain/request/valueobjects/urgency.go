package valueobjects

import "fmt"

// Urgency classifies how fast a defect must be resolved. Emergency
// requests are locked against late edits and rework re-opens.
type Urgency string

const (
	UrgencyEmergency Urgency = "emergency"
	UrgencyNormal    Urgency = "normal"
	UrgencyPlanned   Urgency = "planned"
)

var urgencyNames = map[Urgency]string{
	UrgencyEmergency: "Аварийная",
	UrgencyNormal:    "Обычная",
	UrgencyPlanned:   "Плановая",
}

func (u Urgency) String() string {
	return string(u)
}

func (u Urgency) Name() string {
	return urgencyNames[u]
}

func (u Urgency) IsValid() bool {
	_, ok := urgencyNames[u]
	return ok
}

func (u Urgency) IsEmergency() bool {
	return u == UrgencyEmergency
}

func NewUrgency(code string) (Urgency, error) {
	u := Urgency(code)
	if !u.IsValid() {
		return "", fmt.Errorf("invalid urgency category: %s", code)
	}
	return u, nil
}

// UrgencyFromName resolves an urgency by its display name.
func UrgencyFromName(name string) (Urgency, error) {
	for code, n := range urgencyNames {
		if n == name {
			return code, nil
		}
	}
	return "", fmt.Errorf("unknown urgency name: %s", name)
}
