package valueobjects

// IncidentSign marks a request's role in an incident group. The parent
// of a recurring defect is flagged "Да"; the recurrence that superseded
// it carries "Нет" plus a link to the parent. Values are stored as the
// dispatchers see them.
type IncidentSign string

const (
	IncidentSignNone IncidentSign = ""
	IncidentSignYes  IncidentSign = "Да"
	IncidentSignNo   IncidentSign = "Нет"
)

func (s IncidentSign) String() string {
	return string(s)
}

func (s IncidentSign) IsYes() bool {
	return s == IncidentSignYes
}

func (s IncidentSign) IsNo() bool {
	return s == IncidentSignNo
}
