package tempo

// Category is the hour bucket a worklog contributes to besides the daily total.
type Category int

const (
	Regular Category = iota
	Leave
	Absence
)

func (c Category) String() string {
	switch c {
	case Leave:
		return "VERLOF"
	case Absence:
		return "VERZUIM"
	default:
		return "REGULAR"
	}
}

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Attributes struct {
	Values []Attribute `json:"values"`
}

type Worklog struct {
	TempoWorklogId   int        `json:"tempoWorklogId"`
	TimeSpentSeconds int        `json:"timeSpentSeconds"`
	StartDate        string     `json:"startDate"`
	StartTime        string     `json:"startTime"`
	Description      string     `json:"description"`
	Attributes       Attributes `json:"attributes"`
}

// CategoryRules tells which work attribute marks a worklog as leave or absence.
type CategoryRules struct {
	AttributeKey string
	LeaveValue   string
	AbsenceValue string
}

var DefaultCategoryRules = CategoryRules{
	AttributeKey: "_Acount_",
	LeaveValue:   "VERLOF",
	AbsenceValue: "CONDUCTION",
}

// Category returns the bucket of the worklog. The first attribute matching the
// rules wins; a worklog without a matching attribute is Regular.
func (w Worklog) Category(rules CategoryRules) Category {
	for _, attr := range w.Attributes.Values {
		if attr.Key != rules.AttributeKey {
			continue
		}
		switch attr.Value {
		case rules.LeaveValue:
			return Leave
		case rules.AbsenceValue:
			return Absence
		}
	}
	return Regular
}

func (w Worklog) Hours() float64 {
	return float64(w.TimeSpentSeconds) / 3600
}
