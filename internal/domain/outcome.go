package domain

import "fmt"

// OutcomeStatus tells a presentation layer which placeholder, if any, to show.
type OutcomeStatus string

const (
	OutcomeOK      OutcomeStatus = "ok"
	OutcomeInvalid OutcomeStatus = "invalid_input"
	OutcomeEmpty   OutcomeStatus = "empty"
)

// Outcome is the result of converting raw user text.
// Invalid input is an expected state, not an error.
type Outcome struct {
	Status OutcomeStatus
	Value  float64
}

func (o Outcome) OK() bool { return o.Status == OutcomeOK }

// String renders the result the way the converter displays it.
func (o Outcome) String() string {
	switch o.Status {
	case OutcomeOK:
		return FormatResult(o.Value)
	case OutcomeInvalid:
		return "Invalid input"
	default:
		return ""
	}
}

// FormatResult renders a converted value with 10 significant digits.
func FormatResult(v float64) string {
	return fmt.Sprintf("%.10g", v)
}

// Conversion is a fully described conversion request and its answer.
type Conversion struct {
	Category string  `json:"category"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Input    string  `json:"input"`
	Outcome  Outcome `json:"-"`
	Formula  string  `json:"formula"`
}
