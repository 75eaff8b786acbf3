package diag

type Severity uint8

const (
	SevInfo Severity = iota // resolver gave up, render falls back to sentinels
	SevWarning
	SevError // input is not a well-formed expression
)

var severityNames = [...]string{SevInfo: "INFO", SevWarning: "WARNING", SevError: "ERROR"}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}
