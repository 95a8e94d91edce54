package model

// DomainName represents a domain split on its public suffix
type DomainName struct {
	Base string `json:"base"`
	TLD  string `json:"tld"`
}

// String returns the full domain
func (d DomainName) String() string {
	return d.Base + d.TLD
}

// Status is the registration status of a candidate
type Status int

const (
	// StatusError means the WHOIS lookup failed
	StatusError Status = iota
	// StatusRegistered means the WHOIS record holds a domain name
	StatusRegistered
	// StatusNotRegistered means no WHOIS record exists for the candidate
	StatusNotRegistered
)

func (s Status) String() string {
	switch s {
	case StatusRegistered:
		return "Registered"
	case StatusNotRegistered:
		return "Not Registered"
	default:
		return "Error"
	}
}

// CheckResult represents the outcome of the check of a candidate
type CheckResult struct {
	Candidate string `json:"candidate"`
	Status    Status `json:"status"`
	Message   string `json:"message,omitempty"`
}

// StatusString returns the status as written in reports
func (r CheckResult) StatusString() string {
	if r.Status == StatusError {
		return "Error: " + r.Message
	}
	return r.Status.String()
}
