package types

// DateRange echoes the effective window a report covered.
type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Envelope is the uniform body returned by every report endpoint.
// Success responses carry Data (never omitted, so empty lists encode as []);
// failures carry Message for end users and Error for diagnostics.
type Envelope struct {
	Success   bool       `json:"success"`
	Count     *int       `json:"count,omitempty"`
	Data      any        `json:"data"`
	Truncated bool       `json:"truncated,omitempty"`
	Range     *DateRange `json:"range,omitempty"`
	Page      any        `json:"page,omitempty"`
	Message   string     `json:"message,omitempty"`
	Error     string     `json:"error,omitempty"`
	Code      string     `json:"code,omitempty"`
	Details   any        `json:"details,omitempty"`
}
