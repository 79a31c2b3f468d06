package domain

// Zone is a DNS zone as returned by the provider's listing endpoint.
// Most callers only use the name.
type Zone struct {
	// Name is the zone name, e.g. "example.com".
	Name string `json:"name"`
	// Kind is the provider's zone type, e.g. "master" or "slave".
	Kind string `json:"type"`
}

// Status classifies the outcome of a per-domain operation.
type Status string

const (
	// StatusSuccess indicates the operation completed for the domain.
	StatusSuccess Status = "SUCCESS"
	// StatusAlreadyShared indicates the zone was already shared with the
	// target account. It is success-equivalent for the top-line count.
	StatusAlreadyShared Status = "ALREADY_SHARED"
	// StatusFailed indicates the operation did not complete; see Message.
	StatusFailed Status = "FAILED"
)

// OperationResult is the outcome of one operation against one domain.
// A batch produces exactly one result per input domain, in input order.
type OperationResult struct {
	// Domain is the zone the operation targeted.
	Domain string
	// Status is the classified outcome.
	Status Status
	// Message carries the API's description for failures, or supporting
	// detail such as the list of shared accounts for verification.
	Message string
}
