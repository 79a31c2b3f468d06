package domain

// Credentials is the two-part ClouDNS API credential pair. It is resolved
// once at startup (environment variables or flag overrides) and passed
// explicitly to every operation; it is never stored beyond the process
// lifetime.
type Credentials struct {
	// AuthID is the ClouDNS auth ID (api user or sub user ID).
	AuthID string
	// AuthPassword is the password paired with AuthID.
	AuthPassword string
}

// Complete reports whether both parts of the pair are present.
func (c Credentials) Complete() bool {
	return c.AuthID != "" && c.AuthPassword != ""
}
