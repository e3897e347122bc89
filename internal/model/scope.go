package model

// Scope identifies who a request acts for. The chat is anonymous, so the
// browser session is the only identity.
type Scope struct {
	SessionID string
}
