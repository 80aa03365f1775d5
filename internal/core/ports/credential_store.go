package ports

// CredentialStore holds the bearer token for one console session. At most
// one credential is active at a time: set on login, cleared on logout or on
// any authentication failure.
type CredentialStore interface {
	// Get returns the current token. ok is false when no credential is held.
	Get() (token string, ok bool)
	// Set replaces the current credential.
	Set(token string)
	// Clear removes the credential. Clearing an empty store is a no-op.
	Clear()
}
