// Package auth validates API credentials. The server ships with a single
// static shared key, but handlers only depend on the Validator interface so
// a stronger scheme can be swapped in without touching the API layer.
package auth

import "crypto/subtle"

// Validator checks whether a presented API credential is valid.
type Validator interface {
	Validate(key string) bool
}

// StaticKey validates requests against one configured secret.
type StaticKey string

// Validate reports whether key matches the configured secret. An empty
// configured secret never validates, so a misconfigured server fails closed.
func (s StaticKey) Validate(key string) bool {
	if s == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s), []byte(key)) == 1
}
