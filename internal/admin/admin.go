// Package admin gates the administrator menu.
package admin

import "crypto/subtle"

// Authenticator checks administrator credentials.
type Authenticator interface {
	Authenticate(username, password string) bool
}

// StaticCredentials accepts exactly one configured username and password.
type StaticCredentials struct {
	Username string
	Password string
}

func NewStaticCredentials(username, password string) StaticCredentials {
	return StaticCredentials{Username: username, Password: password}
}

// Authenticate compares both values verbatim in constant time.
func (s StaticCredentials) Authenticate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.Username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.Password))
	return userOK&passOK == 1
}
