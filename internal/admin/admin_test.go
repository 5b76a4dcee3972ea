package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticCredentials(t *testing.T) {
	var auth Authenticator = NewStaticCredentials("bwkt1n22", "12345")

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{name: "exact match", username: "bwkt1n22", password: "12345", want: true},
		{name: "wrong password", username: "bwkt1n22", password: "54321", want: false},
		{name: "wrong username", username: "admin", password: "12345", want: false},
		{name: "case differs", username: "BWKT1N22", password: "12345", want: false},
		{name: "trailing space", username: "bwkt1n22 ", password: "12345", want: false},
		{name: "empty", username: "", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.Authenticate(tt.username, tt.password))
		})
	}
}
