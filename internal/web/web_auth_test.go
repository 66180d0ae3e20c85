package web

import (
	"testing"

	"github.com/go-while/go-miniblog/internal/config"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.AdminUser = "admin"
	cfg.AdminPassword = "default"

	tests := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{"valid credentials", "admin", "default", nil},
		{"wrong username", "wrong", "default", ErrInvalidUsername},
		{"wrong username and password", "wrong", "wrong", ErrInvalidUsername},
		{"wrong password", "admin", "wrong", ErrInvalidPassword},
		{"case sensitive username", "Admin", "default", ErrInvalidUsername},
		{"case sensitive password", "admin", "Default", ErrInvalidPassword},
		{"empty credentials", "", "", ErrInvalidUsername},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authenticate(tt.username, tt.password, cfg)
			if tt.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.want)
			}
		})
	}
}
