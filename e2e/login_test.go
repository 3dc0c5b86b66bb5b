//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  string // empty means the listing opens
	}{
		{name: "valid credentials", username: "standard_user", password: "secret_sauce"},
		{name: "wrong credentials", username: "wrong_user", password: "wrong_pass",
			wantErr: "Epic sadface: Username and password do not match any user in this service"},
		{name: "locked out user", username: "locked_out_user", password: "secret_sauce",
			wantErr: "Epic sadface: Sorry, this user has been locked out."},
		{name: "empty username", username: "", password: "secret_sauce",
			wantErr: "Epic sadface: Username is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			site := newSite(t)
			require.NoError(t, site.Login.Open(ctx))
			require.NoError(t, site.Login.Login(tc.username, tc.password))

			if tc.wantErr == "" {
				require.NoError(t, site.Products.WaitReady(ctx))
				title, err := site.Products.Title()
				require.NoError(t, err)
				assert.Equal(t, "Products", title)
				return
			}

			var msg string
			require.Eventually(t, func() bool {
				m, err := site.Login.ErrorMessage()
				msg = m
				return err == nil && m != ""
			}, pollTimeout, pollInterval, "login error shown")
			assert.Equal(t, tc.wantErr, msg)
		})
	}
}
