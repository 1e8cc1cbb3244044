package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mddrc-backend/dto"
	"mddrc-backend/internal/repository/inmem"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

func TestCommandLine(t *testing.T) {
	pwd := "secret"
	readPasswordFunc = func(int) ([]byte, error) { return []byte(pwd), nil }

	st := inmem.NewStores()
	clock := utils.Fixed(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	cli := commandLine{
		st:     st,
		clock:  clock,
		people: services.NewPeopleService(st, services.Options{Clock: clock, PasswordCost: bcrypt.MinCost}),
	}

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no command", []string{"admin"}, errHelp},
		{"unknown command", []string{"admin", "foo"}, errHelp},
		{"adduser missing flags", []string{"admin", "adduser", "-email", "a@b.com"}, errHelp},
		{"adduser bad role", []string{"admin", "adduser", "-email", "a@b.com", "-name", "Aida", "-ic", "900101-01-1234", "-role", "king"}, errUnknownRole},
		{"adduser", []string{"admin", "adduser", "-email", "Boss@MDDRC.com", "-name", "Boss", "-ic", "900101-01-1234"}, nil},
		{"resetpassword missing login", []string{"admin", "resetpassword"}, errHelp},
		{"resetpassword unknown", []string{"admin", "resetpassword", "-login", "nobody@x.com"}, store.ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := cli.run(tc.args)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}

	ctx := context.Background()
	usr, err := cli.st.Users.FindOne(ctx, store.Q().Eq("id_number", "900101011234"))
	require.NoError(t, err)
	assert.Equal(t, "boss@mddrc.com", usr.Email)
	assert.Equal(t, "admin", usr.Role)
	assert.True(t, usr.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte("secret")))

	pwd = "changed"
	require.NoError(t, cli.run([]string{"admin", "resetpassword", "-login", "900101-01-1234"}))
	usr, err = cli.st.Users.Get(ctx, usr.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte("changed")))

	// adduser on an existing IC updates in place
	require.NoError(t, cli.run([]string{"admin", "adduser", "-email", "boss@mddrc.com", "-name", "Big Boss", "-ic", "900101011234", "-role", "coordinator"}))
	n, err := cli.st.Users.Count(ctx, store.Q())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	usr, err = cli.st.Users.Get(ctx, usr.ID)
	require.NoError(t, err)
	assert.Equal(t, "Big Boss", usr.FullName)
	assert.Equal(t, "coordinator", usr.Role)

	// the API accepts the password the CLI stored
	svc := services.New(st, services.Options{Clock: clock, JWTSecret: "admin-secret", PasswordCost: bcrypt.MinCost})
	tok, err := svc.Auth.Login(ctx, dto.LoginRequest{Email: "900101011234", Password: "changed"})
	require.NoError(t, err)
	assert.NotEmpty(t, tok.AccessToken)
	assert.Equal(t, usr.ID, tok.User.ID)
}
