package main

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"mddrc-backend/internal/models"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

var errUnknownRole = errors.New("unknown role")

// addUser updates or creates a user matched by IC number or email.
func (cli *commandLine) addUser(email, name, ic, role, pwd string) error {
	if !utils.Has(models.AllRoles, role) {
		return errUnknownRole
	}
	ctx := context.Background()
	email = strings.ToLower(strings.TrimSpace(email))
	ic = utils.NormalizeIC(ic)

	usr, err := cli.st.Users.FindOne(ctx, store.Q().Or(
		store.EqCond("id_number", ic),
		store.EqCond("email", email),
	))
	created := false
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		created = true
		usr = models.User{ID: models.NewID(), CreatedAt: cli.clock.Now()}
	}

	hash, err := cli.people.HashPassword(pwd)
	if err != nil {
		return err
	}
	usr.Email = email
	usr.FullName = strings.TrimSpace(name)
	usr.IDNumber = ic
	usr.Role = role
	usr.IsActive = true
	usr.PasswordHash = hash

	if created {
		return cli.st.Users.Insert(ctx, usr)
	}
	return cli.st.Users.Save(ctx, usr)
}
