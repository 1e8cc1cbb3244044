package main

import (
	"context"
	"strings"

	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

func (cli *commandLine) resetPassword(login, pwd string) error {
	ctx := context.Background()
	login = strings.TrimSpace(login)
	usr, err := cli.st.Users.FindOne(ctx, store.Q().Or(
		store.EqCond("id_number", utils.NormalizeIC(login)),
		store.EqCond("email", strings.ToLower(login)),
	))
	if err != nil {
		return err
	}
	hash, err := cli.people.HashPassword(pwd)
	if err != nil {
		return err
	}
	usr.PasswordHash = hash
	return cli.st.Users.Save(ctx, usr)
}
