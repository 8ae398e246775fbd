package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
)

func (a *App) Register(ctx context.Context) error {

	name, err := GetSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Register(ctx, name, email, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged in. Export the token for subsequent commands:")
	fmt.Fprintf(a.out, "export BLOGKEEPER_TOKEN=%s\n", token)
	return nil
}
