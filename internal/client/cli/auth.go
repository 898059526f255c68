package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophsocial/internal/client/api"
	"github.com/dmitrijs2005/gophsocial/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the sign-up form and creates the account. The form
// is validated before anything is sent; on success the user is logged in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Full name (optional)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	u, err := a.auth.Register(ctx, api.RegisterRequest{
		Username: username,
		Email:    email,
		Password: string(password),
		FullName: fullName,
	})
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", u.Username))
	return nil
}

// Login prompts for credentials and starts a session. Failed attempts and
// lockouts are reported by the returned error.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	u, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s", u.Username))
	return nil
}

// Logout ends the session; the navigator prints the farewell.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	return nil
}

// WhoAmI prints the cached user and its permissions.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.CurrentUser(ctx)
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	printlnFn(fmt.Sprintf("%s <%s> id=%s", u.Username, u.Email, u.ID))
	if u.FullName != "" {
		printlnFn("Name:", u.FullName)
	}
	printlnFn("Roles:", roleLabel(u.IsAdmin, u.IsModerator, u.IsMentor))
	printlnFn("Permissions:", u.Permissions)
	printlnFn("Session expires:", u.ExpiresAt.Local().Format("2006-01-02 15:04"))
	return nil
}
