package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/plantvision/internal/client/services"
	"github.com/dmitrijs2005/plantvision/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errPasswordMismatch = errors.New("passwords do not match")

// Register prompts for email, password (twice) and display name, then
// creates the account and signs in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.printf("Repeat password\n")
	confirm, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	if string(password) != string(confirm) {
		return errPasswordMismatch
	}

	name, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	u, err := a.auth.Register(ctx, email, string(password), name)
	a.noteConnectivity(err)
	if err != nil {
		return err
	}
	a.signedIn(u)
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	u, err := a.auth.Login(ctx, email, string(password))
	a.noteConnectivity(err)
	if err != nil {
		return err
	}
	a.signedIn(u)
	return nil
}

// Guest signs in with a new anonymous account.
func (a *App) Guest(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	u, err := a.auth.Guest(ctx)
	a.noteConnectivity(err)
	if err != nil {
		return err
	}
	a.signedIn(u)
	return nil
}

// Logout abandons any running analysis, forgets the session and clears
// the local cache.
func (a *App) Logout(ctx context.Context) error {
	a.analyses.Cancel()
	a.account.ResetChat()
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.setUser(nil)
	a.println("Logged out.")
	return nil
}

func (a *App) signedIn(u *services.User) {
	a.analyses.Cancel()
	a.account.ResetChat()
	a.setUser(u)
	if u.Anonymous {
		a.println("Signed in as guest.")
		return
	}
	a.printf("Hello, %s!\n", u.DisplayName)
}
