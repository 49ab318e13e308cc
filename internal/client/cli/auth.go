package cli

import (
	"context"
	"errors"
	"os"

	"github.com/ecellnce/campushub/internal/client/remote"
	"github.com/ecellnce/campushub/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates a new account via the
// backend. On success the returned tokens establish a local session and the
// password is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	pair, err := a.api.Register(ctx, name, email, string(password))
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	user, err := a.session.Establish(ctx, pair.AccessToken, pair.RefreshToken, string(password))
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	a.userName = user.Name

	printlnFn("Success!")
	return nil
}

// Login prompts for credentials and tries to authenticate.
//
// The method first attempts an online login. If the server is unavailable
// (errors.Is(err, remote.ErrUnavailable)), it falls back to the cached
// credential hash via the session manager. The password is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	pair, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, remote.ErrUnavailable) {
			a.logger.Info(ctx, "server unavailable, trying offline login")
			user, offErr := a.session.OfflineLogin(ctx, email, string(password))
			if offErr != nil {
				printlnFn("Offline login unsuccessful:", offErr.Error())
				return offErr
			}
			a.userName = user.Name
			printlnFn("Logged in (offline).")
			return nil
		}
		printlnFn("Login unsuccessful:", err.Error())
		return err
	}

	user, err := a.session.Establish(ctx, pair.AccessToken, pair.RefreshToken, string(password))
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	a.userName = user.Name
	printlnFn("Logged in.")
	return nil
}

// Logout removes the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	a.userName = ""
	printlnFn("Logged out.")
	return nil
}
