package cli

import (
	"context"
	"errors"
	"os"

	"wodtracker/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for an email and password and attempts to create
// a new account. Registration does not log the user in; on success the user
// is told to log in next.
//
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrSuperseded) {
			return err
		}
		printlnFn(a.session.Snapshot().Err)
		return err
	}

	printlnFn("Account created! You can now log in.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the session manager has already persisted the token, so the next
// start of the program restores the session without asking again.
//
// The password is securely wiped before returning.
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

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrSuperseded) {
			return err
		}
		printlnFn(a.session.Snapshot().Err)
		return err
	}

	printlnFn("Logged in as", email)
	return nil
}

// Logout clears the stored token and user and resets the in-memory session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		printlnFn(a.session.Snapshot().Err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}
