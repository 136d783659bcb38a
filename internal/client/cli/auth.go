package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mrezendes/investrack/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getConfirm = GetConfirm

// Register prompts for name, email, password, and password confirmation,
// then creates the account in the user directory.
//
// The confirmation check happens here, before the directory is touched; the
// directory itself only enforces email uniqueness. Domain rejections
// (mismatch, taken email) are reported to the user and are not errors; only
// I/O and persistence failures are returned. Password bytes are wiped before
// returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Confirm password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(password, confirm) {
		fmt.Println("Passwords do not match.")
		return nil
	}

	if err := a.directory.Register(ctx, name, email, string(password)); err != nil {
		if errors.Is(err, common.ErrorEmailAlreadyExists) {
			fmt.Println("This email is already registered.")
			return nil
		}
		return err
	}

	fmt.Println("Registration complete. You can now log in.")
	return nil
}

// Login prompts for credentials and, when they match a registered user,
// opens a session. A failed match is an expected outcome and is reported
// without saying which of the two fields was wrong.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	cred, ok := a.directory.Authenticate(email, string(password))
	if !ok {
		fmt.Println("Wrong email or password.")
		return nil
	}

	if err := a.session.Login(ctx, cred); err != nil {
		return err
	}

	fmt.Printf("Welcome, %s!\n", cred.Name)
	return nil
}

// Logout asks for confirmation and then closes the session, returning the
// REPL to the logged-out command set.
func (a *App) Logout(ctx context.Context) error {
	ok, err := getConfirm(a.reader, "Log out?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
