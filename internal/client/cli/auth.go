package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/leettrack/internal/client/models"
	"github.com/dmitrijs2005/leettrack/internal/client/store"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and runs the composed
// registration flow: on success the user is logged in right away.
//
// Validation errors reported by the backend are printed next to the
// field they belong to. Any I/O error is returned unchanged.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	leetcode, err := getSimpleText(a.reader, "LeetCode username (optional)", os.Stdout)
	if err != nil {
		return err
	}

	err = a.store.Register(ctx, models.Registration{
		Username:         username,
		Email:            email,
		Password1:        string(password),
		Password2:        string(confirm),
		LeetcodeUsername: leetcode,
	})

	auth := a.store.Auth()
	if err != nil {
		renderError(auth.Error)
		return err
	}

	fmt.Printf("Welcome, %s!\n", username)
	return nil
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	err = a.store.Login(ctx, models.Credentials{Email: email, Password: string(password)})

	auth := a.store.Auth()
	if err != nil {
		renderError(auth.Error)
		return err
	}

	if auth.User != nil {
		fmt.Printf("Logged in as %s\n", auth.User.Username)
	} else {
		fmt.Println("Logged in")
	}
	return nil
}

// Google exchanges a Google OAuth access token obtained out of band
// for a backend credential pair.
func (a *App) Google(ctx context.Context, token string) error {
	err := a.store.GoogleLogin(ctx, token)

	auth := a.store.Auth()
	if err != nil {
		renderError(auth.Error)
		return err
	}

	if auth.User != nil {
		fmt.Printf("Logged in as %s\n", auth.User.Username)
	} else {
		fmt.Println("Logged in")
	}
	return nil
}

// Logout drops the credential pair and the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

// Profile shows the account profile and offers to edit it. An empty
// answer keeps the current value.
func (a *App) Profile(ctx context.Context) error {
	if err := a.store.FetchProfile(ctx); err != nil {
		renderError(a.store.Auth().Error)
		return err
	}

	profile := a.store.Auth().Profile
	if profile == nil {
		return nil
	}
	renderProfile(profile)

	answer, err := getSimpleText(a.reader, "Edit profile? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "yes" {
		return nil
	}

	patch := models.ProfilePatch{}
	changed := false

	prompts := []struct {
		label   string
		current string
		dest    **string
	}{
		{"First name", profile.FirstName, &patch.FirstName},
		{"Last name", profile.LastName, &patch.LastName},
		{"LeetCode username", profile.LeetcodeUsername, &patch.LeetcodeUsername},
		{"Bio", profile.Bio, &patch.Bio},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", p.label, p.current), os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			*p.dest = &v
			changed = true
		}
	}

	if !changed {
		return nil
	}

	if err := a.store.UpdateProfile(ctx, patch); err != nil {
		renderError(a.store.Auth().Error)
		return err
	}

	fmt.Println("Profile updated")
	a.store.ClearAuthSuccess()
	return nil
}

// Passwd changes the account password. Local validation runs before
// anything is sent to the backend.
func (a *App) Passwd(ctx context.Context) error {
	current, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	newPw, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}

	if errs := store.ValidatePasswordChange(string(current), string(newPw), string(confirm)); len(errs) > 0 {
		for field, msg := range errs {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return fmt.Errorf("password validation failed")
	}

	cur, next := string(current), string(newPw)
	err = a.store.UpdateProfile(ctx, models.ProfilePatch{
		CurrentPassword: &cur,
		NewPassword:     &next,
	})
	if err != nil {
		renderError(a.store.Auth().Error)
		return err
	}

	fmt.Println("Password changed")
	a.store.ClearAuthSuccess()
	return nil
}
