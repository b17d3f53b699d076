package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/back2me/internal/common"
	"github.com/dmitrijs2005/back2me/internal/services"
	"github.com/dustin/go-humanize"
)

// Register prompts for the sign-up form and creates an account. The user
// still has to log in afterwards.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirmPassword, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmPassword)

	if err := a.simulate(ctx); err != nil {
		return a.report(ctx, err)
	}

	account, err := a.accounts.Register(ctx, services.RegisterInput{
		Username:        username,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirmPassword),
	})
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintf(a.out, "Account created for %s. You can now log in.\n", account.Username)
	return nil
}

// Login prompts for credentials and starts a session. Answering yes to
// "Remember me" keeps the session in the durable store; otherwise it ends
// with the process.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	remember, err := confirm(a.reader, "Remember me?", a.out)
	if err != nil {
		return err
	}

	if err := a.simulate(ctx); err != nil {
		return a.report(ctx, err)
	}

	account, err := a.accounts.Authenticate(ctx, email, string(password))
	if err != nil {
		return a.report(ctx, err)
	}
	session, err := a.sessions.StartSession(ctx, account, remember)
	if err != nil {
		return a.report(ctx, err)
	}
	a.session = &session

	if err := a.conversations.EnsureSeeded(ctx); err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", account.Username)
	return nil
}

// Logout ends the session in both scopes.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.EndSession(ctx); err != nil {
		return a.report(ctx, err)
	}
	a.session = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// ChangePassword prompts for the current and new passwords.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword(a.reader, "Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)
	next, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)
	confirmNext, err := getPassword(a.reader, "Confirm new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmNext)

	if err := a.simulate(ctx); err != nil {
		return a.report(ctx, err)
	}

	err = a.accounts.ChangePassword(ctx, services.ChangePasswordInput{
		AccountID:  a.session.UserID,
		Current:    string(current),
		New:        string(next),
		ConfirmNew: string(confirmNext),
	})
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintln(a.out, "Password changed.")
	return nil
}

// ForgotPassword asks for an email and files a reset request. No mail is
// sent; the request is logged.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	if err := a.simulate(ctx); err != nil {
		return a.report(ctx, err)
	}

	if err := a.accounts.RequestPasswordReset(ctx, email); err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintf(a.out, "Password reset instructions sent to %s.\n", email)
	return nil
}

// WhoAmI prints the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.session
	fmt.Fprintf(a.out, "%s <%s>\n", s.Username, s.Email)
	fmt.Fprintf(a.out, "  id:        %s\n", s.UserID)
	fmt.Fprintf(a.out, "  logged in: %s\n", humanize.RelTime(s.IssuedAt, a.now(), "ago", "from now"))
	return nil
}
