package pages

import (
	"context"
	"fmt"

	"github.com/AndresValenciaC/swagcheck/pkg/browser"
	"github.com/AndresValenciaC/swagcheck/pkg/locator"
)

// LoginPage is the sign-in screen.
type LoginPage struct {
	page
	url string
}

// URL returns the address Open navigates to.
func (p *LoginPage) URL() string { return p.url }

// Open navigates to the login screen and waits for the form.
func (p *LoginPage) Open(ctx context.Context) error {
	if err := p.d.Navigate(p.url); err != nil {
		return err
	}
	return p.WaitReady(ctx)
}

// WaitReady waits for the login form.
func (p *LoginPage) WaitReady(ctx context.Context) error {
	if _, err := p.w.Present(ctx, locator.Login.Submit); err != nil {
		return fmt.Errorf("login page: %w", err)
	}
	return nil
}

// EnterUsername replaces the username field content, browsers may have autofilled it.
func (p *LoginPage) EnterUsername(s string) error {
	return p.replace(locator.Login.Username, s)
}

// EnterPassword replaces the password field content.
func (p *LoginPage) EnterPassword(s string) error {
	return p.replace(locator.Login.Password, s)
}

// Submit clicks the login button.
func (p *LoginPage) Submit() error {
	return click(p.d, locator.Login.Submit)
}

// Login fills both credentials and submits.
func (p *LoginPage) Login(username, password string) error {
	if err := p.EnterUsername(username); err != nil {
		return err
	}
	if err := p.EnterPassword(password); err != nil {
		return err
	}
	return p.Submit()
}

// ErrorMessage returns the displayed login error, or an empty string when there is none.
func (p *LoginPage) ErrorMessage() (string, error) {
	msg, err := text(p.d, locator.Login.Error)
	if browser.IsNotFound(err) {
		return "", nil
	}
	return msg, err
}

func (p *LoginPage) replace(loc locator.Locator, s string) error {
	el, err := p.d.Find(loc)
	if err != nil {
		return err
	}
	if err := el.Clear(); err != nil {
		return fmt.Errorf("clear %s: %w", loc, err)
	}
	if err := el.Type(s); err != nil {
		return fmt.Errorf("type into %s: %w", loc, err)
	}
	return nil
}
