// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package forms describes the two modal forms: the login/sign-up form and the
// admin story upload form. Neither validates input beyond marking fields
// required; the browser enforces that.
package forms

import "github.com/olegiv/chronicle/internal/model"

// AuthMode selects between logging in and creating an account.
type AuthMode string

// Auth modes
const (
	ModeLogin  AuthMode = "login"
	ModeSignup AuthMode = "signup"
)

// ParseAuthMode returns ModeSignup for "signup" and ModeLogin otherwise.
func ParseAuthMode(s string) AuthMode {
	if AuthMode(s) == ModeSignup {
		return ModeSignup
	}
	return ModeLogin
}

// Toggled returns the other mode.
func (m AuthMode) Toggled() AuthMode {
	if m == ModeSignup {
		return ModeLogin
	}
	return ModeSignup
}

// Auth form field names.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
)

// Field is one rendered form control.
type Field struct {
	Name     string
	LabelKey string // i18n key
	Type     string // input type, or "textarea"
	Required bool
	Value    string
	Rows     int
}

// FirstUserSource provides the identity every simulated login resolves to.
type FirstUserSource interface {
	FirstUser() model.User
}

// AuthForm is the login / create-account form.
type AuthForm struct {
	Mode   AuthMode
	values map[string]string
}

// NewAuthForm creates an empty form in the given mode.
func NewAuthForm(mode AuthMode) *AuthForm {
	return &AuthForm{Mode: ParseAuthMode(string(mode)), values: make(map[string]string)}
}

// Set records an entered value.
func (f *AuthForm) Set(name, value string) {
	f.values[name] = value
}

// Value returns an entered value.
func (f *AuthForm) Value(name string) string {
	return f.values[name]
}

// Fields lists the controls for the current mode. Sign-up adds exactly one
// field, the password confirmation.
func (f *AuthForm) Fields() []Field {
	fields := []Field{
		{Name: FieldEmail, LabelKey: "auth.email", Type: "email", Required: true, Value: f.values[FieldEmail]},
		{Name: FieldPassword, LabelKey: "auth.password", Type: "password", Required: true, Value: f.values[FieldPassword]},
	}
	if f.Mode == ModeSignup {
		fields = append(fields, Field{
			Name: FieldConfirmPassword, LabelKey: "auth.confirm_password", Type: "password", Required: true,
			Value: f.values[FieldConfirmPassword],
		})
	}
	return fields
}

// Toggle switches mode. Values of fields present in both modes are kept;
// the confirmation value goes away with its field.
func (f *AuthForm) Toggle() {
	if f.Mode == ModeSignup {
		delete(f.values, FieldConfirmPassword)
	}
	f.Mode = f.Mode.Toggled()
}

// SubmitLabelKey is the i18n key of the submit button.
func (f *AuthForm) SubmitLabelKey() string {
	if f.Mode == ModeSignup {
		return "auth.create_account"
	}
	return "auth.login"
}

// SwitchPromptKey is the i18n key of the "don't have an account?" line.
func (f *AuthForm) SwitchPromptKey() string {
	if f.Mode == ModeSignup {
		return "auth.have_account"
	}
	return "auth.no_account"
}

// SwitchActionKey is the i18n key of the mode switch button.
func (f *AuthForm) SwitchActionKey() string {
	if f.Mode == ModeSignup {
		return "auth.login"
	}
	return "auth.sign_up"
}

// Submit simulates authentication. Entered values are ignored and the
// result is always the first mock user.
func (f *AuthForm) Submit(users FirstUserSource) model.User {
	return users.FirstUser()
}
