package events

import (
	"time"

	"github.com/dmitrymomot/uikit/pkg/notifications"
	"github.com/dmitrymomot/uikit/pkg/validator"
)

// Form and element identifiers used by the site pages.
const (
	FormLogin    = "login-form"
	FormRegister = "register-form"
	FormProfile  = "profile-form"
	FormQuestion = "question-form"
	FormEditUser = "edit-user-form"

	TargetForgotPassword = "forgot-password"
	TargetAccessRequest  = "access-request"
)

const msgInvalidEmail = "Please enter a valid email"

// LoginForm reports one problem at a time in a single alert slot.
func LoginForm() FormSpec {
	return FormSpec{
		Name: FormLogin,
		Mode: validator.FirstOnly,
		Rules: []validator.FieldRule{
			validator.Text("login-email").Require().WithMessage("Please enter your email"),
			validator.Password("login-password").Require().WithMessage("Please enter your password"),
			validator.Email("login-email").WithMessage(msgInvalidEmail),
		},
		Success: "Signed in successfully!",
		Replace: true,
	}
}

// RegisterForm reports one problem at a time in a single alert slot.
func RegisterForm() FormSpec {
	return FormSpec{
		Name: FormRegister,
		Mode: validator.FirstOnly,
		Rules: []validator.FieldRule{
			validator.Text("register-name").Require().WithMessage("Please enter your full name"),
			validator.Text("register-name").Min(3).WithMessage("Name must be at least 3 characters"),
			validator.Text("register-email").Require().WithMessage("Please enter your email"),
			validator.Email("register-email").WithMessage(msgInvalidEmail),
			validator.Password("register-password").Require().WithMessage("Please create a password"),
			validator.Password("register-password").Min(6).WithMessage("Password must be at least 6 characters"),
			validator.Password("register-confirm").Require().WithMessage("Please confirm your password"),
			validator.Matches("register-confirm", "register-password").WithMessage("Passwords do not match!"),
			validator.MustBeChecked("accept-terms").WithMessage("You must accept the terms of use and privacy policy"),
		},
		Success: "Account created successfully!",
		Replace: true,
	}
}

// ProfileForm accepts an empty password, meaning "keep the current one".
func ProfileForm() FormSpec {
	const required = "Name and email are required"
	return FormSpec{
		Name: FormProfile,
		Mode: validator.FirstOnly,
		Rules: []validator.FieldRule{
			validator.Text("user-name").Require().WithMessage(required),
			validator.Text("user-email").Require().WithMessage(required),
			validator.Email("user-email").WithMessage(msgInvalidEmail),
			validator.Matches("user-confirm", "user-password").WithMessage("Passwords do not match"),
			validator.Pattern("user-password", `^.{6,}$`).WithMessage("Password must be at least 6 characters"),
		},
		Success: "Profile updated successfully!",
	}
}

// QuestionForm is the game page's "ask us" form.
func QuestionForm() FormSpec {
	return FormSpec{
		Name: FormQuestion,
		Mode: validator.FirstOnly,
		Rules: []validator.FieldRule{
			validator.Text("question-text").Require().WithMessage("Please type your question."),
			validator.Email("question-email").Require().WithMessage("Please provide a valid email."),
			validator.Text("question-text").Max(500).WithMessage("The question must be at most 500 characters."),
		},
		Success: "Question sent successfully! We will answer within 48 hours.",
	}
}

// EditUserForm is the admin panel's user editor.
func EditUserForm() FormSpec {
	return FormSpec{
		Name: FormEditUser,
		Rules: []validator.FieldRule{
			validator.Text("edit-user-name").Require().WithMessage("Name is required"),
			validator.Email("edit-user-email").Require().WithMessage(msgInvalidEmail),
		},
		Success: "User updated successfully!",
		Timeout: 3 * time.Second,
	}
}

// ForgotPassword answers clicks on the password recovery link.
func ForgotPassword() Handler {
	return Notice("Feature under development. Soon you will be able to recover your password by email.", notifications.TypeInfo)
}

// AccessRequest answers clicks on the profile page's access request button.
func AccessRequest() Handler {
	return Notice("Access request sent! We will contact you soon.", notifications.TypeSuccess)
}

// Forms returns every site form.
func Forms() []FormSpec {
	return []FormSpec{LoginForm(), RegisterForm(), ProfileForm(), QuestionForm(), EditUserForm()}
}

// Clicks returns the click handlers of the site keyed by element id.
func Clicks() map[string]Handler {
	return map[string]Handler{
		TargetForgotPassword: ForgotPassword(),
		TargetAccessRequest:  AccessRequest(),
	}
}

// Site returns a router with every form and click handler of the site.
// Forms without an explicit mode use mode.
func Site(mode validator.Mode) *Mux {
	m := NewMux()
	for _, f := range Forms() {
		if f.Mode == "" {
			f.Mode = mode
		}
		m.RegisterForm(f)
	}
	for target, h := range Clicks() {
		m.Register(target, h)
	}
	return m
}
