package markup_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uikit/pkg/markup"
	"github.com/dmitrymomot/uikit/pkg/validator"
)

const page = `<!DOCTYPE html>
<html><body>
<form id="register-form" data-validate>
  <input id="register-name" type="text" required minlength="3" data-error-message="Please enter your full name">
  <input id="register-email" type="email" required>
  <input id="register-password" type="password" required minlength="6">
  <input id="register-confirm" type="password" required data-match="register-password">
  <input id="zip" name="zip" pattern="\d{5}">
  <input name="newsletter" type="checkbox">
  <input id="accept-terms" type="checkbox" required>
  <textarea name="bio" maxlength="200"></textarea>
  <input type="hidden" name="csrf" value="x" required>
  <input type="text" name="nickname">
  <button type="submit">Send</button>
</form>
<form id="search"><input name="q" required></form>
<form name="question" data-validate><textarea id="question-text" required></textarea></form>
</body></html>`

func TestParseForm(t *testing.T) {
	t.Parallel()

	rules, err := markup.ParseForm(strings.NewReader(page), "register-form")
	require.NoError(t, err)

	want := []validator.FieldRule{
		validator.Text("register-name").Require().Min(3).WithMessage("Please enter your full name"),
		validator.Email("register-email").Require(),
		validator.Password("register-password").Require().Min(6),
		validator.Matches("register-confirm", "register-password").Require(),
		{Field: "zip", Kind: validator.KindPattern, Pattern: `^(?:\d{5})$`},
		validator.MustBeChecked("accept-terms"),
		validator.Text("bio").Max(200),
	}
	if diff := cmp.Diff(want, rules); diff != "" {
		t.Errorf("rules mismatch (-want +got):\n%s", diff)
	}
}

func TestParseForm_RulesValidate(t *testing.T) {
	t.Parallel()

	rules, err := markup.ParseForm(strings.NewReader(page), "register-form")
	require.NoError(t, err)

	res := validator.Validate(rules, map[string]string{
		"register-name":     "Alice",
		"register-email":    "alice@site.org",
		"register-password": "secret1",
		"register-confirm":  "secret1",
		"zip":               "123456",
		"accept-terms":      "on",
	})
	require.False(t, res.Valid)
	assert.Equal(t, []string{"zip"}, validator.ExtractValidationErrors(res.Err()).Fields(), "html patterns match the whole value")
}

func TestParseForm_NotFound(t *testing.T) {
	t.Parallel()

	_, err := markup.ParseForm(strings.NewReader(page), "missing")
	assert.ErrorIs(t, err, markup.ErrFormNotFound)
}

func TestParseForms(t *testing.T) {
	t.Parallel()

	forms, err := markup.ParseForms(strings.NewReader(page))
	require.NoError(t, err)

	keys := make([]string, 0, len(forms))
	for k := range forms {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"register-form", "question"}, keys, "only forms marked data-validate")

	want := []validator.FieldRule{validator.Text("question-text").Require()}
	if diff := cmp.Diff(want, forms["question"]); diff != "" {
		t.Errorf("question rules mismatch (-want +got):\n%s", diff)
	}
}
