package markup

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dmitrymomot/uikit/pkg/validator"
)

var (
	// ErrFormNotFound indicates the document has no form with the given id.
	ErrFormNotFound = errors.New("markup.form_not_found")

	// ErrParse indicates the document could not be parsed.
	ErrParse = errors.New("markup.parse_failed")
)

// ParseForm reads an HTML document and derives the field rules of the form
// whose id is formID from its constraint attributes.
func ParseForm(r io.Reader, formID string) ([]validator.FieldRule, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	var found *html.Node
	walk(doc, func(n *html.Node) bool {
		if n.DataAtom == atom.Form && attr(n, "id") == formID {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil, fmt.Errorf("%w: %s", ErrFormNotFound, formID)
	}
	return rulesOf(found), nil
}

// ParseForms returns the rules of every form marked with data-validate,
// keyed by form id, or name when the form has no id.
func ParseForms(r io.Reader) (map[string][]validator.FieldRule, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	forms := make(map[string][]validator.FieldRule)
	walk(doc, func(n *html.Node) bool {
		if n.DataAtom != atom.Form {
			return true
		}
		if _, ok := lookup(n, "data-validate"); !ok {
			return false
		}
		key := firstNonEmpty(attr(n, "id"), attr(n, "name"))
		if key != "" {
			forms[key] = rulesOf(n)
		}
		return false
	})
	return forms, nil
}

// walk visits nodes depth first in document order. Returning false from fn
// skips the node's children.
func walk(n *html.Node, fn func(*html.Node) bool) {
	if n.Type == html.ElementNode && !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func rulesOf(form *html.Node) []validator.FieldRule {
	var rules []validator.FieldRule
	walk(form, func(n *html.Node) bool {
		switch n.DataAtom {
		case atom.Input, atom.Select, atom.Textarea:
			if rule, ok := ruleOf(n); ok {
				rules = append(rules, rule)
			}
			return false
		}
		return true
	})
	return rules
}

func ruleOf(n *html.Node) (validator.FieldRule, bool) {
	field := firstNonEmpty(attr(n, "id"), attr(n, "name"))
	if field == "" {
		return validator.FieldRule{}, false
	}

	typ := strings.ToLower(attr(n, "type"))
	if n.DataAtom != atom.Input {
		typ = ""
	}
	_, required := lookup(n, "required")

	var rule validator.FieldRule
	switch typ {
	case "submit", "button", "reset", "hidden", "image", "file":
		return validator.FieldRule{}, false
	case "checkbox":
		if !required {
			return validator.FieldRule{}, false
		}
		rule = validator.MustBeChecked(field)
	case "email":
		rule = validator.Email(field)
	case "password":
		rule = validator.Password(field)
	default:
		rule = validator.Text(field)
	}

	if typ != "checkbox" {
		if match := attr(n, "data-match"); match != "" {
			rule = validator.Matches(field, match)
		}
		if p := attr(n, "pattern"); p != "" {
			// Browsers match the whole value.
			rule.Pattern = "^(?:" + p + ")$"
			if rule.Kind == validator.KindText {
				rule.Kind = validator.KindPattern
			}
		}
		if required {
			rule = rule.Require()
		}
		if v, err := strconv.Atoi(attr(n, "minlength")); err == nil && v > 0 {
			rule = rule.Min(v)
		}
		if v, err := strconv.Atoi(attr(n, "maxlength")); err == nil && v > 0 {
			rule = rule.Max(v)
		}
	}

	if msg := attr(n, "data-error-message"); msg != "" {
		rule = rule.WithMessage(msg)
	}

	if !constrained(rule) {
		return validator.FieldRule{}, false
	}
	return rule, true
}

func constrained(r validator.FieldRule) bool {
	switch r.Kind {
	case validator.KindEmail, validator.KindMatches, validator.KindChecked, validator.KindPattern:
		return true
	}
	return r.Required || r.Pattern != "" || r.MinLength > 0 || r.MaxLength > 0
}

func lookup(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	v, _ := lookup(n, key)
	return strings.TrimSpace(v)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
