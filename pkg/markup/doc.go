// Package markup derives validator field rules from HTML form markup, so a
// page's constraint attributes and the Go rules cannot drift apart.
//
// Recognized attributes: required, type (email, password, checkbox),
// pattern, minlength, maxlength, data-match (id of the field to mirror) and
// data-error-message. Fields are keyed by id, falling back to name, and
// returned in document order. Unconstrained fields produce no rule.
package markup
