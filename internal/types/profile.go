// Package types provides type definitions for the data shared between the
// CareerBridge shell, page controllers, model gateway, and store.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. validator caches struct metadata
// internally, so a single instance is the recommended usage.
var validate = validator.New()

// UserProfile is the single persistent entity: the student's profile as filled
// in on the Profile page. JSON tags match the durable-storage format.
type UserProfile struct {
	Name          string   `json:"name"`
	Field         string   `json:"field"`
	Skills        []string `json:"skills"`
	VisaType      string   `json:"visaType"`
	LanguageLevel string   `json:"languageLevel" validate:"omitempty,oneof=A1 A2 B1 B2 C1 C2"`
	Preferences   string   `json:"preferences"`
}

// DefaultProfile returns the empty profile used on first load and whenever
// the persisted value cannot be read.
func DefaultProfile() UserProfile {
	return UserProfile{Skills: []string{}}
}

// Complete reports whether the profile unlocks the gated pages.
// Only the name is required; field and visa type gate feature usefulness,
// not navigation.
func (p UserProfile) Complete() bool {
	return strings.TrimSpace(p.Name) != ""
}

// Ready reports whether the profile carries enough detail for the
// AI features to produce meaningful output (the original form's
// save-and-enter rule: name, field, and visa type).
func (p UserProfile) Ready() bool {
	return p.Complete() && p.Field != "" && p.VisaType != ""
}

// FirstName returns the leading name token, used for the dashboard greeting.
func (p UserProfile) FirstName() string {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ""
	}
	return strings.Fields(name)[0]
}

// Validate checks field-level constraints (currently the language level code).
// Completeness is deliberately not validated here; the store accepts partial
// profiles and the navigation gate enforces completeness.
func (p UserProfile) Validate() error {
	return validate.Struct(p)
}
