package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var schemaJSON []byte

var schema = gojsonschema.NewBytesLoader(schemaJSON)

// emailPattern is deliberately loose: anything@anything.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// SummaryHint is the advisory summary length shown next to the form field.
const SummaryHint = 500

// DecodeSnapshot validates raw JSON against resume.schema.json and decodes it.
func DecodeSnapshot(b []byte) (Snapshot, error) {
	if err := validate(gojsonschema.NewBytesLoader(b)); err != nil {
		return Snapshot{}, err
	}
	var s Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s.Clone(), nil
}

func validate(doc gojsonschema.JSONLoader) error {
	res, err := gojsonschema.Validate(schema, doc)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}

// FieldError is advisory input feedback for a single form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// IsEmail reports whether s is empty or looks like an email address.
func IsEmail(s string) bool {
	return s == "" || emailPattern.MatchString(s)
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// ValidatePersonal checks the personal info form before it is saved.
func ValidatePersonal(fullName, email string) error {
	var errs ValidationErrors
	if blank(fullName) {
		errs = append(errs, FieldError{Field: "fullName", Message: "Name is required"})
	}
	if !IsEmail(email) {
		errs = append(errs, FieldError{Field: "email", Message: "Enter a valid email"})
	}
	return errs.orNil()
}

func ValidateEducation(e EducationEntry) error {
	var errs ValidationErrors
	if blank(e.Degree) {
		errs = append(errs, FieldError{Field: "degree", Message: "Degree is required"})
	}
	if blank(e.Institution) {
		errs = append(errs, FieldError{Field: "institution", Message: "Institution is required"})
	}
	return errs.orNil()
}

func ValidateExperience(e ExperienceEntry) error {
	var errs ValidationErrors
	if blank(e.Position) {
		errs = append(errs, FieldError{Field: "position", Message: "Position is required"})
	}
	if blank(e.Company) {
		errs = append(errs, FieldError{Field: "company", Message: "Company is required"})
	}
	return errs.orNil()
}

func ValidateSkill(skill string) error {
	if blank(skill) {
		return ValidationErrors{{Field: "skill", Message: "Skill is required"}}
	}
	return nil
}
