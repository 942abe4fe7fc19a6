package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmail(t *testing.T) {
	cases := map[string]bool{
		"":                true,
		"jane@x.com":      true,
		"a.b+c_d-e@host":  true,
		"no-at-sign":      false,
		"@missing-local":  false,
		"spaces in@x.com": false,
		"trailing@":       false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsEmail(in), "IsEmail(%q)", in)
	}
}

func TestValidatePersonal(t *testing.T) {
	require.NoError(t, ValidatePersonal("Jane Doe", "jane@x.com"))
	require.NoError(t, ValidatePersonal("Jane Doe", ""))

	err := ValidatePersonal("   ", "not-an-email")
	require.Error(t, err)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, ValidationErrors{
		{Field: "fullName", Message: "Name is required"},
		{Field: "email", Message: "Enter a valid email"},
	}, verrs)
}

func TestValidateEntries(t *testing.T) {
	assert.NoError(t, ValidateEducation(EducationEntry{Degree: "BSc CS", Institution: "State U"}))
	assert.Error(t, ValidateEducation(EducationEntry{Degree: "BSc CS"}))
	assert.NoError(t, ValidateExperience(ExperienceEntry{Position: "Engineer", Company: "Acme"}))
	assert.Error(t, ValidateExperience(ExperienceEntry{Company: "Acme"}))
	assert.NoError(t, ValidateSkill("Go"))
	assert.EqualError(t, ValidateSkill(" "), "skill: Skill is required")
}

func TestDecodeSnapshot(t *testing.T) {
	raw := []byte(`{
		"fullName": "Jane Doe",
		"email": "jane@x.com",
		"education": [{"degree": "BSc CS", "institution": "State U", "year": "2020"}],
		"skills": ["Go", "Rust"]
	}`)
	s, err := DecodeSnapshot(raw)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", s.FullName)
	assert.Equal(t, []EducationEntry{{Degree: "BSc CS", Institution: "State U", Year: "2020"}}, s.Education)
	assert.Equal(t, []string{"Go", "Rust"}, s.Skills)
	assert.NotNil(t, s.Experience)
	assert.Empty(t, s.Experience)
}

func TestDecodeSnapshotRejectsSchemaViolations(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"fullName": 42}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")

	_, err = DecodeSnapshot([]byte(`{"skills": [{"name": "Go"}]}`))
	require.Error(t, err)

	_, err = DecodeSnapshot([]byte(`{"nickname": "JD"}`))
	require.Error(t, err)
}

func TestCloneDetachesSlices(t *testing.T) {
	orig := Snapshot{Skills: []string{"Go"}, Education: []EducationEntry{{Degree: "BSc"}}}
	c := orig.Clone()
	c.Skills[0] = "Rust"
	c.Education[0].Degree = "MSc"
	assert.Equal(t, "Go", orig.Skills[0])
	assert.Equal(t, "BSc", orig.Education[0].Degree)
}
