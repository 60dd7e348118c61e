package validators

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNote_Valid(t *testing.T) {
	err := ValidateNote(models.Note{Title: "Shopping list", Content: "milk, eggs"})
	assert.NoError(t, err)
}

func TestValidateNote_BlankTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{name: "empty", title: ""},
		{name: "whitespace only", title: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNote(models.Note{Title: tt.title, Content: "body"})
			require.Error(t, err)

			verr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Contains(t, verr.Fields, FieldTitle)
			assert.Contains(t, verr.Fields[FieldTitle], ReasonBlank)
		})
	}
}

func TestValidateNote_TitleTooLong(t *testing.T) {
	err := ValidateNote(models.Note{Title: strings.Repeat("A", MaxTitleLength+1), Content: "body"})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Fields[FieldTitle], ReasonTitleTooLong)
}

func TestValidateNote_TitleAtLimit(t *testing.T) {
	err := ValidateNote(models.Note{Title: strings.Repeat("A", MaxTitleLength), Content: "body"})
	assert.NoError(t, err)
}

func TestValidateNote_BlankContent(t *testing.T) {
	err := ValidateNote(models.Note{Title: "Title", Content: ""})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, FieldContent)
}

func TestValidateNote_CollectsAllFields(t *testing.T) {
	err := ValidateNote(models.Note{})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, verr.Fields, 2)
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name       string
		user       models.User
		wantFields []string
	}{
		{name: "valid", user: models.User{Username: "alice", Password: "secret"}},
		{name: "blank username", user: models.User{Password: "secret"}, wantFields: []string{FieldUsername}},
		{name: "blank password", user: models.User{Username: "alice"}, wantFields: []string{FieldPassword}},
		{name: "both blank", user: models.User{}, wantFields: []string{FieldUsername, FieldPassword}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.user)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			verr, ok := err.(*ValidationError)
			require.True(t, ok)
			for _, field := range tt.wantFields {
				assert.Contains(t, verr.Fields, field)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	verr := NewValidationError(FieldTitle, ReasonBlank)
	assert.Contains(t, verr.Error(), "title")
	assert.NotContains(t, verr.Error(), ReasonBlank)
}
