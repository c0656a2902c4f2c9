package ticket

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "A title"},
		{name: "exactly max", input: strings.Repeat("a", MaxTitleBytes)},
		{name: "empty", input: "", wantErr: true},
		{name: "too long", input: strings.Repeat("a", MaxTitleBytes+1), wantErr: true},
		// Length is in bytes, not runes.
		{name: "multibyte over limit", input: strings.Repeat("é", MaxTitleBytes/2+1), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTitle(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidTitle))
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestNewDescription(t *testing.T) {
	_, err := NewDescription("")
	assert.ErrorIs(t, err, ErrInvalidDescription)

	_, err = NewDescription(strings.Repeat("x", MaxDescriptionBytes+1))
	assert.ErrorIs(t, err, ErrInvalidDescription)

	d, err := NewDescription(strings.Repeat("x", MaxDescriptionBytes))
	require.NoError(t, err)
	assert.Len(t, d.String(), MaxDescriptionBytes)
}

func TestDraftDecodeValidatesFields(t *testing.T) {
	var d Draft
	err := json.Unmarshal([]byte(`{"title":"","description":"A description"}`), &d)
	assert.ErrorIs(t, err, ErrInvalidTitle)

	err = json.Unmarshal([]byte(`{"title":null,"description":"A description"}`), &d)
	assert.ErrorIs(t, err, ErrInvalidTitle)

	d = Draft{}
	require.NoError(t, json.Unmarshal([]byte(`{"title":"A title"}`), &d))
	assert.ErrorIs(t, d.Validate(), ErrInvalidDescription)

	d = Draft{}
	require.NoError(t, json.Unmarshal([]byte(`{"title":"A title","description":"A description"}`), &d))
	assert.NoError(t, d.Validate())
	assert.Equal(t, "A title", d.Title.String())
}
