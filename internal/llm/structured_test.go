package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parsePayload struct {
	ClientName    string `json:"clientName"`
	PackageAmount int64  `json:"packageAmount"`
}

func TestExtractJSON_PlainObject(t *testing.T) {
	got, err := ExtractJSON[parsePayload](`{"clientName":"Ayesha","packageAmount":50000}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ayesha", got.ClientName)
	assert.Equal(t, int64(50000), got.PackageAmount)
}

func TestExtractJSON_CodeFenceAndProse(t *testing.T) {
	raw := "Here is the booking you asked for:\n```json\n" +
		`{"clientName":"Tanvir","packageAmount":85000}` +
		"\n```\nLet me know if you need anything else."
	got, err := ExtractJSON[parsePayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Tanvir", got.ClientName)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"clientName":"A {nested} name","packageAmount":1}`
	got, err := ExtractJSON[parsePayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "A {nested} name", got.ClientName)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[parsePayload]("sorry, I cannot help with that", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Unbalanced(t *testing.T) {
	_, err := ExtractJSON[parsePayload](`{"clientName":"truncated`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	raw := `{"clientName":"","packageAmount":0}`
	_, err := ExtractJSON[parsePayload](raw, func(p parsePayload) error {
		if p.ClientName == "" {
			return errors.New("clientName is required")
		}
		return nil
	})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
