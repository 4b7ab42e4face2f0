package textgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/card-forge/internal/clients/textgen"
	"github.com/KirkDiggler/card-forge/internal/errors"
)

func TestExtractJSONObject(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{
			name:     "bare object",
			raw:      `{"name":"ember"}`,
			expected: `{"name":"ember"}`,
		},
		{
			name:     "prose and code fence",
			raw:      "Here is your card:\n```json\n{\"name\":\"ember\",\"stats\":{\"power\":5}}\n```\nEnjoy!",
			expected: `{"name":"ember","stats":{"power":5}}`,
		},
		{
			name:    "no braces",
			raw:     "I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "closing brace before any opening brace",
			raw:     "} oops {",
			wantErr: true,
		},
		{
			name:    "only an opening brace",
			raw:     "{ truncated",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := textgen.ExtractJSONObject(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsGeneration(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestDecodeJSONObject(t *testing.T) {
	var target struct {
		Name  string `json:"name"`
		Power int    `json:"power"`
	}

	err := textgen.DecodeJSONObject("Sure! {\"name\":\"MOLTEN BLADE\",\"power\":7}", &target)
	require.NoError(t, err)
	assert.Equal(t, "MOLTEN BLADE", target.Name)
	assert.Equal(t, 7, target.Power)

	err = textgen.DecodeJSONObject("{not json}", &target)
	require.Error(t, err)
	assert.True(t, errors.IsGeneration(err))
}

func TestOfflineAlwaysFails(t *testing.T) {
	_, err := textgen.Offline{}.Generate(t.Context(), "anything")
	require.Error(t, err)
	assert.True(t, errors.IsGeneration(err))
}
