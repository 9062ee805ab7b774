package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func manyKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "ER_NO_CURLYBRACE"
	}
	return keys
}

func TestLookupRequest_Validate(t *testing.T) {
	tests := []struct {
		name            string
		request         LookupRequest
		expectedError   bool
		expectedDetails []string
	}{
		{
			name:    "valid request",
			request: LookupRequest{Keys: []string{"ER_NO_CURLYBRACE"}, Lang: "de"},
		},
		{
			name:    "language is optional",
			request: LookupRequest{Keys: []string{"ER_NO_CURLYBRACE", "BAD_CODE"}},
		},
		{
			name:    "maximum batch size",
			request: LookupRequest{Keys: manyKeys(MaxLookupKeys)},
		},
		{
			name:            "missing keys",
			request:         LookupRequest{Lang: "de"},
			expectedError:   true,
			expectedDetails: []string{"keys"},
		},
		{
			name:            "empty keys",
			request:         LookupRequest{Keys: []string{}},
			expectedError:   true,
			expectedDetails: []string{"keys"},
		},
		{
			name:            "too many keys",
			request:         LookupRequest{Keys: manyKeys(MaxLookupKeys + 1)},
			expectedError:   true,
			expectedDetails: []string{"keys"},
		},
		{
			name:            "blank key",
			request:         LookupRequest{Keys: []string{"ER_NO_CURLYBRACE", ""}},
			expectedError:   true,
			expectedDetails: []string{"keys.1"},
		},
		{
			name:            "overlong key",
			request:         LookupRequest{Keys: []string{strings.Repeat("K", maxKeyLength+1)}},
			expectedError:   true,
			expectedDetails: []string{"keys.0"},
		},
		{
			name:            "overlong language",
			request:         LookupRequest{Keys: []string{"BAD_CODE"}, Lang: strings.Repeat("de,", 100)},
			expectedError:   true,
			expectedDetails: []string{"lang"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if !tt.expectedError {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			details := ValidationDetails(err)
			for _, field := range tt.expectedDetails {
				assert.Contains(t, details, field)
				assert.NotEmpty(t, details[field])
			}
		})
	}
}

func TestValidationDetails_NonValidationError(t *testing.T) {
	assert.Nil(t, ValidationDetails(assert.AnError))
	assert.Nil(t, ValidationDetails(nil))
}
