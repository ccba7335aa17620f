package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/postal/model"
)

func TestHash(t *testing.T) {
	testCases := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "empty_input",
			input:    []byte{},
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "simple_text",
			input:    []byte("test"),
			expected: "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		},
		{
			name:     "abc",
			input:    []byte("abc"),
			expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Hash(tc.input)

			assert.Equal(t, tc.expected, result)
			assert.Regexp(t, "^[a-f0-9]{64}$", result)
			assert.Equal(t, result, Hash(tc.input), "Hash should be deterministic")
			assert.NotEqual(t, result, Hash(append(tc.input, 'x')))
		})
	}
}

func TestHashJSON(t *testing.T) {
	notes := "leave at the door"
	req := model.CreateDeliveryRequest{
		Barcode:        "RR123456789IL",
		EmployeeID:     "EMP-7",
		DeliveryStatus: 4,
		Notes:          &notes,
	}

	first, err := HashJSON(req)
	require.NoError(t, err)

	copied := req
	second, err := HashJSON(copied)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	copied.DeliveryStatus = 5
	third, err := HashJSON(copied)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestHashJSON_UnsupportedValue(t *testing.T) {
	_, err := HashJSON(map[string]any{"ch": make(chan int)})
	assert.Error(t, err)
}
