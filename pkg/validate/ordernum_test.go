package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOrderNo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "Valid Luhn number", input: "79927398713", valid: true},
		{name: "Invalid check digit", input: "79927398714", valid: false},
		{name: "Non-numeric", input: "abc123", valid: false},
		{name: "Empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsOrderNo(tt.input))
		})
	}
}

func TestNewOrderNo(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		no := NewOrderNo()
		assert.True(t, IsOrderNo(no), "generated number %s must carry a valid check digit", no)
		assert.False(t, seen[no], "generated numbers must not repeat: %s", no)
		seen[no] = true
	}
}
