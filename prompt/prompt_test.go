package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYesNo(t *testing.T) {
	tests := []struct {
		resp  string
		valid bool
		yes   bool
	}{
		{resp: "y", valid: true, yes: true},
		{resp: "YES", valid: true, yes: true},
		{resp: " n ", valid: true},
		{resp: "No", valid: true},
		{resp: ""},
		{resp: "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.resp, func(t *testing.T) {
			err := ValidateYesNo(tt.resp)
			if tt.valid {
				assert.NoError(t, err)
				assert.Equal(t, tt.yes, IsYes(tt.resp))
			} else {
				assert.Error(t, err)
			}
		})
	}
}
