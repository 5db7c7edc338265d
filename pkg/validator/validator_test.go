package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `validate:"required"`
	Mode string `validate:"oneof=a b"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         interface{}
		wantFields []string
	}{
		{
			name: "valid",
			in:   sample{Name: "x", Mode: "a"},
		},
		{
			name:       "missing name and bad mode",
			in:         sample{Mode: "c"},
			wantFields: []string{"Name", "Mode"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.in)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			var verr *Error
			require.True(t, errors.As(err, &verr))
			got := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				got = append(got, f.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, got)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestValidateStruct_NotAStruct(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(42)
	require.Error(t, err)

	var verr *Error
	assert.False(t, errors.As(err, &verr))
}
