package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrengthPasswordPolicy(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		password string

		expectedErr error
	}

	tests := []testCase{
		{name: "strong password", password: "Sup3rSecret", expectedErr: nil},
		{name: "too short", password: "Ab1", expectedErr: &WeakPasswordError{}},
		{name: "no uppercase", password: "password123", expectedErr: &WeakPasswordError{}},
		{name: "no lowercase", password: "PASSWORD123", expectedErr: &WeakPasswordError{}},
		{name: "no digit", password: "PasswordOnly", expectedErr: &WeakPasswordError{}},
		{name: "empty", password: "", expectedErr: &WeakPasswordError{}},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := NewStrengthPasswordPolicy().ValidatePassword(tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
