package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/textutils/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected environment.Environment
	}{
		{name: "production", input: "production", expected: environment.Production},
		{name: "production alias", input: "prod", expected: environment.Production},
		{name: "staging", input: "Staging", expected: environment.Staging},
		{name: "staging alias", input: " stage ", expected: environment.Staging},
		{name: "development", input: "development", expected: environment.Development},
		{name: "empty", input: "", expected: environment.Development},
		{name: "unknown", input: "qa", expected: environment.Development},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, environment.Parse(tt.input))
		})
	}
}

func TestEnvironment_IsProduction(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Production.IsProduction())
	assert.False(t, environment.Staging.IsProduction())
	assert.Equal(t, "staging", environment.Staging.String())
}
