package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPlan(t *testing.T) {
	tests := []struct {
		name    string
		service string
		plan    string
		want    bool
	}{
		{name: "netflix premium", service: "Netflix", plan: "Premium (4K UHD)", want: true},
		{name: "spotify student", service: "Spotify", plan: "Student", want: true},
		{name: "plan of another service", service: "Netflix", plan: "Student", want: false},
		{name: "unknown service", service: "Crunchyroll", plan: "Premium", want: false},
		{name: "empty plan", service: "Hulu", plan: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPlan(tt.service, tt.plan))
		})
	}
}

func TestIsRegion(t *testing.T) {
	assert.True(t, IsRegion("US"))
	assert.True(t, IsRegion("gb"))
	assert.True(t, IsRegion("AX"))
	assert.False(t, IsRegion("XX"))
	assert.False(t, IsRegion(""))
}

func TestDefaultPlan(t *testing.T) {
	assert.Equal(t, "Basic (720p)", DefaultPlan("Netflix"))
	assert.Equal(t, "VIP Mobile", DefaultPlan("Shahid VIP"))
	assert.Equal(t, "Premium", DefaultPlan("Unknown"))
}

func TestCopiesAreIndependent(t *testing.T) {
	plans := Plans("Netflix")
	plans[0] = "changed"
	assert.Equal(t, "Basic (720p)", Plans("Netflix")[0])

	list := Countries()
	list[0].Code = "ZZ"
	assert.Equal(t, "US", Countries()[0].Code)

	assert.Len(t, Products(), 9)
	assert.Nil(t, Plans("Unknown"))
}
