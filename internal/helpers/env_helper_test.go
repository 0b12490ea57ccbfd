package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStage(t *testing.T) {
	assert.True(t, IsValidStage(StageLocal))
	assert.True(t, IsValidStage(StageDev))
	assert.True(t, IsValidStage(StageProd))
	assert.False(t, IsValidStage("staging"))
	assert.False(t, IsValidStage(""))
	assert.False(t, IsValidStage("Production"))
}

func TestParseStage(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"prod", StageProd, true},
		{" PROD ", StageProd, true},
		{"production", StageProd, true},
		{"Development", StageDev, true},
		{"dev", StageDev, true},
		{"local", StageLocal, true},
		{"staging", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseStage(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("HELPER_STRING", "  value ")
	t.Setenv("HELPER_INT", "42")
	t.Setenv("HELPER_BAD_INT", "forty-two")
	t.Setenv("HELPER_DURATION", "90s")
	t.Setenv("HELPER_NEGATIVE_DURATION", "-5m")

	assert.Equal(t, "value", GetEnvWithDefault("HELPER_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnvWithDefault("HELPER_MISSING", "fallback"))

	assert.Equal(t, 42, GetEnvInt("HELPER_INT", 7))
	assert.Equal(t, 7, GetEnvInt("HELPER_BAD_INT", 7))
	assert.Equal(t, 7, GetEnvInt("HELPER_MISSING", 7))

	assert.Equal(t, 90*time.Second, GetEnvDuration("HELPER_DURATION", time.Hour))
	assert.Equal(t, time.Hour, GetEnvDuration("HELPER_NEGATIVE_DURATION", time.Hour))
	assert.Equal(t, time.Hour, GetEnvDuration("HELPER_MISSING", time.Hour))
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, SplitAndTrim("   "))
	assert.Equal(t, []string{"GET", "POST"}, SplitAndTrim(" GET, ,POST "))
}
