package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("CFG_TEST_STRING", "  mysql  ")
	assert.Equal(t, "mysql", GetEnvString("CFG_TEST_STRING", "postgres"))
	assert.Equal(t, "fallback", GetEnvString("CFG_TEST_UNSET", "fallback"))

	t.Setenv("CFG_TEST_BLANK", "   ")
	assert.Equal(t, "fallback", GetEnvString("CFG_TEST_BLANK", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "25", 25},
		{"negative", "-3", -3},
		{"garbage", "ten", 10},
		{"trailing junk", "5x", 10},
		{"empty", "", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CFG_TEST_INT", tt.value)
			assert.Equal(t, tt.want, GetEnvInt("CFG_TEST_INT", 10))
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("CFG_TEST_FLOAT", "2.5")
	assert.Equal(t, 2.5, GetEnvFloat("CFG_TEST_FLOAT", 0))

	t.Setenv("CFG_TEST_FLOAT", "fast")
	assert.Equal(t, 1.0, GetEnvFloat("CFG_TEST_FLOAT", 1))
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"FALSE", false},
		{"0", false},
		{"yes", true}, // invalid, keeps default
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("CFG_TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, GetEnvBool("CFG_TEST_BOOL", true))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("CFG_TEST_DURATION", "1m30s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("CFG_TEST_DURATION", time.Second))

	t.Setenv("CFG_TEST_DURATION", "90")
	assert.Equal(t, time.Second, GetEnvDuration("CFG_TEST_DURATION", time.Second))
}

func TestInRange(t *testing.T) {
	assert.NoError(t, InRange("TIMEOUT", time.Minute, time.Second, time.Hour))
	assert.NoError(t, InRange("TIMEOUT", time.Second, time.Second, time.Hour))
	assert.EqualError(t, InRange("TIMEOUT", time.Millisecond, time.Second, time.Hour), "TIMEOUT: 1ms is outside [1s, 1h0m0s]")
	assert.Error(t, InRange("TIMEOUT", 2*time.Hour, time.Second, time.Hour))
	assert.Error(t, InRange("PORT", 70000, 1, 65535))
}

func TestAtLeast(t *testing.T) {
	assert.NoError(t, AtLeast("RPS", 0.0, 0))
	assert.EqualError(t, AtLeast("RPS", -0.5, 0), "RPS: -0.5 is below 0")
	assert.Error(t, AtLeast("BURST", 0, 1))
}
