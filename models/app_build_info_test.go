package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "2026-01-02", "abc123")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "2026-01-02", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.True(t, info.IsVersionKnown())
}

func TestNewAppBuildInfo_EmptyValuesBecomeNA(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.False(t, info.IsVersionKnown())
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", info.String())
}
