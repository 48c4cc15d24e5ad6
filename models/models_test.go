package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatType_String(t *testing.T) {
	assert.Equal(t, "STANDARD", SeatTypeStandard.String())
	assert.Equal(t, "COMFORT", SeatTypeComfort.String())
	assert.Equal(t, "VIP", SeatTypeVIP.String())
	assert.Equal(t, "SEAT_TYPE_7", SeatType(7).String())
}

func TestIdentifierList_IsAbsent(t *testing.T) {
	var nilList IdentifierList
	assert.True(t, nilList.IsAbsent())
	assert.True(t, IdentifierList{}.IsAbsent())
	assert.False(t, IdentifierList{1}.IsAbsent())
}

func TestNewAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "Build version: N/A\nBuild date: 2026-01-01\nBuild commit: N/A\n", info.String())
}
