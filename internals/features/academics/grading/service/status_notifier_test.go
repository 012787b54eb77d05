package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"belajarku_backend/internals/constants"
)

func TestStatusSeverityOrdering(t *testing.T) {
	assert.Less(t, statusSeverity(constants.RiskSafe), statusSeverity(constants.RiskNormal))
	assert.Less(t, statusSeverity(constants.RiskNormal), statusSeverity(constants.RiskAtRisk))
	assert.Less(t, statusSeverity(constants.RiskAtRisk), statusSeverity(constants.RiskHighRisk))
}

func TestStatusMessagePerStatus(t *testing.T) {
	seen := map[string]bool{}
	for _, status := range []string{
		constants.RiskSafe,
		constants.RiskNormal,
		constants.RiskAtRisk,
		constants.RiskHighRisk,
	} {
		msg := StatusMessage(status)
		assert.NotEmpty(t, msg)
		assert.False(t, seen[msg], "pesan %q dipakai dua status", msg)
		seen[msg] = true
	}
}

func TestStatusMessageUnknownFallsBackToHighRisk(t *testing.T) {
	assert.Equal(t, StatusMessage(constants.RiskHighRisk), StatusMessage("unknown"))
}
