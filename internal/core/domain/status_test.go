package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
)

func TestActionStatusType_Predicates(t *testing.T) {
	tests := []struct {
		status         domain.ActionStatusType
		isFinish       bool
		isUnprocessing bool
		isUnprocessed  bool
	}{
		{domain.Unprocessed, false, true, true},
		{domain.Processing, false, false, true},
		{domain.Processed, true, false, false},
		{domain.Cancelled, true, false, false},
		{domain.StatusError, false, true, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isFinish, tt.status.IsFinish())
			assert.Equal(t, tt.isUnprocessing, tt.status.IsUnprocessing())
			assert.Equal(t, tt.isUnprocessed, tt.status.IsUnprocessed())
		})
	}
}

func TestStatusQueryHelpers(t *testing.T) {
	assert.ElementsMatch(t,
		[]domain.ActionStatusType{domain.Unprocessed, domain.Processing, domain.StatusError},
		domain.UnprocessedStatuses())
	assert.ElementsMatch(t,
		[]domain.ActionStatusType{domain.Unprocessed, domain.StatusError},
		domain.UnprocessingStatuses())
}
