package analytics

import (
	"testing"

	"calldesk/internal/vapi"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	calls := []vapi.Call{
		{ID: "1", Status: "ended", CreatedAt: "2026-04-02T09:00:00Z", StartedAt: "2026-04-02T09:00:00Z", EndedAt: "2026-04-02T09:01:00.600Z", Cost: 0.105},
		{ID: "2", Status: "ended", EndedReason: "pipeline-error-openai-llm-failed", CreatedAt: "2026-04-02T10:00:00Z", StartedAt: "2026-04-02T10:00:00Z", EndedAt: "2026-04-02T10:00:30Z", Cost: 0.2},
		{ID: "3", Status: "in-progress", CreatedAt: "2026-04-01T23:59:59Z"},
	}

	s := Compute(calls)
	assert.Equal(t, 3, s.TotalCalls)
	assert.Equal(t, 2, s.CompletedCalls)
	assert.Equal(t, 1, s.ActiveCalls)
	assert.Equal(t, 1, s.FailedCalls)
	assert.Equal(t, int64(45), s.AvgDuration)
	assert.Equal(t, "0.31", s.TotalCost)
	assert.Equal(t, "66.7", s.SuccessRate)
	assert.Equal(t, map[string]int{"2026-04-02": 2, "2026-04-01": 1}, s.CallsByDate)
	assert.Len(t, s.RecentCalls, 3)
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil)
	assert.Zero(t, s.TotalCalls)
	assert.Equal(t, "0", s.SuccessRate)
	assert.Equal(t, "0.00", s.TotalCost)
	assert.Zero(t, s.AvgDuration)
	assert.NotNil(t, s.RecentCalls)
	assert.NotNil(t, s.CallsByDate)
}

func TestComputeKeepsTenRecent(t *testing.T) {
	calls := make([]vapi.Call, 15)
	for i := range calls {
		calls[i] = vapi.Call{ID: string(rune('a' + i)), Status: "ended"}
	}
	s := Compute(calls)
	assert.Len(t, s.RecentCalls, 10)
	assert.Equal(t, "a", s.RecentCalls[0].ID)
	assert.Equal(t, "100.0", s.SuccessRate)
	assert.Empty(t, s.CallsByDate)
}
