package memory

import (
	"context"
	"testing"

	"calldesk/internal/apperr"
	"calldesk/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreNewestFirstAndReplace(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Save(ctx, &report.Report{CallID: "a", Status: "first"}))
	require.NoError(t, s.Save(ctx, &report.Report{CallID: "b"}))
	require.NoError(t, s.Save(ctx, &report.Report{CallID: "a", Status: "second"}))

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].CallID)
	assert.Equal(t, "second", all[0].Status)
	assert.Equal(t, "b", all[1].CallID)
}

func TestStoreGetAndDelete(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Save(ctx, &report.Report{CallID: "a"}))

	r, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", r.CallID)

	require.NoError(t, s.Delete(ctx, "a"))
	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "a"), apperr.ErrNotFound)
}

func TestListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Save(ctx, &report.Report{CallID: "a"}))

	all, _ := s.List(ctx)
	all[0].CallID = "mutated"

	again, _ := s.List(ctx)
	assert.Equal(t, "a", again[0].CallID)
}
