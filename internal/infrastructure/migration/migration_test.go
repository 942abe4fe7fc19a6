package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExecutesInOrder(t *testing.T) {
	var got []string
	err := run(context.Background(), func(_ context.Context, sql string) error {
		got = append(got, sql)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, len(Migrations))
	for i, m := range Migrations {
		assert.Equal(t, m.SQL, got[i])
	}
	assert.Contains(t, got[0], "CREATE TABLE IF NOT EXISTS resume_exports")
}

func TestRunStopsOnFailure(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	err := run(context.Background(), func(context.Context, string) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}
