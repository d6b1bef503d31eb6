package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/sotavant/chat-sync/internal/models"
)

func op(revision int64, t models.OpType) models.Operation {
	return models.Operation{Revision: revision, Type: t}
}

func revisions(ops []models.Operation) []int64 {
	out := make([]int64, 0, len(ops))
	for _, o := range ops {
		out = append(out, o.Revision)
	}
	return out
}

func TestOperationLogIngest(t *testing.T) {
	testCases := []struct {
		name     string
		before   []models.Operation
		batch    []models.Operation
		admitted int
		want     []int64
	}{
		{
			name:     "empty_batch",
			batch:    nil,
			admitted: 0,
			want:     []int64{},
		},
		{
			name:     "keeps_batch_order",
			batch:    []models.Operation{op(3, models.OpSendMessage), op(1, models.OpReceiveMessage), op(2, models.OpAddContact)},
			admitted: 3,
			want:     []int64{3, 1, 2},
		},
		{
			name:     "zero_revision_skipped",
			batch:    []models.Operation{op(0, models.OpSendMessage)},
			admitted: 0,
			want:     []int64{},
		},
		{
			name:     "negative_revision_skipped",
			batch:    []models.Operation{op(-4, models.OpSendMessage), op(4, models.OpSendMessage)},
			admitted: 1,
			want:     []int64{4},
		},
		{
			name:     "known_revisions_skipped",
			before:   []models.Operation{op(5, models.OpSendMessage), op(6, models.OpSendMessage)},
			batch:    []models.Operation{op(6, models.OpReceiveMessage), op(7, models.OpReceiveMessage), op(5, models.OpReceiveMessage)},
			admitted: 1,
			want:     []int64{5, 6, 7},
		},
		{
			name:     "same_batch_duplicates_both_admitted",
			batch:    []models.Operation{op(9, models.OpSendMessage), op(9, models.OpReceiveMessage)},
			admitted: 2,
			want:     []int64{9, 9},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var l OperationLog
			l.Ingest(tc.before)

			assert.Equal(t, tc.admitted, l.Ingest(tc.batch))
			assert.Equal(t, tc.want, revisions(l.Operations()))
		})
	}
}

func TestOperationLogIngestIdempotent(t *testing.T) {
	batch := []models.Operation{
		op(1, models.OpSendMessage),
		op(0, models.OpSendMessage),
		op(2, models.OpReceiveMessage),
	}

	var l OperationLog
	assert.Equal(t, 2, l.Ingest(batch))
	assert.Equal(t, 0, l.Ingest(batch))
	assert.Equal(t, []int64{1, 2}, revisions(l.Operations()))
}

func TestOperationLogSameBatchDuplicatesSecondCallAdmitsNone(t *testing.T) {
	batch := []models.Operation{op(9, models.OpSendMessage), op(9, models.OpSendMessage)}

	var l OperationLog
	assert.Equal(t, 2, l.Ingest(batch))
	assert.Equal(t, 0, l.Ingest(batch))
	assert.Equal(t, 2, l.Len())
}

func TestOperationLogAdvanceRevision(t *testing.T) {
	testCases := []struct {
		name  string
		batch []models.Operation
		want  int64
	}{
		{
			name:  "ordered_tail",
			batch: []models.Operation{op(1, 0), op(2, 0), op(3, 0)},
			want:  3,
		},
		{
			name:  "swapped_tail",
			batch: []models.Operation{op(5, 0), op(7, 0), op(6, 0)},
			want:  7,
		},
		{
			name:  "only_last_two_count",
			batch: []models.Operation{op(100, 0), op(7, 0), op(6, 0)},
			want:  7,
		},
		{
			name:  "two_elements",
			batch: []models.Operation{op(11, 0), op(10, 0)},
			want:  11,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var l OperationLog
			got, err := l.AdvanceRevision(tc.batch)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want, l.Revision())
		})
	}
}

func TestOperationLogAdvanceRevisionTooShort(t *testing.T) {
	var l OperationLog
	_, err := l.AdvanceRevision([]models.Operation{op(3, 0), op(4, 0)})
	require.NoError(t, err)

	for _, batch := range [][]models.Operation{nil, {op(1, 0)}} {
		got, err := l.AdvanceRevision(batch)
		assert.ErrorIs(t, err, models.ErrInvalidArgument)
		assert.Equal(t, int64(4), got)
		assert.Equal(t, int64(4), l.Revision())
	}
}

func TestOperationLogAdvanceRevisionCanRegress(t *testing.T) {
	var l OperationLog
	_, err := l.AdvanceRevision([]models.Operation{op(20, 0), op(21, 0)})
	require.NoError(t, err)

	got, err := l.AdvanceRevision([]models.Operation{op(3, 0), op(4, 0)})
	require.NoError(t, err)
	assert.Equal(t, int64(4), got)
}

func TestOperationLogPop(t *testing.T) {
	var l OperationLog
	_, ok := l.Pop()
	assert.False(t, ok)

	l.Ingest([]models.Operation{op(1, models.OpSendMessage), op(2, models.OpReceiveMessage)})

	last, ok := l.Pop()
	require.True(t, ok)
	assert.Equal(t, int64(2), last.Revision)
	assert.Equal(t, []int64{1}, revisions(l.Operations()))

	// popped revisions may be ingested again
	assert.Equal(t, 1, l.Ingest([]models.Operation{op(2, models.OpReceiveMessage)}))
}

func TestOperationLogMessageOperations(t *testing.T) {
	var l OperationLog
	assert.Empty(t, l.MessageOperations())

	l.Ingest([]models.Operation{
		op(1, models.OpAddContact),
		op(2, models.OpReceiveMessage),
		op(3, models.OpSendMessageReceipt),
		op(4, models.OpSendMessage),
	})
	assert.Equal(t, []int64{2, 4}, revisions(l.MessageOperations()))
}

func TestOperationLogOperationsIsCopy(t *testing.T) {
	var l OperationLog
	l.Ingest([]models.Operation{op(1, models.OpSendMessage)})

	ops := l.Operations()
	ops[0].Revision = 42
	assert.Equal(t, []int64{1}, revisions(l.Operations()))
}
