package store

import (
	"fmt"

	"go.uber.org/zap"

	"bitbucket.org/sotavant/chat-sync/internal/logger"
	"bitbucket.org/sotavant/chat-sync/internal/models"
)

// OperationLog holds the operations admitted from server batches, in arrival
// order, together with the revision watermark used to request the next batch.
//
// Revisions in the log are unique across ingest calls. Within one batch only
// the log state from before the call is consulted, so two operations sharing
// a revision inside the same batch are both admitted.
type OperationLog struct {
	ops      []models.Operation
	revision int64
}

// Ingest appends every operation of batch whose revision is positive and not
// yet in the log. Duplicates and unassigned revisions are skipped silently.
// It returns the number of admitted operations.
func (l *OperationLog) Ingest(batch []models.Operation) int {
	known := make(map[int64]struct{}, len(l.ops))
	for _, op := range l.ops {
		known[op.Revision] = struct{}{}
	}

	admitted := 0
	for _, op := range batch {
		if op.Revision <= 0 {
			logger.Log.Debug("skipping operation without revision",
				zap.Int64("revision", op.Revision), zap.Stringer("type", op.Type))
			continue
		}
		if _, ok := known[op.Revision]; ok {
			logger.Log.Debug("skipping already handled operation",
				zap.Int64("revision", op.Revision), zap.Stringer("type", op.Type))
			continue
		}
		l.ops = append(l.ops, op)
		admitted++
	}
	return admitted
}

// AdvanceRevision sets the watermark to the larger revision of the last two
// operations in batch. The server may swap the newest operation with its
// predecessor, never more.
//
// The new watermark is taken as is: keeping it from going backwards is up to
// the caller.
func (l *OperationLog) AdvanceRevision(batch []models.Operation) (int64, error) {
	n := len(batch)
	if n < 2 {
		return l.revision, fmt.Errorf("advance revision needs at least 2 operations, got %d: %w",
			n, models.ErrInvalidArgument)
	}

	next := batch[n-2].Revision
	if last := batch[n-1].Revision; last > next {
		next = last
	}

	if next < l.revision {
		logger.Log.Warn("revision watermark moved backwards",
			zap.Int64("from", l.revision), zap.Int64("to", next))
	}
	l.revision = next
	return next, nil
}

// Revision returns the current watermark.
func (l *OperationLog) Revision() int64 {
	return l.revision
}

// Pop removes the last admitted operation. Used to roll back a local append.
func (l *OperationLog) Pop() (models.Operation, bool) {
	if len(l.ops) == 0 {
		return models.Operation{}, false
	}
	last := l.ops[len(l.ops)-1]
	l.ops = l.ops[:len(l.ops)-1]
	return last, true
}

func (l *OperationLog) Len() int {
	return len(l.ops)
}

// Operations returns a copy of the log.
func (l *OperationLog) Operations() []models.Operation {
	out := make([]models.Operation, len(l.ops))
	copy(out, l.ops)
	return out
}

// MessageOperations returns the logged operations that carry a chat message,
// in log order.
func (l *OperationLog) MessageOperations() []models.Operation {
	out := make([]models.Operation, 0)
	for _, op := range l.ops {
		if op.Type.IsMessage() {
			out = append(out, op)
		}
	}
	return out
}
