package idtheory

import (
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// NewULID generates a lexicographically sortable ULID from the generator's
// clock and a monotonic entropy reader, so identifiers minted within the
// same millisecond still sort in generation order.
func (g *Generator) NewULID() string {
	ms := ulid.Timestamp(g.clock.Now())
	id, err := ulid.New(ms, g.entropy)
	if err != nil {
		// Monotonic overflow within a single millisecond. Fall back to
		// fresh entropy; ordering within that millisecond is lost.
		g.log.Warn("ulid monotonic entropy exhausted", zap.Error(err))
		id = ulid.MustNew(ms, randReader{g.rand})
	}
	return id.String()
}
