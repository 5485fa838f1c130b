package ledger

import "time"

// IDGenerator hands out clock-derived ids that are strictly increasing,
// so an id is never issued twice, even after the holder was deleted.
type IDGenerator struct {
	now  func() time.Time
	last int64
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

// Next returns a fresh id. taken reports ids already present in the ledger.
func (g *IDGenerator) Next(taken func(int64) bool) int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	for taken != nil && taken(id) {
		id++
	}
	g.last = id
	return id
}

// Observe records an externally assigned id so later ids stay above it.
func (g *IDGenerator) Observe(id int64) {
	if id > g.last {
		g.last = id
	}
}
