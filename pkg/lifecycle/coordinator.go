package lifecycle

import (
	"sync"

	"go.uber.org/zap"

	"carkeep.kr/consumable-service/pkg/common"
	"carkeep.kr/consumable-service/pkg/models"
)

type baselineKey struct {
	vehicleID string
	category  models.Category
}

// baselineCache holds derived baselines per (vehicle, category), each guarded
// by a generation counter. Every recomputation bumps the generation before
// reading the store; its result is applied only if no newer recomputation
// started meanwhile, so a stale in-flight result can never overwrite a
// fresher one (last request wins).
type baselineCache struct {
	mu      sync.Mutex
	gens    map[baselineKey]uint64
	applied map[baselineKey]uint64
	data    map[baselineKey]map[string]Baseline
}

func (c *baselineCache) begin(key baselineKey) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens == nil {
		c.gens = map[baselineKey]uint64{}
	}
	c.gens[key]++
	return c.gens[key]
}

func (c *baselineCache) apply(key baselineKey, gen uint64, baselines map[string]Baseline) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens == nil || gen != c.gens[key] {
		return false
	}
	if c.data == nil {
		c.data = map[baselineKey]map[string]Baseline{}
		c.applied = map[baselineKey]uint64{}
	}
	c.data[key] = baselines
	c.applied[key] = gen
	return true
}

// lookup returns cached baselines only when they reflect the latest
// generation; anything older counts as a miss.
func (c *baselineCache) lookup(key baselineKey) (map[string]Baseline, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		return nil, false
	}
	baselines, ok := c.data[key]
	if !ok || c.applied[key] != c.gens[key] {
		return nil, false
	}
	return baselines, true
}

// recomputeBaselines re-derives the baselines of a (vehicle, category) from
// the full record set. Record mutations call it after their commit; status
// reads call it on a cache miss. A store read failure leaves the cache
// untouched and propagates.
func (e *Engine) recomputeBaselines(vehicleID string, category models.Category) (map[string]Baseline, error) {
	key := baselineKey{vehicleID: vehicleID, category: category}
	gen := e.baselines.begin(key)

	var records []models.ReplacementRecord
	if err := e.Db.Conn.
		Where("vehicle_id = ? AND category = ?", vehicleID, category).
		Find(&records).Error; err != nil {
		return nil, err
	}

	baselines := AggregateBaselines(records)
	if e.baselines.apply(key, gen, baselines) {
		common.GetLoggerWith(
			common.LoggerNameLifecycleCore,
			zap.String(common.LoggerFieldCategory, common.LoggerCategoryBaseline),
		).Info("Recomputed baselines for vehicle",
			zap.String("vehicle_id", vehicleID),
			zap.String("part_category", string(category)),
			zap.Int("kinds", len(baselines)))
	}
	return baselines, nil
}

func (e *Engine) baselinesFor(vehicleID string, category models.Category) (map[string]Baseline, error) {
	key := baselineKey{vehicleID: vehicleID, category: category}
	if baselines, ok := e.baselines.lookup(key); ok {
		return baselines, nil
	}
	return e.recomputeBaselines(vehicleID, category)
}

type draftKey struct {
	vehicleID string
	category  models.Category
	kind      string
}

// DraftStore buffers not-yet-submitted input (for instance an odometer value
// the owner started typing) per kind. A draft refers to the baseline that was
// current when it was started; record mutations for the same kind clear it so
// it cannot silently resubmit against a new baseline.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[draftKey]string
}

func (s *DraftStore) Set(vehicleID string, category models.Category, kind string, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drafts == nil {
		s.drafts = map[draftKey]string{}
	}
	s.drafts[draftKey{vehicleID, category, kind}] = value
}

func (s *DraftStore) Get(vehicleID string, category models.Category, kind string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.drafts[draftKey{vehicleID, category, kind}]
	return value, ok
}

func (s *DraftStore) Clear(vehicleID string, category models.Category, kind string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, draftKey{vehicleID, category, kind})
}
