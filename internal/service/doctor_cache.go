package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rehab-center/clinic-service/internal/persistence"
)

const doctorCacheKey = "clinic:doctors:approved"

// DoctorSummary is the public shape of an approved doctor.
type DoctorSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DoctorCache keeps the approved-doctors listing in Redis for a short
// TTL. All methods degrade to a miss when Redis is unreachable or not
// configured; the listing then falls through to the database.
type DoctorCache struct {
	redis *persistence.Redis
	ttl   time.Duration
}

// NewDoctorCache builds the cache wrapper.
func NewDoctorCache(redis *persistence.Redis, ttl time.Duration) *DoctorCache {
	return &DoctorCache{redis: redis, ttl: ttl}
}

// Get returns the cached listing, if any.
func (c *DoctorCache) Get(ctx context.Context) ([]DoctorSummary, bool) {
	if c == nil || c.redis == nil || c.redis.Client == nil || c.ttl <= 0 {
		return nil, false
	}
	raw, err := c.redis.Client.Get(ctx, doctorCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var doctors []DoctorSummary
	if err := json.Unmarshal(raw, &doctors); err != nil {
		return nil, false
	}
	return doctors, true
}

// Set stores the listing.
func (c *DoctorCache) Set(ctx context.Context, doctors []DoctorSummary) {
	if c == nil || c.redis == nil || c.redis.Client == nil || c.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(doctors)
	if err != nil {
		return
	}
	_ = c.redis.Client.Set(ctx, doctorCacheKey, raw, c.ttl).Err()
}

// Invalidate drops the cached listing after an approval state change.
func (c *DoctorCache) Invalidate(ctx context.Context) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	_ = c.redis.Client.Del(ctx, doctorCacheKey).Err()
}
