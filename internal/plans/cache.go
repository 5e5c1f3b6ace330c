package plans

import (
	"encoding/json"

	"github.com/enclave-health/fitplan/internal/eval"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour         = 60 * 60
	planCacheExpire = oneHour * 1 // default expire in hours

	// freecache caps a single entry at 1/1024 of the total cache size and a
	// marshaled plan record is a few kilobytes, so anything smaller than
	// this would refuse to store any plan at all
	minCacheSizeMegabytes = 8
)

// Cache keeps recently evaluated plans in process memory, keyed by the
// full profile payload. The engine is deterministic, so an identical
// profile can safely be served the previously stored record.
type Cache struct {
	cache *freecache.Cache
}

func NewCache(sizeMegabytes int) *Cache {
	if sizeMegabytes < minCacheSizeMegabytes {
		log.Warnf(
			"plan cache size %dMB below minimum, using %dMB",
			sizeMegabytes, minCacheSizeMegabytes,
		)
		sizeMegabytes = minCacheSizeMegabytes
	}
	megabyte := 1024 * 1024
	return &Cache{
		cache: freecache.NewCache(sizeMegabytes * megabyte),
	}
}

func (c *Cache) Get(profile eval.UserProfile) (*PlanRecord, bool) {
	key, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("plan cache get, marshal profile: %s", err)
		return nil, false
	}

	recordBytes, err := c.cache.Get(key)
	if err != nil {
		// freecache returns an error for a plain miss too
		return nil, false
	}

	record := &PlanRecord{}
	if err := json.Unmarshal(recordBytes, record); err != nil {
		log.Errorf("plan cache get, unmarshal record: %s", err)
		return nil, false
	}

	return record, true
}

func (c *Cache) Set(profile eval.UserProfile, record *PlanRecord) {
	key, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("plan cache set, marshal profile: %s", err)
		return
	}

	recordBytes, err := json.Marshal(record)
	if err != nil {
		log.Errorf("plan cache set, marshal record: %s", err)
		return
	}

	if err := c.cache.Set(key, recordBytes, planCacheExpire); err != nil {
		log.Errorf("plan cache set for plan %d: %s", record.ID, err)
	}
}
