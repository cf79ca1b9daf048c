package cache

import (
	"encoding/json"
	"fmt"

	"github.com/2beens/gymplan/internal/gymplan/program"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// ProgramCacheExpire is in seconds, 0 means the entries only get evicted.
const ProgramCacheExpire = 0

// ProgramCache is an in-process cache of generated program structures. Generation
// is deterministic, so the params are a complete key.
type ProgramCache struct {
	cache *freecache.Cache
}

func NewProgramCache(cacheSizeMegabytes int) *ProgramCache {
	megabyte := 1024 * 1024
	return &ProgramCache{
		cache: freecache.NewCache(cacheSizeMegabytes * megabyte),
	}
}

func programKey(p program.Params) []byte {
	return []byte(fmt.Sprintf("program::%s::%s::%s::%d::%d", p.Type, p.Level, p.Goal, p.DurationWeeks, p.FrequencyPerWeek))
}

func (c *ProgramCache) Get(p program.Params) (*program.Structure, bool) {
	raw, err := c.cache.Get(programKey(p))
	if err != nil {
		return nil, false
	}

	s := &program.Structure{}
	if err := json.Unmarshal(raw, s); err != nil {
		log.Errorf("unmarshal cached program %s: %s", programKey(p), err)
		return nil, false
	}
	return s, true
}

func (c *ProgramCache) Set(p program.Params, s *program.Structure) {
	raw, err := json.Marshal(s)
	if err != nil {
		log.Errorf("marshal program for cache: %s", err)
		return
	}
	if err := c.cache.Set(programKey(p), raw, ProgramCacheExpire); err != nil {
		log.Warnf("failed to cache program %s: %s", programKey(p), err)
	}
}

func (c *ProgramCache) EntryCount() int64 {
	return c.cache.EntryCount()
}
