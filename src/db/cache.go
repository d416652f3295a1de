package db

import (
	"log"
	"strconv"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Analytics responses are cached per user and invalidated wholesale whenever
// one of that user's transactions changes. Keys are tracked per user so a
// mutation can clear every (year, month) entry without scanning the cache.
var (
	Cache              *ristretto.Cache
	analyticsCacheKeys = struct {
		sync.RWMutex
		m map[int]map[string]struct{}
	}{m: make(map[int]map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func AnalyticsCacheKey(userID, year, month int) string {
	return "analytics:" + strconv.Itoa(userID) + ":" + strconv.Itoa(year) + ":" + strconv.Itoa(month)
}

func SetAnalyticsCache(userID int, cacheKey string, value interface{}) {
	analyticsCacheKeys.Lock()
	if analyticsCacheKeys.m[userID] == nil {
		analyticsCacheKeys.m[userID] = make(map[string]struct{})
	}
	analyticsCacheKeys.m[userID][cacheKey] = struct{}{}
	analyticsCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func GetAnalyticsCache(cacheKey string) (interface{}, bool) {
	if Cache == nil {
		return nil, false
	}
	return Cache.Get(cacheKey)
}

func ClearAnalyticsCachesForUser(userID int) {
	if Cache == nil {
		return
	}
	analyticsCacheKeys.Lock()
	for key := range analyticsCacheKeys.m[userID] {
		Cache.Del(key)
	}
	delete(analyticsCacheKeys.m, userID)
	analyticsCacheKeys.Unlock()
}
