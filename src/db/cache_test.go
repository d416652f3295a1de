package db

import "testing"

func TestAnalyticsCacheKey(t *testing.T) {
	key := AnalyticsCacheKey(7, 2024, 3)
	if key != "analytics:7:2024:3" {
		t.Errorf("unexpected cache key %q", key)
	}
}

func TestAnalyticsCacheRoundTrip(t *testing.T) {
	InitCache()

	key := AnalyticsCacheKey(1, 2024, 6)
	SetAnalyticsCache(1, key, "payload")
	Cache.Wait()

	got, found := GetAnalyticsCache(key)
	if !found {
		t.Fatal("expected cached value after set")
	}
	if got != "payload" {
		t.Errorf("expected payload, got %v", got)
	}
}

func TestClearAnalyticsCachesForUser(t *testing.T) {
	InitCache()

	keyA := AnalyticsCacheKey(1, 2024, 1)
	keyB := AnalyticsCacheKey(1, 2024, 2)
	keyOther := AnalyticsCacheKey(2, 2024, 1)
	SetAnalyticsCache(1, keyA, "a")
	SetAnalyticsCache(1, keyB, "b")
	SetAnalyticsCache(2, keyOther, "c")
	Cache.Wait()

	ClearAnalyticsCachesForUser(1)
	Cache.Wait()

	if _, found := GetAnalyticsCache(keyA); found {
		t.Error("expected user 1 entries cleared")
	}
	if _, found := GetAnalyticsCache(keyB); found {
		t.Error("expected user 1 entries cleared")
	}
	if _, found := GetAnalyticsCache(keyOther); !found {
		t.Error("expected user 2 entry untouched")
	}
}
