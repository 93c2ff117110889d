package main

import (
	"testing"

	"github.com/angelmondragon/salesdash-backend/internal/reports"
	"github.com/angelmondragon/salesdash-backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSummaryCacheDefaultsToMemory(t *testing.T) {
	cache, err := newSummaryCache(config.ReportsConfig{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &reports.MemoryCache{}, cache)
}

func TestNewSummaryCacheRedisRequiresClient(t *testing.T) {
	_, err := newSummaryCache(config.ReportsConfig{CacheBackend: config.CacheBackendRedis}, nil)
	assert.Error(t, err)
}
