package postal

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/postal/model"
)

var postalCluster = cache.NewCluster("postal-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// realtimeCounters backs the realtime metrics endpoint
var realtimeCounters = cache.NewIntKeyspace[string](
	postalCluster,
	cache.KeyspaceConfig{
		KeyPattern: "metrics/:key",
	},
)

// cleanupTokens holds issued data-cleanup confirmation tokens
var cleanupTokens = cache.NewStructKeyspace[string, model.CleanupToken](
	postalCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "cleanup-token/:key",
		DefaultExpiry: cache.ExpireIn(5 * time.Minute),
	},
)
