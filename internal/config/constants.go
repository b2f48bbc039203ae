// internal/config/constants.go
package config

import "time"

const (
	AppName    = "lexiscope"
	AppVersion = "0.3.0"
)

// Storage drivers.
const (
	StorageSQL    = "sql"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultDatabaseDriver = "sqlite"
	DefaultDatabaseURL    = "file:lexiscope.db?cache=shared"
	DefaultStorageDriver  = StorageSQL
	DefaultRedisPrefix    = "lexiscope"
	DefaultAuthEnabled    = false
	DefaultAccessTokenTTL = 30 * 24 * time.Hour
)
