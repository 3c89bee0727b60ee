package config

import (
	"io"
	"time"
)

// Config provides read access to runtime configuration values.
//
// Implementations must be safe for concurrent readers; values may change at
// runtime when the backing file is reloaded.
type Config interface {
	io.Closer

	GetInt(key string) int
	GetInt32(key string) int32
	GetInt64(key string) int64
	GetUint(key string) uint
	GetBool(key string) bool
	GetFloat64(key string) float64
	GetString(key string) string
	GetSecond(key string) time.Duration
	GetMinute(key string) time.Duration
	GetHour(key string) time.Duration
	GetDay(key string) time.Duration
	GetBinary(key string) []byte
	GetArray(key string) []string
}
