package ports

import "time"

type CachePort interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	DeleteByPrefix(prefix string) error
}
