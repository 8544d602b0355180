package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/educenter-api/pkg/config"
)

func TestAddr(t *testing.T) {
	assert.Equal(t, "redis.internal:6380", Addr(config.RedisConfig{Host: "redis.internal", Port: 6380}))
}
