package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorKeyIsStableAndCollapsesFloatNoise(t *testing.T) {
	a := VectorKey([]float64{1.0000001, 2.0, 3.0})
	b := VectorKey([]float64{1.0000002, 2.0, 3.0})
	c := VectorKey([]float64{1.1, 2.0, 3.0})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestMemoryCacheMissBeforeSet(t *testing.T) {
	c := NewMemoryCache(0)
	_, err := c.Get(context.Background(), []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(0)
	vec := []float64{1, 2, 3}
	entry := Entry{Score: -7.5, ScoredAt: time.Now()}

	require.NoError(t, c.Set(context.Background(), vec, entry))
	got, err := c.Get(context.Background(), vec)
	require.NoError(t, err)
	assert.Equal(t, entry.Score, got.Score)
}

func TestMemoryCacheEntryExpires(t *testing.T) {
	c := NewMemoryCache(time.Millisecond)
	vec := []float64{1, 2, 3}
	require.NoError(t, c.Set(context.Background(), vec, Entry{Score: 1}))

	time.Sleep(5 * time.Millisecond)
	_, err := c.Get(context.Background(), vec)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisCacheGetHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := &redisCache{client: db, prefix: "test:", ttl: time.Minute}

	vec := []float64{1, 2, 3}
	entry := Entry{Score: -3.2}
	data, _ := json.Marshal(entry)
	mock.ExpectGet(c.buildKey(vec)).SetVal(string(data))

	got, err := c.Get(context.Background(), vec)
	require.NoError(t, err)
	assert.Equal(t, entry.Score, got.Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheGetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := &redisCache{client: db, prefix: "test:", ttl: time.Minute}

	vec := []float64{4, 5, 6}
	mock.ExpectGet(c.buildKey(vec)).RedisNil()

	_, err := c.Get(context.Background(), vec)
	assert.ErrorIs(t, err, ErrMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheSet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := &redisCache{client: db, prefix: "test:", ttl: time.Minute}

	vec := []float64{7, 8, 9}
	entry := Entry{Score: 1.5}
	data, _ := json.Marshal(entry)
	mock.ExpectSet(c.buildKey(vec), data, time.Minute).SetVal("OK")

	err := c.Set(context.Background(), vec, entry)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
