package cachesvc

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/trezcool/stockwise/core"
	"github.com/trezcool/stockwise/core/market"
)

const quoteKeyPrefix = "quote:"

type redisCache struct {
	client redis.UniversalClient
}

var _ market.Cache = (*redisCache)(nil) // interface compliance check

func NewRedisClient(conf core.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     conf.Address,
		Password: conf.Password,
		DB:       conf.DB,
	})
}

// NewQuoteCache stores quotes as JSON under "quote:<CODE>".
func NewQuoteCache(client redis.UniversalClient) market.Cache {
	return &redisCache{client: client}
}

func quoteKey(code string) string {
	return quoteKeyPrefix + strings.ToUpper(code)
}

func (c redisCache) GetQuote(ctx context.Context, code string) (market.Quote, bool, error) {
	data, err := c.client.Get(ctx, quoteKey(code)).Bytes()
	if err == redis.Nil {
		return market.Quote{}, false, nil
	}
	if err != nil {
		return market.Quote{}, false, errors.Wrap(err, "getting cached quote")
	}

	var q market.Quote
	if err = json.Unmarshal(data, &q); err != nil {
		return market.Quote{}, false, errors.Wrap(err, "decoding cached quote")
	}
	return q, true, nil
}

func (c redisCache) SetQuote(ctx context.Context, code string, q market.Quote, ttl time.Duration) error {
	data, err := json.Marshal(q)
	if err != nil {
		return errors.Wrap(err, "encoding quote")
	}
	if err = c.client.Set(ctx, quoteKey(code), data, ttl).Err(); err != nil {
		return errors.Wrap(err, "caching quote")
	}
	return nil
}
