package market

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/stockwise/core"
	"github.com/trezcool/stockwise/core/symbol"
	"github.com/trezcool/stockwise/services/logger"
)

type stubFetcher struct {
	codes []string
	err   error
}

func (f *stubFetcher) FetchQuote(ctx context.Context, code string) (Quote, error) {
	f.codes = append(f.codes, code)
	if _, ok := ctx.Deadline(); !ok {
		return Quote{}, errors.New("missing deadline")
	}
	if f.err != nil {
		return Quote{}, f.err
	}
	return Quote{Symbol: code, Price: 10}, nil
}

type stubCache struct {
	quotes map[string]Quote
	getErr error
	setErr error
	ttl    time.Duration
}

func (c *stubCache) GetQuote(_ context.Context, code string) (Quote, bool, error) {
	if c.getErr != nil {
		return Quote{}, false, c.getErr
	}
	q, ok := c.quotes[code]
	return q, ok, nil
}

func (c *stubCache) SetQuote(_ context.Context, code string, q Quote, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.quotes[code] = q
	c.ttl = ttl
	return nil
}

var testConf = core.QuotesConfig{Timeout: time.Second, CacheTTL: time.Minute}

func TestService_Quote(t *testing.T) {
	ctx := context.Background()
	table, _ := symbol.Default()
	fetcher := new(stubFetcher)
	cache := &stubCache{quotes: make(map[string]Quote)}
	svc := NewService(table, fetcher, cache, testConf, logsvc.NewDiscardLogger())

	_, err := svc.Quote(ctx, "   ")
	assert.Equal(t, ErrEmptySymbol, err)
	assert.Empty(t, fetcher.codes)

	lookup, err := svc.Quote(ctx, "苹果")
	if assert.NoError(t, err) {
		assert.Equal(t, "AAPL", lookup.Code)
		assert.True(t, lookup.Resolved)
		assert.False(t, lookup.Cached)
		assert.Equal(t, 10.0, lookup.Quote.Price)
	}
	assert.Equal(t, time.Minute, cache.ttl)

	lookup, err = svc.Quote(ctx, "Apple")
	if assert.NoError(t, err) {
		assert.True(t, lookup.Cached)
	}
	assert.Equal(t, []string{"AAPL"}, fetcher.codes)

	// unresolved input passes through
	lookup, err = svc.Quote(ctx, "zzzz999")
	if assert.NoError(t, err) {
		assert.Equal(t, "ZZZZ999", lookup.Code)
		assert.False(t, lookup.Resolved)
	}
}

func TestService_Quote_errors(t *testing.T) {
	ctx := context.Background()
	table, _ := symbol.Default()

	fetcher := &stubFetcher{err: ErrQuoteUnavailable}
	svc := NewService(table, fetcher, nil, testConf, logsvc.NewDiscardLogger())
	_, err := svc.Quote(ctx, "AAPL")
	assert.Equal(t, ErrQuoteUnavailable, errors.Cause(err))

	// cache failures are not fatal
	fetcher = new(stubFetcher)
	cache := &stubCache{quotes: make(map[string]Quote), getErr: errors.New("down"), setErr: errors.New("down")}
	svc = NewService(table, fetcher, cache, testConf, logsvc.NewDiscardLogger())
	lookup, err := svc.Quote(ctx, "AAPL")
	if assert.NoError(t, err) {
		assert.False(t, lookup.Cached)
	}
	assert.Len(t, fetcher.codes, 1)
}
