package market

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/stockwise/core"
	"github.com/trezcool/stockwise/core/symbol"
)

var (
	// errors
	ErrEmptySymbol      = errors.New("please enter a stock code or company name")
	ErrNotFound         = errors.New("no quote found for this symbol")
	ErrQuoteUnavailable = errors.New("quote service unavailable")
	ErrMalformedQuote   = errors.New("quote service returned a malformed quote")
)

// IntradayPoint is one sample of the intraday (time-share) series.
type IntradayPoint struct {
	Time     string  `json:"time"`
	Price    float64 `json:"price"`
	AvgPrice float64 `json:"avgPrice"`
	Volume   int64   `json:"volume"`
}

type Quote struct {
	Symbol        string          `json:"symbol"`
	Price         float64         `json:"price"`
	Change        float64         `json:"change"`
	ChangePercent float64         `json:"changePercent"`
	Open          float64         `json:"open"`
	High          float64         `json:"high"`
	Low           float64         `json:"low"`
	PreviousClose float64         `json:"previousClose"`
	Volume        int64           `json:"volume"`
	FetchedAt     time.Time       `json:"fetched_at"`
	Intraday      []IntradayPoint `json:"timeShareData,omitempty"`
}

type (
	// Fetcher maps a resolved symbol to a live quote.
	Fetcher interface {
		FetchQuote(ctx context.Context, code string) (Quote, error)
	}

	// Cache keeps recent quotes. A miss is (Quote{}, false, nil).
	Cache interface {
		GetQuote(ctx context.Context, code string) (Quote, bool, error)
		SetQuote(ctx context.Context, code string, q Quote, ttl time.Duration) error
	}

	Lookup struct {
		symbol.Resolution
		Quote  Quote `json:"quote"`
		Cached bool  `json:"cached"`
	}

	Service struct {
		table   *symbol.Table
		fetcher Fetcher
		cache   Cache
		ttl     time.Duration
		timeout time.Duration
		logger  core.Logger
	}
)

// NewService wires the resolver to the quote fetcher. cache may be nil.
func NewService(table *symbol.Table, fetcher Fetcher, cache Cache, conf core.QuotesConfig, logger core.Logger) *Service {
	return &Service{
		table:   table,
		fetcher: fetcher,
		cache:   cache,
		ttl:     conf.CacheTTL,
		timeout: conf.Timeout,
		logger:  logger,
	}
}

// Quote resolves free-text input and fetches the quote of the resulting code.
func (svc *Service) Quote(ctx context.Context, input string) (Lookup, error) {
	res := svc.table.Resolve(input)
	if res.Code == "" {
		return Lookup{}, ErrEmptySymbol
	}
	lookup := Lookup{Resolution: res}

	if svc.cache != nil {
		q, ok, err := svc.cache.GetQuote(ctx, res.Code)
		if err != nil {
			svc.logger.Warn(fmt.Sprintf("reading quote cache: %v", err), err)
		} else if ok {
			lookup.Quote = q
			lookup.Cached = true
			return lookup, nil
		}
	}

	if svc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, svc.timeout)
		defer cancel()
	}
	q, err := svc.fetcher.FetchQuote(ctx, res.Code)
	if err != nil {
		return Lookup{}, errors.Wrapf(err, "fetching quote for %s", res.Code)
	}
	lookup.Quote = q

	if svc.cache != nil && svc.ttl > 0 {
		if err = svc.cache.SetQuote(ctx, res.Code, q, svc.ttl); err != nil {
			svc.logger.Warn(fmt.Sprintf("writing quote cache: %v", err), err)
		}
	}
	return lookup, nil
}
