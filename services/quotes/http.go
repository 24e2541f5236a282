package quotesvc

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/trezcool/stockwise/core"
	"github.com/trezcool/stockwise/core/market"
)

const fetchPath = "/fetch-stock-data"

var NowFunc = time.Now // mockable

// payload mirrors the quote service response; pointers tell missing fields from zero values.
type payload struct {
	Symbol        *string                `json:"symbol"`
	Price         *float64               `json:"price"`
	Change        *float64               `json:"change"`
	ChangePercent float64                `json:"changePercent"`
	Open          float64                `json:"open"`
	High          float64                `json:"high"`
	Low           float64                `json:"low"`
	PreviousClose float64                `json:"previousClose"`
	Volume        int64                  `json:"volume"`
	FetchedAt     time.Time              `json:"fetched_at"`
	Intraday      []market.IntradayPoint `json:"timeShareData"`
}

type httpFetcher struct {
	baseURL string
	apiKey  string
	client  *rest.Client
}

var _ market.Fetcher = (*httpFetcher)(nil) // interface compliance check

// NewHTTPFetcher queries GET {baseURL}/fetch-stock-data?symbol=CODE.
func NewHTTPFetcher(conf core.QuotesConfig) market.Fetcher {
	return &httpFetcher{
		baseURL: strings.TrimRight(conf.BaseURL, "/"),
		apiKey:  conf.APIKey,
		client:  &rest.Client{HTTPClient: &http.Client{Timeout: conf.Timeout}},
	}
}

func (f httpFetcher) FetchQuote(ctx context.Context, code string) (market.Quote, error) {
	req := rest.Request{
		Method:      rest.Get,
		BaseURL:     f.baseURL + fetchPath,
		Headers:     map[string]string{"Accept": "application/json"},
		QueryParams: map[string]string{"symbol": code},
	}
	if f.apiKey != "" {
		req.Headers["apikey"] = f.apiKey
		req.Headers["Authorization"] = "Bearer " + f.apiKey
	}

	res, err := f.client.SendWithContext(ctx, req)
	if err != nil {
		return market.Quote{}, errors.Wrap(market.ErrQuoteUnavailable, err.Error())
	}
	switch {
	case res.StatusCode == http.StatusNotFound:
		return market.Quote{}, market.ErrNotFound
	case res.StatusCode < 200 || res.StatusCode >= 300:
		return market.Quote{}, errors.Wrapf(market.ErrQuoteUnavailable, "status %d", res.StatusCode)
	}

	var p payload
	if err = json.Unmarshal([]byte(res.Body), &p); err != nil {
		return market.Quote{}, errors.Wrap(market.ErrMalformedQuote, err.Error())
	}
	if p.Symbol == nil || *p.Symbol == "" || p.Price == nil || p.Change == nil {
		return market.Quote{}, market.ErrMalformedQuote
	}

	q := market.Quote{
		Symbol:        *p.Symbol,
		Price:         *p.Price,
		Change:        *p.Change,
		ChangePercent: p.ChangePercent,
		Open:          p.Open,
		High:          p.High,
		Low:           p.Low,
		PreviousClose: p.PreviousClose,
		Volume:        p.Volume,
		FetchedAt:     p.FetchedAt.UTC(),
		Intraday:      p.Intraday,
	}
	if p.FetchedAt.IsZero() {
		q.FetchedAt = NowFunc().UTC()
	}
	return q, nil
}
