package steam

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/juliarose/steam-api-helpers/pkg/client"
	"github.com/juliarose/steam-api-helpers/pkg/records"
)

// tradeAssetFields are the per-trade fields holding asset lists that can be
// enriched with description metadata.
var tradeAssetFields = []string{"assets_received", "assets_given"}

// defaultMaxTrades is the page size used when TradeHistoryOptions.MaxTrades
// is zero.
const defaultMaxTrades = 10

// TradeHistoryOptions configures a GetTradeHistory call. Zero values are
// omitted from the request.
type TradeHistoryOptions struct {
	// MaxTrades is the page size. Defaults to 10.
	MaxTrades int

	// StartAfterTime and StartAfterTradeID are the pagination cursor.
	StartAfterTime    int64
	StartAfterTradeID string

	// NavigatingBack pages toward newer trades instead of older ones.
	NavigatingBack bool

	// IncludeFailed includes failed and rolled-back trades.
	IncludeFailed bool

	// IncludeTotal requests the total trade count.
	IncludeTotal bool

	// CombineDescriptions requests item descriptions and merges each one
	// onto the matching assets of every trade.
	CombineDescriptions bool
}

// TradeHistory is one page of a user's trade history.
type TradeHistory struct {
	// More indicates another page exists beyond this one.
	More bool

	// TotalTrades is the total trade count, when requested via
	// IncludeTotal.
	TotalTrades int64

	// Trades holds the trade records, newest first. When descriptions were
	// combined, every asset in assets_received and assets_given carries its
	// description fields.
	Trades []records.Record
}

// GetTradeHistory fetches one page of the authenticated key's trade history
// via IEconService/GetTradeHistory. With CombineDescriptions set, the
// response's description collection is normalized and joined onto each
// trade's assets (outer key appid, inner key classid).
func (a *API) GetTradeHistory(ctx context.Context, opts TradeHistoryOptions) (*TradeHistory, error) {
	maxTrades := opts.MaxTrades
	if maxTrades == 0 {
		maxTrades = defaultMaxTrades
	}
	if maxTrades < 0 {
		return nil, client.NewError(client.KindInvalidArgument, "max trades must be positive (got %d)", maxTrades)
	}

	query := url.Values{}
	query.Set("key", a.client.Key())
	query.Set("max_trades", strconv.Itoa(maxTrades))
	query.Set("language", a.config.Language)
	if opts.StartAfterTime != 0 {
		query.Set("start_after_time", strconv.FormatInt(opts.StartAfterTime, 10))
	}
	if opts.StartAfterTradeID != "" {
		query.Set("start_after_tradeid", opts.StartAfterTradeID)
	}
	if opts.NavigatingBack {
		query.Set("navigating_back", "1")
	}
	if opts.IncludeFailed {
		query.Set("include_failed", "1")
	}
	if opts.IncludeTotal {
		query.Set("include_total", "1")
	}
	if opts.CombineDescriptions {
		query.Set("get_descriptions", "1")
	}

	var envelope struct {
		Response *struct {
			More         bool             `json:"more"`
			TotalTrades  json.Number      `json:"total_trades"`
			Trades       []map[string]any `json:"trades"`
			Descriptions []map[string]any `json:"descriptions"`
		} `json:"response"`
	}
	req := client.Request{URL: a.apiURL("IEconService", "GetTradeHistory", 1), Query: query}
	if err := a.client.FetchJSON(ctx, req, &envelope); err != nil {
		return nil, err
	}

	if envelope.Response == nil {
		return nil, client.NewError(client.KindMalformedResponse, "trade history response has no response envelope")
	}

	trades := toRecords(envelope.Response.Trades)

	if opts.CombineDescriptions {
		descriptions := make([]records.Record, 0, len(envelope.Response.Descriptions))
		for _, desc := range toRecords(envelope.Response.Descriptions) {
			descriptions = append(descriptions, records.NormalizeArrayish(desc, descriptionArrayish...))
		}

		enriched := make([]records.Record, len(trades))
		for i, trade := range trades {
			enriched[i] = enrichTrade(trade, descriptions)
		}
		trades = enriched
	}

	history := &TradeHistory{
		More:   envelope.Response.More,
		Trades: trades,
	}
	if total, err := envelope.Response.TotalTrades.Int64(); err == nil {
		history.TotalTrades = total
	}

	return history, nil
}

// enrichTrade returns a copy of trade with its asset lists joined against
// the description collection.
func enrichTrade(trade records.Record, descriptions []records.Record) records.Record {
	out := trade.Clone()

	for _, field := range tradeAssetFields {
		assets, ok := out[field].([]any)
		if !ok {
			continue
		}
		out[field] = records.JoinDescriptions(anyRecords(assets), descriptions, "appid", "classid")
	}

	return out
}
