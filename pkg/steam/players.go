package steam

import (
	"context"
	"net/url"
	"strings"

	"github.com/leighmacdonald/steamid/v4/steamid"

	"github.com/juliarose/steam-api-helpers/pkg/batch"
	"github.com/juliarose/steam-api-helpers/pkg/client"
	"github.com/juliarose/steam-api-helpers/pkg/records"
)

// GetPlayerSummaries fetches profile records for the given steamids. The ids
// are deduplicated and fetched in sequential chunks of 100 (the
// GetPlayerSummaries limit), concatenating the returned players. Profiles
// the platform omits (deleted accounts) are simply absent from the result.
func (a *API) GetPlayerSummaries(ctx context.Context, ids steamid.Collection) ([]records.Record, error) {
	for _, sid := range ids {
		if !sid.Valid() {
			return nil, client.NewKeyError(client.KindInvalidArgument, sid.String(), "invalid steamid")
		}
	}

	deduped := batch.Dedupe(ids.ToStringSlice())
	if len(deduped) == 0 {
		return nil, nil
	}

	chunks, err := batch.Chunk(deduped, playerSummariesChunkSize)
	if err != nil {
		return nil, &client.APIError{Kind: client.KindInvalidArgument, Message: "invalid chunk size", Err: err}
	}

	tasks := make([]func(context.Context) ([]records.Record, error), len(chunks))
	for i, chunk := range chunks {
		chunk := chunk
		tasks[i] = func(ctx context.Context) ([]records.Record, error) {
			return a.fetchPlayerSummaries(ctx, chunk)
		}
	}

	results, err := batch.RunSeries(ctx, tasks, a.config.RequestDelay)
	if err != nil {
		return nil, err
	}

	players := make([]records.Record, 0, len(deduped))
	for _, result := range results {
		players = append(players, result...)
	}

	return players, nil
}

// fetchPlayerSummaries performs one ISteamUser/GetPlayerSummaries call.
func (a *API) fetchPlayerSummaries(ctx context.Context, steamIDs []string) ([]records.Record, error) {
	query := url.Values{}
	query.Set("key", a.client.Key())
	query.Set("steamids", strings.Join(steamIDs, ","))

	var envelope struct {
		Response *struct {
			Players []map[string]any `json:"players"`
		} `json:"response"`
	}
	req := client.Request{URL: a.apiURL("ISteamUser", "GetPlayerSummaries", 2), Query: query}
	if err := a.client.FetchJSON(ctx, req, &envelope); err != nil {
		return nil, err
	}

	if envelope.Response == nil {
		return nil, client.NewError(client.KindMalformedResponse, "player summaries response has no response envelope")
	}

	return toRecords(envelope.Response.Players), nil
}
