package steam

import (
	"context"
	"net/url"
	"strconv"

	"github.com/juliarose/steam-api-helpers/pkg/batch"
	"github.com/juliarose/steam-api-helpers/pkg/client"
	"github.com/juliarose/steam-api-helpers/pkg/records"
)

// classInfoArrayish are the classinfo fields Steam encodes as sparse objects
// instead of lists.
var classInfoArrayish = []string{"descriptions", "actions", "tags", "fraudwarnings"}

// GetAssetClassInfo fetches the classinfo record for a single item class.
// instanceID may be empty. Returns a not-found error when the response lacks
// the requested class.
func (a *API) GetAssetClassInfo(ctx context.Context, appID uint32, classID, instanceID string) (records.Record, error) {
	if appID == 0 {
		return nil, client.NewError(client.KindInvalidArgument, "appid is required")
	}
	if classID == "" {
		return nil, client.NewError(client.KindInvalidArgument, "classid is required")
	}

	query := url.Values{}
	query.Set("classid0", classID)
	if instanceID != "" {
		query.Set("instanceid0", instanceID)
	}

	result, err := a.fetchClassInfos(ctx, appID, 1, query)
	if err != nil {
		return nil, err
	}

	// With an instance id the response may be keyed by classid_instanceid.
	if instanceID != "" {
		if info, ok := result[classID+"_"+instanceID]; ok {
			return info, nil
		}
	}
	if info, ok := result[classID]; ok {
		return info, nil
	}

	return nil, client.NewKeyError(client.KindNotFound, classID, "no classinfo for requested class")
}

// GetAssetClassInfos fetches classinfo records for many item classes at
// once. The requested ids are deduplicated, split into chunks of at most the
// configured (or per-call) chunk size, and fetched strictly in sequence with
// the configured delay between calls. The merged result maps each requested
// class id to its record.
//
// The batch is all-or-nothing: any failing call, and any requested id absent
// from the merged result, fails the whole operation.
func (a *API) GetAssetClassInfos(ctx context.Context, appID uint32, classIDs []string, opts *BatchOptions) (map[string]records.Record, error) {
	if appID == 0 {
		return nil, client.NewError(client.KindInvalidArgument, "appid is required")
	}

	ids := batch.Dedupe(classIDs)
	if len(ids) == 0 {
		return map[string]records.Record{}, nil
	}

	size, delay := a.batchParams(opts)
	chunks, err := batch.Chunk(ids, size)
	if err != nil {
		return nil, &client.APIError{Kind: client.KindInvalidArgument, Message: "invalid chunk size", Err: err}
	}

	a.logger.Debug().
		Int("classids", len(ids)).
		Int("chunks", len(chunks)).
		Dur("delay", delay).
		Msg("Fetching classinfo batch")

	tasks := make([]func(context.Context) (map[string]records.Record, error), len(chunks))
	for i, chunk := range chunks {
		chunk := chunk
		tasks[i] = func(ctx context.Context) (map[string]records.Record, error) {
			query := url.Values{}
			for j, id := range chunk {
				query.Set("classid"+strconv.Itoa(j), id)
			}
			return a.fetchClassInfos(ctx, appID, len(chunk), query)
		}
	}

	results, err := batch.RunSeries(ctx, tasks, delay)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]records.Record, len(ids))
	for _, result := range results {
		for id, info := range result {
			if _, ok := merged[id]; ok {
				continue
			}
			merged[id] = info
		}
	}

	for _, id := range ids {
		if _, ok := merged[id]; !ok {
			return nil, client.NewKeyError(client.KindNotFound, id, "no classinfo for requested class")
		}
	}

	return merged, nil
}

// fetchClassInfos performs one ISteamEconomy/GetAssetClassInfo call. The
// query must already carry the classidN (and optional instanceidN)
// parameters; count is the number of classes requested. The result envelope
// is keyed by class id, with a success flag alongside the class entries; the
// flag is validated and then stripped from the returned table.
func (a *API) fetchClassInfos(ctx context.Context, appID uint32, count int, query url.Values) (map[string]records.Record, error) {
	query.Set("key", a.client.Key())
	query.Set("appid", strconv.FormatUint(uint64(appID), 10))
	query.Set("language", a.config.Language)
	query.Set("class_count", strconv.Itoa(count))

	var envelope struct {
		Result map[string]any `json:"result"`
	}
	req := client.Request{URL: a.apiURL("ISteamEconomy", "GetAssetClassInfo", 1), Query: query}
	if err := a.client.FetchJSON(ctx, req, &envelope); err != nil {
		return nil, err
	}

	if envelope.Result == nil {
		return nil, client.NewError(client.KindMalformedResponse, "classinfo response has no result")
	}
	if success, ok := envelope.Result["success"].(bool); ok && !success {
		return nil, client.NewError(client.KindMalformedResponse, "classinfo response reported failure")
	}

	out := make(map[string]records.Record, len(envelope.Result))
	for id, v := range envelope.Result {
		info, ok := v.(map[string]any)
		if !ok {
			// Non-object siblings of the class entries (success, error).
			continue
		}
		out[id] = records.NormalizeArrayish(records.Record(info), classInfoArrayish...)
	}

	return out, nil
}
