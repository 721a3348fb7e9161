package steam

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/juliarose/steam-api-helpers/pkg/client"
	"github.com/juliarose/steam-api-helpers/pkg/records"
)

// ugcStatusNotFound is the platform status code for a UGC id that does not
// exist (k_EResultFileNotFound).
const ugcStatusNotFound = 9

// GetUGCFileDetails fetches the file details record for a piece of
// user-generated content. Returns a not-found error when the platform
// reports the ugc id as unknown.
func (a *API) GetUGCFileDetails(ctx context.Context, appID uint32, ugcID uint64) (records.Record, error) {
	if appID == 0 {
		return nil, client.NewError(client.KindInvalidArgument, "appid is required")
	}
	if ugcID == 0 {
		return nil, client.NewError(client.KindInvalidArgument, "ugcid is required")
	}

	key := strconv.FormatUint(ugcID, 10)

	query := url.Values{}
	query.Set("key", a.client.Key())
	query.Set("appid", strconv.FormatUint(uint64(appID), 10))
	query.Set("ugcid", key)

	var envelope struct {
		Data   map[string]any `json:"data"`
		Status *struct {
			Code json.Number `json:"code"`
		} `json:"status"`
	}
	req := client.Request{URL: a.apiURL("ISteamRemoteStorage", "GetUGCFileDetails", 1), Query: query}
	if err := a.client.FetchJSON(ctx, req, &envelope); err != nil {
		return nil, err
	}

	if envelope.Status != nil {
		if code, err := envelope.Status.Code.Int64(); err == nil && code == ugcStatusNotFound {
			return nil, client.NewKeyError(client.KindNotFound, key, "no such ugc file")
		}
	}

	if envelope.Data == nil {
		return nil, client.NewError(client.KindMalformedResponse, "ugc response has no data")
	}

	return records.Record(envelope.Data), nil
}
