package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/leighmacdonald/steamid/v4/steamid"

	"github.com/juliarose/steam-api-helpers/pkg/client"
	"github.com/juliarose/steam-api-helpers/pkg/records"
)

// backpackArrayish are the per-item fields IEconItems encodes as sparse
// objects instead of lists.
var backpackArrayish = []string{"attributes", "equipped"}

// GetPlayerItems status codes, per the IEconItems result envelope.
const (
	backpackStatusOK             = 1
	backpackStatusInvalidSteamID = 8
	backpackStatusPrivate        = 15
	backpackStatusNoSuchUser     = 18
)

// GetBackpack fetches a user's full item listing for the given app via
// IEconItems/GetPlayerItems, normalizing each item's sparse fields.
func (a *API) GetBackpack(ctx context.Context, appID uint32, sid steamid.SteamID) ([]records.Record, error) {
	if appID == 0 {
		return nil, client.NewError(client.KindInvalidArgument, "appid is required")
	}
	if !sid.Valid() {
		return nil, client.NewError(client.KindInvalidArgument, "invalid steamid")
	}

	query := url.Values{}
	query.Set("key", a.client.Key())
	query.Set("steamid", sid.String())

	var envelope struct {
		Result map[string]any `json:"result"`
	}
	req := client.Request{
		URL:   a.apiURL(fmt.Sprintf("IEconItems_%d", appID), "GetPlayerItems", 1),
		Query: query,
	}
	if err := a.client.FetchJSON(ctx, req, &envelope); err != nil {
		return nil, err
	}

	if envelope.Result == nil {
		return nil, client.NewError(client.KindMalformedResponse, "backpack response has no result")
	}

	if err := backpackStatusError(envelope.Result["status"], sid); err != nil {
		return nil, err
	}

	items, ok := envelope.Result["items"].([]any)
	if !ok {
		return nil, client.NewError(client.KindMalformedResponse, "backpack response has no items")
	}

	out := make([]records.Record, 0, len(items))
	for _, item := range anyRecords(items) {
		out = append(out, records.NormalizeArrayish(item, backpackArrayish...))
	}

	return out, nil
}

// backpackStatusError maps the GetPlayerItems status code to an error, or
// nil for the success status.
func backpackStatusError(status any, sid steamid.SteamID) error {
	num, ok := status.(json.Number)
	if !ok {
		return client.NewError(client.KindMalformedResponse, "backpack response has no status")
	}

	code, err := num.Int64()
	if err != nil {
		return client.NewError(client.KindMalformedResponse, "backpack status %q is not an integer", num.String())
	}

	switch code {
	case backpackStatusOK:
		return nil
	case backpackStatusInvalidSteamID:
		return client.NewKeyError(client.KindInvalidArgument, sid.String(), "steamid rejected by platform")
	case backpackStatusPrivate:
		return client.NewKeyError(client.KindNotFound, sid.String(), "backpack is private")
	case backpackStatusNoSuchUser:
		return client.NewKeyError(client.KindNotFound, sid.String(), "no such user")
	default:
		return client.NewKeyError(client.KindMalformedResponse, sid.String(), "unexpected backpack status %d", code)
	}
}
