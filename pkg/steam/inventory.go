package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/leighmacdonald/steamid/v4/steamid"

	"github.com/juliarose/steam-api-helpers/pkg/client"
	"github.com/juliarose/steam-api-helpers/pkg/records"
)

// descriptionArrayish are the description fields the community inventory
// endpoint encodes as sparse objects instead of lists.
var descriptionArrayish = []string{"descriptions", "actions", "tags", "market_actions"}

// inventoryPageSize is the item count requested from the community inventory
// endpoint.
const inventoryPageSize = 5000

// GetInventory fetches a user's community inventory for the given app and
// context and returns one denormalized record per asset: each asset is
// merged with its matching description (looked up by appid, then classid).
// Assets with no matching description are returned as-is.
func (a *API) GetInventory(ctx context.Context, sid steamid.SteamID, appID uint32, contextID uint64) ([]records.Record, error) {
	if !sid.Valid() {
		return nil, client.NewError(client.KindInvalidArgument, "invalid steamid")
	}
	if appID == 0 {
		return nil, client.NewError(client.KindInvalidArgument, "appid is required")
	}

	query := url.Values{}
	query.Set("l", a.config.Language)
	query.Set("count", strconv.Itoa(inventoryPageSize))

	var envelope struct {
		Assets              []map[string]any `json:"assets"`
		Descriptions        []map[string]any `json:"descriptions"`
		TotalInventoryCount json.Number      `json:"total_inventory_count"`
	}
	req := client.Request{
		URL:   fmt.Sprintf("%s/inventory/%s/%d/%d", a.config.CommunityBase, sid.String(), appID, contextID),
		Query: query,
	}
	if err := a.client.FetchJSON(ctx, req, &envelope); err != nil {
		return nil, err
	}

	if envelope.Assets == nil {
		// An empty inventory legitimately has no assets array.
		if envelope.TotalInventoryCount.String() == "0" {
			return nil, nil
		}
		return nil, client.NewError(client.KindMalformedResponse, "inventory response has no assets")
	}
	if envelope.Descriptions == nil {
		return nil, client.NewError(client.KindMalformedResponse, "inventory response has no descriptions")
	}

	descriptions := make([]records.Record, 0, len(envelope.Descriptions))
	for _, desc := range toRecords(envelope.Descriptions) {
		descriptions = append(descriptions, records.NormalizeArrayish(desc, descriptionArrayish...))
	}

	return records.JoinDescriptions(toRecords(envelope.Assets), descriptions, "appid", "classid"), nil
}
