// Package steam exposes the Steam Web API endpoint surface: asset-class
// metadata, player summaries, backpacks, community inventories, UGC file
// details, and trade history. Each operation reshapes the raw response into
// denormalized records using the batch and records packages.
//
// Example usage:
//
//	c, err := client.New(client.DefaultConfig(apiKey))
//	if err != nil {
//		return err
//	}
//	api, err := steam.New(steam.DefaultConfig(c))
//	if err != nil {
//		return err
//	}
//	infos, err := api.GetAssetClassInfos(ctx, 440, classIDs, nil)
//
// Every operation is stateless: lookup tables and batch results are built
// per call and discarded on return. Failures abort the whole operation;
// there is no partial-success return path.
package steam
