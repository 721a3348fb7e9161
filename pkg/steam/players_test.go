package steam

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/leighmacdonald/steamid/v4/steamid"

	"github.com/juliarose/steam-api-helpers/internal/testutil"
	"github.com/juliarose/steam-api-helpers/pkg/client"
)

const playerSummariesPath = "/ISteamUser/GetPlayerSummaries/v2/"

// testSteamIDs returns n sequential valid steamids.
func testSteamIDs(t *testing.T, n int) steamid.Collection {
	t.Helper()

	const base = int64(76561197960265729)
	ids := make(steamid.Collection, n)
	for i := 0; i < n; i++ {
		sid := steamid.New(strconv.FormatInt(base+int64(i), 10))
		if !sid.Valid() {
			t.Fatalf("test steamid %d is invalid", i)
		}
		ids[i] = sid
	}
	return ids
}

// echoPlayerSummariesHandler answers with one player record per requested
// steamid.
func echoPlayerSummariesHandler(w http.ResponseWriter, r *http.Request) {
	requested := strings.Split(r.URL.Query().Get("steamids"), ",")

	players := make([]string, 0, len(requested))
	for _, id := range requested {
		players = append(players, fmt.Sprintf(`{"steamid": %q, "personaname": "player-%s"}`, id, id))
	}

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"response": {"players": [%s]}}`, strings.Join(players, ", "))
}

func TestGetPlayerSummaries(t *testing.T) {
	mock := testutil.NewMockSteamAPI()
	defer mock.Close()
	mock.SetHandler(playerSummariesPath, echoPlayerSummariesHandler)

	api := newTestAPI(t, mock.URL())

	ids := testSteamIDs(t, 3)
	// Duplicate an id; it must be requested only once.
	ids = append(ids, ids[0])

	players, err := api.GetPlayerSummaries(context.Background(), ids)
	if err != nil {
		t.Fatalf("GetPlayerSummaries() error = %v", err)
	}

	if len(players) != 3 {
		t.Errorf("got %d players, want 3", len(players))
	}
	if mock.RequestCount() != 1 {
		t.Errorf("made %d requests, want 1", mock.RequestCount())
	}

	query := mock.Requests()[0].Query()
	if got := len(strings.Split(query.Get("steamids"), ",")); got != 3 {
		t.Errorf("requested %d steamids, want 3 (deduplicated)", got)
	}
}

func TestGetPlayerSummaries_ChunksAtAPILimit(t *testing.T) {
	mock := testutil.NewMockSteamAPI()
	defer mock.Close()
	mock.SetHandler(playerSummariesPath, echoPlayerSummariesHandler)

	api := newTestAPI(t, mock.URL())

	players, err := api.GetPlayerSummaries(context.Background(), testSteamIDs(t, 150))
	if err != nil {
		t.Fatalf("GetPlayerSummaries() error = %v", err)
	}

	if len(players) != 150 {
		t.Errorf("got %d players, want 150", len(players))
	}

	requests := mock.Requests()
	if len(requests) != 2 {
		t.Fatalf("made %d requests, want 2", len(requests))
	}
	if got := len(strings.Split(requests[0].Query().Get("steamids"), ",")); got != 100 {
		t.Errorf("first request carried %d steamids, want 100", got)
	}
	if got := len(strings.Split(requests[1].Query().Get("steamids"), ",")); got != 50 {
		t.Errorf("second request carried %d steamids, want 50", got)
	}
}

func TestGetPlayerSummaries_EmptyInput(t *testing.T) {
	mock := testutil.NewMockSteamAPI()
	defer mock.Close()

	api := newTestAPI(t, mock.URL())

	players, err := api.GetPlayerSummaries(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetPlayerSummaries() error = %v", err)
	}
	if players != nil {
		t.Errorf("got %v, want nil", players)
	}
	if mock.RequestCount() != 0 {
		t.Errorf("made %d requests, want 0", mock.RequestCount())
	}
}

func TestGetPlayerSummaries_InvalidSteamID(t *testing.T) {
	api := newTestAPI(t, "http://unused.invalid")

	_, err := api.GetPlayerSummaries(context.Background(), steamid.Collection{steamid.SteamID{}})
	if client.KindOf(err) != client.KindInvalidArgument {
		t.Errorf("error kind = %v, want %v", client.KindOf(err), client.KindInvalidArgument)
	}
}

func TestGetPlayerSummaries_MissingEnvelope(t *testing.T) {
	mock := testutil.NewMockSteamAPI()
	defer mock.Close()
	mock.SetResponse(playerSummariesPath, testutil.NewJSONResponse(`{}`))

	api := newTestAPI(t, mock.URL())

	_, err := api.GetPlayerSummaries(context.Background(), testSteamIDs(t, 1))
	if client.KindOf(err) != client.KindMalformedResponse {
		t.Errorf("error kind = %v, want %v", client.KindOf(err), client.KindMalformedResponse)
	}
}
