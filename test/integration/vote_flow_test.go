package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibetheforce/talkvote/internal/adapters/generator/gemini"
	handler "github.com/vibetheforce/talkvote/internal/adapters/handler/http"
	"github.com/vibetheforce/talkvote/internal/adapters/repository/sqlite"
	"github.com/vibetheforce/talkvote/internal/core/services"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "votes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Initialize(db))

	voteService := services.NewVoteService(sqlite.NewVoteRepository(db))
	summaryService := services.NewSummaryService(
		voteService,
		gemini.NewClient(gemini.Config{}), // unconfigured: summaries degrade to unavailable
		services.SummaryCacheConfig{},
	)

	h := handler.NewHandler(
		handler.NewVoteHandler(voteService),
		handler.NewResultsHandler(voteService),
		handler.NewSummaryHandler(summaryService, 10),
		handler.NewAdminHandler(voteService, ""),
	)

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return server
}

func submitVote(t *testing.T, server *httptest.Server, session string, rating int, comment string) *http.Response {
	t.Helper()

	payload, err := json.Marshal(map[string]any{"rating": rating, "comment": comment})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/votes", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: handler.SessionCookieName, Value: session})

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func getResults(t *testing.T, server *httptest.Server) map[string]any {
	t.Helper()

	resp, err := http.Get(server.URL + "/api/results")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestVoteResultsFlow(t *testing.T) {
	server := setupTestServer(t)

	// [1,1,3,5,5,5] with comments on the 5-star votes.
	for i, rating := range []int{1, 1, 3, 5, 5, 5} {
		comment := ""
		if rating == 5 {
			comment = "amazing"
		}
		resp := submitVote(t, server, sessionName(i), rating, comment)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	body := getResults(t, server)
	assert.Equal(t, float64(6), body["total_votes"])
	assert.Equal(t, 3.33, body["average_rating"])
	assert.Equal(t, float64(3), body["total_comments"])

	votes := body["votes"].(map[string]any)
	assert.Equal(t, float64(2), votes["1"])
	assert.Equal(t, float64(0), votes["2"])
	assert.Equal(t, float64(1), votes["3"])
	assert.Equal(t, float64(0), votes["4"])
	assert.Equal(t, float64(3), votes["5"])
}

func TestDuplicateVoteRejected(t *testing.T) {
	server := setupTestServer(t)

	resp := submitVote(t, server, "dup-session", 4, "")
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = submitVote(t, server, "dup-session", 2, "trying again")
	defer resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	body := getResults(t, server)
	assert.Equal(t, float64(1), body["total_votes"])
	assert.Equal(t, float64(0), body["total_comments"], "the rejected vote's comment must not be stored")
}

func TestResetAllowsRevote(t *testing.T) {
	server := setupTestServer(t)

	resp := submitVote(t, server, "session-1", 5, "before reset")
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	payload, _ := json.Marshal(map[string]any{"confirm": true})
	reset, err := http.Post(server.URL+"/api/admin/reset", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	reset.Body.Close()
	require.Equal(t, http.StatusOK, reset.StatusCode)

	body := getResults(t, server)
	assert.Equal(t, float64(0), body["total_votes"])
	assert.Equal(t, float64(0), body["total_comments"])
	assert.Equal(t, float64(0), body["average_rating"])

	resp = submitVote(t, server, "session-1", 3, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestSummaryDegradesWithoutGenerator(t *testing.T) {
	server := setupTestServer(t)

	// Below the minimum sample the status is insufficient_data.
	resp, err := http.Get(server.URL + "/api/summary")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "insufficient_data", body["status"])

	for i := 0; i < 10; i++ {
		r := submitVote(t, server, sessionName(i), 4, "")
		r.Body.Close()
	}

	// Enough votes, but no credential: the summary degrades instead of failing.
	resp2, err := http.Get(server.URL + "/api/summary")
	require.NoError(t, err)
	defer resp2.Body.Close()

	var body2 map[string]any
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&body2))
	assert.Equal(t, "unavailable", body2["status"])
}

func sessionName(i int) string {
	return "session-" + string(rune('a'+i))
}
