package handlers_fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mergington-activities-api/config"
	"mergington-activities-api/internal/api"
	"mergington-activities-api/internal/repository/memory"
	"mergington-activities-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestApp builds the app against a freshly seeded roster, mirroring
// the reset-before-each-test discipline the API contract assumes.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	log := zap.NewNop().Sugar()
	repo := memory.New(context.Background(), log, &config.Config{})
	require.NoError(t, repo.OnStart(context.Background()))

	uc := usecase.New(log, context.Background(), repo, time.Second)

	app := fiber.New()
	app.Use(recover.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/static/index.html", fiber.StatusTemporaryRedirect)
	})
	RegisterHandlers(app, NewHandler(log, uc))
	return app
}

func getActivities(t *testing.T, app *fiber.App) map[string]api.ActivityView {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var activities map[string]api.ActivityView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&activities))
	return activities
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var body T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRootRedirectsToStaticIndex(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	require.Equal(t, "/static/index.html", resp.Header.Get("Location"))
}

func TestGetActivities(t *testing.T) {
	app := newTestApp(t)
	activities := getActivities(t, app)

	expected := []string{
		"Soccer Team", "Basketball Club", "Art Club", "Drama Society",
		"Math Olympiad", "Science Club", "Chess Club", "Programming Class", "Gym Class",
	}
	require.Len(t, activities, len(expected))
	for _, name := range expected {
		require.Contains(t, activities, name)
	}

	soccer := activities["Soccer Team"]
	require.Equal(t, 18, soccer.MaxParticipants)
	require.Equal(t, []string{"lucas@mergington.edu", "mia@mergington.edu"}, soccer.Participants)
}

func TestGetActivitiesKeepsRosterOrder(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	require.NoError(t, err)
	require.Equal(t, json.Delim('{'), tok)

	first, err := dec.Token()
	require.NoError(t, err)
	require.Equal(t, "Soccer Team", first)
}

func TestSignupSuccess(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/activities/Soccer%20Team/signup?email=newstudent@mergington.edu", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[api.MessageResponse](t, resp)
	require.Equal(t, "Signed up newstudent@mergington.edu for Soccer Team", body.Message)

	activities := getActivities(t, app)
	participants := activities["Soccer Team"].Participants
	require.Len(t, participants, 3)
	require.Equal(t, "newstudent@mergington.edu", participants[2])
}

func TestSignupUnknownActivity(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/activities/Nonexistent%20Activity/signup?email=student@mergington.edu", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody[api.ErrorResponse](t, resp)
	require.Equal(t, "Activity not found", body.Detail)
}

func TestSignupDuplicate(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/activities/Soccer%20Team/signup?email=lucas@mergington.edu", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[api.ErrorResponse](t, resp)
	require.Contains(t, body.Detail, "already signed up")

	activities := getActivities(t, app)
	require.Len(t, activities["Soccer Team"].Participants, 2)
}

func TestSignupMissingEmail(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/activities/Soccer%20Team/signup", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignupURLEncodedParams(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/activities/Programming%20Class/signup?email=test%40mergington.edu", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	activities := getActivities(t, app)
	require.Contains(t, activities["Programming Class"].Participants, "test@mergington.edu")
}

func TestSignupPlusSignInEmail(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/activities/Science%20Club/signup?email=student%2Btest@mergington.edu", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	activities := getActivities(t, app)
	require.Contains(t, activities["Science Club"].Participants, "student+test@mergington.edu")
}

func TestUnregisterSuccess(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/activities/Soccer%20Team/unregister?email=lucas@mergington.edu", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[api.MessageResponse](t, resp)
	require.Equal(t, "Unregistered lucas@mergington.edu from Soccer Team", body.Message)

	activities := getActivities(t, app)
	require.Equal(t, []string{"mia@mergington.edu"}, activities["Soccer Team"].Participants)
}

func TestUnregisterUnknownActivity(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/activities/Nonexistent%20Activity/unregister?email=student@mergington.edu", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody[api.ErrorResponse](t, resp)
	require.Equal(t, "Activity not found", body.Detail)
}

func TestUnregisterNotSignedUp(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/activities/Soccer%20Team/unregister?email=notsignedup@mergington.edu", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[api.ErrorResponse](t, resp)
	require.Contains(t, body.Detail, "not signed up")

	activities := getActivities(t, app)
	require.Len(t, activities["Soccer Team"].Participants, 2)
}

func TestUnregisterURLEncodedParams(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/activities/Chess%20Club/unregister?email=michael%40mergington.edu", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	activities := getActivities(t, app)
	require.NotContains(t, activities["Chess Club"].Participants, "michael@mergington.edu")
}

func TestSignupAndUnregisterFlow(t *testing.T) {
	app := newTestApp(t)

	before := getActivities(t, app)["Drama Society"].Participants

	req := httptest.NewRequest(http.MethodPost, "/activities/Drama%20Society/signup?email=flowtest@mergington.edu", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	during := getActivities(t, app)["Drama Society"].Participants
	require.Len(t, during, len(before)+1)
	require.Contains(t, during, "flowtest@mergington.edu")

	req = httptest.NewRequest(http.MethodDelete, "/activities/Drama%20Society/unregister?email=flowtest@mergington.edu", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	after := getActivities(t, app)["Drama Society"].Participants
	require.Equal(t, before, after)
}

func TestSignupMultipleActivities(t *testing.T) {
	app := newTestApp(t)

	targets := []string{"Art%20Club", "Science%20Club", "Chess%20Club"}
	for _, target := range targets {
		req := httptest.NewRequest(http.MethodPost, "/activities/"+target+"/signup?email=multi@mergington.edu", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	activities := getActivities(t, app)
	for _, name := range []string{"Art Club", "Science Club", "Chess Club"} {
		require.Contains(t, activities[name].Participants, "multi@mergington.edu")
	}
}
