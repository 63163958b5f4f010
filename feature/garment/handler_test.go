package garment

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"garment-geek/feature/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T, src Source) (*fiber.App, *session.Store) {
	t.Helper()
	app := fiber.New()
	sessions := session.NewStore(time.Minute)
	feature := NewFeature(newTestService(src, time.Minute), sessions)
	require.NoError(t, feature.Load(app))
	return app, sessions
}

func TestLoader(t *testing.T) {
	feature := NewFeature(newTestService(&countingSource{}, 0), session.NewStore(0))

	assert.Equal(t, "garment", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.False(t, NewFeature(nil, nil).IsEnabled())
}

func TestHandleBrands(t *testing.T) {
	app, _ := setupTestApp(t, &countingSource{})

	resp, err := app.Test(httptest.NewRequest("GET", "/garments/brands", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"Acme", "Zeta"}, body["brands"])
}

func TestHandlePriceRange(t *testing.T) {
	app, _ := setupTestApp(t, &countingSource{})

	resp, err := app.Test(httptest.NewRequest("GET", "/garments/price-range", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body PriceRange
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, PriceRange{Min: 0, Max: 45.5}, body)
}

func TestHandleOptions(t *testing.T) {
	app, _ := setupTestApp(t, &countingSource{})

	resp, err := app.Test(httptest.NewRequest("GET", "/garments/options", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body Options
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Types)
	assert.Equal(t, Choice{Value: "T_SHIRT", Label: "T-shirt"}, body.Types[0])
	assert.Equal(t, []string{"Acme", "Zeta"}, body.Brands)
}

func TestHandleGet(t *testing.T) {
	app, _ := setupTestApp(t, &countingSource{})

	resp, err := app.Test(httptest.NewRequest("GET", "/garments/1", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Cosy Hoodie", body["name"])
	assert.Equal(t, float64(1), body["product_code"])
	assert.Contains(t, body["information"], "Pocket type: Kangaroo")

	resp, err = app.Test(httptest.NewRequest("GET", "/garments/404", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/garments/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleSearch(t *testing.T) {
	app, sessions := setupTestApp(t, &countingSource{})

	req := httptest.NewRequest("POST", "/garments/search", strings.NewReader(`{"type":"t-shirt","sizes":["S"],"brands":["Acme"]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body SearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.SessionID)
	assert.Equal(t, body.SessionID, resp.Header.Get(session.Header))
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Results, 1)
	assert.Equal(t, "Geek Tee", body.Results[0].Name)

	sess, err := sessions.Get(body.SessionID)
	require.NoError(t, err)
	assert.Len(t, sess.Results, 1)

	// Searching again in the same session replaces the results.
	req = httptest.NewRequest("POST", "/garments/search", strings.NewReader(`{"type":"hoodie","sizes":["XS"]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(session.Header, body.SessionID)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var empty SearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&empty))
	assert.Equal(t, body.SessionID, empty.SessionID)
	assert.Equal(t, 0, empty.Count)
	assert.NotNil(t, empty.Results)
}

func TestHandleSearch_Invalid(t *testing.T) {
	app, _ := setupTestApp(t, &countingSource{})

	req := httptest.NewRequest("POST", "/garments/search", strings.NewReader(`{"sizes":["S"]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var body ValidationError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "type", body.Field)
}

func TestHandleReload(t *testing.T) {
	app, _ := setupTestApp(t, &countingSource{})

	resp, err := app.Test(httptest.NewRequest("POST", "/garments/reload", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "reloaded", body["status"])
	assert.Equal(t, float64(3), body["items"])
}

func TestHandleBrands_LoadFailure(t *testing.T) {
	app, _ := setupTestApp(t, &countingSource{err: errors.New("unavailable")})

	resp, err := app.Test(httptest.NewRequest("GET", "/garments/brands", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}
