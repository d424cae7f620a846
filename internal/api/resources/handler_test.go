package resources

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"worldbuilding-app/database"
	"worldbuilding-app/internal/domain/worlds"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixture: user 1 owns series 1 and book 1, user 2 owns series 2.
type fixture struct {
	router *gin.Engine
	userID uint

	mySeries    worlds.Series
	myBook      worlds.Book
	otherSeries worlds.Series
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	f := &fixture{userID: 1}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", f.userID)
	})
	RegisterAll(r)
	f.router = r

	f.mySeries = worlds.Series{UserID: 1, Title: "The Shattered Crown"}
	require.NoError(t, db.Create(&f.mySeries).Error)
	f.myBook = worlds.Book{UserID: 1, Title: "Crownfall"}
	require.NoError(t, db.Create(&f.myBook).Error)
	f.otherSeries = worlds.Series{UserID: 2, Title: "Someone Else's Saga"}
	require.NoError(t, db.Create(&f.otherSeries).Error)

	return f
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateWithoutOwnerParamAllKinds(t *testing.T) {
	bodies := map[string]gin.H{
		"battles":    {"name": "Battle of X"},
		"characters": {"firstName": "Ilya"},
		"creatures":  {"name": "Marsh Wyrm"},
		"settings":   {"name": "The Sunken Court"},
		"transports": {"name": "Sky Barge"},
	}

	for plural, body := range bodies {
		t.Run(plural, func(t *testing.T) {
			f := newFixture(t)
			w := f.do(t, http.MethodPost, "/"+plural, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decode(t, w)
			assert.Equal(t, "At least one of seriesId or bookId query param must be passed.", resp["message"])
		})
	}
}

func TestCreateBattleUnderUnownedSeries(t *testing.T) {
	f := newFixture(t)

	path := fmt.Sprintf("/battles?seriesId=%d", f.otherSeries.ID)
	w := f.do(t, http.MethodPost, path, gin.H{"name": "Battle of X"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "A battle must be created belonging to one of your series or books.", resp["message"])
}

func TestCreateBattleValidationFailure(t *testing.T) {
	f := newFixture(t)

	path := fmt.Sprintf("/battles?seriesId=%d", f.mySeries.ID)
	w := f.do(t, http.MethodPost, path, gin.H{"description": "no name given"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "Validation failed.", resp["message"])

	issues, ok := resp["data"].([]any)
	require.True(t, ok)
	require.Len(t, issues, 1)
	issue := issues[0].(map[string]any)
	assert.Equal(t, "name", issue["field"])
}

func TestCreateBattle(t *testing.T) {
	f := newFixture(t)

	path := fmt.Sprintf("/battles?seriesId=%d", f.mySeries.ID)
	w := f.do(t, http.MethodPost, path, gin.H{"name": "Battle of X"})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "Battle created.", resp["message"])

	data := resp["data"].(map[string]any)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Battle of X", data["name"])
	assert.Nil(t, data["start"])
	assert.Nil(t, data["end"])
	assert.Nil(t, data["description"])
}

func TestReadAfterWriteRoundTrip(t *testing.T) {
	f := newFixture(t)

	create := gin.H{
		"name":        "Battle of the Ford",
		"start":       "312 AE",
		"end":         "313 AE",
		"description": "Two armies, one bridge.",
	}
	path := fmt.Sprintf("/battles?seriesId=%d", f.mySeries.ID)
	w := f.do(t, http.MethodPost, path, create)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)["data"].(map[string]any)

	getPath := fmt.Sprintf("/battles/%v?seriesId=%d", created["id"], f.mySeries.ID)
	w = f.do(t, http.MethodGet, getPath, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "Battle fetched.", resp["message"])
	assert.Equal(t, created, resp["data"].(map[string]any))
}

func TestGetBattleWrongSeriesIsForbidden(t *testing.T) {
	f := newFixture(t)

	path := fmt.Sprintf("/battles?seriesId=%d", f.mySeries.ID)
	w := f.do(t, http.MethodPost, path, gin.H{"name": "Battle of X"})
	require.Equal(t, http.StatusCreated, w.Code)

	// exists, but not reachable through the supplied owner
	w = f.do(t, http.MethodGet, fmt.Sprintf("/battles/1?seriesId=%d", f.otherSeries.ID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden account action.", decode(t, w)["message"])

	// same thing seen from the other account
	f.userID = 2
	w = f.do(t, http.MethodGet, fmt.Sprintf("/battles/1?seriesId=%d", f.mySeries.ID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetWithoutOwnerParamIsBadRequest(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/battles/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "At least one of seriesId or bookId query param must be passed.", decode(t, w)["message"])
}

func TestUpdateRequiresNonEmptyUpdatedData(t *testing.T) {
	f := newFixture(t)

	path := fmt.Sprintf("/battles?seriesId=%d", f.mySeries.ID)
	w := f.do(t, http.MethodPost, path, gin.H{"name": "Battle of X"})
	require.Equal(t, http.StatusCreated, w.Code)

	for name, body := range map[string]any{
		"no updatedData":    gin.H{},
		"empty updatedData": gin.H{"updatedData": gin.H{}},
	} {
		t.Run(name, func(t *testing.T) {
			w := f.do(t, http.MethodPatch, fmt.Sprintf("/battles/1?seriesId=%d", f.mySeries.ID), body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decode(t, w)
			assert.Equal(t, "Validation failed.", resp["message"])

			issues := resp["data"].([]any)
			require.Len(t, issues, 1)
			assert.Equal(t, "updatedData", issues[0].(map[string]any)["field"])
		})
	}
}

func TestUpdateMergesOverCurrentState(t *testing.T) {
	f := newFixture(t)

	path := fmt.Sprintf("/battles?seriesId=%d", f.mySeries.ID)
	w := f.do(t, http.MethodPost, path, gin.H{"name": "Battle of X", "description": "original"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.do(t, http.MethodPatch, fmt.Sprintf("/battles/1?seriesId=%d", f.mySeries.ID), gin.H{
		"updatedData": gin.H{"start": "500 AE"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "Battle updated.", resp["message"])
	data := resp["data"].(map[string]any)
	assert.Equal(t, "Battle of X", data["name"])
	assert.Equal(t, "original", data["description"])
	assert.Equal(t, "500 AE", data["start"])

	// persisted, not just echoed
	w = f.do(t, http.MethodGet, fmt.Sprintf("/battles/1?seriesId=%d", f.mySeries.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "500 AE", decode(t, w)["data"].(map[string]any)["start"])
}

func TestUpdateCannotReassignIdentity(t *testing.T) {
	f := newFixture(t)

	path := fmt.Sprintf("/battles?seriesId=%d", f.mySeries.ID)
	w := f.do(t, http.MethodPost, path, gin.H{"name": "Battle of X"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.do(t, http.MethodPatch, fmt.Sprintf("/battles/1?seriesId=%d", f.mySeries.ID), gin.H{
		"updatedData": gin.H{"id": 99, "name": "Renamed"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Renamed", data["name"])
}

func TestDeleteThenGet(t *testing.T) {
	f := newFixture(t)

	path := fmt.Sprintf("/battles?seriesId=%d", f.mySeries.ID)
	w := f.do(t, http.MethodPost, path, gin.H{"name": "Battle of X"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.do(t, http.MethodDelete, fmt.Sprintf("/battles/1?seriesId=%d", f.mySeries.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Battle deleted.", decode(t, w)["message"])

	w = f.do(t, http.MethodGet, fmt.Sprintf("/battles/1?seriesId=%d", f.mySeries.ID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListBattlesEmpty(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, fmt.Sprintf("/battles?seriesId=%d", f.mySeries.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "Battles by user id and series id fetched.", resp["message"])
	data, ok := resp["data"].([]any)
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestListBattlesByBook(t *testing.T) {
	f := newFixture(t)

	path := fmt.Sprintf("/battles?bookId=%d", f.myBook.ID)
	w := f.do(t, http.MethodPost, path, gin.H{"name": "Harbor Raid"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = f.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "Battles by user id and book id fetched.", resp["message"])
	data := resp["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Harbor Raid", data[0].(map[string]any)["name"])
}

func TestAccessFallsBackToBookAxis(t *testing.T) {
	f := newFixture(t)

	// created under the book only
	w := f.do(t, http.MethodPost, fmt.Sprintf("/battles?bookId=%d", f.myBook.ID), gin.H{"name": "Night March"})
	require.Equal(t, http.StatusCreated, w.Code)

	// both params supplied: the series axis misses, the book axis matches
	w = f.do(t, http.MethodGet, fmt.Sprintf("/battles/1?seriesId=%d&bookId=%d", f.mySeries.ID, f.myBook.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Night March", decode(t, w)["data"].(map[string]any)["name"])
}

func TestCharacterRequiredFieldAndWhitelist(t *testing.T) {
	f := newFixture(t)

	path := fmt.Sprintf("/characters?seriesId=%d", f.mySeries.ID)
	w := f.do(t, http.MethodPost, path, gin.H{"lastName": "Voss"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "Validation failed.", resp["message"])
	assert.Equal(t, "firstName", resp["data"].([]any)[0].(map[string]any)["field"])

	w = f.do(t, http.MethodPost, path, gin.H{"firstName": "Ilya", "lastName": "Voss", "age": 31})
	require.Equal(t, http.StatusCreated, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "Ilya", data["firstName"])
	assert.Equal(t, "Voss", data["lastName"])
	assert.Equal(t, float64(31), data["age"])
	// whitelist only: no relation objects, no timestamps
	assert.NotContains(t, data, "Series")
	assert.NotContains(t, data, "Books")
	assert.NotContains(t, data, "created_at")
}

func TestEveryKindCreateAndList(t *testing.T) {
	cases := []struct {
		plural  string
		body    gin.H
		display string
	}{
		{"creatures", gin.H{"name": "Marsh Wyrm", "habitat": "fenlands"}, "Creature"},
		{"settings", gin.H{"name": "The Sunken Court", "climate": "humid"}, "Setting"},
		{"transports", gin.H{"name": "Sky Barge", "capacity": 40}, "Transport"},
	}

	for _, tc := range cases {
		t.Run(tc.plural, func(t *testing.T) {
			f := newFixture(t)

			path := fmt.Sprintf("/%s?seriesId=%d", tc.plural, f.mySeries.ID)
			w := f.do(t, http.MethodPost, path, tc.body)
			require.Equal(t, http.StatusCreated, w.Code)
			resp := decode(t, w)
			assert.Equal(t, tc.display+" created.", resp["message"])

			w = f.do(t, http.MethodGet, path, nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Len(t, decode(t, w)["data"].([]any), 1)
		})
	}
}

func TestNonNumericOwnerParam(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/battles?seriesId=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
