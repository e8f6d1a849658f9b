package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/repositories"
	"github.com/TejaswaniRai/MindMesh/app/usecases"
)

func newDashboardHandler() *DashboardHandler {
	store := repositories.NewScheduleStore(repositories.LoadTimetable(""), repositories.DefaultStaffRooms, "")
	rooms := repositories.NewEntityStore(
		func(r *entities.Room) string { return r.ID },
		repositories.SeedRooms(repositories.DefaultStaffRooms),
		"",
	)
	return NewDashboardHandler(usecases.NewDashboardUsecase(usecases.NewScheduleUsecase(store), rooms))
}

func TestGetDashboard(t *testing.T) {
	e := newEcho()
	h := newDashboardHandler()

	ctx, rec := newRequest(e, http.MethodGet, "/api/dashboard?date="+nextWeekday())
	require.NoError(t, h.GetDashboard(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string                 `json:"message"`
		Data    entities.DashboardData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Message)
	assert.Equal(t, 30, resp.Data.TotalRooms)
	assert.NotEmpty(t, resp.Data.CurrentSlot)
	assert.Len(t, resp.Data.Floors, 5)
}

func TestGetDashboardInvalidDate(t *testing.T) {
	e := newEcho()
	h := newDashboardHandler()

	ctx, rec := newRequest(e, http.MethodGet, "/api/dashboard?date=junk")
	require.NoError(t, h.GetDashboard(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
