package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/repositories"
)

func newDashboardFixture() (DashboardUsecase, *repositories.ScheduleStore) {
	scheduleUC, store := newScheduleFixture()
	rooms := repositories.NewEntityStore(
		func(r *entities.Room) string { return r.ID },
		repositories.SeedRooms(repositories.DefaultStaffRooms),
		"",
	)
	return &dashboardUsecase{
		schedule: scheduleUC,
		rooms:    rooms,
		clock:    func() time.Time { return time.Date(2025, 6, 16, 9, 30, 0, 0, time.UTC) },
	}, store
}

func TestGetDashboard(t *testing.T) {
	uc, store := newDashboardFixture()
	require.NoError(t, store.Book(monday, "CSE-301", "09:00-10:00", entities.BookingDetail{BatchName: "CS2024A"}))

	data, err := uc.GetDashboard(monday)
	require.NoError(t, err)

	assert.Equal(t, monday, data.Date)
	assert.Equal(t, "09:00-10:00", data.CurrentSlot)
	assert.Equal(t, 30, data.TotalRooms)
	assert.Equal(t, data.TotalRooms, data.OccupiedRooms+data.FreeRooms)

	// Monday 09:00 occupies CS101 in CSE-101, the three staff rooms and
	// the ad-hoc booking above.
	assert.Equal(t, 5, data.OccupiedRooms)

	require.Len(t, data.Floors, 5)
	for i, floor := range data.Floors {
		assert.Equal(t, 6, floor.Total)
		if i > 0 {
			assert.Less(t, data.Floors[i-1].Floor, floor.Floor)
		}
	}
}

func TestGetDashboardDefaultsToToday(t *testing.T) {
	uc, _ := newDashboardFixture()

	data, err := uc.GetDashboard("")
	require.NoError(t, err)
	assert.Equal(t, monday, data.Date)
}

func TestGetDashboardInvalidDate(t *testing.T) {
	uc, _ := newDashboardFixture()

	_, err := uc.GetDashboard("garbage")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
