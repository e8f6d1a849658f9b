package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/repositories"
)

// 2025-06-16 is a Monday.
const (
	monday   = "2025-06-16"
	tuesday  = "2025-06-17"
	saturday = "2025-06-21"
)

func newScheduleFixture() (*scheduleUsecase, *repositories.ScheduleStore) {
	store := repositories.NewScheduleStore(
		repositories.LoadTimetable(""),
		repositories.DefaultStaffRooms,
		"",
	)
	uc := &scheduleUsecase{
		store: store,
		clock: func() time.Time { return time.Date(2025, 6, 16, 10, 30, 0, 0, time.UTC) },
	}
	return uc, store
}

func TestToday(t *testing.T) {
	uc, _ := newScheduleFixture()
	assert.Equal(t, monday, uc.Today())
}

func TestEffectiveScheduleMergesRecurringClasses(t *testing.T) {
	uc, _ := newScheduleFixture()

	schedule, err := uc.EffectiveSchedule(monday)
	require.NoError(t, err)

	class := schedule["CSE-101"]["09:00-10:00"]
	require.NotNil(t, class)
	assert.Equal(t, "CS2024A", class.BatchName)
	assert.Equal(t, "CS101", class.CourseName)
}

func TestEffectiveScheduleLedgerWinsOverRecurring(t *testing.T) {
	uc, store := newScheduleFixture()

	// An explicit cancellation of Monday's 09:00 class in CSE-101.
	store.Commit(monday, "CSE-101", "09:00-10:00", nil)

	schedule, err := uc.EffectiveSchedule(monday)
	require.NoError(t, err)

	detail, explicit := schedule["CSE-101"]["09:00-10:00"]
	assert.True(t, explicit, "cancelled cell must stay present")
	assert.Nil(t, detail, "cancellation must not be replaced by the recurring class")

	// Other recurring cells are untouched.
	assert.NotNil(t, schedule["CSE-101"]["10:00-11:00"])
}

func TestEffectiveScheduleStaffRoomsAlwaysOccupied(t *testing.T) {
	uc, _ := newScheduleFixture()

	schedule, err := uc.EffectiveSchedule(tuesday)
	require.NoError(t, err)

	for _, room := range repositories.DefaultStaffRooms {
		for _, slot := range entities.TimeSlots {
			detail := schedule[room][slot]
			require.NotNil(t, detail, "%s %s", room, slot)
			assert.NotEmpty(t, detail.BatchName)
		}
	}
}

func TestEffectiveScheduleStaffFillKeepsRecurringClass(t *testing.T) {
	uc, _ := newScheduleFixture()

	// Monday's timetable schedules MATH101 in CSE-103; the generic staff
	// descriptor must not replace it.
	schedule, err := uc.EffectiveSchedule(monday)
	require.NoError(t, err)

	class := schedule["CSE-103"]["14:00-15:00"]
	require.NotNil(t, class)
	assert.Equal(t, "MATH101", class.CourseName)
	assert.Equal(t, "Staff Room", schedule["CSE-103"]["09:00-10:00"].CourseName)
}

func TestEffectiveScheduleWeekendHasNoRecurringOrStaff(t *testing.T) {
	uc, store := newScheduleFixture()
	require.NoError(t, store.Book(saturday, "CSE-101", "09:00-10:00", entities.BookingDetail{BatchName: "CS2024A"}))

	schedule, err := uc.EffectiveSchedule(saturday)
	require.NoError(t, err)

	assert.Len(t, schedule, 1)
	assert.NotNil(t, schedule["CSE-101"]["09:00-10:00"])
	assert.Empty(t, schedule["CSE-103"])
}

func TestEffectiveScheduleIsReadOnly(t *testing.T) {
	uc, store := newScheduleFixture()

	_, err := uc.EffectiveSchedule(monday)
	require.NoError(t, err)

	// Merging recurring and staff entries must not write them into the
	// ad-hoc ledger.
	assert.Empty(t, store.EntryFor(monday))
}

func TestEffectiveScheduleInvalidDate(t *testing.T) {
	uc, _ := newScheduleFixture()

	_, err := uc.EffectiveSchedule("16-06-2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestHasRecurringConflict(t *testing.T) {
	uc, _ := newScheduleFixture()

	assert.True(t, uc.HasRecurringConflict(monday, "CSE-101", "09:00-10:00"))
	assert.False(t, uc.HasRecurringConflict(monday, "CSE-101", "11:00-12:00"))
	assert.False(t, uc.HasRecurringConflict(saturday, "CSE-101", "09:00-10:00"))
	assert.False(t, uc.HasRecurringConflict("garbage", "CSE-101", "09:00-10:00"))
}

func TestBookSuccess(t *testing.T) {
	uc, store := newScheduleFixture()

	data, err := uc.Book(entities.BookingRequest{
		RoomNumber:  "CSE-101",
		TimeSlot:    "11:00-12:00",
		BatchName:   "CS2024A",
		Date:        monday,
		TeacherName: "Dr. Kumar",
		CourseName:  "CS101",
	})
	require.NoError(t, err)

	require.NotNil(t, data["11:00-12:00"])
	assert.Equal(t, "CS2024A", data["11:00-12:00"].BatchName)
	assert.Equal(t, "Dr. Kumar", data["11:00-12:00"].TeacherName)
	assert.Equal(t, "CS2024A", store.EntryFor(monday)["CSE-101"]["11:00-12:00"].BatchName)
}

func TestBookTodayIsAllowed(t *testing.T) {
	uc, _ := newScheduleFixture()

	// The clock reads 10:30 on the booking date; same-day bookings pass
	// the past-date check regardless of time of day.
	_, err := uc.Book(entities.BookingRequest{
		RoomNumber: "CSE-301",
		TimeSlot:   "09:00-10:00",
		BatchName:  "CS2024A",
		Date:       monday,
	})
	assert.NoError(t, err)
}

func TestBookDuplicateSlot(t *testing.T) {
	uc, _ := newScheduleFixture()

	req := entities.BookingRequest{
		RoomNumber: "CSE-101",
		TimeSlot:   "11:00-12:00",
		BatchName:  "CS2024A",
		Date:       tuesday,
	}
	_, err := uc.Book(req)
	require.NoError(t, err)

	req.BatchName = "CS2024B"
	_, err = uc.Book(req)
	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestBookValidationOrder(t *testing.T) {
	uc, _ := newScheduleFixture()

	tests := []struct {
		name string
		req  entities.BookingRequest
		want *UseCaseError
	}{
		{
			"missing fields beat invalid date",
			entities.BookingRequest{RoomNumber: "CSE-101", TimeSlot: "11:00-12:00", Date: "garbage"},
			ErrMissingFields,
		},
		{
			"invalid date beats invalid slot",
			entities.BookingRequest{RoomNumber: "CSE-101", TimeSlot: "13:00-14:00", BatchName: "X", Date: "garbage"},
			ErrInvalidDate,
		},
		{
			"invalid slot beats past date",
			entities.BookingRequest{RoomNumber: "CSE-101", TimeSlot: "13:00-14:00", BatchName: "X", Date: "2025-06-13"},
			ErrInvalidTimeSlot,
		},
		{
			"past date",
			entities.BookingRequest{RoomNumber: "CSE-101", TimeSlot: "11:00-12:00", BatchName: "X", Date: "2025-06-13"},
			ErrPastOrWeekend,
		},
		{
			"weekend",
			entities.BookingRequest{RoomNumber: "CSE-101", TimeSlot: "11:00-12:00", BatchName: "X", Date: saturday},
			ErrPastOrWeekend,
		},
		{
			"staff room",
			entities.BookingRequest{RoomNumber: "CSE-104", TimeSlot: "09:00-10:00", BatchName: "X", Date: tuesday},
			ErrStaffRoom,
		},
		{
			"recurring class",
			entities.BookingRequest{RoomNumber: "CSE-101", TimeSlot: "11:00-12:00", BatchName: "X", Date: "2025-06-24"},
			ErrRecurringClass,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Book(tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBookAfterCancellation(t *testing.T) {
	uc, store := newScheduleFixture()

	req := entities.BookingRequest{
		RoomNumber: "CSE-301",
		TimeSlot:   "14:00-15:00",
		BatchName:  "CS2024A",
		Date:       tuesday,
	}
	_, err := uc.Book(req)
	require.NoError(t, err)

	// Cancelling frees the cell for a new booking.
	store.Commit(tuesday, "CSE-301", "14:00-15:00", nil)

	req.BatchName = "CS2024B"
	_, err = uc.Book(req)
	require.NoError(t, err)
	assert.Equal(t, "CS2024B", store.EntryFor(tuesday)["CSE-301"]["14:00-15:00"].BatchName)
}
