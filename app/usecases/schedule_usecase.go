package usecases

import (
	"time"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/repositories"
)

const dateLayout = "2006-01-02"

// staffReserved is the synthetic descriptor staff rooms report for every
// slot. It never enters the ledger and cannot be edited.
var staffReserved = entities.BookingDetail{
	BatchName:  "Teachers Department CSE-AI",
	CourseName: "Staff Room",
}

type ScheduleUsecase interface {
	// EffectiveSchedule merges the recurring timetable with the ad-hoc
	// ledger for one date. Explicit ledger values, booked or an explicit
	// null, win over recurring entries.
	EffectiveSchedule(date string) (entities.DailySchedule, error)
	HasRecurringConflict(date, room, slot string) bool
	// Book validates and commits an ad-hoc booking, returning the room's
	// ledger slot map after the commit.
	Book(req entities.BookingRequest) (entities.SlotMap, error)
	Today() string
}

type scheduleUsecase struct {
	store repositories.ScheduleRepository
	clock func() time.Time
}

func NewScheduleUsecase(store repositories.ScheduleRepository) ScheduleUsecase {
	return &scheduleUsecase{store: store, clock: time.Now}
}

func (u *scheduleUsecase) Today() string {
	return u.clock().Format(dateLayout)
}

func (u *scheduleUsecase) EffectiveSchedule(date string) (entities.DailySchedule, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	merged := u.store.EntryFor(date)
	if isWeekend(day) {
		// Recurring classes never run on weekends; the raw ledger entry is
		// the whole schedule.
		return merged, nil
	}

	for room, slots := range u.store.ClassesFor(int(day.Weekday())) {
		for slot, class := range slots {
			mergeAbsent(merged, room, slot, class)
		}
	}

	// Staff rooms are occupied for every slot unless the ledger explicitly
	// says otherwise.
	for _, room := range u.store.StaffRooms() {
		for _, slot := range entities.TimeSlots {
			mergeAbsent(merged, room, slot, staffReserved)
		}
	}

	return merged, nil
}

// mergeAbsent inserts detail only when the cell has no explicit ledger
// value. An existing key, even one holding nil, always wins.
func mergeAbsent(merged entities.DailySchedule, room, slot string, detail entities.BookingDetail) {
	if _, explicit := merged[room][slot]; explicit {
		return
	}
	if merged[room] == nil {
		merged[room] = entities.SlotMap{}
	}
	d := detail
	merged[room][slot] = &d
}

func (u *scheduleUsecase) HasRecurringConflict(date, room, slot string) bool {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	return u.hasRecurringConflict(day, room, slot)
}

func (u *scheduleUsecase) hasRecurringConflict(day time.Time, room, slot string) bool {
	if isWeekend(day) {
		return false
	}
	_, ok := u.store.ClassesFor(int(day.Weekday()))[room][slot]
	return ok
}

func (u *scheduleUsecase) Book(req entities.BookingRequest) (entities.SlotMap, error) {
	if req.RoomNumber == "" || req.TimeSlot == "" || req.BatchName == "" || req.Date == "" {
		return nil, ErrMissingFields
	}
	day, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !entities.IsValidSlot(req.TimeSlot) {
		return nil, ErrInvalidTimeSlot
	}
	if day.Before(truncateToDate(u.clock())) || isWeekend(day) {
		return nil, ErrPastOrWeekend
	}
	if u.store.IsStaffRoom(req.RoomNumber) {
		return nil, ErrStaffRoom
	}
	if u.hasRecurringConflict(day, req.RoomNumber, req.TimeSlot) {
		return nil, ErrRecurringClass
	}

	detail := entities.BookingDetail{
		BatchName:   req.BatchName,
		TeacherName: req.TeacherName,
		CourseName:  req.CourseName,
	}
	if err := u.store.Book(req.Date, req.RoomNumber, req.TimeSlot, detail); err != nil {
		return nil, ErrAlreadyBooked
	}

	return u.store.EntryFor(req.Date)[req.RoomNumber], nil
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
