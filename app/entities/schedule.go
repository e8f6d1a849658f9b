package entities

import (
	"strconv"
	"time"
)

// TimeSlots is the fixed catalog of bookable slots, in chronological order.
// There is no 13:00-14:00 slot; that hour is the department lunch break.
var TimeSlots = []string{
	"09:00-10:00",
	"10:00-11:00",
	"11:00-12:00",
	"12:00-13:00",
	"14:00-15:00",
	"15:00-16:00",
	"16:00-17:00",
}

// SlotIndex returns the catalog position of slot, or -1 when slot is not a
// catalog member. Position order doubles as chronological order.
func SlotIndex(slot string) int {
	for i, s := range TimeSlots {
		if s == slot {
			return i
		}
	}
	return -1
}

func IsValidSlot(slot string) bool {
	return SlotIndex(slot) >= 0
}

// CurrentSlot maps wall-clock time to the slot whose window contains it
// (start inclusive, end exclusive). Times falling in a gap between windows
// resolve to the nearest earlier slot; times before the first window resolve
// to the first slot, times past the last window to the last slot.
func CurrentSlot(now time.Time) string {
	minutes := now.Hour()*60 + now.Minute()
	current := TimeSlots[0]
	for _, slot := range TimeSlots {
		if minutes < slotStartMinutes(slot) {
			break
		}
		current = slot
	}
	return current
}

// slotStartMinutes parses the "HH:MM" prefix of a catalog slot.
func slotStartMinutes(slot string) int {
	h, _ := strconv.Atoi(slot[0:2])
	m, _ := strconv.Atoi(slot[3:5])
	return h*60 + m
}

// BookingDetail describes who occupies a room for one slot. Stored values
// are replaced wholesale on update, never patched field by field.
type BookingDetail struct {
	BatchName   string `json:"batchName"`
	TeacherName string `json:"teacherName,omitempty"`
	CourseName  string `json:"courseName,omitempty"`
}

// SlotMap holds one room's bookings for one day. A nil entry is an explicit
// "not booked" marker and is distinct from an absent key, which defers to
// the recurring timetable.
type SlotMap map[string]*BookingDetail

// DailySchedule maps room number to its slot bookings for one date.
type DailySchedule map[string]SlotMap

// WeeklyTimetable holds the recurring classes keyed by weekday (1=Monday ..
// 5=Friday), then room number, then time slot.
type WeeklyTimetable map[int]map[string]map[string]BookingDetail

// BookingRequest is the body of POST /api/schedule.
type BookingRequest struct {
	RoomNumber  string `json:"roomNumber" validate:"required"`
	TimeSlot    string `json:"timeSlot" validate:"required"`
	BatchName   string `json:"batchName" validate:"required"`
	Date        string `json:"date" validate:"required"`
	TeacherName string `json:"teacherName"`
	CourseName  string `json:"courseName"`
}
