package repositories

import (
	"errors"
	"log"
	"sync"

	"github.com/TejaswaniRai/MindMesh/app/entities"
)

// ErrSlotTaken is returned by Book when the cell already holds an explicit
// booking.
var ErrSlotTaken = errors.New("slot already booked")

// ScheduleRepository is the data surface the schedule usecases work against:
// the read-only recurring timetable, the staff-room set and the mutable
// ad-hoc booking ledger.
type ScheduleRepository interface {
	// EntryFor returns a copy of the ad-hoc ledger for date. Unseen dates
	// yield an empty schedule without materializing anything in the store.
	EntryFor(date string) entities.DailySchedule
	// ClassesFor returns the recurring classes for a weekday (1=Monday ..
	// 5=Friday). Any other weekday has no recurring classes.
	ClassesFor(weekday int) map[string]map[string]entities.BookingDetail
	IsStaffRoom(room string) bool
	StaffRooms() []string
	// Commit writes detail unconditionally, overwriting any prior value for
	// the cell. A nil detail stores an explicit "not booked" marker.
	Commit(date, room, slot string, detail *entities.BookingDetail)
	// Book verifies the cell holds no explicit booking and commits, as one
	// critical section. Returns ErrSlotTaken when the cell is occupied.
	Book(date, room, slot string, detail entities.BookingDetail) error
}

// ScheduleStore keeps the weekly timetable and staff-room set as immutable
// configuration and the ad-hoc ledger as the only mutable state. The ledger
// snapshot is written back to disk after every commit when a snapshot path
// is configured.
type ScheduleStore struct {
	mu        sync.Mutex
	timetable entities.WeeklyTimetable
	staff     map[string]struct{}
	dates     map[string]entities.DailySchedule
	path      string
}

func NewScheduleStore(timetable entities.WeeklyTimetable, staffRooms []string, snapshotPath string) *ScheduleStore {
	s := &ScheduleStore{
		timetable: timetable,
		staff:     make(map[string]struct{}, len(staffRooms)),
		dates:     map[string]entities.DailySchedule{},
		path:      snapshotPath,
	}
	for _, room := range staffRooms {
		s.staff[room] = struct{}{}
	}
	if snapshotPath != "" {
		var dates map[string]entities.DailySchedule
		if err := loadJSON(snapshotPath, &dates); err == nil && dates != nil {
			s.dates = dates
		}
	}
	return s
}

func (s *ScheduleStore) EntryFor(date string) entities.DailySchedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := entities.DailySchedule{}
	for room, slots := range s.dates[date] {
		copied := make(entities.SlotMap, len(slots))
		for slot, detail := range slots {
			copied[slot] = detail
		}
		entry[room] = copied
	}
	return entry
}

func (s *ScheduleStore) ClassesFor(weekday int) map[string]map[string]entities.BookingDetail {
	if weekday < 1 || weekday > 5 {
		return nil
	}
	return s.timetable[weekday]
}

func (s *ScheduleStore) IsStaffRoom(room string) bool {
	_, ok := s.staff[room]
	return ok
}

func (s *ScheduleStore) StaffRooms() []string {
	rooms := make([]string, 0, len(s.staff))
	for room := range s.staff {
		rooms = append(rooms, room)
	}
	return rooms
}

func (s *ScheduleStore) Commit(date, room, slot string, detail *entities.BookingDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitLocked(date, room, slot, detail)
}

func (s *ScheduleStore) Book(date, room, slot string, detail entities.BookingDetail) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.dates[date][room][slot]; ok && existing != nil {
		return ErrSlotTaken
	}
	s.commitLocked(date, room, slot, &detail)
	return nil
}

func (s *ScheduleStore) commitLocked(date, room, slot string, detail *entities.BookingDetail) {
	if s.dates[date] == nil {
		s.dates[date] = entities.DailySchedule{}
	}
	if s.dates[date][room] == nil {
		s.dates[date][room] = entities.SlotMap{}
	}
	s.dates[date][room][slot] = detail

	if s.path != "" {
		if err := saveJSON(s.path, s.dates); err != nil {
			log.Printf("failed to save schedule snapshot: %v", err)
		}
	}
}
