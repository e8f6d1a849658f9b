package repositories

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/TejaswaniRai/MindMesh/app/entities"
)

// DefaultStaffRooms are permanently excluded from booking.
var DefaultStaffRooms = []string{"CSE-103", "CSE-104", "CSE-203"}

// LoadTimetable reads the recurring weekly timetable from an optional JSON
// override file. A missing or malformed file falls back to the built-in
// department timetable.
func LoadTimetable(path string) entities.WeeklyTimetable {
	if path == "" {
		return defaultTimetable()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultTimetable()
	}
	timetable, err := NormalizeTimetable(data)
	if err != nil {
		log.Printf("timetable override %s is malformed, using defaults: %v", path, err)
		return defaultTimetable()
	}
	return timetable
}

// NormalizeTimetable coerces a raw JSON timetable into the canonical shape.
// It accepts the field-naming variants seen in exported timetables
// (batch_name, teacher_name, TeacherName, course, Course), rebuilds slot
// keys from start_time/end_time when the key itself is not a catalog
// member, skips weekdays outside Monday..Friday and drops slots that still
// cannot be resolved.
func NormalizeTimetable(data []byte) (entities.WeeklyTimetable, error) {
	var raw map[string]map[string]map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("empty timetable")
	}

	timetable := entities.WeeklyTimetable{}
	for dayKey, rooms := range raw {
		day, err := strconv.Atoi(dayKey)
		if err != nil || day < 1 || day > 5 {
			continue
		}
		timetable[day] = map[string]map[string]entities.BookingDetail{}
		for room, slots := range rooms {
			timetable[day][room] = map[string]entities.BookingDetail{}
			for slot, booking := range slots {
				if !entities.IsValidSlot(slot) {
					slot = derivedSlot(booking)
				}
				if !entities.IsValidSlot(slot) {
					continue
				}
				timetable[day][room][slot] = coerceBooking(booking)
			}
		}
	}
	return timetable, nil
}

// derivedSlot rebuilds the slot key from start_time/end_time fields, the
// shape exports keyed by an opaque id use.
func derivedSlot(raw map[string]any) string {
	start := firstString(raw, "start_time", "startTime")
	end := firstString(raw, "end_time", "endTime")
	if start == "" || end == "" {
		return ""
	}
	return start + "-" + end
}

func coerceBooking(raw map[string]any) entities.BookingDetail {
	return entities.BookingDetail{
		BatchName:   firstString(raw, "batchName", "batch_name"),
		TeacherName: firstString(raw, "teacherName", "teacher_name", "TeacherName"),
		CourseName:  firstString(raw, "courseName", "course", "Course"),
	}
}

func firstString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := raw[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

// defaultTimetable is the standard department timetable: recurring classes
// by weekday (1=Monday .. 5=Friday) that make rooms unavailable for ad-hoc
// booking.
func defaultTimetable() entities.WeeklyTimetable {
	return entities.WeeklyTimetable{
		1: {
			"CSE-101": {
				"09:00-10:00": {BatchName: "CS2024A", CourseName: "CS101"},
				"10:00-11:00": {BatchName: "CS2024B", CourseName: "CS201"},
			},
			"CSE-102": {
				"11:00-12:00": {BatchName: "DS2024A", CourseName: "DS201"},
			},
			"CSE-103": {
				"14:00-15:00": {BatchName: "MATH2024A", CourseName: "MATH101"},
			},
			"CSE-104": {
				"15:00-16:00": {BatchName: "WEB2024A", CourseName: "WEB101"},
			},
			"CSE-201": {
				"16:00-17:00": {BatchName: "SE2024A", CourseName: "SE101"},
			},
		},
		2: {
			"CSE-101": {
				"11:00-12:00": {BatchName: "CS2024C", CourseName: "CS301"},
			},
			"CSE-102": {
				"09:00-10:00": {BatchName: "MATH2024A", CourseName: "STAT201"},
			},
			"CSE-201": {
				"14:00-15:00": {BatchName: "AI2024A", CourseName: "AI101"},
				"15:00-16:00": {BatchName: "AI2024A", CourseName: "ML201"},
			},
			"CSE-202": {
				"10:00-11:00": {BatchName: "WEB2024B", CourseName: "WEB201"},
			},
		},
		3: {
			"CSE-103": {
				"09:00-10:00": {BatchName: "DS2024B", CourseName: "DS101"},
				"10:00-11:00": {BatchName: "DS2024B", CourseName: "DS201"},
			},
			"CSE-104": {
				"14:00-15:00": {BatchName: "SE2024A", CourseName: "SE201"},
			},
			"CSE-203": {
				"15:00-16:00": {BatchName: "CSEC2024A", CourseName: "CSEC201"},
			},
		},
		4: {
			"CSE-101": {
				"14:00-15:00": {BatchName: "CS2024A", CourseName: "DB201"},
			},
			"CSE-102": {
				"15:00-16:00": {BatchName: "CS2024C", CourseName: "CSEC101"},
			},
			"CSE-201": {
				"09:00-10:00": {BatchName: "AI2024B", CourseName: "AI301"},
			},
			"CSE-202": {
				"11:00-12:00": {BatchName: "WEB2024A", CourseName: "WEB301"},
			},
		},
		5: {
			"CSE-101": {
				"09:00-10:00": {BatchName: "CS2024B", CourseName: "ALGO201"},
			},
			"CSE-103": {
				"10:00-11:00": {BatchName: "MATH2024B", CourseName: "MATH101"},
			},
			"CSE-104": {
				"11:00-12:00": {BatchName: "WEB2024A", CourseName: "WEB201"},
			},
			"CSE-201": {
				"14:00-15:00": {BatchName: "DB2024A", CourseName: "DB301"},
			},
			"CSE-202": {
				"15:00-16:00": {BatchName: "DB2024A", CourseName: "DB201"},
			},
		},
	}
}
