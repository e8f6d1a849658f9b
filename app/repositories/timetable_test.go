package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTimetableFieldAliases(t *testing.T) {
	raw := []byte(`{
		"1": {
			"CSE-101": {
				"09:00-10:00": {"batchName": "CS2024A", "teacherName": "Dr. Kumar", "courseName": "CS101"},
				"10:00-11:00": {"batch_name": "CS2024B", "teacher_name": "Dr. Rao", "course": "CS201"},
				"11:00-12:00": {"batchName": "CS2024C", "TeacherName": "Dr. Iyer", "Course": "CS301"}
			}
		}
	}`)

	timetable, err := NormalizeTimetable(raw)
	require.NoError(t, err)

	monday := timetable[1]["CSE-101"]
	assert.Equal(t, "Dr. Kumar", monday["09:00-10:00"].TeacherName)
	assert.Equal(t, "CS101", monday["09:00-10:00"].CourseName)
	assert.Equal(t, "CS2024B", monday["10:00-11:00"].BatchName)
	assert.Equal(t, "Dr. Rao", monday["10:00-11:00"].TeacherName)
	assert.Equal(t, "CS201", monday["10:00-11:00"].CourseName)
	assert.Equal(t, "Dr. Iyer", monday["11:00-12:00"].TeacherName)
	assert.Equal(t, "CS301", monday["11:00-12:00"].CourseName)
}

func TestNormalizeTimetableDropsInvalidEntries(t *testing.T) {
	raw := []byte(`{
		"0": {"CSE-101": {"09:00-10:00": {"batchName": "X"}}},
		"6": {"CSE-101": {"09:00-10:00": {"batchName": "X"}}},
		"abc": {"CSE-101": {"09:00-10:00": {"batchName": "X"}}},
		"2": {
			"CSE-102": {
				"13:00-14:00": {"batchName": "LUNCH"},
				"14:00-15:00": {"batchName": "AI2024A", "courseName": "AI101"}
			}
		}
	}`)

	timetable, err := NormalizeTimetable(raw)
	require.NoError(t, err)

	assert.NotContains(t, timetable, 0)
	assert.NotContains(t, timetable, 6)
	assert.Len(t, timetable, 1)

	tuesday := timetable[2]["CSE-102"]
	assert.NotContains(t, tuesday, "13:00-14:00")
	assert.Equal(t, "AI2024A", tuesday["14:00-15:00"].BatchName)
}

func TestNormalizeTimetableDerivesSlotFromTimes(t *testing.T) {
	raw := []byte(`{
		"3": {
			"CSE-201": {
				"slot-a1": {"batch_name": "DS2024B", "course": "DS101", "start_time": "09:00", "end_time": "10:00"},
				"slot-a2": {"batch_name": "DS2024B", "start_time": "13:00", "end_time": "14:00"}
			}
		}
	}`)

	timetable, err := NormalizeTimetable(raw)
	require.NoError(t, err)

	wednesday := timetable[3]["CSE-201"]
	require.Contains(t, wednesday, "09:00-10:00")
	assert.Equal(t, "DS101", wednesday["09:00-10:00"].CourseName)
	assert.NotContains(t, wednesday, "13:00-14:00", "lunch hour never resolves")
}

func TestNormalizeTimetableRejectsMalformed(t *testing.T) {
	_, err := NormalizeTimetable([]byte(`not json`))
	assert.Error(t, err)

	_, err = NormalizeTimetable([]byte(`{}`))
	assert.Error(t, err)
}

func TestLoadTimetableFallsBackToDefaults(t *testing.T) {
	timetable := LoadTimetable("testdata/does-not-exist.json")

	// The built-in department timetable covers all five weekdays.
	for day := 1; day <= 5; day++ {
		assert.NotEmpty(t, timetable[day], "weekday %d", day)
	}
	assert.Equal(t, "CS101", timetable[1]["CSE-101"]["09:00-10:00"].CourseName)
}
