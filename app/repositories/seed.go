package repositories

import (
	"fmt"
	"time"

	"github.com/TejaswaniRai/MindMesh/app/entities"
)

func seedTime(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// SeedTeachers returns the department's sample faculty records.
func SeedTeachers() []entities.Teacher {
	return []entities.Teacher{
		{ID: "1", Name: "Dr. Sarah Johnson", Email: "sarah.johnson@nexathon.edu", Department: "Computer Science", Subjects: []string{"CS101", "CS201", "CS301"}, JoinedAt: seedTime("2020-08-15T09:00:00Z")},
		{ID: "2", Name: "Prof. Michael Chen", Email: "michael.chen@nexathon.edu", Department: "Mathematics", Subjects: []string{"MATH101", "MATH201", "STAT301"}, JoinedAt: seedTime("2019-09-01T09:00:00Z")},
		{ID: "3", Name: "Dr. Emily Davis", Email: "emily.davis@nexathon.edu", Department: "Database Systems", Subjects: []string{"DB101", "DB201", "DB301"}, JoinedAt: seedTime("2021-01-15T09:00:00Z")},
		{ID: "4", Name: "Prof. Alex Rodriguez", Email: "alex.rodriguez@nexathon.edu", Department: "Artificial Intelligence", Subjects: []string{"AI101", "ML201", "AI301"}, JoinedAt: seedTime("2020-03-01T09:00:00Z")},
		{ID: "5", Name: "Dr. Lisa Wang", Email: "lisa.wang@nexathon.edu", Department: "Web Development", Subjects: []string{"WEB101", "WEB201", "WEB301"}, JoinedAt: seedTime("2021-08-20T09:00:00Z")},
		{ID: "6", Name: "Prof. David Thompson", Email: "david.thompson@nexathon.edu", Department: "Software Engineering", Subjects: []string{"SE101", "SE201", "SE301"}, JoinedAt: seedTime("2018-09-01T09:00:00Z")},
		{ID: "7", Name: "Dr. Maria Garcia", Email: "maria.garcia@nexathon.edu", Department: "Data Science", Subjects: []string{"DS101", "DS201", "DS301"}, JoinedAt: seedTime("2022-01-10T09:00:00Z")},
		{ID: "8", Name: "Prof. James Wilson", Email: "james.wilson@nexathon.edu", Department: "Cybersecurity", Subjects: []string{"CSEC101", "CSEC201", "CSEC301"}, JoinedAt: seedTime("2019-06-15T09:00:00Z")},
	}
}

func SeedStudents() []entities.Student {
	return []entities.Student{
		{ID: "1", Name: "Aarav Sharma", Email: "aarav.sharma@nexathon.edu", Batch: "CS2024A", EnrollmentNumber: "CSE24001", JoinedAt: seedTime("2024-08-01T09:00:00Z")},
		{ID: "2", Name: "Priya Patel", Email: "priya.patel@nexathon.edu", Batch: "CS2024A", EnrollmentNumber: "CSE24002", JoinedAt: seedTime("2024-08-01T09:00:00Z")},
		{ID: "3", Name: "Rohan Gupta", Email: "rohan.gupta@nexathon.edu", Batch: "CS2024B", EnrollmentNumber: "CSE24003", JoinedAt: seedTime("2024-08-01T09:00:00Z")},
		{ID: "4", Name: "Ananya Singh", Email: "ananya.singh@nexathon.edu", Batch: "AI2024A", EnrollmentNumber: "CSE24004", JoinedAt: seedTime("2024-08-01T09:00:00Z")},
		{ID: "5", Name: "Vikram Reddy", Email: "vikram.reddy@nexathon.edu", Batch: "DS2024A", EnrollmentNumber: "CSE24005", JoinedAt: seedTime("2024-08-01T09:00:00Z")},
	}
}

func SeedSubjects() []entities.Subject {
	return []entities.Subject{
		{ID: "1", Name: "Introduction to Programming", Code: "CS101", Department: "Computer Science", Credits: 4},
		{ID: "2", Name: "Data Structures", Code: "CS201", Department: "Computer Science", Credits: 4},
		{ID: "3", Name: "Algorithms", Code: "ALGO201", Department: "Computer Science", Credits: 4},
		{ID: "4", Name: "Database Systems", Code: "DB201", Department: "Database Systems", Credits: 3},
		{ID: "5", Name: "Machine Learning", Code: "ML201", Department: "Artificial Intelligence", Credits: 3},
		{ID: "6", Name: "Web Technologies", Code: "WEB201", Department: "Web Development", Credits: 3},
		{ID: "7", Name: "Discrete Mathematics", Code: "MATH101", Department: "Mathematics", Credits: 4},
		{ID: "8", Name: "Network Security", Code: "CSEC201", Department: "Cybersecurity", Credits: 3},
	}
}

// SeedRooms generates the fixed 5-floor, 6-room classroom grid
// (CSE-101 .. CSE-506).
func SeedRooms(staffRooms []string) []entities.Room {
	staff := make(map[string]struct{}, len(staffRooms))
	for _, room := range staffRooms {
		staff[room] = struct{}{}
	}

	var rooms []entities.Room
	created := seedTime("2024-01-01T09:00:00Z")
	for floor := 1; floor <= 5; floor++ {
		for seq := 1; seq <= 6; seq++ {
			number := fmt.Sprintf("CSE-%d%02d", floor, seq)
			roomType := "classroom"
			if _, ok := staff[number]; ok {
				roomType = "office"
			}
			rooms = append(rooms, entities.Room{
				ID:        number,
				Name:      "Classroom " + number,
				Number:    number,
				Floor:     fmt.Sprintf("%d", floor),
				Capacity:  60,
				Type:      roomType,
				CreatedAt: created,
			})
		}
	}
	return rooms
}

func SeedFloors() []entities.Floor {
	var floors []entities.Floor
	created := seedTime("2024-01-01T09:00:00Z")
	for number := 1; number <= 5; number++ {
		floors = append(floors, entities.Floor{
			ID:        fmt.Sprintf("%d", number),
			Name:      fmt.Sprintf("Floor %d", number),
			Number:    fmt.Sprintf("%d", number),
			Building:  "CSE Block",
			CreatedAt: created,
		})
	}
	return floors
}

func SeedStudyMaterials() []entities.StudyMaterial {
	return []entities.StudyMaterial{
		{ID: "1", Title: "Introduction to React", Description: "Complete guide to React fundamentals and hooks", FileURL: "dummy-pdf-sample", FileName: "react-intro.pdf", FileType: "application/pdf", FileSize: 2048576, UploadedBy: "Dr. Sarah Johnson", UploadedAt: seedTime("2024-01-15T10:30:00Z"), Subject: "Computer Science", Batch: "2024"},
		{ID: "2", Title: "JavaScript ES6+ Features", Description: "Modern JavaScript features and best practices", FileURL: "dummy-pdf-sample", FileName: "js-es6.pdf", FileType: "application/pdf", FileSize: 1536000, UploadedBy: "Prof. Mike Chen", UploadedAt: seedTime("2024-01-14T14:20:00Z"), Subject: "Programming", Batch: "2024"},
		{ID: "3", Title: "Database Design Principles", Description: "Fundamentals of database design and normalization", FileURL: "dummy-pdf-sample", FileName: "database-design.pdf", FileType: "application/pdf", FileSize: 3072000, UploadedBy: "Dr. Emily Davis", UploadedAt: seedTime("2024-01-13T09:15:00Z"), Subject: "Database Systems", Batch: "2024"},
		{ID: "4", Title: "Machine Learning Basics", Description: "Introduction to ML algorithms and applications", FileURL: "dummy-pdf-sample", FileName: "ml-basics.pdf", FileType: "application/pdf", FileSize: 4096000, UploadedBy: "Dr. Alex Rodriguez", UploadedAt: seedTime("2024-01-12T16:45:00Z"), Subject: "Artificial Intelligence", Batch: "2024"},
		{ID: "5", Title: "Web Development Best Practices", Description: "Modern web development techniques and tools", FileURL: "dummy-pdf-sample", FileName: "web-dev-practices.pdf", FileType: "application/pdf", FileSize: 2560000, UploadedBy: "Prof. Lisa Wang", UploadedAt: seedTime("2024-01-11T11:30:00Z"), Subject: "Web Development", Batch: "2024"},
	}
}
