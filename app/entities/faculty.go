package entities

import "time"

type Teacher struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Subjects   []string  `json:"subjects"`
	JoinedAt   time.Time `json:"joinedAt"`
}

type TeacherRequest struct {
	Name       string   `json:"name" validate:"required"`
	Email      string   `json:"email" validate:"required,email"`
	Department string   `json:"department" validate:"required"`
	Subjects   []string `json:"subjects"`
}

type TeacherPatch struct {
	Name       *string   `json:"name"`
	Email      *string   `json:"email"`
	Department *string   `json:"department"`
	Subjects   *[]string `json:"subjects"`
}

type Student struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Batch            string    `json:"batch"`
	EnrollmentNumber string    `json:"enrollmentNumber"`
	JoinedAt         time.Time `json:"joinedAt"`
}

type StudentRequest struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Batch            string `json:"batch" validate:"required"`
	EnrollmentNumber string `json:"enrollmentNumber"`
}

type StudentPatch struct {
	Name             *string `json:"name"`
	Email            *string `json:"email"`
	Batch            *string `json:"batch"`
	EnrollmentNumber *string `json:"enrollmentNumber"`
}

type Subject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Department  string `json:"department"`
	Credits     int    `json:"credits"`
	Description string `json:"description,omitempty"`
}

type SubjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Department  string `json:"department"`
	Credits     int    `json:"credits"`
	Description string `json:"description"`
}

type SubjectPatch struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Department  *string `json:"department"`
	Credits     *int    `json:"credits"`
	Description *string `json:"description"`
}
