package entities

import "time"

type Announcement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"` // YYYY-MM-DD
	TeacherName string    `json:"teacherName,omitempty"`
	BatchName   string    `json:"batchName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Replies     []Reply   `json:"replies,omitempty"`
}

type Reply struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	Author     string    `json:"author"` // student, faculty or admin
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}

type AnnouncementRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
	TeacherName string `json:"teacherName"`
	BatchName   string `json:"batchName"`
}

type AnnouncementPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	TeacherName *string `json:"teacherName"`
	BatchName   *string `json:"batchName"`
}

type ReplyRequest struct {
	Content    string `json:"content" validate:"required"`
	Author     string `json:"author" validate:"required"`
	AuthorName string `json:"authorName" validate:"required"`
}
