package entities

import "time"

type StudyMaterial struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FileURL     string    `json:"fileUrl"`
	FileName    string    `json:"fileName"`
	FileType    string    `json:"fileType"`
	FileSize    int64     `json:"fileSize"`
	UploadedBy  string    `json:"uploadedBy"`
	UploadedAt  time.Time `json:"uploadedAt"`
	Subject     string    `json:"subject,omitempty"`
	Batch       string    `json:"batch,omitempty"`
}

type StudyMaterialRequest struct {
	Title       string `json:"title" validate:"required" form:"title"`
	Description string `json:"description" form:"description"`
	UploadedBy  string `json:"uploadedBy" form:"uploadedBy"`
	Subject     string `json:"subject" form:"subject"`
	Batch       string `json:"batch" form:"batch"`
}

type StudyMaterialPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Subject     *string `json:"subject"`
	Batch       *string `json:"batch"`
}
