package usecases

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/repositories"
	"github.com/TejaswaniRai/MindMesh/app/utils"
)

const maxMaterialSize = 10 * 1024 * 1024

// mockFileURL marks materials created without a real file. The viewer shows
// a bundled sample document for these.
const mockFileURL = "dummy-pdf-sample"

type StudyMaterialUsecase interface {
	GetAll() []entities.StudyMaterial
	GetByID(id string) (entities.StudyMaterial, error)
	Create(req entities.StudyMaterialRequest) (entities.StudyMaterial, error)
	// Upload stores the file under the assets directory and records the
	// material with a served file URL.
	Upload(req entities.StudyMaterialRequest, file *multipart.FileHeader, baseURL string) (entities.StudyMaterial, error)
	Update(id string, patch entities.StudyMaterialPatch) (entities.StudyMaterial, error)
	Delete(id string) error
}

type studyMaterialUsecase struct {
	repo      *repositories.EntityStore[entities.StudyMaterial]
	assetsDir string
}

func NewStudyMaterialUsecase(repo *repositories.EntityStore[entities.StudyMaterial], assetsDir string) StudyMaterialUsecase {
	return &studyMaterialUsecase{repo: repo, assetsDir: assetsDir}
}

func (u *studyMaterialUsecase) GetAll() []entities.StudyMaterial {
	return u.repo.All()
}

func (u *studyMaterialUsecase) GetByID(id string) (entities.StudyMaterial, error) {
	material, ok := u.repo.Get(id)
	if !ok {
		return entities.StudyMaterial{}, notFound("study material not found")
	}
	return material, nil
}

func (u *studyMaterialUsecase) Create(req entities.StudyMaterialRequest) (entities.StudyMaterial, error) {
	if req.Title == "" {
		return entities.StudyMaterial{}, badRequest("title is required")
	}
	return u.repo.Add(entities.StudyMaterial{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		FileURL:     mockFileURL,
		FileName:    "sample.pdf",
		FileType:    "application/pdf",
		UploadedBy:  req.UploadedBy,
		UploadedAt:  time.Now().UTC(),
		Subject:     req.Subject,
		Batch:       req.Batch,
	}), nil
}

func (u *studyMaterialUsecase) Upload(req entities.StudyMaterialRequest, file *multipart.FileHeader, baseURL string) (entities.StudyMaterial, error) {
	if req.Title == "" {
		return entities.StudyMaterial{}, badRequest("title is required")
	}
	if file == nil {
		return entities.StudyMaterial{}, badRequest("file is required")
	}
	contentType := file.Header.Get("Content-Type")
	if !isAllowedMaterialType(contentType) {
		return entities.StudyMaterial{}, badRequest("invalid file type, only pdf and images are allowed")
	}
	if file.Size > maxMaterialSize {
		return entities.StudyMaterial{}, badRequest("file size is too large")
	}

	filename, err := utils.SaveUploadedFile(file, filepath.Join(u.assetsDir, "materials"))
	if err != nil {
		return entities.StudyMaterial{}, &UseCaseError{Code: http.StatusInternalServerError, Message: "failed to save file"}
	}

	return u.repo.Add(entities.StudyMaterial{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		FileURL:     strings.TrimRight(baseURL, "/") + "/assets/materials/" + filename,
		FileName:    file.Filename,
		FileType:    contentType,
		FileSize:    file.Size,
		UploadedBy:  req.UploadedBy,
		UploadedAt:  time.Now().UTC(),
		Subject:     req.Subject,
		Batch:       req.Batch,
	}), nil
}

func (u *studyMaterialUsecase) Update(id string, patch entities.StudyMaterialPatch) (entities.StudyMaterial, error) {
	material, ok := u.repo.Update(id, func(m *entities.StudyMaterial) {
		if patch.Title != nil {
			m.Title = *patch.Title
		}
		if patch.Description != nil {
			m.Description = *patch.Description
		}
		if patch.Subject != nil {
			m.Subject = *patch.Subject
		}
		if patch.Batch != nil {
			m.Batch = *patch.Batch
		}
	})
	if !ok {
		return entities.StudyMaterial{}, notFound("study material not found")
	}
	return material, nil
}

func (u *studyMaterialUsecase) Delete(id string) error {
	if !u.repo.Delete(id) {
		return notFound("study material not found")
	}
	return nil
}

func isAllowedMaterialType(contentType string) bool {
	return contentType == "application/pdf" ||
		strings.HasPrefix(contentType, "image/jpeg") ||
		strings.HasPrefix(contentType, "image/png")
}
