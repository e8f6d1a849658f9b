package usecases

import (
	"time"

	"github.com/google/uuid"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/repositories"
)

type StudentUsecase interface {
	GetAll() []entities.Student
	GetByID(id string) (entities.Student, error)
	Create(req entities.StudentRequest) (entities.Student, error)
	Update(id string, patch entities.StudentPatch) (entities.Student, error)
	Delete(id string) error
}

type studentUsecase struct {
	repo *repositories.EntityStore[entities.Student]
}

func NewStudentUsecase(repo *repositories.EntityStore[entities.Student]) StudentUsecase {
	return &studentUsecase{repo: repo}
}

func (u *studentUsecase) GetAll() []entities.Student {
	return u.repo.All()
}

func (u *studentUsecase) GetByID(id string) (entities.Student, error) {
	student, ok := u.repo.Get(id)
	if !ok {
		return entities.Student{}, notFound("student not found")
	}
	return student, nil
}

func (u *studentUsecase) Create(req entities.StudentRequest) (entities.Student, error) {
	if req.Name == "" || req.Email == "" || req.Batch == "" {
		return entities.Student{}, badRequest("name, email and batch are required")
	}
	return u.repo.Add(entities.Student{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Email:            req.Email,
		Batch:            req.Batch,
		EnrollmentNumber: req.EnrollmentNumber,
		JoinedAt:         time.Now().UTC(),
	}), nil
}

func (u *studentUsecase) Update(id string, patch entities.StudentPatch) (entities.Student, error) {
	student, ok := u.repo.Update(id, func(s *entities.Student) {
		if patch.Name != nil {
			s.Name = *patch.Name
		}
		if patch.Email != nil {
			s.Email = *patch.Email
		}
		if patch.Batch != nil {
			s.Batch = *patch.Batch
		}
		if patch.EnrollmentNumber != nil {
			s.EnrollmentNumber = *patch.EnrollmentNumber
		}
	})
	if !ok {
		return entities.Student{}, notFound("student not found")
	}
	return student, nil
}

func (u *studentUsecase) Delete(id string) error {
	if !u.repo.Delete(id) {
		return notFound("student not found")
	}
	return nil
}
