package usecases

import (
	"github.com/google/uuid"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/repositories"
)

type SubjectUsecase interface {
	GetAll() []entities.Subject
	GetByID(id string) (entities.Subject, error)
	Create(req entities.SubjectRequest) (entities.Subject, error)
	Update(id string, patch entities.SubjectPatch) (entities.Subject, error)
	Delete(id string) error
}

type subjectUsecase struct {
	repo *repositories.EntityStore[entities.Subject]
}

func NewSubjectUsecase(repo *repositories.EntityStore[entities.Subject]) SubjectUsecase {
	return &subjectUsecase{repo: repo}
}

func (u *subjectUsecase) GetAll() []entities.Subject {
	return u.repo.All()
}

func (u *subjectUsecase) GetByID(id string) (entities.Subject, error) {
	subject, ok := u.repo.Get(id)
	if !ok {
		return entities.Subject{}, notFound("subject not found")
	}
	return subject, nil
}

func (u *subjectUsecase) Create(req entities.SubjectRequest) (entities.Subject, error) {
	if req.Name == "" || req.Code == "" {
		return entities.Subject{}, badRequest("name and code are required")
	}
	return u.repo.Add(entities.Subject{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Code:        req.Code,
		Department:  req.Department,
		Credits:     req.Credits,
		Description: req.Description,
	}), nil
}

func (u *subjectUsecase) Update(id string, patch entities.SubjectPatch) (entities.Subject, error) {
	subject, ok := u.repo.Update(id, func(s *entities.Subject) {
		if patch.Name != nil {
			s.Name = *patch.Name
		}
		if patch.Code != nil {
			s.Code = *patch.Code
		}
		if patch.Department != nil {
			s.Department = *patch.Department
		}
		if patch.Credits != nil {
			s.Credits = *patch.Credits
		}
		if patch.Description != nil {
			s.Description = *patch.Description
		}
	})
	if !ok {
		return entities.Subject{}, notFound("subject not found")
	}
	return subject, nil
}

func (u *subjectUsecase) Delete(id string) error {
	if !u.repo.Delete(id) {
		return notFound("subject not found")
	}
	return nil
}
