package usecases

import (
	"time"

	"github.com/google/uuid"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/repositories"
)

type TeacherUsecase interface {
	GetAll() []entities.Teacher
	GetByID(id string) (entities.Teacher, error)
	Create(req entities.TeacherRequest) (entities.Teacher, error)
	Update(id string, patch entities.TeacherPatch) (entities.Teacher, error)
	Delete(id string) error
}

type teacherUsecase struct {
	repo *repositories.EntityStore[entities.Teacher]
}

func NewTeacherUsecase(repo *repositories.EntityStore[entities.Teacher]) TeacherUsecase {
	return &teacherUsecase{repo: repo}
}

func (u *teacherUsecase) GetAll() []entities.Teacher {
	return u.repo.All()
}

func (u *teacherUsecase) GetByID(id string) (entities.Teacher, error) {
	teacher, ok := u.repo.Get(id)
	if !ok {
		return entities.Teacher{}, notFound("teacher not found")
	}
	return teacher, nil
}

func (u *teacherUsecase) Create(req entities.TeacherRequest) (entities.Teacher, error) {
	if req.Name == "" || req.Email == "" || req.Department == "" {
		return entities.Teacher{}, badRequest("name, email and department are required")
	}
	subjects := req.Subjects
	if subjects == nil {
		subjects = []string{}
	}
	return u.repo.Add(entities.Teacher{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Subjects:   subjects,
		JoinedAt:   time.Now().UTC(),
	}), nil
}

func (u *teacherUsecase) Update(id string, patch entities.TeacherPatch) (entities.Teacher, error) {
	teacher, ok := u.repo.Update(id, func(t *entities.Teacher) {
		if patch.Name != nil {
			t.Name = *patch.Name
		}
		if patch.Email != nil {
			t.Email = *patch.Email
		}
		if patch.Department != nil {
			t.Department = *patch.Department
		}
		if patch.Subjects != nil {
			t.Subjects = *patch.Subjects
		}
	})
	if !ok {
		return entities.Teacher{}, notFound("teacher not found")
	}
	return teacher, nil
}

func (u *teacherUsecase) Delete(id string) error {
	if !u.repo.Delete(id) {
		return notFound("teacher not found")
	}
	return nil
}
