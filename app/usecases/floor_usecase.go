package usecases

import (
	"time"

	"github.com/google/uuid"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/repositories"
)

type FloorUsecase interface {
	GetAll() []entities.Floor
	GetByID(id string) (entities.Floor, error)
	Create(req entities.FloorRequest) (entities.Floor, error)
	Update(id string, patch entities.FloorPatch) (entities.Floor, error)
	Delete(id string) error
}

type floorUsecase struct {
	repo *repositories.EntityStore[entities.Floor]
}

func NewFloorUsecase(repo *repositories.EntityStore[entities.Floor]) FloorUsecase {
	return &floorUsecase{repo: repo}
}

func (u *floorUsecase) GetAll() []entities.Floor {
	return u.repo.All()
}

func (u *floorUsecase) GetByID(id string) (entities.Floor, error) {
	floor, ok := u.repo.Get(id)
	if !ok {
		return entities.Floor{}, notFound("floor not found")
	}
	return floor, nil
}

func (u *floorUsecase) Create(req entities.FloorRequest) (entities.Floor, error) {
	if req.Name == "" || req.Number == "" {
		return entities.Floor{}, badRequest("name and number are required")
	}
	return u.repo.Add(entities.Floor{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Number:    req.Number,
		Building:  req.Building,
		CreatedAt: time.Now().UTC(),
	}), nil
}

func (u *floorUsecase) Update(id string, patch entities.FloorPatch) (entities.Floor, error) {
	floor, ok := u.repo.Update(id, func(f *entities.Floor) {
		if patch.Name != nil {
			f.Name = *patch.Name
		}
		if patch.Number != nil {
			f.Number = *patch.Number
		}
		if patch.Building != nil {
			f.Building = *patch.Building
		}
	})
	if !ok {
		return entities.Floor{}, notFound("floor not found")
	}
	return floor, nil
}

func (u *floorUsecase) Delete(id string) error {
	if !u.repo.Delete(id) {
		return notFound("floor not found")
	}
	return nil
}
