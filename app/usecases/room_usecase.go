package usecases

import (
	"time"

	"github.com/google/uuid"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/repositories"
)

type RoomUsecase interface {
	GetAll() []entities.Room
	GetByID(id string) (entities.Room, error)
	Create(req entities.RoomRequest) (entities.Room, error)
	Update(id string, patch entities.RoomPatch) (entities.Room, error)
	Delete(id string) error
}

type roomUsecase struct {
	repo *repositories.EntityStore[entities.Room]
}

func NewRoomUsecase(repo *repositories.EntityStore[entities.Room]) RoomUsecase {
	return &roomUsecase{repo: repo}
}

func (u *roomUsecase) GetAll() []entities.Room {
	return u.repo.All()
}

func (u *roomUsecase) GetByID(id string) (entities.Room, error) {
	room, ok := u.repo.Get(id)
	if !ok {
		return entities.Room{}, notFound("room not found")
	}
	return room, nil
}

func (u *roomUsecase) Create(req entities.RoomRequest) (entities.Room, error) {
	if req.Name == "" || req.Number == "" || req.Floor == "" {
		return entities.Room{}, badRequest("name, number and floor are required")
	}
	roomType := req.Type
	if roomType == "" {
		roomType = "classroom"
	}
	return u.repo.Add(entities.Room{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Number:    req.Number,
		Floor:     req.Floor,
		Capacity:  req.Capacity,
		Type:      roomType,
		CreatedAt: time.Now().UTC(),
	}), nil
}

func (u *roomUsecase) Update(id string, patch entities.RoomPatch) (entities.Room, error) {
	room, ok := u.repo.Update(id, func(r *entities.Room) {
		if patch.Name != nil {
			r.Name = *patch.Name
		}
		if patch.Number != nil {
			r.Number = *patch.Number
		}
		if patch.Floor != nil {
			r.Floor = *patch.Floor
		}
		if patch.Capacity != nil {
			r.Capacity = *patch.Capacity
		}
		if patch.Type != nil {
			r.Type = *patch.Type
		}
	})
	if !ok {
		return entities.Room{}, notFound("room not found")
	}
	return room, nil
}

func (u *roomUsecase) Delete(id string) error {
	if !u.repo.Delete(id) {
		return notFound("room not found")
	}
	return nil
}
