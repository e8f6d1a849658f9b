package usecases

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/repositories"
)

type AnnouncementUsecase interface {
	// GetAll returns announcements newest first by their display date.
	GetAll() []entities.Announcement
	GetByID(id string) (entities.Announcement, error)
	Create(req entities.AnnouncementRequest) (entities.Announcement, error)
	Update(id string, patch entities.AnnouncementPatch) (entities.Announcement, error)
	Delete(id string) error
	AddReply(id string, req entities.ReplyRequest) (entities.Reply, error)
	GetReplies(id string) ([]entities.Reply, error)
}

type announcementUsecase struct {
	repo *repositories.EntityStore[entities.Announcement]
}

func NewAnnouncementUsecase(repo *repositories.EntityStore[entities.Announcement]) AnnouncementUsecase {
	return &announcementUsecase{repo: repo}
}

func (u *announcementUsecase) GetAll() []entities.Announcement {
	announcements := u.repo.All()
	sort.SliceStable(announcements, func(i, j int) bool {
		return announcements[i].Date > announcements[j].Date
	})
	return announcements
}

func (u *announcementUsecase) GetByID(id string) (entities.Announcement, error) {
	announcement, ok := u.repo.Get(id)
	if !ok {
		return entities.Announcement{}, notFound("announcement not found")
	}
	return announcement, nil
}

func (u *announcementUsecase) Create(req entities.AnnouncementRequest) (entities.Announcement, error) {
	if req.Title == "" || req.Description == "" || req.Date == "" {
		return entities.Announcement{}, badRequest("title, description and date are required")
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return entities.Announcement{}, ErrInvalidDate
	}
	return u.repo.Add(entities.Announcement{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		TeacherName: req.TeacherName,
		BatchName:   req.BatchName,
		CreatedAt:   time.Now().UTC(),
	}), nil
}

func (u *announcementUsecase) Update(id string, patch entities.AnnouncementPatch) (entities.Announcement, error) {
	announcement, ok := u.repo.Update(id, func(a *entities.Announcement) {
		if patch.Title != nil {
			a.Title = *patch.Title
		}
		if patch.Description != nil {
			a.Description = *patch.Description
		}
		if patch.Date != nil {
			a.Date = *patch.Date
		}
		if patch.TeacherName != nil {
			a.TeacherName = *patch.TeacherName
		}
		if patch.BatchName != nil {
			a.BatchName = *patch.BatchName
		}
	})
	if !ok {
		return entities.Announcement{}, notFound("announcement not found")
	}
	return announcement, nil
}

func (u *announcementUsecase) Delete(id string) error {
	if !u.repo.Delete(id) {
		return notFound("announcement not found")
	}
	return nil
}

func (u *announcementUsecase) AddReply(id string, req entities.ReplyRequest) (entities.Reply, error) {
	if req.Content == "" || req.Author == "" || req.AuthorName == "" {
		return entities.Reply{}, badRequest("content, author and authorName are required")
	}
	reply := entities.Reply{
		ID:         uuid.NewString(),
		Content:    req.Content,
		Author:     req.Author,
		AuthorName: req.AuthorName,
		CreatedAt:  time.Now().UTC(),
	}
	_, ok := u.repo.Update(id, func(a *entities.Announcement) {
		a.Replies = append(a.Replies, reply)
	})
	if !ok {
		return entities.Reply{}, notFound("announcement not found")
	}
	return reply, nil
}

func (u *announcementUsecase) GetReplies(id string) ([]entities.Reply, error) {
	announcement, ok := u.repo.Get(id)
	if !ok {
		return nil, notFound("announcement not found")
	}
	if announcement.Replies == nil {
		return []entities.Reply{}, nil
	}
	return announcement.Replies, nil
}
