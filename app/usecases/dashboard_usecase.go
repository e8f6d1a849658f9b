package usecases

import (
	"sort"
	"time"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/repositories"
)

type DashboardUsecase interface {
	// GetDashboard reports room occupancy for date at the current time
	// slot. An empty date means today.
	GetDashboard(date string) (entities.DashboardData, error)
}

type dashboardUsecase struct {
	schedule ScheduleUsecase
	rooms    *repositories.EntityStore[entities.Room]
	clock    func() time.Time
}

func NewDashboardUsecase(schedule ScheduleUsecase, rooms *repositories.EntityStore[entities.Room]) DashboardUsecase {
	return &dashboardUsecase{schedule: schedule, rooms: rooms, clock: time.Now}
}

func (u *dashboardUsecase) GetDashboard(date string) (entities.DashboardData, error) {
	if date == "" {
		date = u.schedule.Today()
	}
	effective, err := u.schedule.EffectiveSchedule(date)
	if err != nil {
		return entities.DashboardData{}, err
	}

	slot := entities.CurrentSlot(u.clock())
	rooms := u.rooms.All()

	data := entities.DashboardData{
		Date:        date,
		CurrentSlot: slot,
		TotalRooms:  len(rooms),
	}

	byFloor := map[string]*entities.FloorOccupancy{}
	for _, room := range rooms {
		occ := byFloor[room.Floor]
		if occ == nil {
			occ = &entities.FloorOccupancy{Floor: room.Floor}
			byFloor[room.Floor] = occ
		}
		occ.Total++
		if detail, ok := effective[room.Number][slot]; ok && detail != nil {
			occ.Occupied++
			data.OccupiedRooms++
		}
	}
	data.FreeRooms = data.TotalRooms - data.OccupiedRooms

	floors := make([]entities.FloorOccupancy, 0, len(byFloor))
	for _, occ := range byFloor {
		floors = append(floors, *occ)
	}
	sort.Slice(floors, func(i, j int) bool { return floors[i].Floor < floors[j].Floor })
	data.Floors = floors

	return data, nil
}
