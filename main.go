package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/TejaswaniRai/MindMesh/app"
	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/handlers"
	"github.com/TejaswaniRai/MindMesh/app/repositories"
	"github.com/TejaswaniRai/MindMesh/app/usecases"
	"github.com/TejaswaniRai/MindMesh/config"
	"github.com/TejaswaniRai/MindMesh/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	timetable := repositories.LoadTimetable(cfg.Schedule.TimetableFile)
	scheduleStore := repositories.NewScheduleStore(timetable, repositories.DefaultStaffRooms, cfg.Schedule.SnapshotFile)

	teacherStore := repositories.NewEntityStore(func(t *entities.Teacher) string { return t.ID }, repositories.SeedTeachers(), "")
	studentStore := repositories.NewEntityStore(func(s *entities.Student) string { return s.ID }, repositories.SeedStudents(), "")
	subjectStore := repositories.NewEntityStore(func(s *entities.Subject) string { return s.ID }, repositories.SeedSubjects(), "")
	roomStore := repositories.NewEntityStore(func(r *entities.Room) string { return r.ID }, repositories.SeedRooms(repositories.DefaultStaffRooms), "")
	floorStore := repositories.NewEntityStore(func(f *entities.Floor) string { return f.ID }, repositories.SeedFloors(), "")
	announcementStore := repositories.NewEntityStore(func(a *entities.Announcement) string { return a.ID }, nil, filepath.Join(cfg.Data.Dir, "announcements.json"))
	materialStore := repositories.NewEntityStore(func(m *entities.StudyMaterial) string { return m.ID }, repositories.SeedStudyMaterials(), "")

	scheduleUsecase := usecases.NewScheduleUsecase(scheduleStore)
	teacherUsecase := usecases.NewTeacherUsecase(teacherStore)
	studentUsecase := usecases.NewStudentUsecase(studentStore)
	subjectUsecase := usecases.NewSubjectUsecase(subjectStore)
	roomUsecase := usecases.NewRoomUsecase(roomStore)
	floorUsecase := usecases.NewFloorUsecase(floorStore)
	announcementUsecase := usecases.NewAnnouncementUsecase(announcementStore)
	materialUsecase := usecases.NewStudyMaterialUsecase(materialStore, cfg.Server.AssetsDir)
	dashboardUsecase := usecases.NewDashboardUsecase(scheduleUsecase, roomStore)

	srv := server.NewEchoServer(cfg)
	app.RegisterRoutes(
		srv.GetEcho(),
		handlers.NewScheduleHandler(scheduleUsecase),
		handlers.NewTeacherHandler(teacherUsecase),
		handlers.NewStudentHandler(studentUsecase),
		handlers.NewSubjectHandler(subjectUsecase),
		handlers.NewRoomHandler(roomUsecase),
		handlers.NewFloorHandler(floorUsecase),
		handlers.NewAnnouncementHandler(announcementUsecase),
		handlers.NewStudyMaterialHandler(materialUsecase),
		handlers.NewDashboardHandler(dashboardUsecase),
	)

	log.Fatal(srv.Start())
}
