package app

import (
	"github.com/labstack/echo/v4"

	"github.com/TejaswaniRai/MindMesh/app/handlers"
)

func RegisterRoutes(
	e *echo.Echo,
	scheduleHandler *handlers.ScheduleHandler,
	teacherHandler *handlers.TeacherHandler,
	studentHandler *handlers.StudentHandler,
	subjectHandler *handlers.SubjectHandler,
	roomHandler *handlers.RoomHandler,
	floorHandler *handlers.FloorHandler,
	announcementHandler *handlers.AnnouncementHandler,
	materialHandler *handlers.StudyMaterialHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	api := e.Group("/api")

	// Schedule routes
	api.GET("/schedule", scheduleHandler.GetSchedule)
	api.POST("/schedule", scheduleHandler.CreateBooking)

	// Faculty routes
	api.GET("/teachers", teacherHandler.GetTeachers)
	api.POST("/teachers", teacherHandler.CreateTeacher)
	api.PATCH("/teachers", teacherHandler.PatchTeacher)
	api.DELETE("/teachers", teacherHandler.DeleteTeacher)

	// Student routes
	api.GET("/students", studentHandler.GetStudents)
	api.POST("/students", studentHandler.CreateStudent)
	api.PATCH("/students", studentHandler.PatchStudent)
	api.DELETE("/students", studentHandler.DeleteStudent)

	// Subject routes
	api.GET("/subjects", subjectHandler.GetSubjects)
	api.POST("/subjects", subjectHandler.CreateSubject)
	api.PATCH("/subjects", subjectHandler.PatchSubject)
	api.DELETE("/subjects", subjectHandler.DeleteSubject)

	// Room routes
	api.GET("/rooms", roomHandler.GetRooms)
	api.POST("/rooms", roomHandler.CreateRoom)
	api.PATCH("/rooms", roomHandler.PatchRoom)
	api.DELETE("/rooms", roomHandler.DeleteRoom)

	// Floor routes
	api.GET("/floors", floorHandler.GetFloors)
	api.POST("/floors", floorHandler.CreateFloor)
	api.PATCH("/floors", floorHandler.PatchFloor)
	api.DELETE("/floors", floorHandler.DeleteFloor)

	// Announcement routes
	api.GET("/announcements", announcementHandler.GetAnnouncements)
	api.POST("/announcements", announcementHandler.CreateAnnouncement)
	api.PATCH("/announcements", announcementHandler.PatchAnnouncement)
	api.DELETE("/announcements", announcementHandler.DeleteAnnouncement)
	api.GET("/announcements/:id/replies", announcementHandler.GetReplies)
	api.POST("/announcements/:id/replies", announcementHandler.AddReply)

	// Study material routes
	api.GET("/study-materials", materialHandler.GetMaterials)
	api.POST("/study-materials", materialHandler.CreateMaterial)
	api.POST("/study-materials/upload", materialHandler.UploadMaterial)
	api.PATCH("/study-materials", materialHandler.PatchMaterial)
	api.DELETE("/study-materials", materialHandler.DeleteMaterial)

	// Dashboard routes
	api.GET("/dashboard", dashboardHandler.GetDashboard)
}
