// internal/app/router.go
package app

import (
	"campus-portal/internal/domain/auth"
	adminHandler "campus-portal/internal/handlers/admin"
	authHandler "campus-portal/internal/handlers/auth"
	instructorHandler "campus-portal/internal/handlers/instructor"
	navHandler "campus-portal/internal/handlers/nav"
	studentHandler "campus-portal/internal/handlers/student"
	"campus-portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler       *authHandler.AuthHandler
	NavHandler        *navHandler.NavHandler
	AdminHandler      *adminHandler.AdminHandler
	InstructorHandler *instructorHandler.InstructorHandler
	StudentHandler    *studentHandler.StudentHandler
	Session           *middleware.SessionMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	// ==================== Health Check ====================
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// Every route below sees a restored session.
	r.Use(h.Session.Restore())

	// ==================== Navigation targets ====================
	r.GET("/login", h.NavHandler.Login)
	r.GET("/unauthorized", h.NavHandler.Unauthorized)

	// ==================== Public Auth Routes ====================
	r.POST("/portal/auth/login", h.AuthHandler.Login)

	// ==================== Authenticated (any role) ====================
	portal := r.Group("/portal")
	portal.Use(middleware.Protect())
	{
		portal.POST("/auth/logout", h.AuthHandler.Logout)
		portal.GET("/auth/me", h.AuthHandler.Me)
		portal.GET("/dashboard", h.NavHandler.Dashboard)
	}

	// ==================== Admin ====================
	admin := r.Group("/portal/admin")
	admin.Use(middleware.Protect(auth.RoleAdmin))
	{
		admin.GET("/dashboard", h.AdminHandler.Dashboard)

		admin.GET("/instructors", h.AdminHandler.ListInstructors)
		admin.GET("/instructors/departments", h.AdminHandler.Departments)
		admin.GET("/instructors/:id", h.AdminHandler.GetInstructor)
		admin.POST("/instructors", h.AdminHandler.CreateInstructor)
		admin.PUT("/instructors/:id", h.AdminHandler.UpdateInstructor)
		admin.DELETE("/instructors/:id", h.AdminHandler.DeleteInstructor)
		admin.PUT("/instructors/:id/activate", h.AdminHandler.ActivateInstructor)

		admin.GET("/students", h.AdminHandler.ListStudents)
		admin.GET("/students/majors", h.AdminHandler.Majors)
		admin.GET("/students/:id", h.AdminHandler.GetStudent)
		admin.POST("/students", h.AdminHandler.CreateStudent)
		admin.PUT("/students/:id", h.AdminHandler.UpdateStudent)
		admin.DELETE("/students/:id", h.AdminHandler.DeleteStudent)
		admin.PUT("/students/:id/activate", h.AdminHandler.ActivateStudent)

		admin.GET("/courses", h.AdminHandler.ListCourses)
		admin.GET("/courses/:courseId", h.AdminHandler.GetCourse)
		admin.POST("/courses", h.AdminHandler.CreateCourse)
		admin.PUT("/courses/:courseId", h.AdminHandler.UpdateCourse)
		admin.DELETE("/courses/:courseId", h.AdminHandler.DeleteCourse)
		admin.PUT("/courses/:courseId/activate", h.AdminHandler.ActivateCourse)

		admin.POST("/courses/:courseId/enroll/:studentId", h.AdminHandler.EnrollStudent)
		admin.DELETE("/courses/:courseId/enroll/:studentId", h.AdminHandler.RemoveStudent)
		admin.PUT("/courses/:courseId/enrollment/open", h.AdminHandler.OpenEnrollment)
		admin.PUT("/courses/:courseId/enrollment/close", h.AdminHandler.CloseEnrollment)

		admin.GET("/statistics", h.AdminHandler.Statistics)
		admin.GET("/statistics/instructors", h.AdminHandler.InstructorStatistics)
		admin.GET("/statistics/students", h.AdminHandler.StudentStatistics)
		admin.GET("/statistics/courses", h.AdminHandler.CourseStatistics)
	}

	// ==================== Instructor ====================
	instructor := r.Group("/portal/instructor")
	instructor.Use(middleware.Protect(auth.RoleInstructor))
	{
		instructor.GET("/dashboard", h.InstructorHandler.Dashboard)
		instructor.GET("/profile", h.InstructorHandler.Profile)
		instructor.PUT("/profile", h.InstructorHandler.UpdateProfile)
		instructor.GET("/schedule", h.InstructorHandler.Schedule)
		instructor.GET("/statistics", h.InstructorHandler.Statistics)

		instructor.GET("/courses", h.InstructorHandler.Courses)
		instructor.GET("/courses/:courseId", h.InstructorHandler.Course)
		instructor.PUT("/courses/:courseId", h.InstructorHandler.UpdateCourse)
		instructor.PUT("/courses/:courseId/enrollment/open", h.InstructorHandler.OpenEnrollment)
		instructor.PUT("/courses/:courseId/enrollment/close", h.InstructorHandler.CloseEnrollment)
		instructor.GET("/courses/:courseId/students", h.InstructorHandler.Roster)
		instructor.DELETE("/courses/:courseId/students/:studentId", h.InstructorHandler.RemoveStudent)
		instructor.GET("/courses/:courseId/statistics", h.InstructorHandler.CourseStatistics)

		instructor.GET("/courses/:courseId/results", h.InstructorHandler.CourseResults)
		instructor.GET("/courses/:courseId/students/:studentId/results", h.InstructorHandler.StudentResults)
		instructor.PUT("/courses/:courseId/results/release", h.InstructorHandler.ReleaseCourseResults)
		instructor.GET("/courses/:courseId/results/average", h.InstructorHandler.CourseAverage)
		instructor.POST("/results", h.InstructorHandler.CreateResult)
		instructor.GET("/results/:resultId", h.InstructorHandler.Result)
		instructor.PUT("/results/:resultId", h.InstructorHandler.UpdateResult)
		instructor.DELETE("/results/:resultId", h.InstructorHandler.DeleteResult)
		instructor.PUT("/results/:resultId/release", h.InstructorHandler.ReleaseResult)
		instructor.PUT("/results/:resultId/unrelease", h.InstructorHandler.UnreleaseResult)

		instructor.GET("/courses/:courseId/content", h.InstructorHandler.CourseContent)
		instructor.POST("/courses/:courseId/content", h.InstructorHandler.CreateContent)
		instructor.PUT("/content/:contentId", h.InstructorHandler.UpdateContent)
		instructor.DELETE("/content/:contentId", h.InstructorHandler.DeleteContent)
		instructor.PUT("/content/:contentId/publish", h.InstructorHandler.PublishContent)
		instructor.PUT("/content/:contentId/unpublish", h.InstructorHandler.UnpublishContent)
	}

	// ==================== Student ====================
	student := r.Group("/portal/student")
	student.Use(middleware.Protect(auth.RoleStudent))
	{
		student.GET("/dashboard", h.StudentHandler.Dashboard)
		student.GET("/profile", h.StudentHandler.Profile)
		student.PUT("/profile", h.StudentHandler.UpdateProfile)
		student.GET("/schedule", h.StudentHandler.Schedule)
		student.GET("/statistics", h.StudentHandler.Statistics)

		student.GET("/courses", h.StudentHandler.Courses)
		student.GET("/catalog", h.StudentHandler.Catalog)
		student.GET("/courses/:courseId", h.StudentHandler.Course)
		student.POST("/courses/:courseId/enroll", h.StudentHandler.Enroll)
		student.DELETE("/courses/:courseId/unenroll", h.StudentHandler.Unenroll)

		student.GET("/results", h.StudentHandler.Results)
		student.GET("/results/average", h.StudentHandler.Average)
		student.GET("/courses/:courseId/results", h.StudentHandler.CourseResults)
		student.GET("/courses/:courseId/results/average", h.StudentHandler.CourseAverage)

		student.GET("/courses/:courseId/content", h.StudentHandler.CourseContent)
		student.GET("/courses/:courseId/announcements", h.StudentHandler.Announcements)
		student.GET("/courses/:courseId/content/recent", h.StudentHandler.RecentContent)
		student.GET("/content/:contentId", h.StudentHandler.ContentItem)
	}
}
