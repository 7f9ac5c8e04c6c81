// internal/handlers/admin/admin_handler.go
package admin

import (
	"net/http"
	"strconv"

	"campus-portal/internal/domain/academics"
	"campus-portal/internal/middleware"
	"campus-portal/internal/pkg/response"
	adminsvc "campus-portal/internal/service/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service *adminsvc.AdminService
	logger  *zap.Logger
}

func NewAdminHandler(service *adminsvc.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger,
	}
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.ValidationError(c, "invalid "+name, err)
		return 0, false
	}
	return id, true
}

// ========== Dashboard ==========

func (h *AdminHandler) Dashboard(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	view, err := h.service.Dashboard(c.Request.Context(), user)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "admin dashboard", view)
}

// ========== Instructors ==========

func (h *AdminHandler) ListInstructors(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	if name := c.Query("name"); name != "" {
		instructors, err := h.service.SearchInstructors(c.Request.Context(), name)
		if err != nil {
			response.UpstreamError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "instructors", instructors)
		return
	}
	if department := c.Query("department"); department != "" {
		instructors, err := h.service.InstructorsByDepartment(c.Request.Context(), department)
		if err != nil {
			response.UpstreamError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "instructors", instructors)
		return
	}
	instructors, err := h.service.ListInstructors(c.Request.Context(), activeOnly)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "instructors", instructors)
}

func (h *AdminHandler) GetInstructor(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	instructor, err := h.service.GetInstructor(c.Request.Context(), id)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "instructor", instructor)
}

func (h *AdminHandler) CreateInstructor(c *gin.Context) {
	var req academics.InstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}
	instructor, err := h.service.CreateInstructor(c.Request.Context(), &req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	h.logger.Info("instructor created", zap.String("employee_id", req.EmployeeID))
	response.Success(c, http.StatusCreated, "instructor created", instructor)
}

func (h *AdminHandler) UpdateInstructor(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req academics.InstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}
	instructor, err := h.service.UpdateInstructor(c.Request.Context(), id, &req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "instructor updated", instructor)
}

func (h *AdminHandler) DeleteInstructor(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteInstructor(c.Request.Context(), id); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "instructor deactivated", nil)
}

func (h *AdminHandler) ActivateInstructor(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.service.ActivateInstructor(c.Request.Context(), id); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "instructor activated", nil)
}

func (h *AdminHandler) Departments(c *gin.Context) {
	departments, err := h.service.Departments(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "departments", departments)
}

// ========== Students ==========

func (h *AdminHandler) ListStudents(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		students, err := h.service.SearchStudents(c.Request.Context(), name)
		if err != nil {
			response.UpstreamError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "students", students)
		return
	}
	if major := c.Query("major"); major != "" {
		students, err := h.service.StudentsByMajor(c.Request.Context(), major)
		if err != nil {
			response.UpstreamError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "students", students)
		return
	}
	if year, err := strconv.Atoi(c.Query("year")); err == nil && year > 0 {
		students, err := h.service.StudentsByYear(c.Request.Context(), year)
		if err != nil {
			response.UpstreamError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "students", students)
		return
	}
	students, err := h.service.ListStudents(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "students", students)
}

func (h *AdminHandler) GetStudent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	student, err := h.service.GetStudent(c.Request.Context(), id)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "student", student)
}

func (h *AdminHandler) CreateStudent(c *gin.Context) {
	var req academics.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}
	student, err := h.service.CreateStudent(c.Request.Context(), &req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	h.logger.Info("student created", zap.String("student_id", req.StudentID))
	response.Success(c, http.StatusCreated, "student created", student)
}

func (h *AdminHandler) UpdateStudent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req academics.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}
	student, err := h.service.UpdateStudent(c.Request.Context(), id, &req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "student updated", student)
}

func (h *AdminHandler) DeleteStudent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteStudent(c.Request.Context(), id); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "student deactivated", nil)
}

func (h *AdminHandler) ActivateStudent(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.service.ActivateStudent(c.Request.Context(), id); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "student activated", nil)
}

func (h *AdminHandler) Majors(c *gin.Context) {
	majors, err := h.service.Majors(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "majors", majors)
}

// ========== Courses ==========

func (h *AdminHandler) ListCourses(c *gin.Context) {
	if query := c.Query("query"); query != "" {
		courses, err := h.service.SearchCourses(c.Request.Context(), query)
		if err != nil {
			response.UpstreamError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "courses", courses)
		return
	}
	if instructorID, err := strconv.ParseInt(c.Query("instructor"), 10, 64); err == nil && instructorID > 0 {
		courses, err := h.service.CoursesByInstructor(c.Request.Context(), instructorID)
		if err != nil {
			response.UpstreamError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "courses", courses)
		return
	}
	courses, err := h.service.ListCourses(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "courses", courses)
}

func (h *AdminHandler) GetCourse(c *gin.Context) {
	id, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	course, err := h.service.GetCourse(c.Request.Context(), id)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "course", course)
}

func (h *AdminHandler) CreateCourse(c *gin.Context) {
	var req academics.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}
	course, err := h.service.CreateCourse(c.Request.Context(), &req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	h.logger.Info("course created", zap.String("course_code", req.CourseCode))
	response.Success(c, http.StatusCreated, "course created", course)
}

func (h *AdminHandler) UpdateCourse(c *gin.Context) {
	id, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	var req academics.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}
	course, err := h.service.UpdateCourse(c.Request.Context(), id, &req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "course updated", course)
}

func (h *AdminHandler) DeleteCourse(c *gin.Context) {
	id, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	if err := h.service.DeleteCourse(c.Request.Context(), id); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "course deactivated", nil)
}

func (h *AdminHandler) ActivateCourse(c *gin.Context) {
	id, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	if err := h.service.ActivateCourse(c.Request.Context(), id); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "course activated", nil)
}

// ========== Enrollment ==========

func (h *AdminHandler) EnrollStudent(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	studentID, ok := paramID(c, "studentId")
	if !ok {
		return
	}
	if err := h.service.EnrollStudent(c.Request.Context(), courseID, studentID); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "student enrolled", nil)
}

func (h *AdminHandler) RemoveStudent(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	studentID, ok := paramID(c, "studentId")
	if !ok {
		return
	}
	if err := h.service.RemoveStudent(c.Request.Context(), courseID, studentID); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "student removed", nil)
}

func (h *AdminHandler) OpenEnrollment(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	if err := h.service.OpenEnrollment(c.Request.Context(), courseID); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "enrollment opened", nil)
}

func (h *AdminHandler) CloseEnrollment(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	if err := h.service.CloseEnrollment(c.Request.Context(), courseID); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "enrollment closed", nil)
}

// ========== Statistics ==========

func (h *AdminHandler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "statistics", stats)
}

func (h *AdminHandler) InstructorStatistics(c *gin.Context) {
	stats, err := h.service.InstructorStatistics(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "instructor statistics", stats)
}

func (h *AdminHandler) StudentStatistics(c *gin.Context) {
	stats, err := h.service.StudentStatistics(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "student statistics", stats)
}

func (h *AdminHandler) CourseStatistics(c *gin.Context) {
	stats, err := h.service.CourseStatistics(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "course statistics", stats)
}
