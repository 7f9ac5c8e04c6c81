// internal/handlers/student/student_handler.go
package student

import (
	"net/http"
	"strconv"

	"campus-portal/internal/domain/academics"
	"campus-portal/internal/middleware"
	"campus-portal/internal/pkg/response"
	studentsvc "campus-portal/internal/service/student"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StudentHandler struct {
	service *studentsvc.StudentService
	logger  *zap.Logger
}

func NewStudentHandler(service *studentsvc.StudentService, logger *zap.Logger) *StudentHandler {
	return &StudentHandler{
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

// ========== Dashboard & profile ==========

func (h *StudentHandler) Dashboard(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	view, err := h.service.Dashboard(c.Request.Context(), user)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "student dashboard", view)
}

func (h *StudentHandler) Profile(c *gin.Context) {
	profile, err := h.service.Profile(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "profile", profile)
}

func (h *StudentHandler) UpdateProfile(c *gin.Context) {
	var req academics.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}
	profile, err := h.service.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "profile updated", profile)
}

// ========== Courses ==========

func (h *StudentHandler) Courses(c *gin.Context) {
	courses, err := h.service.Courses(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "courses", courses)
}

func (h *StudentHandler) Catalog(c *gin.Context) {
	courses, err := h.service.Catalog(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "catalog", courses)
}

func (h *StudentHandler) Course(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	course, err := h.service.Course(c.Request.Context(), courseID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "course", course)
}

func (h *StudentHandler) Enroll(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	if err := h.service.Enroll(c.Request.Context(), courseID); err != nil {
		response.UpstreamError(c, err)
		return
	}
	h.logger.Info("student enrolled", zap.Int64("course_id", courseID))
	response.Success(c, http.StatusOK, "enrolled", nil)
}

func (h *StudentHandler) Unenroll(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	if err := h.service.Unenroll(c.Request.Context(), courseID); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "unenrolled", nil)
}

func (h *StudentHandler) Schedule(c *gin.Context) {
	courses, err := h.service.Schedule(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "schedule", courses)
}

// ========== Results ==========

func (h *StudentHandler) Results(c *gin.Context) {
	results, err := h.service.Results(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "results", results)
}

func (h *StudentHandler) CourseResults(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	results, err := h.service.CourseResults(c.Request.Context(), courseID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "results", results)
}

func (h *StudentHandler) Average(c *gin.Context) {
	avg, err := h.service.Average(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "average", avg)
}

func (h *StudentHandler) CourseAverage(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	avg, err := h.service.CourseAverage(c.Request.Context(), courseID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "course average", avg)
}

// ========== Statistics ==========

func (h *StudentHandler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "statistics", stats)
}

// ========== Course content ==========

func (h *StudentHandler) CourseContent(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	if contentType := c.Query("type"); contentType != "" {
		entries, err := h.service.CourseContentByType(c.Request.Context(), courseID, contentType)
		if err != nil {
			response.UpstreamError(c, err)
			return
		}
		response.Success(c, http.StatusOK, "course content", entries)
		return
	}
	entries, err := h.service.CourseContent(c.Request.Context(), courseID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "course content", entries)
}

func (h *StudentHandler) ContentItem(c *gin.Context) {
	contentID, ok := paramID(c, "contentId")
	if !ok {
		return
	}
	entry, err := h.service.ContentItem(c.Request.Context(), contentID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "content", entry)
}

func (h *StudentHandler) Announcements(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	entries, err := h.service.Announcements(c.Request.Context(), courseID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "announcements", entries)
}

func (h *StudentHandler) RecentContent(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	entries, err := h.service.RecentContent(c.Request.Context(), courseID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "recent content", entries)
}
