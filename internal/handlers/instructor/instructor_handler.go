// internal/handlers/instructor/instructor_handler.go
package instructor

import (
	"net/http"
	"strconv"

	"campus-portal/internal/domain/academics"
	"campus-portal/internal/domain/assessment"
	"campus-portal/internal/domain/content"
	"campus-portal/internal/middleware"
	"campus-portal/internal/pkg/response"
	instructorsvc "campus-portal/internal/service/instructor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InstructorHandler struct {
	service *instructorsvc.InstructorService
	logger  *zap.Logger
}

func NewInstructorHandler(service *instructorsvc.InstructorService, logger *zap.Logger) *InstructorHandler {
	return &InstructorHandler{
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

func (h *InstructorHandler) Dashboard(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	view, err := h.service.Dashboard(c.Request.Context(), user)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "instructor dashboard", view)
}

func (h *InstructorHandler) Profile(c *gin.Context) {
	profile, err := h.service.Profile(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "profile", profile)
}

func (h *InstructorHandler) UpdateProfile(c *gin.Context) {
	var req academics.InstructorRequest
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

func (h *InstructorHandler) Courses(c *gin.Context) {
	courses, err := h.service.Courses(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "courses", courses)
}

func (h *InstructorHandler) Course(c *gin.Context) {
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

func (h *InstructorHandler) UpdateCourse(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	var req academics.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}
	course, err := h.service.UpdateCourse(c.Request.Context(), courseID, &req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "course updated", course)
}

func (h *InstructorHandler) OpenEnrollment(c *gin.Context) {
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

func (h *InstructorHandler) CloseEnrollment(c *gin.Context) {
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

func (h *InstructorHandler) Roster(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	roster, err := h.service.Roster(c.Request.Context(), courseID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "roster", roster)
}

func (h *InstructorHandler) RemoveStudent(c *gin.Context) {
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

func (h *InstructorHandler) Schedule(c *gin.Context) {
	courses, err := h.service.Schedule(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "schedule", courses)
}

// ========== Results ==========

func (h *InstructorHandler) CourseResults(c *gin.Context) {
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

func (h *InstructorHandler) StudentResults(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	studentID, ok := paramID(c, "studentId")
	if !ok {
		return
	}
	results, err := h.service.StudentResults(c.Request.Context(), courseID, studentID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "results", results)
}

func (h *InstructorHandler) Result(c *gin.Context) {
	resultID, ok := paramID(c, "resultId")
	if !ok {
		return
	}
	result, err := h.service.Result(c.Request.Context(), resultID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "result", result)
}

func (h *InstructorHandler) CreateResult(c *gin.Context) {
	var req assessment.ResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}
	result, err := h.service.CreateResult(c.Request.Context(), &req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	h.logger.Info("result created",
		zap.Int64("student_id", req.StudentID),
		zap.Int64("course_id", req.CourseID),
	)
	response.Success(c, http.StatusCreated, "result created", result)
}

func (h *InstructorHandler) UpdateResult(c *gin.Context) {
	resultID, ok := paramID(c, "resultId")
	if !ok {
		return
	}
	var req assessment.ResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}
	result, err := h.service.UpdateResult(c.Request.Context(), resultID, &req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "result updated", result)
}

func (h *InstructorHandler) DeleteResult(c *gin.Context) {
	resultID, ok := paramID(c, "resultId")
	if !ok {
		return
	}
	if err := h.service.DeleteResult(c.Request.Context(), resultID); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "result deleted", nil)
}

func (h *InstructorHandler) ReleaseResult(c *gin.Context) {
	resultID, ok := paramID(c, "resultId")
	if !ok {
		return
	}
	if err := h.service.ReleaseResult(c.Request.Context(), resultID); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "result released", nil)
}

func (h *InstructorHandler) UnreleaseResult(c *gin.Context) {
	resultID, ok := paramID(c, "resultId")
	if !ok {
		return
	}
	if err := h.service.UnreleaseResult(c.Request.Context(), resultID); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "result unreleased", nil)
}

func (h *InstructorHandler) ReleaseCourseResults(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	if err := h.service.ReleaseCourseResults(c.Request.Context(), courseID); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "course results released", nil)
}

func (h *InstructorHandler) CourseAverage(c *gin.Context) {
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

func (h *InstructorHandler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "statistics", stats)
}

func (h *InstructorHandler) CourseStatistics(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	stats, err := h.service.CourseStatistics(c.Request.Context(), courseID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "course statistics", stats)
}

// ========== Course content ==========

func (h *InstructorHandler) CourseContent(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	entries, err := h.service.CourseContent(c.Request.Context(), courseID)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "course content", entries)
}

func (h *InstructorHandler) CreateContent(c *gin.Context) {
	courseID, ok := paramID(c, "courseId")
	if !ok {
		return
	}
	var req content.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}
	entry, err := h.service.CreateContent(c.Request.Context(), courseID, &req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "content created", entry)
}

func (h *InstructorHandler) UpdateContent(c *gin.Context) {
	contentID, ok := paramID(c, "contentId")
	if !ok {
		return
	}
	var req content.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}
	entry, err := h.service.UpdateContent(c.Request.Context(), contentID, &req)
	if err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "content updated", entry)
}

func (h *InstructorHandler) DeleteContent(c *gin.Context) {
	contentID, ok := paramID(c, "contentId")
	if !ok {
		return
	}
	if err := h.service.DeleteContent(c.Request.Context(), contentID); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "content deleted", nil)
}

func (h *InstructorHandler) PublishContent(c *gin.Context) {
	contentID, ok := paramID(c, "contentId")
	if !ok {
		return
	}
	if err := h.service.PublishContent(c.Request.Context(), contentID); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "content published", nil)
}

func (h *InstructorHandler) UnpublishContent(c *gin.Context) {
	contentID, ok := paramID(c, "contentId")
	if !ok {
		return
	}
	if err := h.service.UnpublishContent(c.Request.Context(), contentID); err != nil {
		response.UpstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "content unpublished", nil)
}
