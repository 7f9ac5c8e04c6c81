// internal/service/instructor/instructor.go
package instructor

import (
	"context"
	"fmt"

	"campus-portal/internal/apiclient"
	"campus-portal/internal/domain/academics"
	"campus-portal/internal/domain/assessment"
	"campus-portal/internal/domain/auth"
	"campus-portal/internal/domain/content"

	"go.uber.org/zap"
)

// InstructorService backs the instructor screens: own profile, taught
// courses, rosters, grading and course content management.
type InstructorService struct {
	client *apiclient.Client
	logger *zap.Logger
}

func NewInstructorService(client *apiclient.Client, logger *zap.Logger) *InstructorService {
	return &InstructorService{
		client: client,
		logger: logger,
	}
}

// ========== Profile ==========

func (s *InstructorService) Profile(ctx context.Context) (*academics.Instructor, error) {
	var out academics.Instructor
	if err := s.client.Get(ctx, "/api/instructor/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *InstructorService) UpdateProfile(ctx context.Context, req *academics.InstructorRequest) (*academics.Instructor, error) {
	var out academics.Instructor
	if err := s.client.Put(ctx, "/api/instructor/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ========== Courses ==========

func (s *InstructorService) Courses(ctx context.Context, activeOnly bool) ([]academics.Course, error) {
	path := "/api/instructor/courses"
	if activeOnly {
		path += "/active"
	}
	var out []academics.Course
	return out, s.client.Get(ctx, path, &out)
}

func (s *InstructorService) Course(ctx context.Context, courseID int64) (*academics.Course, error) {
	var out academics.Course
	if err := s.client.Get(ctx, fmt.Sprintf("/api/instructor/courses/%d", courseID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *InstructorService) UpdateCourse(ctx context.Context, courseID int64, req *academics.CourseRequest) (*academics.Course, error) {
	var out academics.Course
	if err := s.client.Put(ctx, fmt.Sprintf("/api/instructor/courses/%d", courseID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *InstructorService) OpenEnrollment(ctx context.Context, courseID int64) error {
	return s.client.Put(ctx, fmt.Sprintf("/api/instructor/courses/%d/enrollment/open", courseID), nil, nil)
}

func (s *InstructorService) CloseEnrollment(ctx context.Context, courseID int64) error {
	return s.client.Put(ctx, fmt.Sprintf("/api/instructor/courses/%d/enrollment/close", courseID), nil, nil)
}

func (s *InstructorService) Roster(ctx context.Context, courseID int64) ([]academics.EnrolledStudent, error) {
	var out []academics.EnrolledStudent
	return out, s.client.Get(ctx, fmt.Sprintf("/api/instructor/courses/%d/students", courseID), &out)
}

func (s *InstructorService) RemoveStudent(ctx context.Context, courseID, studentID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/instructor/courses/%d/students/%d", courseID, studentID), nil)
}

// ========== Results ==========

func (s *InstructorService) CourseResults(ctx context.Context, courseID int64) ([]assessment.Result, error) {
	var out []assessment.Result
	return out, s.client.Get(ctx, fmt.Sprintf("/api/instructor/courses/%d/results", courseID), &out)
}

func (s *InstructorService) StudentResults(ctx context.Context, courseID, studentID int64) ([]assessment.Result, error) {
	var out []assessment.Result
	return out, s.client.Get(ctx, fmt.Sprintf("/api/instructor/courses/%d/students/%d/results", courseID, studentID), &out)
}

func (s *InstructorService) Result(ctx context.Context, resultID int64) (*assessment.Result, error) {
	var out assessment.Result
	if err := s.client.Get(ctx, fmt.Sprintf("/api/instructor/results/%d", resultID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *InstructorService) CreateResult(ctx context.Context, req *assessment.ResultRequest) (*assessment.Result, error) {
	var out assessment.Result
	if err := s.client.Post(ctx, "/api/instructor/results", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *InstructorService) UpdateResult(ctx context.Context, resultID int64, req *assessment.ResultRequest) (*assessment.Result, error) {
	var out assessment.Result
	if err := s.client.Put(ctx, fmt.Sprintf("/api/instructor/results/%d", resultID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *InstructorService) DeleteResult(ctx context.Context, resultID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/instructor/results/%d", resultID), nil)
}

func (s *InstructorService) ReleaseResult(ctx context.Context, resultID int64) error {
	return s.client.Put(ctx, fmt.Sprintf("/api/instructor/results/%d/release", resultID), nil, nil)
}

func (s *InstructorService) UnreleaseResult(ctx context.Context, resultID int64) error {
	return s.client.Put(ctx, fmt.Sprintf("/api/instructor/results/%d/unrelease", resultID), nil, nil)
}

// ReleaseCourseResults releases every result of the course in one shot.
func (s *InstructorService) ReleaseCourseResults(ctx context.Context, courseID int64) error {
	return s.client.Put(ctx, fmt.Sprintf("/api/instructor/courses/%d/results/release", courseID), nil, nil)
}

func (s *InstructorService) CourseAverage(ctx context.Context, courseID int64) (*assessment.Average, error) {
	var out assessment.Average
	if err := s.client.Get(ctx, fmt.Sprintf("/api/instructor/courses/%d/results/average", courseID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ========== Statistics ==========

func (s *InstructorService) Statistics(ctx context.Context) (academics.Statistics, error) {
	var out academics.Statistics
	return out, s.client.Get(ctx, "/api/instructor/statistics", &out)
}

func (s *InstructorService) CourseStatistics(ctx context.Context, courseID int64) (academics.Statistics, error) {
	var out academics.Statistics
	return out, s.client.Get(ctx, fmt.Sprintf("/api/instructor/courses/%d/statistics", courseID), &out)
}

// ========== Course content ==========

func (s *InstructorService) CourseContent(ctx context.Context, courseID int64) ([]content.CourseContent, error) {
	var out []content.CourseContent
	return out, s.client.Get(ctx, fmt.Sprintf("/api/course-content/instructor/course/%d", courseID), &out)
}

func (s *InstructorService) CreateContent(ctx context.Context, courseID int64, req *content.ContentRequest) (*content.CourseContent, error) {
	var out content.CourseContent
	if err := s.client.Post(ctx, fmt.Sprintf("/api/course-content/instructor/course/%d", courseID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *InstructorService) UpdateContent(ctx context.Context, contentID int64, req *content.ContentRequest) (*content.CourseContent, error) {
	var out content.CourseContent
	if err := s.client.Put(ctx, fmt.Sprintf("/api/course-content/instructor/%d", contentID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *InstructorService) DeleteContent(ctx context.Context, contentID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/course-content/instructor/%d", contentID), nil)
}

func (s *InstructorService) PublishContent(ctx context.Context, contentID int64) error {
	return s.client.Put(ctx, fmt.Sprintf("/api/course-content/instructor/%d/publish", contentID), nil, nil)
}

func (s *InstructorService) UnpublishContent(ctx context.Context, contentID int64) error {
	return s.client.Put(ctx, fmt.Sprintf("/api/course-content/instructor/%d/unpublish", contentID), nil, nil)
}

// ========== Dashboard ==========

// DashboardView is the aggregated instructor landing payload.
type DashboardView struct {
	User       *auth.User            `json:"user"`
	Profile    *academics.Instructor `json:"profile"`
	Courses    []academics.Course    `json:"courses"`
	Statistics academics.Statistics  `json:"statistics"`
}

func (s *InstructorService) Dashboard(ctx context.Context, user *auth.User) (*DashboardView, error) {
	profile, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.Courses(ctx, false)
	if err != nil {
		return nil, err
	}
	stats, err := s.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardView{
		User:       user,
		Profile:    profile,
		Courses:    courses,
		Statistics: stats,
	}, nil
}

// Schedule is the weekly view: active courses carrying their schedule slots.
func (s *InstructorService) Schedule(ctx context.Context) ([]academics.Course, error) {
	return s.Courses(ctx, true)
}
