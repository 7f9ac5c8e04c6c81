// internal/service/student/student.go
package student

import (
	"context"
	"fmt"
	"net/url"

	"campus-portal/internal/apiclient"
	"campus-portal/internal/domain/academics"
	"campus-portal/internal/domain/assessment"
	"campus-portal/internal/domain/auth"
	"campus-portal/internal/domain/content"

	"go.uber.org/zap"
)

// StudentService backs the student screens: own profile, enrolled courses,
// the course catalog, released results and published course content.
type StudentService struct {
	client *apiclient.Client
	logger *zap.Logger
}

func NewStudentService(client *apiclient.Client, logger *zap.Logger) *StudentService {
	return &StudentService{
		client: client,
		logger: logger,
	}
}

// ========== Profile ==========

func (s *StudentService) Profile(ctx context.Context) (*academics.Student, error) {
	var out academics.Student
	if err := s.client.Get(ctx, "/api/student/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StudentService) UpdateProfile(ctx context.Context, req *academics.StudentRequest) (*academics.Student, error) {
	var out academics.Student
	if err := s.client.Put(ctx, "/api/student/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ========== Courses ==========

func (s *StudentService) Courses(ctx context.Context) ([]academics.Course, error) {
	var out []academics.Course
	return out, s.client.Get(ctx, "/api/student/courses", &out)
}

// Catalog lists courses that are open for enrollment.
func (s *StudentService) Catalog(ctx context.Context) ([]academics.Course, error) {
	var out []academics.Course
	return out, s.client.Get(ctx, "/api/student/courses/available", &out)
}

func (s *StudentService) Course(ctx context.Context, courseID int64) (*academics.Course, error) {
	var out academics.Course
	if err := s.client.Get(ctx, fmt.Sprintf("/api/student/courses/%d", courseID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StudentService) Enroll(ctx context.Context, courseID int64) error {
	return s.client.Post(ctx, fmt.Sprintf("/api/student/courses/%d/enroll", courseID), nil, nil)
}

func (s *StudentService) Unenroll(ctx context.Context, courseID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/student/courses/%d/unenroll", courseID), nil)
}

// ========== Results ==========

func (s *StudentService) Results(ctx context.Context) ([]assessment.Result, error) {
	var out []assessment.Result
	return out, s.client.Get(ctx, "/api/student/results", &out)
}

func (s *StudentService) CourseResults(ctx context.Context, courseID int64) ([]assessment.Result, error) {
	var out []assessment.Result
	return out, s.client.Get(ctx, fmt.Sprintf("/api/student/courses/%d/results", courseID), &out)
}

func (s *StudentService) Average(ctx context.Context) (*assessment.Average, error) {
	var out assessment.Average
	if err := s.client.Get(ctx, "/api/student/results/average", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StudentService) CourseAverage(ctx context.Context, courseID int64) (*assessment.Average, error) {
	var out assessment.Average
	if err := s.client.Get(ctx, fmt.Sprintf("/api/student/courses/%d/results/average", courseID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ========== Statistics ==========

func (s *StudentService) Statistics(ctx context.Context) (academics.Statistics, error) {
	var out academics.Statistics
	return out, s.client.Get(ctx, "/api/student/statistics", &out)
}

// ========== Course content ==========

// CourseContent lists published entries for an enrolled course.
func (s *StudentService) CourseContent(ctx context.Context, courseID int64) ([]content.CourseContent, error) {
	var out []content.CourseContent
	return out, s.client.Get(ctx, fmt.Sprintf("/api/course-content/student/course/%d", courseID), &out)
}

func (s *StudentService) CourseContentByType(ctx context.Context, courseID int64, contentType string) ([]content.CourseContent, error) {
	var out []content.CourseContent
	return out, s.client.Get(ctx, fmt.Sprintf("/api/course-content/student/course/%d/type/%s", courseID, url.PathEscape(contentType)), &out)
}

func (s *StudentService) ContentItem(ctx context.Context, contentID int64) (*content.CourseContent, error) {
	var out content.CourseContent
	if err := s.client.Get(ctx, fmt.Sprintf("/api/course-content/student/%d", contentID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StudentService) Announcements(ctx context.Context, courseID int64) ([]content.CourseContent, error) {
	var out []content.CourseContent
	return out, s.client.Get(ctx, fmt.Sprintf("/api/course-content/student/course/%d/announcements", courseID), &out)
}

func (s *StudentService) RecentContent(ctx context.Context, courseID int64) ([]content.CourseContent, error) {
	var out []content.CourseContent
	return out, s.client.Get(ctx, fmt.Sprintf("/api/course-content/student/course/%d/recent", courseID), &out)
}

// ========== Dashboard ==========

// DashboardView is the aggregated student landing payload.
type DashboardView struct {
	User       *auth.User           `json:"user"`
	Profile    *academics.Student   `json:"profile"`
	Courses    []academics.Course   `json:"courses"`
	Results    []assessment.Result  `json:"results"`
	Statistics academics.Statistics `json:"statistics"`
}

func (s *StudentService) Dashboard(ctx context.Context, user *auth.User) (*DashboardView, error) {
	profile, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.Courses(ctx)
	if err != nil {
		return nil, err
	}
	results, err := s.Results(ctx)
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
		Results:    results,
		Statistics: stats,
	}, nil
}

// Schedule is the weekly view over the student's enrolled courses.
func (s *StudentService) Schedule(ctx context.Context) ([]academics.Course, error) {
	return s.Courses(ctx)
}
