// internal/service/admin/admin.go
package admin

import (
	"context"
	"fmt"

	"campus-portal/internal/apiclient"
	"campus-portal/internal/domain/academics"
	"campus-portal/internal/domain/auth"

	"go.uber.org/zap"
)

// AdminService exposes the admin directory: instructors, students, courses,
// enrollment management and statistics. Every method is a thin fetch against
// the upstream API; the portal holds no data of record.
type AdminService struct {
	client *apiclient.Client
	logger *zap.Logger
}

func NewAdminService(client *apiclient.Client, logger *zap.Logger) *AdminService {
	return &AdminService{
		client: client,
		logger: logger,
	}
}

// ========== Instructors ==========

func (s *AdminService) ListInstructors(ctx context.Context, activeOnly bool) ([]academics.Instructor, error) {
	path := "/api/admin/instructors"
	if activeOnly {
		path += "/active"
	}
	var out []academics.Instructor
	return out, s.client.Get(ctx, path, &out)
}

func (s *AdminService) GetInstructor(ctx context.Context, id int64) (*academics.Instructor, error) {
	var out academics.Instructor
	if err := s.client.Get(ctx, fmt.Sprintf("/api/admin/instructors/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) SearchInstructors(ctx context.Context, name string) ([]academics.Instructor, error) {
	var out []academics.Instructor
	return out, s.client.Get(ctx, "/api/admin/instructors/search?name="+queryEscape(name), &out)
}

func (s *AdminService) InstructorsByDepartment(ctx context.Context, department string) ([]academics.Instructor, error) {
	var out []academics.Instructor
	return out, s.client.Get(ctx, "/api/admin/instructors/department/"+pathEscape(department), &out)
}

func (s *AdminService) CreateInstructor(ctx context.Context, req *academics.InstructorRequest) (*academics.Instructor, error) {
	var out academics.Instructor
	if err := s.client.Post(ctx, "/api/admin/instructors", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) UpdateInstructor(ctx context.Context, id int64, req *academics.InstructorRequest) (*academics.Instructor, error) {
	var out academics.Instructor
	if err := s.client.Put(ctx, fmt.Sprintf("/api/admin/instructors/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInstructor is a soft delete; ActivateInstructor undoes it.
func (s *AdminService) DeleteInstructor(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/admin/instructors/%d", id), nil)
}

func (s *AdminService) ActivateInstructor(ctx context.Context, id int64) error {
	return s.client.Put(ctx, fmt.Sprintf("/api/admin/instructors/%d/activate", id), nil, nil)
}

func (s *AdminService) Departments(ctx context.Context) ([]string, error) {
	var out []string
	return out, s.client.Get(ctx, "/api/admin/instructors/departments", &out)
}

// ========== Students ==========

func (s *AdminService) ListStudents(ctx context.Context, activeOnly bool) ([]academics.Student, error) {
	path := "/api/admin/students"
	if activeOnly {
		path += "/active"
	}
	var out []academics.Student
	return out, s.client.Get(ctx, path, &out)
}

func (s *AdminService) GetStudent(ctx context.Context, id int64) (*academics.Student, error) {
	var out academics.Student
	if err := s.client.Get(ctx, fmt.Sprintf("/api/admin/students/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) SearchStudents(ctx context.Context, name string) ([]academics.Student, error) {
	var out []academics.Student
	return out, s.client.Get(ctx, "/api/admin/students/search?name="+queryEscape(name), &out)
}

func (s *AdminService) StudentsByMajor(ctx context.Context, major string) ([]academics.Student, error) {
	var out []academics.Student
	return out, s.client.Get(ctx, "/api/admin/students/major/"+pathEscape(major), &out)
}

func (s *AdminService) StudentsByYear(ctx context.Context, year int) ([]academics.Student, error) {
	var out []academics.Student
	return out, s.client.Get(ctx, fmt.Sprintf("/api/admin/students/year/%d", year), &out)
}

func (s *AdminService) CreateStudent(ctx context.Context, req *academics.StudentRequest) (*academics.Student, error) {
	var out academics.Student
	if err := s.client.Post(ctx, "/api/admin/students", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) UpdateStudent(ctx context.Context, id int64, req *academics.StudentRequest) (*academics.Student, error) {
	var out academics.Student
	if err := s.client.Put(ctx, fmt.Sprintf("/api/admin/students/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) DeleteStudent(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/admin/students/%d", id), nil)
}

func (s *AdminService) ActivateStudent(ctx context.Context, id int64) error {
	return s.client.Put(ctx, fmt.Sprintf("/api/admin/students/%d/activate", id), nil, nil)
}

func (s *AdminService) Majors(ctx context.Context) ([]string, error) {
	var out []string
	return out, s.client.Get(ctx, "/api/admin/students/majors", &out)
}

// ========== Courses ==========

func (s *AdminService) ListCourses(ctx context.Context, activeOnly bool) ([]academics.Course, error) {
	path := "/api/admin/courses"
	if activeOnly {
		path += "/active"
	}
	var out []academics.Course
	return out, s.client.Get(ctx, path, &out)
}

func (s *AdminService) GetCourse(ctx context.Context, id int64) (*academics.Course, error) {
	var out academics.Course
	if err := s.client.Get(ctx, fmt.Sprintf("/api/admin/courses/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) SearchCourses(ctx context.Context, query string) ([]academics.Course, error) {
	var out []academics.Course
	return out, s.client.Get(ctx, "/api/admin/courses/search?query="+queryEscape(query), &out)
}

func (s *AdminService) CoursesByInstructor(ctx context.Context, instructorID int64) ([]academics.Course, error) {
	var out []academics.Course
	return out, s.client.Get(ctx, fmt.Sprintf("/api/admin/courses/instructor/%d", instructorID), &out)
}

func (s *AdminService) CreateCourse(ctx context.Context, req *academics.CourseRequest) (*academics.Course, error) {
	var out academics.Course
	if err := s.client.Post(ctx, "/api/admin/courses", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) UpdateCourse(ctx context.Context, id int64, req *academics.CourseRequest) (*academics.Course, error) {
	var out academics.Course
	if err := s.client.Put(ctx, fmt.Sprintf("/api/admin/courses/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) DeleteCourse(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/admin/courses/%d", id), nil)
}

func (s *AdminService) ActivateCourse(ctx context.Context, id int64) error {
	return s.client.Put(ctx, fmt.Sprintf("/api/admin/courses/%d/activate", id), nil, nil)
}

// ========== Enrollment management ==========

func (s *AdminService) EnrollStudent(ctx context.Context, courseID, studentID int64) error {
	return s.client.Post(ctx, fmt.Sprintf("/api/admin/courses/%d/enroll/%d", courseID, studentID), nil, nil)
}

func (s *AdminService) RemoveStudent(ctx context.Context, courseID, studentID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/admin/courses/%d/enroll/%d", courseID, studentID), nil)
}

func (s *AdminService) OpenEnrollment(ctx context.Context, courseID int64) error {
	return s.client.Put(ctx, fmt.Sprintf("/api/admin/courses/%d/enrollment/open", courseID), nil, nil)
}

func (s *AdminService) CloseEnrollment(ctx context.Context, courseID int64) error {
	return s.client.Put(ctx, fmt.Sprintf("/api/admin/courses/%d/enrollment/close", courseID), nil, nil)
}

// ========== Statistics ==========

func (s *AdminService) Statistics(ctx context.Context) (academics.Statistics, error) {
	var out academics.Statistics
	return out, s.client.Get(ctx, "/api/admin/statistics", &out)
}

func (s *AdminService) InstructorStatistics(ctx context.Context) (academics.Statistics, error) {
	var out academics.Statistics
	return out, s.client.Get(ctx, "/api/admin/statistics/instructors", &out)
}

func (s *AdminService) StudentStatistics(ctx context.Context) (academics.Statistics, error) {
	var out academics.Statistics
	return out, s.client.Get(ctx, "/api/admin/statistics/students", &out)
}

func (s *AdminService) CourseStatistics(ctx context.Context) (academics.Statistics, error) {
	var out academics.Statistics
	return out, s.client.Get(ctx, "/api/admin/statistics/courses", &out)
}

// ========== Dashboard ==========

// DashboardView is the single payload the admin landing screen renders.
type DashboardView struct {
	User        *auth.User             `json:"user"`
	Instructors []academics.Instructor `json:"instructors"`
	Students    []academics.Student    `json:"students"`
	Courses     []academics.Course     `json:"courses"`
	Statistics  academics.Statistics   `json:"statistics"`
}

// Dashboard aggregates the directory listings plus the overview statistics.
// Fetches are sequential; a failure on any leg fails the whole view.
func (s *AdminService) Dashboard(ctx context.Context, user *auth.User) (*DashboardView, error) {
	instructors, err := s.ListInstructors(ctx, false)
	if err != nil {
		return nil, err
	}
	students, err := s.ListStudents(ctx, false)
	if err != nil {
		return nil, err
	}
	courses, err := s.ListCourses(ctx, false)
	if err != nil {
		return nil, err
	}
	stats, err := s.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardView{
		User:        user,
		Instructors: instructors,
		Students:    students,
		Courses:     courses,
		Statistics:  stats,
	}, nil
}
