// internal/domain/academics/entity.go
package academics

// Wire shapes consumed from the upstream course-management API. JSON field
// names follow the upstream camelCase format and are passed through to the
// browser unchanged.

type Instructor struct {
	ID             int64   `json:"id"`
	EmployeeID     string  `json:"employeeId"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	PhoneNumber    string  `json:"phoneNumber,omitempty"`
	Department     string  `json:"department"`
	Specialization string  `json:"specialization,omitempty"`
	Qualification  string  `json:"qualification,omitempty"`
	HireDate       string  `json:"hireDate,omitempty"`
	Salary         float64 `json:"salary,omitempty"`
	Address        string  `json:"address,omitempty"`
	IsActive       bool    `json:"isActive"`
	CreatedAt      string  `json:"createdAt,omitempty"`
	UpdatedAt      string  `json:"updatedAt,omitempty"`
}

type Student struct {
	ID                 int64   `json:"id"`
	StudentID          string  `json:"studentId"`
	FirstName          string  `json:"firstName"`
	LastName           string  `json:"lastName"`
	Email              string  `json:"email"`
	PhoneNumber        string  `json:"phoneNumber,omitempty"`
	DateOfBirth        string  `json:"dateOfBirth,omitempty"`
	Gender             string  `json:"gender,omitempty"`
	Major              string  `json:"major"`
	Year               int     `json:"year"`
	EnrollmentDate     string  `json:"enrollmentDate,omitempty"`
	GraduationDate     string  `json:"graduationDate,omitempty"`
	GPA                float64 `json:"gpa,omitempty"`
	Status             string  `json:"status"`
	Address            string  `json:"address,omitempty"`
	ParentGuardianName string  `json:"parentGuardianName,omitempty"`
	EmergencyContact   string  `json:"emergencyContact,omitempty"`
	IsActive           bool    `json:"isActive"`
	CreatedAt          string  `json:"createdAt,omitempty"`
	UpdatedAt          string  `json:"updatedAt,omitempty"`
}

type EnrolledStudent struct {
	StudentID     int64  `json:"studentId"`
	StudentNumber string `json:"studentNumber"`
	StudentName   string `json:"studentName"`
	StudentEmail  string `json:"studentEmail"`
	Major         string `json:"major"`
	Year          int    `json:"year"`
}

type Course struct {
	ID                   int64             `json:"id"`
	CourseCode           string            `json:"courseCode"`
	CourseName           string            `json:"courseName"`
	Description          string            `json:"description,omitempty"`
	Credits              int               `json:"credits"`
	Department           string            `json:"department"`
	Semester             int               `json:"semester"`
	StartDate            string            `json:"startDate,omitempty"`
	EndDate              string            `json:"endDate,omitempty"`
	Schedule             string            `json:"schedule,omitempty"`
	Location             string            `json:"location,omitempty"`
	MaxCapacity          int               `json:"maxCapacity"`
	CurrentEnrollment    int               `json:"currentEnrollment"`
	AvailableSpots       int               `json:"availableSpots"`
	IsActive             bool              `json:"isActive"`
	EnrollmentOpen       bool              `json:"enrollmentOpen"`
	InstructorID         int64             `json:"instructorId,omitempty"`
	InstructorName       string            `json:"instructorName,omitempty"`
	InstructorEmail      string            `json:"instructorEmail,omitempty"`
	InstructorDepartment string            `json:"instructorDepartment,omitempty"`
	EnrolledStudents     []EnrolledStudent `json:"enrolledStudents,omitempty"`
	IsFull               bool              `json:"isFull"`
	CanEnroll            bool              `json:"canEnroll"`
	CreatedAt            string            `json:"createdAt,omitempty"`
	UpdatedAt            string            `json:"updatedAt,omitempty"`
}

// Statistics payloads from the upstream API are loose maps; the portal passes
// them through without reshaping.
type Statistics map[string]interface{}
