// internal/domain/academics/dto.go
package academics

// Create/update request bodies forwarded to the upstream API. Binding tags
// cover the simple input constraints enforced at the portal edge.

type InstructorRequest struct {
	EmployeeID     string  `json:"employeeId" binding:"required"`
	FirstName      string  `json:"firstName" binding:"required"`
	LastName       string  `json:"lastName" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	PhoneNumber    string  `json:"phoneNumber,omitempty"`
	Department     string  `json:"department" binding:"required"`
	Specialization string  `json:"specialization,omitempty"`
	Qualification  string  `json:"qualification,omitempty"`
	HireDate       string  `json:"hireDate,omitempty"`
	Salary         float64 `json:"salary,omitempty"`
	Address        string  `json:"address,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

type StudentRequest struct {
	StudentID          string `json:"studentId" binding:"required"`
	FirstName          string `json:"firstName" binding:"required"`
	LastName           string `json:"lastName" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	PhoneNumber        string `json:"phoneNumber,omitempty"`
	DateOfBirth        string `json:"dateOfBirth,omitempty"`
	Gender             string `json:"gender,omitempty"`
	Major              string `json:"major" binding:"required"`
	Year               int    `json:"year" binding:"required,min=1,max=8"`
	Status             string `json:"status,omitempty"`
	Address            string `json:"address,omitempty"`
	ParentGuardianName string `json:"parentGuardianName,omitempty"`
	EmergencyContact   string `json:"emergencyContact,omitempty"`
	IsActive           *bool  `json:"isActive,omitempty"`
}

type CourseRequest struct {
	CourseCode   string `json:"courseCode" binding:"required"`
	CourseName   string `json:"courseName" binding:"required"`
	Description  string `json:"description,omitempty"`
	Credits      int    `json:"credits" binding:"required,min=1"`
	Department   string `json:"department" binding:"required"`
	Semester     int    `json:"semester" binding:"required,min=1"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	Schedule     string `json:"schedule,omitempty"`
	Location     string `json:"location,omitempty"`
	MaxCapacity  int    `json:"maxCapacity" binding:"required,min=1"`
	InstructorID int64  `json:"instructorId,omitempty"`
	IsActive     *bool  `json:"isActive,omitempty"`
}
