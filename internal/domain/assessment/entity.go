// internal/domain/assessment/entity.go
package assessment

// Result is a grade entry as served by the upstream API. Students only ever
// see released results; the upstream enforces that, the portal just relays.
type Result struct {
	ID              int64   `json:"id"`
	ResultValue     float64 `json:"resultValue"`
	ResultType      string  `json:"resultType"`
	ResultTypeLabel string  `json:"resultTypeDisplay,omitempty"`
	Title           string  `json:"title"`
	Description     string  `json:"description,omitempty"`
	IsReleased      bool    `json:"isReleased"`
	IsActive        bool    `json:"isActive"`
	ReleasedAt      string  `json:"releasedAt,omitempty"`
	StudentID       int64   `json:"studentId"`
	StudentName     string  `json:"studentName,omitempty"`
	StudentEmail    string  `json:"studentEmail,omitempty"`
	CourseID        int64   `json:"courseId"`
	CourseCode      string  `json:"courseCode,omitempty"`
	CourseName      string  `json:"courseName,omitempty"`
	InstructorID    int64   `json:"instructorId,omitempty"`
	InstructorName  string  `json:"instructorName,omitempty"`
	LetterResult    string  `json:"letterResult,omitempty"`
	CreatedAt       string  `json:"createdAt,omitempty"`
	UpdatedAt       string  `json:"updatedAt,omitempty"`
}

type ResultRequest struct {
	StudentID   int64   `json:"studentId" binding:"required"`
	CourseID    int64   `json:"courseId" binding:"required"`
	ResultValue float64 `json:"resultValue" binding:"required,min=0,max=100"`
	ResultType  string  `json:"resultType" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description,omitempty"`
}

// Average is the averaged-score payload for a student or course.
type Average struct {
	Average float64 `json:"average"`
	Count   int     `json:"count,omitempty"`
}
