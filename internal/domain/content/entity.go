// internal/domain/content/entity.go
package content

// CourseContent is a lecture note, announcement, assignment or file entry
// attached to a course. Students only receive published entries.
type CourseContent struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	ContentType      string `json:"contentType"`
	ContentTypeLabel string `json:"contentTypeDisplayName,omitempty"`
	Content          string `json:"content,omitempty"`
	FilePath         string `json:"filePath,omitempty"`
	FileName         string `json:"fileName,omitempty"`
	FileType         string `json:"fileType,omitempty"`
	FileSize         int64  `json:"fileSize,omitempty"`
	SortOrder        int    `json:"sortOrder,omitempty"`
	IsActive         bool   `json:"isActive"`
	IsPublished      bool   `json:"isPublished"`
	CourseID         int64  `json:"courseId"`
	CourseCode       string `json:"courseCode,omitempty"`
	CourseName       string `json:"courseName,omitempty"`
	CreatedByID      int64  `json:"createdById,omitempty"`
	CreatedByName    string `json:"createdByName,omitempty"`
	IsFileContent    bool   `json:"isFileContent,omitempty"`
	IsTextContent    bool   `json:"isTextContent,omitempty"`
	CreatedAt        string `json:"createdAt,omitempty"`
	UpdatedAt        string `json:"updatedAt,omitempty"`
}

type ContentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	ContentType string `json:"contentType" binding:"required"`
	Content     string `json:"content,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	FileType    string `json:"fileType,omitempty"`
	FileSize    int64  `json:"fileSize,omitempty"`
	SortOrder   int    `json:"sortOrder,omitempty"`
	IsPublished *bool  `json:"isPublished,omitempty"`
}
