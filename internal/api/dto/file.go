package dto

// FilePayload is an uploaded file held in memory, the way multipart
// attachments arrive from the dashboard.
type FilePayload struct {
	Data        []byte
	ContentType string
	Name        string
}
