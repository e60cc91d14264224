package picker

import "public-chat-app/exception"

const MaxFileSize = 10 * 1024 * 1024

var allowedFileTypes = []string{
	"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp",
	"application/pdf", "text/plain", "application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ValidateFile applies the attachment pre-flight rules: at most 10MB and
// an allowed MIME type (images, PDF, plain text, Word documents).
func ValidateFile(name string, size int64, mimeType string) error {
	if size > MaxFileSize {
		return exception.NewValidation("Please select a file smaller than 10MB", map[string]string{
			"size": "File cannot exceed 10MB",
		})
	}

	allowed := false
	for _, t := range allowedFileTypes {
		if t == mimeType {
			allowed = true
			break
		}
	}
	if !allowed {
		return exception.NewValidation("Please select an image, PDF, or document file", map[string]string{
			"type": "Unsupported file type",
		})
	}

	return nil
}
