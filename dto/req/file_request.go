package req

// ValidateFileRequest is the pre-flight check a client runs before
// attaching a file. Binary upload itself stays out of scope.
type ValidateFileRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	Size int64  `json:"size" validate:"required,min=1"`
	Type string `json:"type" validate:"required"`
}
