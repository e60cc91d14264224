package enum

type AttachmentType string

const (
	AttachmentTypeImage AttachmentType = "image"
	AttachmentTypeFile  AttachmentType = "file"
	AttachmentTypeGif   AttachmentType = "gif"
)

func (t AttachmentType) IsValid() bool {
	switch t {
	case AttachmentTypeImage, AttachmentTypeFile, AttachmentTypeGif:
		return true
	}
	return false
}
