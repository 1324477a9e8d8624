package export

import "fmt"

// TagFormatError reports a tag set that cannot be represented in the
// bracketed, comma-separated header list. The list syntax has no escape
// mechanism, so a comma inside a tag is unrepresentable.
type TagFormatError struct {
	Tags []string
}

func (e *TagFormatError) Error() string {
	return fmt.Sprintf("tags must not contain commas: %v", e.Tags)
}

// AttachmentConflictError reports two attachments that normalize to the same
// output path but carry different content. The flat attachment directory
// cannot hold both, so the run stops here.
type AttachmentConflictError struct {
	Path string
}

func (e *AttachmentConflictError) Error() string {
	return fmt.Sprintf("conflicting content for attachment %s", e.Path)
}
