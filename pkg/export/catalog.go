package export

// Catalog summarizes one conversion run. It is marshaled to export.yaml in
// the output directory after a successful pass, giving a loggable record of
// what was written and the digest of every attachment touched.
type Catalog struct {
	Source      string             `yaml:"source,omitempty"`
	Notes       int                `yaml:"notes"`
	Attachments []AttachmentRecord `yaml:"attachments,omitempty"`
}

// AttachmentRecord is one catalog line per attachment occurrence.
type AttachmentRecord struct {
	Name   string `yaml:"name"`
	Note   string `yaml:"note"`
	Action string `yaml:"action"`
	SHA256 string `yaml:"sha256,omitempty"`
}
