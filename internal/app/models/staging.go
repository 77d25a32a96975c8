package models

// StagedObject describes a file parked in the staging area between the
// upload step and final submission.
type StagedObject struct {
	Ref         string `json:"ref"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}
