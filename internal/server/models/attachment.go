package models

import "time"

// Attachment links a post to an object stored in the S3-compatible backend.
// StorageKey is the object key clients upload to via a presigned URL.
type Attachment struct {
	ID         string
	PostID     string
	StorageKey string
	CreatedAt  time.Time
}
