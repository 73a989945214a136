package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// Accepted upload types
const (
	MimeImage = "image/"
)

var (
	AllowedImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}
)

const (
	// HoursPerSubmission is the study time credited for each exam attempt.
	HoursPerSubmission = 1.5

	MinPasswordLength = 6

	RecentStudentsLimit = 5
	RecentMessagesLimit = 10
	DashboardListLimit  = 5
)
