package common

const (
	// MaxFeedbackImageCount represents the number of images accepted per feedback.
	MaxFeedbackImageCount = 5
	// MaxFeedbackCommentRunes limits comment length to keep payloads sane.
	MaxFeedbackCommentRunes = 2000
	// MaxFeedbackRequestBody limits JSON request bodies for feedback endpoints.
	// Five base64 images of 10MiB each plus form fields fit comfortably.
	MaxFeedbackRequestBody = 72 << 20
)
