package domain

// Submission is a verification request as received from a caller.
// Content holds text as UTF-8 bytes. For image and video it holds the raw
// payload when FromFile is set and base64 text otherwise.
type Submission struct {
	Content     []byte
	ContentType ContentType
	SourceURL   *string
	Filename    string
	FromFile    bool
}

// Outcome is the verdict returned to the caller of a verification request.
type Outcome struct {
	VerificationID string   `json:"verification_id"`
	Status         Status   `json:"status"`
	Confidence     float64  `json:"confidence"`
	Classification string   `json:"classification"`
	Explanation    string   `json:"explanation"`
	Sources        []string `json:"sources"`
}
