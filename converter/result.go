package converter

// Result holds the output of a conversion.
type Result struct {
	Markdown string    `json:"markdown"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// WarningType categorizes conversion warnings.
type WarningType string

const (
	WarningFetchFailed      WarningType = "fetch_failed"
	WarningImageTooLarge    WarningType = "image_too_large"
	WarningMissingAttribute WarningType = "missing_attribute"
)

// Warning represents a non-fatal issue encountered during conversion.
type Warning struct {
	Type    WarningType `json:"type"`
	Subject string      `json:"subject,omitempty"`
	Message string      `json:"message"`
}
