package service

type Config struct {
	// DryRun makes PatchFile report the would-be patch count without writing.
	DryRun bool `json:"dryRun,omitempty"`

	// If true, return tool results in the `data` field instead of `text`.
	UseData bool `json:"useData,omitempty"`
	// Legacy flag to force using text field.
	UseText bool `json:"useText,omitempty"`
}
