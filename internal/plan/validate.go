package plan

// WithinSizeLimit reports whether a measured file size fits the API byte
// ceiling. Planner estimates are approximate, so produced files must be
// re-checked with this predicate.
func WithinSizeLimit(sizeBytes int64) bool {
	return sizeBytes <= MaxChunkBytes
}

// WithinDurationLimit reports whether a measured duration fits the API
// duration ceiling.
func WithinDurationLimit(durationSeconds float64) bool {
	return durationSeconds <= MaxTranscriptionSeconds
}
