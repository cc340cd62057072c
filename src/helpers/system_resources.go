package helpers

// -----------------------------------------------------------------------------
// Memory Sizing
// -----------------------------------------------------------------------------

// RecommendedMemoryLimitMB calculates a safe working-set limit.
// Default policy: 75% of Total RAM.
// Fallback: 512MB.
func RecommendedMemoryLimitMB() int {
	// Call OS-specific implementation
	totalMB := GetTotalSystemMemoryMB()
	if totalMB == 0 {
		return 512
	}

	// Use 75% of available RAM
	limit := int(float64(totalMB) * 0.75)

	// Ensure at least 512MB if system has > 512MB, otherwise use total
	if limit < 512 {
		if totalMB < 512 {
			return totalMB // Very low memory system
		}
		return 512
	}

	return limit
}

// -----------------------------------------------------------------------------

// ExportFitsInMemory reports whether an export of the given byte size can be
// parsed comfortably. The parsed rows roughly double the raw size, so the
// check leaves that headroom.
func ExportFitsInMemory(sizeBytes int64) bool {
	limitMB := RecommendedMemoryLimitMB()
	neededMB := int(sizeBytes / (1024 * 1024) * 2)
	return neededMB < limitMB
}
