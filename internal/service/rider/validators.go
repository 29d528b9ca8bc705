package rider

// isReviewStatus reports whether status is a valid outcome of an
// application review. "pending" is not: applications only move
// forward.
func isReviewStatus(status string) bool {
	switch status {
	case "active", "rejected":
		return true
	default:
		return false
	}
}
