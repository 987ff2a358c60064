package music

// Submission review states. A submission transitions exactly once,
// PENDING -> APPROVED or PENDING -> REJECTED, and is immutable afterwards.
const (
	SubmissionPending  = "PENDING"
	SubmissionApproved = "APPROVED"
	SubmissionRejected = "REJECTED"
)

// Track states. ACTIVE is the only state today; the column exists so a
// takedown state can be added without a migration.
const (
	TrackActive = "ACTIVE"
)
