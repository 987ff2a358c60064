package donation

// Donation lifecycle states. A donation transitions exactly once,
// CREATED -> CONFIRMED or CREATED -> CANCELED. Note and anonymity stay
// editable only while CREATED.
const (
	StatusCreated   = "CREATED"
	StatusConfirmed = "CONFIRMED"
	StatusCanceled  = "CANCELED"
)

// AnonymousPlaceholder replaces the donor identity in public appreciation
// posts for anonymous donations.
const AnonymousPlaceholder = "Someone"
