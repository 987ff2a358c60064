package music

import "errors"

var (
	ErrNameTooShort       = errors.New("name is too short")
	ErrTitleTooShort      = errors.New("title is too short")
	ErrInvalidPaymentLink = errors.New("payment link must be an absolute http(s) url")
	ErrInvalidGenre       = errors.New("genre is not in the allowed set")

	ErrArtistExists    = errors.New("artist already registered for this user")
	ErrAlreadyReviewed = errors.New("submission already reviewed")
	ErrTrackInactive   = errors.New("track is not active")

	ErrChannelNotConfigured = errors.New("no channel configured for genre")
)
