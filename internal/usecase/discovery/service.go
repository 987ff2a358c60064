// Package discovery owns the listener-facing usecases: search and the
// channel listing.
package discovery

import (
	"context"
	"strings"

	"sadomusic/internal/domain/music"
	"sadomusic/internal/errs"
	"sadomusic/internal/ports"
)

const searchLimit = 5

type Service struct {
	artists   ports.ArtistRepository
	tracks    ports.TrackRepository
	directory *music.ChannelDirectory
}

func NewService(artists ports.ArtistRepository, tracks ports.TrackRepository, directory *music.ChannelDirectory) *Service {
	return &Service{artists: artists, tracks: tracks, directory: directory}
}

type TrackHit struct {
	Track  ports.Track
	Artist ports.Artist
}

type SearchResult struct {
	Artists []ports.Artist
	Tracks  []TrackHit
}

// Search matches the query against artist names and track titles. Empty or
// whitespace-only queries return an empty result.
func (s *Service) Search(ctx context.Context, query string) (SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return SearchResult{}, nil
	}

	artists, err := s.artists.SearchByName(ctx, query, searchLimit)
	if err != nil {
		return SearchResult{}, errs.Wrap(err, "search artists")
	}

	tracks, err := s.tracks.SearchByTitle(ctx, query, searchLimit)
	if err != nil {
		return SearchResult{}, errs.Wrap(err, "search tracks")
	}

	hits := make([]TrackHit, 0, len(tracks))
	for _, t := range tracks {
		artist, err := s.artists.GetByID(ctx, t.ArtistID)
		if err != nil {
			// Orphaned track rows are skipped, not fatal.
			continue
		}
		hits = append(hits, TrackHit{Track: t, Artist: artist})
	}

	return SearchResult{Artists: artists, Tracks: hits}, nil
}

// Channels lists the configured publish channels for the /channels command.
func (s *Service) Channels() []music.ChannelEntry {
	return s.directory.Channels()
}
