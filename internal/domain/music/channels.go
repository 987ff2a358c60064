package music

import (
	"strconv"
	"strings"
)

// ChatRef addresses a platform chat either by numeric id or @username.
// The zero value means "not configured".
type ChatRef struct {
	ID       int64
	Username string
}

func (r ChatRef) IsZero() bool {
	return r.ID == 0 && r.Username == ""
}

// ParseChatRef accepts a numeric chat id or a channel @username.
func ParseChatRef(raw string) ChatRef {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ChatRef{}
	}
	if id, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return ChatRef{ID: id}
	}
	if !strings.HasPrefix(trimmed, "@") {
		trimmed = "@" + trimmed
	}
	return ChatRef{Username: trimmed}
}

// ChannelDirectory resolves the publish channel and discussion group for a
// genre. A missing destination is a first-class outcome, never a silent
// default.
type ChannelDirectory struct {
	channels    map[string]ChatRef
	discussions map[string]ChatRef
}

// NewChannelDirectory takes group-keyed destinations (pop/rock/hiphop/discovery).
func NewChannelDirectory(channels, discussions map[string]string) *ChannelDirectory {
	parse := func(src map[string]string) map[string]ChatRef {
		out := make(map[string]ChatRef, len(src))
		for group, raw := range src {
			ref := ParseChatRef(raw)
			if !ref.IsZero() {
				out[group] = ref
			}
		}
		return out
	}
	return &ChannelDirectory{
		channels:    parse(channels),
		discussions: parse(discussions),
	}
}

func (d *ChannelDirectory) ChannelFor(genre string) (ChatRef, bool) {
	ref, ok := d.channels[genreGroup(genre)]
	return ref, ok
}

func (d *ChannelDirectory) DiscussionFor(genre string) (ChatRef, bool) {
	ref, ok := d.discussions[genreGroup(genre)]
	return ref, ok
}

// channelGroups fixes the listing order for the /channels command.
var channelGroups = []string{"pop", "rock", "hiphop", "discovery"}

// ChannelEntry pairs a group key with its configured destination.
type ChannelEntry struct {
	Group string
	Ref   ChatRef
}

// Channels lists the configured publish channels in display order.
func (d *ChannelDirectory) Channels() []ChannelEntry {
	var out []ChannelEntry
	for _, group := range channelGroups {
		if ref, ok := d.channels[group]; ok {
			out = append(out, ChannelEntry{Group: group, Ref: ref})
		}
	}
	return out
}
