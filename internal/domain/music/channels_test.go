package music

import "testing"

func newTestDirectory() *ChannelDirectory {
	return NewChannelDirectory(
		map[string]string{
			"pop":       "@pop_channel",
			"rock":      "-1001234",
			"hiphop":    "hiphop_channel",
			"discovery": "@discovery_channel",
		},
		map[string]string{
			"pop": "@pop_chat",
		},
	)
}

func TestChannelForGenreGroups(t *testing.T) {
	t.Parallel()

	d := newTestDirectory()

	ref, ok := d.ChannelFor("Pop")
	if !ok || ref.Username != "@pop_channel" {
		t.Fatalf("ChannelFor(Pop) = %+v, %v", ref, ok)
	}

	ref, ok = d.ChannelFor("Rock")
	if !ok || ref.ID != -1001234 {
		t.Fatalf("ChannelFor(Rock) = %+v, %v, want numeric id", ref, ok)
	}

	// Rap shares the hiphop channel; the @ prefix is added when missing.
	ref, ok = d.ChannelFor("Rap")
	if !ok || ref.Username != "@hiphop_channel" {
		t.Fatalf("ChannelFor(Rap) = %+v, %v", ref, ok)
	}

	// Unmapped genres land in discovery.
	ref, ok = d.ChannelFor("Electronic")
	if !ok || ref.Username != "@discovery_channel" {
		t.Fatalf("ChannelFor(Electronic) = %+v, %v", ref, ok)
	}
}

func TestDiscussionForMissingGroup(t *testing.T) {
	t.Parallel()

	d := newTestDirectory()
	if _, ok := d.DiscussionFor("Rock"); ok {
		t.Fatal("DiscussionFor(Rock) reported a destination that was never configured")
	}
	if ref, ok := d.DiscussionFor("Pop"); !ok || ref.Username != "@pop_chat" {
		t.Fatalf("DiscussionFor(Pop) = %+v, %v", ref, ok)
	}
}

func TestChannelsListingOrderAndGaps(t *testing.T) {
	t.Parallel()

	d := NewChannelDirectory(map[string]string{
		"discovery": "@d",
		"pop":       "@p",
		"rock":      "",
	}, nil)

	entries := d.Channels()
	if len(entries) != 2 {
		t.Fatalf("Channels() returned %d entries, want 2", len(entries))
	}
	if entries[0].Group != "pop" || entries[1].Group != "discovery" {
		t.Fatalf("Channels() order = %s,%s, want pop,discovery", entries[0].Group, entries[1].Group)
	}
}

func TestParseChatRefEmpty(t *testing.T) {
	t.Parallel()

	if ref := ParseChatRef("  "); !ref.IsZero() {
		t.Fatalf("ParseChatRef(blank) = %+v, want zero", ref)
	}
}
