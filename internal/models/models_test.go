package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListingStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    ListingStatus
		wantErr bool
	}{
		{"lost", StatusLost, false},
		{" Found ", StatusFound, false},
		{"LOST", StatusLost, false},
		{"stolen", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseListingStatus(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListing_JSONFieldNames(t *testing.T) {
	l := Listing{ID: "p", AuthorID: "u", Status: StatusFound, ItemName: "Keys", ImageRef: "img"}
	b, err := json.Marshal(l)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "u", m["userId"])
	assert.Equal(t, "found", m["status"])
	assert.Equal(t, "Keys", m["itemName"])
	assert.Equal(t, "img", m["image"])
	assert.NotContains(t, m, "authorName")
}

func TestSeedListings(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	got := SeedListings(now)

	require.Len(t, got, 5)
	lost := 0
	for i, l := range got {
		assert.True(t, l.Status.Valid())
		assert.NotEmpty(t, l.ID)
		if i > 0 {
			assert.True(t, got[i-1].CreatedAt.After(l.CreatedAt), "seed is ordered newest first")
		}
		if l.Status == StatusLost {
			lost++
		}
	}
	assert.Equal(t, 3, lost)
	assert.Equal(t, now.Add(-24*time.Hour), got[4].CreatedAt)
}

func TestMessage_SentBy(t *testing.T) {
	assert.True(t, Message{SenderID: "user_a"}.SentBy("user_a"))
	assert.False(t, Message{SenderID: "user_a"}.SentBy("user_b"))
	assert.True(t, Message{SenderID: SelfSender}.SentBy("user_a"))
	assert.True(t, Message{SenderID: SelfSender}.SentBy("user_b"))
}

func TestSeedConversations(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	got := SeedConversations(now)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"conv_1", "conv_2", "conv_3"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, "Michael Chen", got[0].CounterpartName)
	assert.Equal(t, SelfSender, got[0].Messages[0].SenderID)
	assert.Equal(t, SelfSender, got[1].Messages[1].SenderID)

	for _, c := range got {
		last := c.Messages[len(c.Messages)-1]
		assert.Equal(t, last.Text, c.LastMessage)
		assert.Equal(t, last.SentAt, c.LastActivity)
	}
}
