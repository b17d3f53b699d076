// Package models defines the records Back2Me persists and their JSON form.
package models

import (
	"errors"
	"strings"
	"time"
)

// Account is a registered user.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is the logged-in identity. Token is a signed credential that binds
// UserID and an expiry.
type Session struct {
	UserID   string    `json:"userId"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	IssuedAt time.Time `json:"loginTime"`
	Token    string    `json:"token"`
}

// ListingStatus tells whether an item was lost or found.
type ListingStatus string

const (
	StatusLost  ListingStatus = "lost"
	StatusFound ListingStatus = "found"
)

var ErrInvalidStatus = errors.New("status must be lost or found")

func (s ListingStatus) Valid() bool {
	return s == StatusLost || s == StatusFound
}

// ParseListingStatus accepts "lost" or "found" in any case.
func ParseListingStatus(s string) (ListingStatus, error) {
	st := ListingStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Listing is a lost or found post.
type Listing struct {
	ID          string        `json:"id"`
	AuthorID    string        `json:"userId"`
	AuthorName  string        `json:"authorName,omitempty"`
	Status      ListingStatus `json:"status"`
	ItemName    string        `json:"itemName"`
	Location    string        `json:"location"`
	Place       string        `json:"place"`
	Description string        `json:"description"`
	ImageRef    string        `json:"image"`
	CreatedAt   time.Time     `json:"timestamp"`
}

// SelfSender marks a seeded message written by whoever is logged in.
const SelfSender = "current"

// Message is one entry of a conversation.
type Message struct {
	ID       string    `json:"id"`
	SenderID string    `json:"senderId"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"time"`
}

// SentBy reports whether userID wrote m. Messages from SelfSender belong to
// every user.
func (m Message) SentBy(userID string) bool {
	return m.SenderID == userID || m.SenderID == SelfSender
}

// Conversation is a thread with one counterpart about one item.
type Conversation struct {
	ID              string    `json:"id"`
	CounterpartID   string    `json:"userId"`
	CounterpartName string    `json:"username"`
	SubjectLabel    string    `json:"itemInfo"`
	LastMessage     string    `json:"lastMessage"`
	LastActivity    time.Time `json:"lastActivity"`
	Messages        []Message `json:"messages"`
}
