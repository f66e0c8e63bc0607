// Package models holds the record shapes shared by every component
// (spec §3, Schema/validation).
package models

import "time"

// Channel is the persisted channel record (spec §3).
type Channel struct {
	ID            int64
	ChannelID     string
	Title         string
	ChannelURL    string
	Description   string
	CustomURL     string
	FollowerCount int64
	ViewCount     int64
	VideoCount    int64
	PublishedAt   time.Time
	Country       string
	Tags          []string
	Thumbnails    []Thumbnail
	ListName      string
	LastUpdate    time.Time
	CreatedAt     time.Time
}

// ChannelHistory is an append-only snapshot of a channel's counters
// (spec §3).
type ChannelHistory struct {
	ID            int64
	ChannelID     string
	FollowerCount int64
	ViewCount     int64
	VideoCount    int64
	RecordedAt    time.Time
}

// ChannelDescriptor is what the Extractor Adapter returns for a
// channel URL: metadata plus the flat entries list (spec §4.1).
type ChannelDescriptor struct {
	ChannelID   string
	Title       string
	ChannelURL  string
	Description string
	Tags        []string
	Thumbnails  []Thumbnail
	Entries     []VideoStub
}

// VideoStub is one flat entry from a channel listing (spec §4.1).
type VideoStub struct {
	ID           string
	Title        string
	URL          string
	Duration     int64
	Tags         []string
	Thumbnails   []Thumbnail
	ViewCount    int64
	Timestamp    int64 // unix seconds, 0 if absent
	LiveStatus   string
	Availability string
}

// ChannelAPIInfo is the normalized result of AA.channel_info (spec §4.2).
type ChannelAPIInfo struct {
	ID                      string
	Title                   string
	Description             string
	CustomURL               string
	PublishedAt             time.Time
	Country                 string
	ViewCount               int64
	SubscriberCount         int64
	HiddenSubscriberCount   bool
	VideoCount              int64
	TopicIDs                []string
	TopicCategories         []string
	PrivacyStatus           string
	IsLinked                bool
	LongUploadsStatus       string
	MadeForKids             bool
	SelfDeclaredMadeForKids bool
}
