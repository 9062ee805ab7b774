// Package model provides domain models for the message service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lookup outcome values, matching catalog.Status.
const (
	StatusFound    = "found"
	StatusFallback = "fallback"
	StatusBadCode  = "bad_code"
)

// LookupEvent records one resolved message lookup.
type LookupEvent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	Key        string             `bson:"key" json:"key"`
	Preference string             `bson:"preference,omitempty" json:"preference,omitempty"`
	Requested  string             `bson:"requested" json:"requested"`
	Locale     string             `bson:"locale" json:"locale"`
	Status     string             `bson:"status" json:"status"`
	Alias      bool               `bson:"alias,omitempty" json:"alias,omitempty"`
	RequestID  string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
} // @name LookupEvent

// IsMiss reports whether the lookup ended in BAD_CODE.
func (e *LookupEvent) IsMiss() bool {
	return e.Status == StatusBadCode
}

// LookupQueryOptions filters stored lookup events.
type LookupQueryOptions struct {
	Key    string
	Status string
	Locale string
	Since  *time.Time
	Limit  int
	Skip   int
}

// KeyCount is the number of stored events for one key.
type KeyCount struct {
	Key   string    `bson:"_id" json:"key"`
	Count int64     `bson:"count" json:"count"`
	Last  time.Time `bson:"last" json:"last"`
} // @name KeyCount
