package tba

import "errors"

// Errors returned by the roster lookup so callers can tell a bad credential
// from an unknown event from an unreachable provider.
var (
	ErrUnauthorized  = errors.New("the blue alliance rejected the API key")
	ErrEventNotFound = errors.New("event not found")
)

// teamSimple mirrors the fields we consume from /event/{event_key}/teams/simple.
type teamSimple struct {
	Key        string `json:"key"`
	TeamNumber int    `json:"team_number"`
	Nickname   string `json:"nickname"`
}

// awardResponse mirrors the fields we consume from /team/{team_key}/event/{event_key}/awards.
type awardResponse struct {
	Name      string `json:"name"`
	AwardType int    `json:"award_type"`
	EventKey  string `json:"event_key"`
	Year      int    `json:"year"`
}
