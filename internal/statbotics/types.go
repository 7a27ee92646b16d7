package statbotics

// TeamStats is the season metric record for one team in one year.
// Available is false when the provider has no data for the pair, which is a
// valid empty result rather than an error (rookie team, provider gap).
type TeamStats struct {
	EPA       float64
	Rank      int
	Available bool
}

// Empty returns the sentinel stats record used when no data is available.
func Empty() TeamStats {
	return TeamStats{}
}

// teamYearResponse mirrors the fields we consume from /v3/team_year/{team}/{year}.
type teamYearResponse struct {
	Team int `json:"team"`
	Year int `json:"year"`
	EPA  struct {
		TotalPoints struct {
			Mean float64 `json:"mean"`
			SD   float64 `json:"sd"`
		} `json:"total_points"`
		Ranks struct {
			Total struct {
				Rank      int `json:"rank"`
				TeamCount int `json:"team_count"`
			} `json:"total"`
		} `json:"ranks"`
	} `json:"epa"`
}
