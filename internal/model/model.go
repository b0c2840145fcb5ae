// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

// Player is a registered athlete. Ball records reference players by name,
// not id, so a deleted player survives in historical scores as plain text.
type Player struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Team represents a cricket team.
type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Match is a fixture between two distinct teams, fixed at creation.
// Date is an opaque string supplied by the caller.
type Match struct {
	ID           int64  `json:"id"`
	Team1ID      int64  `json:"team1_id"`
	Team2ID      int64  `json:"team2_id"`
	TossWinnerID int64  `json:"toss_winner_id"`
	TossChoice   string `json:"toss_choice"` // Bat or Bowl
	Overs        int    `json:"overs"`
	Date         string `json:"date"`
}

// Ball is one delivery in a match, the atomic append-only score record.
type Ball struct {
	ID       int64  `json:"id"`
	MatchID  int64  `json:"match_id"`
	Innings  int    `json:"innings"`
	Over     int    `json:"over"` // 0-based
	Ball     int    `json:"ball"` // 1..6 within the over
	Batter   string `json:"batter"`
	Bowler   string `json:"bowler"`
	Runs     int    `json:"runs"`
	IsFour   bool   `json:"is_four"`
	IsSix    bool   `json:"is_six"`
	IsWicket bool   `json:"is_wicket"`
}

// MatchSummary holds single-scan aggregates over one match's deliveries.
// HasData distinguishes an empty result from real zeros; a summary is never
// an error, even for an unknown match id.
type MatchSummary struct {
	TotalRuns    int  `json:"total_runs"`
	TotalWickets int  `json:"total_wickets"`
	TotalFours   int  `json:"total_fours"`
	TotalSixes   int  `json:"total_sixes"`
	BallCount    int  `json:"ball_count"`
	HasData      bool `json:"has_data"`
}

// PlayerStats is a career aggregate keyed by player name across every match.
// This model is designed for read-only query results and is not persisted.
type PlayerStats struct {
	Player       string  `json:"player"`
	RunsScored   int     `json:"runs_scored"`
	BallsFaced   int     `json:"balls_faced"`
	Fours        int     `json:"fours"`
	Sixes        int     `json:"sixes"`
	WicketsTaken int     `json:"wickets_taken"`
	StrikeRate   float64 `json:"strike_rate"` // runs per 100 balls faced, 0 when no balls faced
}
