package engine

import "math"

// Rank curve constants. XP required for rank r is rankCoeff * r^rankExp,
// which keeps early ranks cheap and makes the climb to 500 a career.
const (
	rankCoeff = 2.0
	rankExp   = 1.7
	// MaxRank is the ceiling of the rank ladder.
	MaxRank = 500
)

// RankBracket is a named band of ranks.
type RankBracket struct {
	Name string `json:"name"`
	Min  int    `json:"min"`
	Max  int    `json:"max"`
}

// rankBrackets partitions 1..500. System Anomaly is rank 500 alone.
var rankBrackets = []RankBracket{
	{Name: "Bronze", Min: 1, Max: 49},
	{Name: "Silver", Min: 50, Max: 99},
	{Name: "Gold", Min: 100, Max: 199},
	{Name: "Platinum", Min: 200, Max: 299},
	{Name: "Diamond", Min: 300, Max: 399},
	{Name: "Singularity", Min: 400, Max: 499},
	{Name: "System Anomaly", Min: 500, Max: 500},
}

// XPForRank returns the cumulative XP needed to hold rank r.
// Rank 1 is free so a fresh install is never unranked after its first event.
func XPForRank(r int) int64 {
	if r <= 1 {
		return 0
	}
	if r > MaxRank {
		r = MaxRank
	}
	return int64(math.Ceil(rankCoeff * math.Pow(float64(r), rankExp)))
}

// RankForXP returns the highest rank whose XP requirement is met.
// Zero XP maps to rank 0, the unranked sentinel.
func RankForXP(xp int64) int {
	if xp <= 0 {
		return 0
	}
	// Invert the curve for a starting guess, then settle with the exact
	// integer thresholds. Ceil in XPForRank makes the closed form only
	// approximate.
	guess := int(math.Pow(float64(xp)/rankCoeff, 1/rankExp))
	if guess < 1 {
		guess = 1
	}
	if guess > MaxRank {
		guess = MaxRank
	}
	for guess < MaxRank && XPForRank(guess+1) <= xp {
		guess++
	}
	for guess > 1 && XPForRank(guess) > xp {
		guess--
	}
	return guess
}

// BracketForRank returns the bracket name for a rank, or "Unranked" for 0.
func BracketForRank(r int) string {
	if r < 1 {
		return "Unranked"
	}
	if r > MaxRank {
		r = MaxRank
	}
	for _, b := range rankBrackets {
		if r >= b.Min && r <= b.Max {
			return b.Name
		}
	}
	return "Unranked"
}

// RankProgress reports how far xp has climbed between the current rank and
// the next one, in 0..1. At MaxRank there is nothing left to climb.
func RankProgress(xp int64) float64 {
	r := RankForXP(xp)
	if r >= MaxRank {
		return 1.0
	}
	cur := XPForRank(r)
	next := XPForRank(r + 1)
	if next <= cur {
		return 0
	}
	p := float64(xp-cur) / float64(next-cur)
	if p < 0 {
		p = 0
	}
	if p > 0.99 {
		p = 0.99
	}
	return p
}
