package engine

import (
	"github.com/blackwell-systems/bashstats/internal/store"
)

// AchievementEngine evaluates the badge catalog against the flattened
// statistics map, computes XP, and maps XP to a rank. It is a stateless
// reader except for the idempotent unlock rows it appends.
type AchievementEngine struct {
	db    *store.DB
	stats *StatsEngine
}

// NewAchievementEngine returns an AchievementEngine reading from db.
func NewAchievementEngine(db *store.DB) *AchievementEngine {
	return &AchievementEngine{db: db, stats: NewStatsEngine(db)}
}

// tierXP is the XP bonus awarded per unlocked badge tier 1..5.
var tierXP = [6]int64{0, 50, 100, 200, 500, 1000}

// Per-unit XP weights for raw activity counters. A policy table, not a
// structural contract.
const (
	xpPerPrompt    = 1
	xpPerSession   = 10
	xpPerHour      = 5
	xpPerStreakDay = 20
)

// Evaluate scores one badge against the current value of its watched
// statistic, returning the reached tier and progress toward the next one.
//
// Normal badges unlock a strictly ascending prefix of their thresholds.
// Secret badges are binary at tier 1, aspirational badges binary at tier 5.
// Progress never reads as 100% until the tier is actually reached.
func Evaluate(def BadgeDefinition, value int64) (tier int, progress float64, maxed bool) {
	switch {
	case def.Secret:
		if value >= def.Tiers[0] {
			return 1, 1.0, true
		}
		return 0, 0, false

	case def.Aspirational:
		top := def.Tiers[4]
		if value >= top {
			return 5, 1.0, true
		}
		if top <= 0 {
			return 0, 0, false
		}
		p := float64(value) / float64(top)
		if p > 0.99 {
			p = 0.99
		}
		return 0, p, false

	default:
		for _, threshold := range def.Tiers {
			if value >= threshold {
				tier++
			} else {
				break
			}
		}
		if tier >= 5 {
			return 5, 1.0, true
		}
		var lower int64
		if tier > 0 {
			lower = def.Tiers[tier-1]
		}
		upper := def.Tiers[tier]
		if upper <= lower {
			return tier, 0, false
		}
		p := float64(value-lower) / float64(upper-lower)
		if p < 0 {
			p = 0
		}
		if p > 0.99 {
			p = 0.99
		}
		return tier, p, false
	}
}

// nextThreshold returns the value needed for the badge's next tier, or 0 if
// it is already maxed.
func nextThreshold(def BadgeDefinition, tier int) int64 {
	switch {
	case def.Secret:
		if tier >= 1 {
			return 0
		}
		return def.Tiers[0]
	case def.Aspirational:
		if tier >= 5 {
			return 0
		}
		return def.Tiers[4]
	default:
		if tier >= 5 {
			return 0
		}
		return def.Tiers[tier]
	}
}

// computeBadgesFromFlat evaluates the whole catalog against a flattened
// statistics map and backfills unlock rows for every reached tier.
func (a *AchievementEngine) computeBadgesFromFlat(flat map[string]int64) ([]BadgeResult, error) {
	results := make([]BadgeResult, 0, len(BadgeCatalog))
	for _, def := range BadgeCatalog {
		value := flat[def.Stat]
		tier, progress, maxed := Evaluate(def, value)

		// Backfill intermediate tiers so a first evaluation at a high value
		// records the full unlock history. InsertUnlock is idempotent.
		for t := 1; t <= tier; t++ {
			if err := a.db.InsertUnlock(def.ID, t); err != nil {
				return nil, err
			}
		}

		results = append(results, BadgeResult{
			ID:            def.ID,
			Name:          def.Name,
			Icon:          def.Icon,
			Description:   def.Description,
			Category:      def.Category,
			Stat:          def.Stat,
			Tiers:         def.Tiers,
			Tier:          tier,
			TierName:      TierName(tier),
			Value:         value,
			NextThreshold: nextThreshold(def, tier),
			Progress:      progress,
			Maxed:         maxed,
			Trigger:       def.Trigger,
			Secret:        def.Secret,
			Unlocked:      tier > 0,
		})
	}
	return results, nil
}

// ComputeBadges evaluates every catalog badge for one agent scope. The full
// list is always returned regardless of lock state.
func (a *AchievementEngine) ComputeBadges(agent string) ([]BadgeResult, error) {
	flat, _, err := a.flattenStats(agent)
	if err != nil {
		return nil, err
	}
	return a.computeBadgesFromFlat(flat)
}

// xpFrom totals weighted activity counters plus the per-tier badge bonus and
// places the result on the rank curve.
func xpFrom(stats *AllStats, badges []BadgeResult) *XPResult {
	total := stats.Lifetime.TotalPrompts*xpPerPrompt +
		stats.Lifetime.TotalSessions*xpPerSession +
		(stats.Lifetime.TotalDurationSeconds/3600)*xpPerHour +
		int64(stats.Time.LongestStreak)*xpPerStreakDay

	for _, b := range badges {
		for t := 1; t <= b.Tier; t++ {
			total += tierXP[t]
		}
	}

	rank := RankForXP(total)
	return &XPResult{
		TotalXP:    total,
		RankNumber: rank,
		RankTier:   BracketForRank(rank),
		NextRankXP: XPForRank(rank + 1),
		Progress:   RankProgress(total),
	}
}

// ComputeXP computes total XP and rank placement. It is a pure function of
// the current log state: two calls with no new events agree.
func (a *AchievementEngine) ComputeXP(agent string) (*XPResult, error) {
	flat, stats, err := a.flattenStats(agent)
	if err != nil {
		return nil, err
	}
	badges, err := a.computeBadgesFromFlat(flat)
	if err != nil {
		return nil, err
	}
	return xpFrom(stats, badges), nil
}

// GetAchievementsPayload bundles stats, badges, and XP in one pass over the
// store.
func (a *AchievementEngine) GetAchievementsPayload(agent string) (*AchievementsPayload, error) {
	flat, stats, err := a.flattenStats(agent)
	if err != nil {
		return nil, err
	}
	badges, err := a.computeBadgesFromFlat(flat)
	if err != nil {
		return nil, err
	}
	xp := xpFrom(stats, badges)
	return &AchievementsPayload{
		Stats:  *stats,
		Badges: badges,
		XP:     *xp,
	}, nil
}
