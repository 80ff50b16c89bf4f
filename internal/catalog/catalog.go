// Package catalog holds the university program dataset and score-proximity
// recommendations. The data is static configuration; values are approximate
// 2024 placement figures and are informational only.
package catalog

import (
	"sort"
	"strings"
)

// Program describes one university department and its placement figures.
type Program struct {
	University   string  `json:"university"`
	Department   string  `json:"department"`
	City         string  `json:"city"`
	ScoreType    string  `json:"score_type"` // SAY, EA, SOZ, TYT
	FloorScore   float64 `json:"floor_score"`
	CeilingScore float64 `json:"ceiling_score"`
	Rank         int     `json:"rank"`
	Quota        int     `json:"quota"`
	Kind         string  `json:"kind"` // "state" or "foundation"
}

// Filter narrows a catalog search. Zero values mean "no constraint".
type Filter struct {
	ScoreType  string
	MinScore   float64
	MaxScore   float64
	City       string
	Department string
	Kind       string
}

// Recommendation buckets programs by how a score relates to their floor.
type Recommendation struct {
	Safe     []Program `json:"safe"`     // floor comfortably below the score
	Balanced []Program `json:"balanced"` // floor close to the score
	Reach    []Program `json:"reach"`    // floor slightly above the score
}

// Catalog is an in-memory program dataset.
type Catalog struct {
	programs []Program
}

// New creates a catalog over the given programs; nil uses the built-in set.
func New(programs []Program) *Catalog {
	if programs == nil {
		programs = defaultPrograms
	}
	return &Catalog{programs: programs}
}

// Search returns programs matching the filter, sorted by floor score
// descending.
func (c *Catalog) Search(f Filter) []Program {
	var out []Program
	for _, p := range c.programs {
		if f.ScoreType != "" && p.ScoreType != f.ScoreType {
			continue
		}
		if f.MinScore > 0 && p.FloorScore < f.MinScore {
			continue
		}
		if f.MaxScore > 0 && p.FloorScore > f.MaxScore {
			continue
		}
		if f.City != "" && !strings.Contains(strings.ToLower(p.City), strings.ToLower(f.City)) {
			continue
		}
		if f.Department != "" && !strings.Contains(strings.ToLower(p.Department), strings.ToLower(f.Department)) {
			continue
		}
		if f.Kind != "" && p.Kind != f.Kind {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FloorScore > out[j].FloorScore
	})
	return out
}

// maxBucket caps each recommendation bucket.
const maxBucket = 8

// Recommend buckets programs of the given score type around a placement
// score. Safe programs sit at least tolerance/2 below, balanced within
// tolerance/2 either way, reach up to tolerance above. Safe and balanced are
// sorted by floor descending, reach ascending (nearest stretch first).
func (c *Catalog) Recommend(score float64, scoreType string, tolerance float64) Recommendation {
	all := c.Search(Filter{ScoreType: scoreType})

	var rec Recommendation
	for _, p := range all {
		switch {
		case p.FloorScore <= score-tolerance/2:
			if len(rec.Safe) < maxBucket {
				rec.Safe = append(rec.Safe, p)
			}
		case abs(p.FloorScore-score) <= tolerance/2:
			if len(rec.Balanced) < maxBucket {
				rec.Balanced = append(rec.Balanced, p)
			}
		case p.FloorScore > score && p.FloorScore <= score+tolerance:
			if len(rec.Reach) < maxBucket {
				rec.Reach = append(rec.Reach, p)
			}
		}
	}
	sort.SliceStable(rec.Reach, func(i, j int) bool {
		return rec.Reach[i].FloorScore < rec.Reach[j].FloorScore
	})
	return rec
}

// Cities returns the distinct cities in the dataset, sorted.
func (c *Catalog) Cities() []string {
	return c.distinct(func(p Program) string { return p.City })
}

// Departments returns the distinct department names in the dataset, sorted.
func (c *Catalog) Departments() []string {
	return c.distinct(func(p Program) string { return p.Department })
}

// Universities returns the distinct university names in the dataset, sorted.
func (c *Catalog) Universities() []string {
	return c.distinct(func(p Program) string { return p.University })
}

func (c *Catalog) distinct(key func(Program) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range c.programs {
		k := key(p)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
