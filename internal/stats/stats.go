// Package stats computes dataset summaries for the stats commands.
package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kazuyasi/trpg-json/internal/entities/sw25"
)

// topDistributionSize caps the category and school distributions.
const topDistributionSize = 5

// Bucket is one labeled slice of a distribution.
type Bucket struct {
	Label   string
	Count   int
	Percent float64
}

// Range is an inclusive min/max pair over a numeric field.
type Range struct {
	Min int
	Max int
}

// MonsterNumericRanges holds the observed spread of each combat field.
type MonsterNumericRanges struct {
	HitRate          Range
	Dodge            Range
	Damage           Range
	Armor            Range
	LifeResistance   Range
	MentalResistance Range
}

// MonsterStats summarizes a monster dataset.
type MonsterStats struct {
	TotalCount           int
	LevelDistribution    []Bucket
	CategoryDistribution []Bucket
	NumericRanges        MonsterNumericRanges
}

// SpellStats summarizes a spell dataset.
type SpellStats struct {
	TotalCount         int
	LevelDistribution  []Bucket
	SchoolDistribution []Bucket
	LevelTypeCount     int
	RankTypeCount      int
}

type levelBand struct {
	label    string
	min, max int
}

var monsterLevelBands = []levelBand{
	{"Lv 1-4", 1, 4},
	{"Lv 5-8", 5, 8},
	{"Lv 9-12", 9, 12},
	{"Lv 13-16", 13, 16},
	{"Lv 17+", 17, int(^uint(0) >> 1)},
}

var spellLevelBands = []levelBand{
	{"Lv 1-5", 1, 5},
	{"Lv 6-10", 6, 10},
	{"Lv 11-15", 11, 15},
	{"Lv 16+", 16, int(^uint(0) >> 1)},
}

// CalculateMonsterStats computes the summary for a monster dataset.
func CalculateMonsterStats(monsters []sw25.Monster) *MonsterStats {
	total := len(monsters)

	levels := make([]Bucket, 0, len(monsterLevelBands))
	for _, band := range monsterLevelBands {
		count := 0
		for i := range monsters {
			if monsters[i].Level >= band.min && monsters[i].Level <= band.max {
				count++
			}
		}
		levels = append(levels, Bucket{Label: band.label, Count: count, Percent: percent(count, total)})
	}

	categories := make(map[string]int)
	for i := range monsters {
		categories[monsters[i].Category]++
	}

	return &MonsterStats{
		TotalCount:           total,
		LevelDistribution:    levels,
		CategoryDistribution: topBuckets(categories, total),
		NumericRanges:        numericRanges(monsters),
	}
}

// CalculateSpellStats computes the summary for a spell dataset. Only
// value and value_plus levels contribute to the level distribution;
// rank levels are counted separately.
func CalculateSpellStats(spells []sw25.Spell) *SpellStats {
	total := len(spells)

	levelType, rankType := 0, 0
	for i := range spells {
		switch spells[i].Level.Kind {
		case sw25.LevelValue, sw25.LevelValuePlus:
			levelType++
		case sw25.LevelRank:
			rankType++
		}
	}

	levels := make([]Bucket, 0, len(spellLevelBands))
	for _, band := range spellLevelBands {
		count := 0
		for i := range spells {
			l := spells[i].Level
			if l.Kind != sw25.LevelValue && l.Kind != sw25.LevelValuePlus {
				continue
			}
			if l.Value >= band.min && l.Value <= band.max {
				count++
			}
		}
		levels = append(levels, Bucket{Label: band.label, Count: count, Percent: percent(count, total)})
	}

	schools := make(map[string]int)
	for i := range spells {
		schools[spells[i].School]++
	}

	return &SpellStats{
		TotalCount:         total,
		LevelDistribution:  levels,
		SchoolDistribution: topBuckets(schools, total),
		LevelTypeCount:     levelType,
		RankTypeCount:      rankType,
	}
}

func numericRanges(monsters []sw25.Monster) MonsterNumericRanges {
	var hitRates, dodges, damages, armors, lives, mentals []int
	for i := range monsters {
		m := &monsters[i]
		lives = append(lives, m.LifeResistance)
		mentals = append(mentals, m.MentalResistance)
		for j := range m.Parts {
			p := &m.Parts[j]
			hitRates = append(hitRates, p.HitRate)
			dodges = append(dodges, p.Dodge)
			damages = append(damages, p.Damage)
			armors = append(armors, p.Armor)
		}
	}
	return MonsterNumericRanges{
		HitRate:          minMax(hitRates),
		Dodge:            minMax(dodges),
		Damage:           minMax(damages),
		Armor:            minMax(armors),
		LifeResistance:   minMax(lives),
		MentalResistance: minMax(mentals),
	}
}

func minMax(values []int) Range {
	if len(values) == 0 {
		return Range{}
	}
	r := Range{Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	return r
}

// topBuckets ranks counts by size and keeps the biggest slices. Ties
// break on the label so the output is deterministic.
func topBuckets(counts map[string]int, total int) []Bucket {
	buckets := make([]Bucket, 0, len(counts))
	for label, count := range counts {
		buckets = append(buckets, Bucket{Label: label, Count: count, Percent: percent(count, total)})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Label < buckets[j].Label
	})
	if len(buckets) > topDistributionSize {
		buckets = buckets[:topDistributionSize]
	}
	return buckets
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// Format renders the summary for terminal output.
func (s *MonsterStats) Format() string {
	var b strings.Builder
	b.WriteString("モンスター統計:\n")
	fmt.Fprintf(&b, "  総数: %d\n", s.TotalCount)

	b.WriteString("  レベル分布:\n")
	writeBuckets(&b, s.LevelDistribution)

	b.WriteString("  カテゴリ分布 (Top 5):\n")
	writeBuckets(&b, s.CategoryDistribution)

	b.WriteString("  数値フィールド範囲:\n")
	r := &s.NumericRanges
	fmt.Fprintf(&b, "    命中力: %d～%d\n", r.HitRate.Min, r.HitRate.Max)
	fmt.Fprintf(&b, "    回避力: %d～%d\n", r.Dodge.Min, r.Dodge.Max)
	fmt.Fprintf(&b, "    打撃点: %d～%d\n", r.Damage.Min, r.Damage.Max)
	fmt.Fprintf(&b, "    防護点: %d～%d\n", r.Armor.Min, r.Armor.Max)
	fmt.Fprintf(&b, "    生命抵抗力: %d～%d\n", r.LifeResistance.Min, r.LifeResistance.Max)
	fmt.Fprintf(&b, "    精神抵抗力: %d～%d\n", r.MentalResistance.Min, r.MentalResistance.Max)
	return b.String()
}

// Format renders the summary for terminal output.
func (s *SpellStats) Format() string {
	var b strings.Builder
	b.WriteString("スペル統計:\n")
	fmt.Fprintf(&b, "  総数: %d\n", s.TotalCount)

	b.WriteString("  レベル分布:\n")
	writeBuckets(&b, s.LevelDistribution)

	b.WriteString("  系統分布 (Top 5):\n")
	writeBuckets(&b, s.SchoolDistribution)

	fmt.Fprintf(&b, "  レベル型: %d / ランク型: %d\n", s.LevelTypeCount, s.RankTypeCount)
	return b.String()
}

func writeBuckets(b *strings.Builder, buckets []Bucket) {
	for _, bucket := range buckets {
		fmt.Fprintf(b, "    %s: %3d (%5.1f%%)\n", bucket.Label, bucket.Count, bucket.Percent)
	}
}
