package engine

// XPUnbounded marks the final, open-ended stage.
const XPUnbounded = -1

// TreeStage is one band of the leveling curve. Bands cover the whole
// non-negative XP axis with no gaps or overlaps; exactly one stage matches
// any XP value.
type TreeStage struct {
	Level  int
	Name   string
	NameEN string
	MinXP  int
	MaxXP  int
	Image  string
}

// Unbounded reports whether the stage has no upper XP limit.
func (s TreeStage) Unbounded() bool {
	return s.MaxXP == XPUnbounded
}

// DisplayName returns the localized stage name.
func (s TreeStage) DisplayName(lang Language) string {
	if lang == LanguageEN {
		return s.NameEN
	}
	return s.Name
}

// TreeStages is the fixed progression table. Band boundaries are a
// compatibility contract with already-issued XP totals.
var TreeStages = []TreeStage{
	{Level: 0, Name: "Насіння", NameEN: "Seed", MinXP: 0, MaxXP: 99, Image: "🌱"},
	{Level: 1, Name: "Саджанець", NameEN: "Sapling", MinXP: 100, MaxXP: 299, Image: "🌿"},
	{Level: 2, Name: "Молоде дерево", NameEN: "Young tree", MinXP: 300, MaxXP: 599, Image: "🌳"},
	{Level: 3, Name: "Доросле дерево", NameEN: "Grown tree", MinXP: 600, MaxXP: 999, Image: "🌲"},
	{Level: 4, Name: "Могутнє дерево", NameEN: "Mighty tree", MinXP: 1000, MaxXP: XPUnbounded, Image: "🎄"},
}

// StageByXP returns the highest stage whose MinXP is at or below xp,
// scanning from the top band down. Negative xp falls back to the lowest
// stage; XP never goes negative in normal operation.
func StageByXP(xp int) TreeStage {
	for i := len(TreeStages) - 1; i >= 0; i-- {
		if xp >= TreeStages[i].MinXP {
			return TreeStages[i]
		}
	}
	return TreeStages[0]
}

// ProgressToNextLevel returns the percentage of the current stage band
// covered by xp, in [0, 100]. The final stage always reports 100. Band
// width is MaxXP-MinXP+1: both endpoints belong to the band, so a 0–99
// band is 100 wide. The off-by-one is load-bearing for existing tables.
func ProgressToNextLevel(xp int) float64 {
	stage := StageByXP(xp)
	if stage.Unbounded() {
		return 100
	}
	progress := float64(xp-stage.MinXP) / float64(stage.MaxXP-stage.MinXP+1) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
