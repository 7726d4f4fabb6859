// Package rank maps accumulated experience points to a named gardener rank
// and the progress made towards the next one.
package rank

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/plantvision/internal/common"
)

// Tier is a rank threshold: a user holds the tier with the greatest MinXP
// not above their xp.
type Tier struct {
	Name  string
	MinXP int
}

// State is the derived rank of a user.
type State struct {
	XP              int
	RankName        string
	ProgressPercent int
	XPToNextRank    int
}

// DefaultTiers is the tier table used by the service.
var DefaultTiers = []Tier{
	{Name: "Sprout", MinXP: 0},
	{Name: "Seedling", MinXP: 100},
	{Name: "Gardener", MinXP: 250},
	{Name: "Botanist", MinXP: 500},
}

var ErrInvalidTiers = errors.New("invalid tier table")

// Calculator holds a validated tier table.
type Calculator struct {
	tiers []Tier
}

// NewCalculator validates tiers: non-empty, first MinXP is 0 and MinXP
// strictly ascending. The slice is copied.
func NewCalculator(tiers []Tier) (*Calculator, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: no tiers", ErrInvalidTiers)
	}
	if tiers[0].MinXP != 0 {
		return nil, fmt.Errorf("%w: first tier %q starts at %d", ErrInvalidTiers, tiers[0].Name, tiers[0].MinXP)
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].MinXP <= tiers[i-1].MinXP {
			return nil, fmt.Errorf("%w: %q (%d) does not follow %q (%d)", ErrInvalidTiers,
				tiers[i].Name, tiers[i].MinXP, tiers[i-1].Name, tiers[i-1].MinXP)
		}
	}
	return &Calculator{tiers: append([]Tier(nil), tiers...)}, nil
}

// Default returns a calculator over DefaultTiers.
func Default() *Calculator {
	c, err := NewCalculator(DefaultTiers)
	if err != nil {
		panic(err)
	}
	return c
}

// Tiers returns a copy of the table.
func (c *Calculator) Tiers() []Tier {
	return append([]Tier(nil), c.tiers...)
}

// Calculate derives the rank for xp. Negative xp counts as 0.
func (c *Calculator) Calculate(xp int) State {
	if xp < 0 {
		xp = 0
	}

	cur := 0
	for i, t := range c.tiers {
		if t.MinXP <= xp {
			cur = i
		}
	}

	st := State{XP: xp, RankName: c.tiers[cur].Name}
	if cur == len(c.tiers)-1 {
		st.ProgressPercent = 100
		return st
	}

	lo, hi := c.tiers[cur].MinXP, c.tiers[cur+1].MinXP
	st.ProgressPercent = 100 * (xp - lo) / (hi - lo)
	st.XPToNextRank = hi - xp
	return st
}

// XPForAnalyses converts a count of saved analyses into experience points.
func XPForAnalyses(count int) int {
	if count < 0 {
		return 0
	}
	return common.XPPerAnalysis * count
}
