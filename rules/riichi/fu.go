package riichi

import (
	"github.com/kevin-chtw/tw_mjcore/mahjong"
	"github.com/kevin-chtw/tw_mjcore/rules"
)

// fu 符数，已进位到10
func fu(d *mahjong.Decomposition, a rules.Attribution, ctx *rules.Context, pinfu bool) int {
	switch {
	case d.Style == mahjong.HandSevenPairs:
		return 25
	case pinfu && ctx.SelfDrawn:
		return 20
	case pinfu:
		return 30
	}

	concealed := d.IsConcealed()
	total := 20
	if concealed && !ctx.SelfDrawn {
		total += 10
	}
	if ctx.SelfDrawn {
		total += 2
	}

	for i, s := range d.Sets {
		if !s.IsTriplet() {
			continue
		}
		v := 2
		if s.Tile.IsTerminalOrHonor() {
			v *= 2
		}
		if rules.ClosedSet(d, i, a, ctx.SelfDrawn) {
			v *= 2
		}
		if s.Kind == mahjong.MeldKon {
			v *= 4
		}
		total += v
	}

	if d.Pair.IsDragon() {
		total += 2
	}
	if d.Pair == ctx.SeatWind.Kind() {
		total += 2
	}
	if d.Pair == ctx.RoundWind.Kind() {
		total += 2
	}

	switch a.Wait {
	case rules.WaitKanchan, rules.WaitPenchan, rules.WaitTanki:
		total += 2
	}

	if !concealed && total == 20 {
		return 30
	}
	return roundUp(total, 10)
}

func roundUp(v, unit int) int {
	return (v + unit - 1) / unit * unit
}
