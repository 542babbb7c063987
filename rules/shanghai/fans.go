package shanghai

import (
	"github.com/kevin-chtw/tw_mjcore/mahjong"
	"github.com/kevin-chtw/tw_mjcore/rules"
)

type fanList struct {
	patterns []rules.Pattern
	value    int
	capped   bool
}

func (f *fanList) add(name string, fan int) {
	if fan > 0 {
		f.patterns = append(f.patterns, rules.Pattern{Name: name, Value: fan})
		f.value += fan
	}
}

// fan 一种归属下的番数，已封顶
func (r *RuleSet) fan(d *mahjong.Decomposition, a rules.Attribution, ctx *rules.Context) *fanList {
	f := &fanList{}

	// 牌型
	switch {
	case rules.AllHonors(d):
		f.add("all_honors", r.cfg.Cap)
	case rules.FullFlush(d):
		f.add("full_flush", 4)
	case rules.HalfFlush(d):
		f.add("half_flush", 2)
	}
	if rules.AllTriplets(d) && !rules.AllHonors(d) {
		f.add("all_pungs", 2)
	}
	if d.Style == mahjong.HandSevenPairs {
		f.add("seven_pairs", 2)
	}

	// 和法
	if a.Wait == rules.WaitTanki {
		if d.DeclaredCount() == mahjong.SetsPerHand {
			f.add("big_hook", 2)
		} else {
			f.add("single_wait", 1)
		}
	}
	if d.IsConcealed() {
		f.add("concealed_hand", 1)
	}
	if ctx.SelfDrawn {
		f.add("self_drawn", 1)
	}
	if ctx.AfterKon {
		f.add("after_kon", 1)
	}
	if ctx.LastTile {
		f.add("last_tile", 1)
	}
	if ctx.RobbingKon {
		f.add("robbing_kon", 1)
	}

	// 刻子
	for _, t := range rules.Triplets(d) {
		if t.IsDragon() {
			f.add("dragon_pung", 1)
		}
		if t == ctx.SeatWind.Kind() {
			f.add("seat_wind_pung", 1)
		}
		if t == ctx.RoundWind.Kind() {
			f.add("round_wind_pung", 1)
		}
	}

	// 花
	f.add("flower_set", 2*completeFlowerSets(ctx.Flowers))
	f.add("seat_flower", seatFlowers(ctx.Flowers, ctx.SeatWind))

	if f.value == 0 {
		f.add("base", 1)
	}
	if f.value > r.cfg.Cap {
		f.value = r.cfg.Cap
		f.capped = true
	}
	return f
}

// completeFlowerSets 梅兰竹菊、春夏秋冬各成一套
func completeFlowerSets(flowers []mahjong.Tile) int {
	var seen [2][4]bool
	for _, t := range flowers {
		if !t.IsExtra() {
			continue
		}
		switch t.Color() {
		case mahjong.ColorFlower:
			seen[0][t.Point()] = true
		case mahjong.ColorSeason:
			seen[1][t.Point()] = true
		}
	}
	n := 0
	for _, set := range seen {
		if set == [4]bool{true, true, true, true} {
			n++
		}
	}
	return n
}

// seatFlowers 正花：东家春梅，南家夏兰，西家秋竹，北家冬菊
func seatFlowers(flowers []mahjong.Tile, seat mahjong.Tile) int {
	n := 0
	for _, t := range flowers {
		if t.IsExtra() && t.Point() == seat.Point() {
			n++
		}
	}
	return n
}
