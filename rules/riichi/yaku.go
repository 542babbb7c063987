package riichi

import (
	"github.com/kevin-chtw/tw_mjcore/mahjong"
	"github.com/kevin-chtw/tw_mjcore/rules"
)

type yakuList struct {
	patterns []rules.Pattern
	han      int
	yakuman  int
	pinfu    bool
}

func (y *yakuList) add(name string, han int) {
	y.patterns = append(y.patterns, rules.Pattern{Name: name, Value: han})
	y.han += han
}

func (y *yakuList) addYakuman(name string, n int) {
	y.patterns = append(y.patterns, rules.Pattern{Name: name, Value: 13 * n})
	y.yakuman += n
}

// closedOpen 门清 closed 番，副露 open 番(0 为不成立)
func (y *yakuList) closedOpen(name string, concealed bool, closed, open int) {
	if concealed {
		y.add(name, closed)
	} else if open > 0 {
		y.add(name, open)
	}
}

// yaku 一种归属下成立的役。有役满时只计役满
func (r *RuleSet) yaku(d *mahjong.Decomposition, a rules.Attribution, ctx *rules.Context) yakuList {
	if y := r.yakuman(d, a, ctx); y.yakuman > 0 {
		return y
	}

	var y yakuList
	concealed := d.IsConcealed()

	switch {
	case ctx.DoubleRiichi:
		y.add("double_riichi", 2)
	case ctx.Riichi:
		y.add("riichi", 1)
	}
	if ctx.Ippatsu {
		y.add("ippatsu", 1)
	}
	if concealed && ctx.SelfDrawn {
		y.add("menzen_tsumo", 1)
	}
	if ctx.LastTile {
		if ctx.SelfDrawn {
			y.add("haitei", 1)
		} else {
			y.add("houtei", 1)
		}
	}
	if ctx.AfterKon {
		y.add("rinshan", 1)
	}
	if ctx.RobbingKon {
		y.add("chankan", 1)
	}
	if rules.AllSimples(d) && (concealed || r.cfg.OpenTanyao) {
		y.add("tanyao", 1)
	}

	if d.Style == mahjong.HandSevenPairs {
		y.add("chiitoitsu", 2)
		r.flushes(d, &y, concealed)
		if rules.Every(d, mahjong.Tile.IsTerminalOrHonor) {
			y.add("honroutou", 2)
		}
		return y
	}

	if concealed && rules.AllChows(d) && !isYakuhai(d.Pair, ctx) && a.Wait == rules.WaitRyanmen {
		y.add("pinfu", 1)
		y.pinfu = true
	}
	if concealed {
		pairs := 0
		for _, n := range rules.SameSets(d) {
			pairs += n / 2
		}
		switch pairs {
		case 1:
			y.add("iipeikou", 1)
		case 2:
			y.add("ryanpeikou", 3)
		}
	}

	for _, t := range rules.Triplets(d) {
		switch t {
		case mahjong.TileBai:
			y.add("yakuhai_haku", 1)
		case mahjong.TileFa:
			y.add("yakuhai_hatsu", 1)
		case mahjong.TileZhong:
			y.add("yakuhai_chun", 1)
		}
		if t == ctx.SeatWind.Kind() {
			y.add("seat_wind", 1)
		}
		if t == ctx.RoundWind.Kind() {
			y.add("round_wind", 1)
		}
	}

	hasChow := len(rules.Chows(d)) > 0
	switch {
	case hasChow && rules.OutsideHand(d, false):
		y.closedOpen("junchan", concealed, 3, 2)
	case hasChow && rules.OutsideHand(d, true):
		y.closedOpen("chanta", concealed, 2, 1)
	case rules.Every(d, mahjong.Tile.IsTerminalOrHonor):
		y.add("honroutou", 2)
	}
	if rules.Straight(d) {
		y.closedOpen("ittsu", concealed, 2, 1)
	}
	for p := 0; p < 9; p++ {
		if p < 7 && rules.InThreeSuits(d, p, true) {
			y.closedOpen("sanshoku_doujun", concealed, 2, 1)
		}
		if rules.InThreeSuits(d, p, false) {
			y.add("sanshoku_doukou", 2)
		}
	}
	if rules.AllTriplets(d) {
		y.add("toitoi", 2)
	}
	if rules.ConcealedTriplets(d, a, ctx.SelfDrawn) == 3 {
		y.add("sanankou", 2)
	}
	if rules.Kongs(d) == 3 {
		y.add("sankantsu", 2)
	}
	if rules.DragonTriplets(d) == 2 && d.Pair.IsDragon() {
		y.add("shousangen", 2)
	}
	r.flushes(d, &y, concealed)
	return y
}

func (r *RuleSet) flushes(d *mahjong.Decomposition, y *yakuList, concealed bool) {
	switch {
	case rules.FullFlush(d):
		y.closedOpen("chinitsu", concealed, 6, 5)
	case rules.HalfFlush(d):
		y.closedOpen("honitsu", concealed, 3, 2)
	}
}

func isYakuhai(t mahjong.Tile, ctx *rules.Context) bool {
	return t.IsDragon() || t == ctx.SeatWind.Kind() || t == ctx.RoundWind.Kind()
}

// double 开启双倍役满时返回 2
func (r *RuleSet) double() int {
	if r.cfg.DoubleYakuman {
		return 2
	}
	return 1
}

func (r *RuleSet) yakuman(d *mahjong.Decomposition, a rules.Attribution, ctx *rules.Context) yakuList {
	var y yakuList
	if ctx.FirstDraw && ctx.SelfDrawn && d.DeclaredCount() == 0 {
		if ctx.Dealer {
			y.addYakuman("tenhou", 1)
		} else {
			y.addYakuman("chiihou", 1)
		}
	}

	if d.Style == mahjong.HandThirteenOrphans {
		if d.Pair == ctx.WinTile.Kind() {
			y.addYakuman("kokushi_13", r.double())
		} else {
			y.addYakuman("kokushi", 1)
		}
		return y
	}

	if rules.AllHonors(d) {
		y.addYakuman("tsuuiisou", 1)
	}
	if rules.Every(d, rules.IsGreen) {
		y.addYakuman("ryuuiisou", 1)
	}
	if d.Style == mahjong.HandSevenPairs {
		return y
	}

	if rules.ConcealedTriplets(d, a, ctx.SelfDrawn) == 4 {
		if a.Wait == rules.WaitTanki {
			y.addYakuman("suuankou_tanki", r.double())
		} else {
			y.addYakuman("suuankou", 1)
		}
	}
	if rules.DragonTriplets(d) == 3 {
		y.addYakuman("daisangen", 1)
	}
	switch winds := rules.WindTriplets(d); {
	case winds == 4:
		y.addYakuman("daisuushii", r.double())
	case winds == 3 && d.Pair.IsWind():
		y.addYakuman("shousuushii", 1)
	}
	if rules.Every(d, mahjong.Tile.IsTerminal) {
		y.addYakuman("chinroutou", 1)
	}
	if rules.Kongs(d) == 4 {
		y.addYakuman("suukantsu", 1)
	}
	if d.IsConcealed() && d.DeclaredCount() == 0 && rules.FullFlush(d) {
		if nine, pure := rules.NineGates(d.Counts(), ctx.WinTile); nine {
			if pure {
				y.addYakuman("junsei_chuuren", r.double())
			} else {
				y.addYakuman("chuuren", 1)
			}
		}
	}
	return y
}
