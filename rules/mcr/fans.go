package mcr

import (
	"github.com/kevin-chtw/tw_mjcore/mahjong"
	"github.com/kevin-chtw/tw_mjcore/rules"
)

type fanDef struct {
	name string
	fan  int
}

// catalogue 番种表，按番数从高到低
var catalogue = []fanDef{
	{"big_four_winds", 88},
	{"big_three_dragons", 88},
	{"all_green", 88},
	{"nine_gates", 88},
	{"four_kongs", 88},
	{"seven_shifted_pairs", 88},
	{"thirteen_orphans", 88},
	{"all_terminals", 64},
	{"little_four_winds", 64},
	{"little_three_dragons", 64},
	{"all_honors", 64},
	{"four_concealed_pungs", 64},
	{"pure_terminal_chows", 64},
	{"quadruple_chow", 48},
	{"four_pure_shifted_pungs", 48},
	{"four_pure_shifted_chows", 32},
	{"three_kongs", 32},
	{"all_terminals_and_honors", 32},
	{"seven_pairs", 24},
	{"all_even_pungs", 24},
	{"full_flush", 24},
	{"pure_triple_chow", 24},
	{"pure_shifted_pungs", 24},
	{"upper_tiles", 24},
	{"middle_tiles", 24},
	{"lower_tiles", 24},
	{"pure_straight", 16},
	{"three_suited_terminal_chows", 16},
	{"pure_shifted_chows", 16},
	{"all_fives", 16},
	{"triple_pung", 16},
	{"three_concealed_pungs", 16},
	{"upper_four", 12},
	{"lower_four", 12},
	{"big_three_winds", 12},
	{"mixed_straight", 8},
	{"reversible_tiles", 8},
	{"mixed_triple_chow", 8},
	{"mixed_shifted_pungs", 8},
	{"last_tile_draw", 8},
	{"last_tile_claim", 8},
	{"out_with_replacement_tile", 8},
	{"robbing_the_kong", 8},
	{"chicken_hand", 8},
	{"all_pungs", 6},
	{"half_flush", 6},
	{"mixed_shifted_chows", 6},
	{"all_types", 6},
	{"melded_hand", 6},
	{"two_dragon_pungs", 6},
	{"outside_hand", 4},
	{"fully_concealed_hand", 4},
	{"two_melded_kongs", 4},
	{"last_tile", 4},
	{"dragon_pung", 2},
	{"prevalent_wind", 2},
	{"seat_wind", 2},
	{"concealed_hand", 2},
	{"all_chows", 2},
	{"tile_hog", 2},
	{"double_pung", 2},
	{"two_concealed_pungs", 2},
	{"concealed_kong", 2},
	{"all_simples", 2},
	{"pure_double_chow", 1},
	{"mixed_double_chow", 1},
	{"short_straight", 1},
	{"two_terminal_chows", 1},
	{"pung_of_terminals_or_honors", 1},
	{"melded_kong", 1},
	{"one_voided_suit", 1},
	{"no_honors", 1},
	{"edge_wait", 1},
	{"closed_wait", 1},
	{"single_wait", 1},
	{"self_drawn", 1},
	{"flower_tiles", 1},
}

var fanValue = func() map[string]int {
	m := make(map[string]int, len(catalogue))
	for _, f := range catalogue {
		m[f.name] = f.fan
	}
	return m
}()

// tally 一种归属下成立的番种及次数
type tally struct {
	times map[string]int
}

func (t *tally) add(name string, times int) {
	if times > 0 {
		t.times[name] += times
	}
}

func (t *tally) has(name string) bool {
	return t.times[name] > 0
}

// total 番数合计，flowers 为 false 时不计花牌
func (t *tally) total(flowers bool) int {
	sum := 0
	for name, n := range t.times {
		if name == "flower_tiles" && !flowers {
			continue
		}
		sum += fanValue[name] * n
	}
	return sum
}

func (t *tally) patterns() []rules.Pattern {
	var res []rules.Pattern
	for _, f := range catalogue {
		if n := t.times[f.name]; n > 0 {
			res = append(res, rules.Pattern{Name: f.name, Value: f.fan * n})
		}
	}
	return res
}

var suits = []mahjong.EColor{mahjong.ColorCharacter, mahjong.ColorBamboo, mahjong.ColorDot}

// 三种花色的全排列
var suitOrders = [][3]mahjong.EColor{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
}

// count 计算一种拆法在和了牌某个归属下的全部番种，已去掉不计的番种
func count(d *mahjong.Decomposition, a rules.Attribution, ctx *rules.Context, unique bool) *tally {
	t := &tally{times: make(map[string]int)}
	concealed := d.IsConcealed()

	switch d.Style {
	case mahjong.HandThirteenOrphans:
		t.add("thirteen_orphans", 1)
	case mahjong.HandSevenPairs:
		if shiftedPairs(d) {
			t.add("seven_shifted_pairs", 1)
		} else {
			t.add("seven_pairs", 1)
		}
	case mahjong.HandNormal:
		setFans(t, d, a, ctx)
	}
	tileFans(t, d)

	// 和牌方式
	switch {
	case !unique:
	case a.Wait == rules.WaitPenchan:
		t.add("edge_wait", 1)
	case a.Wait == rules.WaitKanchan:
		t.add("closed_wait", 1)
	case a.Wait == rules.WaitTanki:
		t.add("single_wait", 1)
	}
	if ctx.LastTile {
		if ctx.SelfDrawn {
			t.add("last_tile_draw", 1)
		} else {
			t.add("last_tile_claim", 1)
		}
	}
	if ctx.AfterKon {
		t.add("out_with_replacement_tile", 1)
	}
	if ctx.RobbingKon {
		t.add("robbing_the_kong", 1)
	}
	if ctx.LastCopy {
		t.add("last_tile", 1)
	}
	switch {
	case concealed && ctx.SelfDrawn:
		t.add("fully_concealed_hand", 1)
	case concealed:
		t.add("concealed_hand", 1)
	case ctx.SelfDrawn:
		t.add("self_drawn", 1)
	}
	if d.DeclaredCount() == 4 && !concealed && !ctx.SelfDrawn && a.Wait == rules.WaitTanki {
		t.add("melded_hand", 1)
	}

	exclude(t)
	if t.total(false) == 0 {
		t.add("chicken_hand", 1)
	}
	t.add("flower_tiles", len(ctx.Flowers))
	return t
}

// setFans 面子相关番种
func setFans(t *tally, d *mahjong.Decomposition, a rules.Attribution, ctx *rules.Context) {
	chows := rules.Chows(d)
	pungs := rules.Triplets(d)

	switch winds := rules.WindTriplets(d); {
	case winds == 4:
		t.add("big_four_winds", 1)
	case winds == 3 && d.Pair.IsWind():
		t.add("little_four_winds", 1)
	case winds == 3:
		t.add("big_three_winds", 1)
	}
	switch dragons := rules.DragonTriplets(d); {
	case dragons == 3:
		t.add("big_three_dragons", 1)
	case dragons == 2 && d.Pair.IsDragon():
		t.add("little_three_dragons", 1)
	case dragons == 2:
		t.add("two_dragon_pungs", 1)
	case dragons == 1:
		t.add("dragon_pung", 1)
	}
	if d.IsConcealed() && d.DeclaredCount() == 0 && rules.FullFlush(d) {
		if nine, _ := rules.NineGates(d.Counts(), ctx.WinTile); nine {
			t.add("nine_gates", 1)
		}
	}

	switch kongs := rules.Kongs(d); kongs {
	case 4:
		t.add("four_kongs", 1)
	case 3:
		t.add("three_kongs", 1)
	}
	melded, hidden := 0, 0
	for _, s := range d.Sets {
		if s.Kind != mahjong.MeldKon {
			continue
		}
		if s.Open {
			melded++
		} else {
			hidden++
		}
	}
	switch {
	case melded == 2:
		t.add("two_melded_kongs", 1)
	case melded == 1:
		t.add("melded_kong", 1)
	}
	if hidden == 1 {
		t.add("concealed_kong", 1)
	}

	switch rules.ConcealedTriplets(d, a, ctx.SelfDrawn) {
	case 4:
		t.add("four_concealed_pungs", 1)
	case 3:
		t.add("three_concealed_pungs", 1)
	case 2:
		t.add("two_concealed_pungs", 1)
	}

	if rules.AllTriplets(d) {
		t.add("all_pungs", 1)
		if rules.Every(d, isEven) {
			t.add("all_even_pungs", 1)
		}
	}
	if rules.AllChows(d) && !d.Pair.IsHonor() {
		t.add("all_chows", 1)
	}
	if rules.OutsideHand(d, true) {
		t.add("outside_hand", 1)
	}
	if allFives(d) {
		t.add("all_fives", 1)
	}

	// 同色顺子
	if terminalChows(d) {
		t.add("pure_terminal_chows", 1)
	}
	same := rules.SameSets(d)
	for _, n := range same {
		switch n {
		case 4:
			t.add("quadruple_chow", 1)
		case 3:
			t.add("pure_triple_chow", 1)
		}
	}
	switch {
	case shiftedInSuit(chows, 4, 1, 2):
		t.add("four_pure_shifted_chows", 1)
	case shiftedInSuit(chows, 3, 1, 2):
		t.add("pure_shifted_chows", 1)
	}
	if rules.Straight(d) {
		t.add("pure_straight", 1)
	}

	// 同色刻子
	switch {
	case shiftedInSuit(pungs, 4, 1):
		t.add("four_pure_shifted_pungs", 1)
	case shiftedInSuit(pungs, 3, 1):
		t.add("pure_shifted_pungs", 1)
	}

	// 三色
	if threeSuitedTerminals(d) {
		t.add("three_suited_terminal_chows", 1)
	}
	if acrossSuits(chows, 3) {
		t.add("mixed_straight", 1)
	}
	if acrossSuits(chows, 1) {
		t.add("mixed_shifted_chows", 1)
	}
	if acrossSuits(pungs, 1) {
		t.add("mixed_shifted_pungs", 1)
	}
	for p := range 9 {
		if p < 7 && rules.InThreeSuits(d, p, true) {
			t.add("mixed_triple_chow", 1)
		}
		switch suitsWithPung(pungs, p) {
		case 3:
			t.add("triple_pung", 1)
		case 2:
			t.add("double_pung", 1)
		}
	}

	pure, mixed, short, terminal := chowPairs(chows)
	t.add("pure_double_chow", pure)
	t.add("mixed_double_chow", mixed)
	t.add("short_straight", short)
	t.add("two_terminal_chows", terminal)

	for _, p := range pungs {
		switch {
		case p.IsTerminal():
			t.add("pung_of_terminals_or_honors", 1)
		case p.IsWind():
			if p != ctx.SeatWind.Kind() && p != ctx.RoundWind.Kind() {
				t.add("pung_of_terminals_or_honors", 1)
			}
		}
		if p == ctx.RoundWind.Kind() {
			t.add("prevalent_wind", 1)
		}
		if p == ctx.SeatWind.Kind() {
			t.add("seat_wind", 1)
		}
	}
}

// tileFans 只看牌张的番种
func tileFans(t *tally, d *mahjong.Decomposition) {
	switch {
	case rules.Every(d, rules.IsGreen):
		t.add("all_green", 1)
	case rules.Every(d, mahjong.Tile.IsTerminal):
		t.add("all_terminals", 1)
	case rules.AllHonors(d):
		t.add("all_honors", 1)
	case rules.Every(d, mahjong.Tile.IsTerminalOrHonor):
		t.add("all_terminals_and_honors", 1)
	}

	n, honors := rules.Suits(d)
	switch {
	case n == 1 && !honors:
		t.add("full_flush", 1)
	case n == 1:
		t.add("half_flush", 1)
	case n == 2:
		t.add("one_voided_suit", 1)
	}
	if !honors {
		t.add("no_honors", 1)
	}
	if n == 3 && rules.CountTiles(d, mahjong.Tile.IsWind) > 0 && rules.CountTiles(d, mahjong.Tile.IsDragon) > 0 {
		t.add("all_types", 1)
	}

	switch {
	case rules.Every(d, rankIn(7, 9)):
		t.add("upper_tiles", 1)
	case rules.Every(d, rankIn(4, 6)):
		t.add("middle_tiles", 1)
	case rules.Every(d, rankIn(1, 3)):
		t.add("lower_tiles", 1)
	case rules.Every(d, rankIn(6, 9)):
		t.add("upper_four", 1)
	case rules.Every(d, rankIn(1, 4)):
		t.add("lower_four", 1)
	}
	if rules.Every(d, isReversible) {
		t.add("reversible_tiles", 1)
	}
	if rules.AllSimples(d) {
		t.add("all_simples", 1)
	}

	// 四归一：四张相同且未开杠
	c := d.Counts()
	for i, n := range c {
		if n != mahjong.SupplyPerKind {
			continue
		}
		if !hasKong(d, mahjong.TileAt(i)) {
			t.add("tile_hog", 1)
		}
	}
}

func hasKong(d *mahjong.Decomposition, k mahjong.Tile) bool {
	for _, s := range d.Sets {
		if s.Kind == mahjong.MeldKon && s.Tile == k {
			return true
		}
	}
	return false
}

func isEven(t mahjong.Tile) bool {
	return t.IsSuit() && t.Rank()%2 == 0
}

func rankIn(lo, hi int) func(mahjong.Tile) bool {
	return func(t mahjong.Tile) bool {
		return t.IsSuit() && t.Rank() >= lo && t.Rank() <= hi
	}
}

// 推不倒: 1234589筒 245689条 白
var reversible = map[mahjong.Tile]bool{mahjong.TileBai: true}

func init() {
	for _, r := range []int{1, 2, 3, 4, 5, 8, 9} {
		reversible[mahjong.MakeTile(mahjong.ColorDot, r-1)] = true
	}
	for _, r := range []int{2, 4, 5, 6, 8, 9} {
		reversible[mahjong.MakeTile(mahjong.ColorBamboo, r-1)] = true
	}
}

func isReversible(t mahjong.Tile) bool {
	return reversible[t.Kind()]
}

// allFives 每组及将牌都含5
func allFives(d *mahjong.Decomposition) bool {
	if d.Pair.Rank() != 5 || !d.Pair.IsSuit() {
		return false
	}
	for _, s := range d.Sets {
		if !s.Tile.IsSuit() || !s.Contains(mahjong.MakeTile(s.Tile.Color(), 4)) {
			return false
		}
	}
	return true
}

// terminalChows 一色双龙会: 同色 123 123 789 789 加 55
func terminalChows(d *mahjong.Decomposition) bool {
	if !d.Pair.IsSuit() || d.Pair.Rank() != 5 {
		return false
	}
	c := d.Pair.Color()
	same := rules.SameSets(d)
	return same[mahjong.MakeTile(c, 0)] == 2 && same[mahjong.MakeTile(c, 6)] == 2
}

// threeSuitedTerminals 三色双龙会: 两色的 123 789 加第三色 55
func threeSuitedTerminals(d *mahjong.Decomposition) bool {
	if !d.Pair.IsSuit() || d.Pair.Rank() != 5 {
		return false
	}
	same := rules.SameSets(d)
	for _, c := range suits {
		if c == d.Pair.Color() {
			continue
		}
		if same[mahjong.MakeTile(c, 0)] == 0 || same[mahjong.MakeTile(c, 6)] == 0 {
			return false
		}
	}
	return true
}

// shiftedInSuit 同一花色 n 组按 step 递增
func shiftedInSuit(tiles []mahjong.Tile, n int, steps ...int) bool {
	have := make(map[mahjong.Tile]bool, len(tiles))
	for _, t := range tiles {
		have[t] = true
	}
	for _, t := range tiles {
		if !t.IsSuit() {
			continue
		}
		for _, step := range steps {
			ok := true
			for k := 1; k < n; k++ {
				p := t.Point() + k*step
				if p > 8 || !have[mahjong.MakeTile(t.Color(), p)] {
					ok = false
					break
				}
			}
			if ok {
				return true
			}
		}
	}
	return false
}

// acrossSuits 三种花色各一组，起点依次相差 step
func acrossSuits(tiles []mahjong.Tile, step int) bool {
	have := make(map[mahjong.Tile]bool, len(tiles))
	for _, t := range tiles {
		have[t] = true
	}
	for p := 0; p+2*step <= 8; p++ {
		for _, order := range suitOrders {
			if have[mahjong.MakeTile(order[0], p)] &&
				have[mahjong.MakeTile(order[1], p+step)] &&
				have[mahjong.MakeTile(order[2], p+2*step)] {
				return true
			}
		}
	}
	return false
}

func suitsWithPung(pungs []mahjong.Tile, point int) int {
	var seen [3]bool
	n := 0
	for _, p := range pungs {
		if p.IsSuit() && p.Point() == point && !seen[p.Color()] {
			seen[p.Color()] = true
			n++
		}
	}
	return n
}

// chowPairs 两两顺子的小番，每组顺子只用一次
func chowPairs(chows []mahjong.Tile) (pure, mixed, short, terminal int) {
	relations := []func(x, y mahjong.Tile) bool{
		func(x, y mahjong.Tile) bool { return x == y },
		func(x, y mahjong.Tile) bool { return x.Point() == y.Point() && x.Color() != y.Color() },
		func(x, y mahjong.Tile) bool { return x.Color() == y.Color() && abs(x.Point()-y.Point()) == 3 },
		func(x, y mahjong.Tile) bool { return x.Color() == y.Color() && abs(x.Point()-y.Point()) == 6 },
	}
	counts := make([]int, len(relations))
	used := make([]bool, len(chows))
	for r, rel := range relations {
		for i := range chows {
			for j := i + 1; j < len(chows); j++ {
				if used[i] || used[j] || !rel(chows[i], chows[j]) {
					continue
				}
				used[i], used[j] = true, true
				counts[r]++
			}
		}
	}
	return counts[0], counts[1], counts[2], counts[3]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// shiftedPairs 连七对
func shiftedPairs(d *mahjong.Decomposition) bool {
	if len(d.Sets) != 7 || !d.Sets[0].Tile.IsSuit() {
		return false
	}
	first := d.Sets[0].Tile
	for i, s := range d.Sets {
		if s.Tile != mahjong.MakeTile(first.Color(), first.Point()+i) {
			return false
		}
	}
	return true
}
