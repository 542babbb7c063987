package rules

import (
	"github.com/kevin-chtw/tw_mjcore/mahjong"
)

// WaitKind 听牌形式
type WaitKind int

const (
	WaitNone    WaitKind = iota
	WaitRyanmen          // 两面
	WaitKanchan          // 嵌张
	WaitPenchan          // 边张
	WaitTanki            // 单骑
	WaitShanpon          // 双碰
)

func (w WaitKind) String() string {
	switch w {
	case WaitRyanmen:
		return "ryanmen"
	case WaitKanchan:
		return "kanchan"
	case WaitPenchan:
		return "penchan"
	case WaitTanki:
		return "tanki"
	case WaitShanpon:
		return "shanpon"
	default:
		return "none"
	}
}

// Attribution 和了牌在拆法中的一种归属
type Attribution struct {
	Wait WaitKind
	Set  int // d.Sets 的下标，将牌为 -1
}

// Attributions 列出和了牌在拆法中所有可能的位置，副露中的牌不参与
func Attributions(d *mahjong.Decomposition, win mahjong.Tile) []Attribution {
	win = win.Kind()
	switch d.Style {
	case mahjong.HandThirteenOrphans:
		return []Attribution{{Wait: WaitTanki, Set: -1}}
	case mahjong.HandSevenPairs:
		for i, s := range d.Sets {
			if s.Tile == win {
				return []Attribution{{Wait: WaitTanki, Set: i}}
			}
		}
		return nil
	}

	var res []Attribution
	if d.Pair == win {
		res = append(res, Attribution{Wait: WaitTanki, Set: -1})
	}
	for i, s := range d.Sets {
		if s.Declared || !s.Contains(win) {
			continue
		}
		a := Attribution{Set: i}
		switch s.Kind {
		case mahjong.MeldPon:
			a.Wait = WaitShanpon
		case mahjong.MeldChow:
			switch win.Point() - s.Tile.Point() {
			case 1:
				a.Wait = WaitKanchan
			case 0:
				a.Wait = WaitRyanmen
				if s.Tile.Point() == 6 {
					a.Wait = WaitPenchan
				}
			case 2:
				a.Wait = WaitRyanmen
				if s.Tile.Point() == 0 {
					a.Wait = WaitPenchan
				}
			}
		default:
			continue
		}
		if !duplicated(d, res, a) {
			res = append(res, a)
		}
	}
	return res
}

func duplicated(d *mahjong.Decomposition, list []Attribution, a Attribution) bool {
	for _, o := range list {
		if o.Wait == a.Wait && o.Set >= 0 && d.Sets[o.Set] == d.Sets[a.Set] {
			return true
		}
	}
	return false
}

// WaitKinds 听牌张，未听牌返回空
func WaitKinds(h *mahjong.Hand, rules mahjong.Rules) ([]mahjong.Tile, error) {
	res, err := mahjong.Classify(h, rules)
	if err != nil {
		return nil, err
	}
	return res.Waits, nil
}

// WaitsBefore 拆法去掉和了牌后的听牌张
func WaitsBefore(d *mahjong.Decomposition, win mahjong.Tile, shapes mahjong.Rules) ([]mahjong.Tile, error) {
	c := d.Counts()
	var melds []mahjong.Meld
	for _, s := range d.Sets {
		if !s.Declared {
			continue
		}
		tiles := s.Tiles()
		m, err := mahjong.NewMeld(s.Type, tiles, mahjong.SeatNull)
		if err != nil {
			return nil, err
		}
		melds = append(melds, m)
		for _, t := range tiles {
			c.Add(t, -1)
		}
	}
	if c.Of(win) == 0 {
		return nil, mahjong.Errorf(mahjong.ErrTileNotInHand, "win tile %s not concealed", win)
	}
	c.Add(win, -1)
	return WaitKinds(mahjong.NewHand(c.Tiles(), melds...), shapes)
}

// ClosedSet 和了后该组是否算暗：荣和双碰完成的刻子算明
func ClosedSet(d *mahjong.Decomposition, i int, a Attribution, selfDrawn bool) bool {
	s := d.Sets[i]
	if s.Open {
		return false
	}
	return selfDrawn || a.Wait != WaitShanpon || a.Set != i
}

// ConcealedTriplets 暗刻(含暗杠)数
func ConcealedTriplets(d *mahjong.Decomposition, a Attribution, selfDrawn bool) int {
	n := 0
	for i, s := range d.Sets {
		if s.IsTriplet() && ClosedSet(d, i, a, selfDrawn) {
			n++
		}
	}
	return n
}

// Triplets 刻子与杠的牌
func Triplets(d *mahjong.Decomposition) []mahjong.Tile {
	var res []mahjong.Tile
	for _, s := range d.Sets {
		if s.IsTriplet() {
			res = append(res, s.Tile)
		}
	}
	return res
}

// Chows 顺子的首张
func Chows(d *mahjong.Decomposition) []mahjong.Tile {
	var res []mahjong.Tile
	for _, s := range d.Sets {
		if s.Kind == mahjong.MeldChow {
			res = append(res, s.Tile)
		}
	}
	return res
}

// Kongs 杠数
func Kongs(d *mahjong.Decomposition) int {
	n := 0
	for _, s := range d.Sets {
		if s.Kind == mahjong.MeldKon {
			n++
		}
	}
	return n
}

// HasTriplet 是否有某张牌的刻子或杠
func HasTriplet(d *mahjong.Decomposition, t mahjong.Tile) bool {
	for _, s := range d.Sets {
		if s.IsTriplet() && s.Tile == t.Kind() {
			return true
		}
	}
	return false
}

// AllTriplets 对对和
func AllTriplets(d *mahjong.Decomposition) bool {
	if d.Style != mahjong.HandNormal {
		return false
	}
	for _, s := range d.Sets {
		if !s.IsTriplet() {
			return false
		}
	}
	return true
}

// AllChows 平和形(不看将牌)
func AllChows(d *mahjong.Decomposition) bool {
	if d.Style != mahjong.HandNormal {
		return false
	}
	for _, s := range d.Sets {
		if s.Kind != mahjong.MeldChow {
			return false
		}
	}
	return true
}

// DragonTriplets 箭刻数
func DragonTriplets(d *mahjong.Decomposition) int {
	n := 0
	for _, t := range Triplets(d) {
		if t.IsDragon() {
			n++
		}
	}
	return n
}

// WindTriplets 风刻数
func WindTriplets(d *mahjong.Decomposition) int {
	n := 0
	for _, t := range Triplets(d) {
		if t.IsWind() {
			n++
		}
	}
	return n
}

// Suits 用到的数牌花色数以及是否有字牌
func Suits(d *mahjong.Decomposition) (int, bool) {
	var used [mahjong.ColorEnd]bool
	honors := false
	for _, t := range d.Tiles() {
		if t.IsHonor() {
			honors = true
			continue
		}
		used[t.Color()] = true
	}
	n := 0
	for c := mahjong.ColorCharacter; c <= mahjong.ColorDot; c++ {
		if used[c] {
			n++
		}
	}
	return n, honors
}

// FullFlush 清一色
func FullFlush(d *mahjong.Decomposition) bool {
	n, honors := Suits(d)
	return n == 1 && !honors
}

// HalfFlush 混一色
func HalfFlush(d *mahjong.Decomposition) bool {
	n, honors := Suits(d)
	return n == 1 && honors
}

// Every 所有牌都满足 pred
func Every(d *mahjong.Decomposition, pred func(mahjong.Tile) bool) bool {
	for _, t := range d.Tiles() {
		if !pred(t) {
			return false
		}
	}
	return true
}

// CountTiles 满足 pred 的牌张数
func CountTiles(d *mahjong.Decomposition, pred func(mahjong.Tile) bool) int {
	n := 0
	for _, t := range d.Tiles() {
		if pred(t) {
			n++
		}
	}
	return n
}

// AllSimples 断幺
func AllSimples(d *mahjong.Decomposition) bool {
	return Every(d, mahjong.Tile.IsSimple)
}

// AllHonors 字一色
func AllHonors(d *mahjong.Decomposition) bool {
	return Every(d, mahjong.Tile.IsHonor)
}

// OutsideHand 每组及将牌都带幺九，honors 为 false 时不许有字牌
func OutsideHand(d *mahjong.Decomposition, honors bool) bool {
	if d.Style != mahjong.HandNormal {
		return false
	}
	ok := func(t mahjong.Tile) bool {
		if t.IsHonor() {
			return honors
		}
		return t.IsTerminal()
	}
	if !ok(d.Pair) {
		return false
	}
	for _, s := range d.Sets {
		if s.Kind == mahjong.MeldChow {
			if s.Tile.Point() != 0 && s.Tile.Point() != 6 {
				return false
			}
			continue
		}
		if !ok(s.Tile) {
			return false
		}
	}
	return true
}

// SameSets 相同顺子(同花色同起点)的对数统计，返回每种顺子的个数
func SameSets(d *mahjong.Decomposition) map[mahjong.Tile]int {
	res := make(map[mahjong.Tile]int)
	for _, t := range Chows(d) {
		res[t]++
	}
	return res
}

// InThreeSuits 某点数在三种花色各有一组，chow 为 true 看顺子，否则看刻子
func InThreeSuits(d *mahjong.Decomposition, point int, chow bool) bool {
	var found [3]bool
	for _, s := range d.Sets {
		if !s.Tile.IsSuit() || s.Tile.Point() != point {
			continue
		}
		if (chow && s.Kind == mahjong.MeldChow) || (!chow && s.IsTriplet()) {
			found[s.Tile.Color()] = true
		}
	}
	return found[0] && found[1] && found[2]
}

// Straight 同一花色 123 456 789
func Straight(d *mahjong.Decomposition) bool {
	chows := SameSets(d)
	for c := mahjong.ColorCharacter; c <= mahjong.ColorDot; c++ {
		if chows[mahjong.MakeTile(c, 0)] > 0 && chows[mahjong.MakeTile(c, 3)] > 0 && chows[mahjong.MakeTile(c, 6)] > 0 {
			return true
		}
	}
	return false
}

var green = map[mahjong.Tile]bool{
	mahjong.MakeTile(mahjong.ColorBamboo, 1): true,
	mahjong.MakeTile(mahjong.ColorBamboo, 2): true,
	mahjong.MakeTile(mahjong.ColorBamboo, 3): true,
	mahjong.MakeTile(mahjong.ColorBamboo, 5): true,
	mahjong.MakeTile(mahjong.ColorBamboo, 7): true,
	mahjong.TileFa:                           true,
}

// IsGreen 绿一色用牌: 23468条与发
func IsGreen(t mahjong.Tile) bool {
	return green[t.Kind()]
}

// NineGates 九莲宝灯：1112345678999 加同色任一张；pure 为去掉和了牌后恰为九面听
func NineGates(c mahjong.Counts, win mahjong.Tile) (bool, bool) {
	kinds := c.Kinds()
	if len(kinds) == 0 || !kinds[0].IsSuit() {
		return false, false
	}
	color := kinds[0].Color()
	base := [9]int{3, 1, 1, 1, 1, 1, 1, 1, 3}
	inColor := 0
	for p, need := range base {
		n := c.Of(mahjong.MakeTile(color, p))
		if n < need {
			return false, false
		}
		inColor += n
	}
	if inColor != mahjong.HandSizeWin || c.Total() != mahjong.HandSizeWin {
		return false, false
	}
	c.Add(win, -1)
	for p, need := range base {
		if c.Of(mahjong.MakeTile(color, p)) != need {
			return true, false
		}
	}
	return true, true
}
