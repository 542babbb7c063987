package mahjong

import "slices"

// Set 和牌拆解中的一组牌
type Set struct {
	Kind     EMeldKind
	Tile     Tile       // 刻杠对为该牌，顺子为最小牌
	Declared bool       // 来自副露
	Open     bool       // 明副露
	Type     EGroupType // 副露类型，暗手为 GroupTypeNone
}

// Tiles 展开该组的牌(去赤)
func (s Set) Tiles() []Tile {
	switch s.Kind {
	case MeldChow:
		i := s.Tile.Index()
		return []Tile{allKinds[i], allKinds[i+1], allKinds[i+2]}
	case MeldPon:
		return MakeTiles(s.Tile, 3)
	case MeldKon:
		return MakeTiles(s.Tile, 4)
	case MeldPair:
		return MakeTiles(s.Tile, 2)
	}
	return nil
}

// Contains 该组是否含有某种牌
func (s Set) Contains(t Tile) bool {
	t = t.Kind()
	if s.Kind == MeldChow {
		return t.Color() == s.Tile.Color() && t.Point() >= s.Tile.Point() && t.Point() <= s.Tile.Point()+2
	}
	return t == s.Tile
}

// IsTriplet 刻子或杠
func (s Set) IsTriplet() bool {
	return s.Kind == MeldPon || s.Kind == MeldKon
}

// Decomposition 一种和牌拆法
type Decomposition struct {
	Style    EHandStyle
	Sets     []Set // 普通型: 副露在前；七对: 七个对子；十三幺: 空
	Pair     Tile  // 普通型和十三幺的将牌
	RedFives int
	counts   Counts
}

// Counts 全部牌(含副露，杠计4张)的计数
func (d *Decomposition) Counts() Counts {
	return d.counts
}

// Tiles 全部牌
func (d *Decomposition) Tiles() []Tile {
	return d.counts.Tiles()
}

// IsConcealed 没有明副露
func (d *Decomposition) IsConcealed() bool {
	for _, s := range d.Sets {
		if s.Open {
			return false
		}
	}
	return true
}

// DeclaredCount 副露组数
func (d *Decomposition) DeclaredCount() int {
	n := 0
	for _, s := range d.Sets {
		if s.Declared {
			n++
		}
	}
	return n
}

// Decompose 列出14张手牌的全部和牌拆法，非和牌返回空
func Decompose(h *Hand, rules Rules) ([]Decomposition, error) {
	if err := checkSize(h, HandSizeWin); err != nil {
		return nil, err
	}
	if err := h.validate(); err != nil {
		return nil, err
	}

	base := Decomposition{
		RedFives: h.RedFives(),
		counts:   h.HeldCounts(),
	}
	declared := meldSets(h.melds)
	c := h.Counts()

	var res []Decomposition
	for i := range KindCount {
		if c[i] < 2 {
			continue
		}
		c[i] -= 2
		enumerateSets(&c, slices.Clone(declared), func(sets []Set) {
			d := base
			d.Style = HandNormal
			d.Sets = sets
			d.Pair = allKinds[i]
			res = append(res, d)
		})
		c[i] += 2
	}

	if len(h.melds) > 0 {
		return res, nil
	}
	if rules.SevenPairs {
		if sets, ok := sevenPairSets(&c, rules.SevenPairsQuads); ok {
			d := base
			d.Style = HandSevenPairs
			d.Sets = sets
			d.Pair = TileNull
			res = append(res, d)
		}
	}
	if rules.ThirteenOrphans && thirteenOrphansShanten(&c) < 0 {
		d := base
		d.Style = HandThirteenOrphans
		for i, n := range c {
			if n == 2 {
				d.Pair = allKinds[i]
			}
		}
		res = append(res, d)
	}
	return res, nil
}

// IsComplete 是否和牌
func IsComplete(h *Hand, rules Rules) (bool, error) {
	if err := checkSize(h, HandSizeWin); err != nil {
		return false, err
	}
	if err := h.validate(); err != nil {
		return false, err
	}
	c := h.Counts()
	return completes(&c, len(h.melds), rules), nil
}

func meldSets(melds []Meld) []Set {
	sets := make([]Set, 0, len(melds))
	for _, m := range melds {
		sets = append(sets, Set{
			Kind:     m.Kind(),
			Tile:     m.First(),
			Declared: true,
			Open:     !m.Concealed(),
			Type:     m.Type,
		})
	}
	return sets
}

// enumerateSets 以最小牌为起点枚举刻子/顺子的全部拆法
func enumerateSets(c *Counts, cur []Set, emit func([]Set)) {
	i := -1
	for k, n := range c {
		if n > 0 {
			i = k
			break
		}
	}
	if i < 0 {
		emit(slices.Clone(cur))
		return
	}

	n := c[i]
	if n >= 3 {
		c[i] -= 3
		enumerateSets(c, append(cur, Set{Kind: MeldPon, Tile: allKinds[i]}), emit)
		c[i] += 3
	}
	// 不取刻子时每张都是顺子的首张，刻子不会出现在同起点的顺子之后
	if i < 27 && i%9 <= 6 && c[i+1] >= n && c[i+2] >= n {
		next := cur
		for range n {
			next = append(next, Set{Kind: MeldChow, Tile: allKinds[i]})
		}
		c[i] -= n
		c[i+1] -= n
		c[i+2] -= n
		enumerateSets(c, next, emit)
		c[i] += n
		c[i+1] += n
		c[i+2] += n
	}
}

// canFormSets 剩余牌能否全部组成面子
func canFormSets(c *Counts) bool {
	i := -1
	for k, n := range c {
		if n > 0 {
			i = k
			break
		}
	}
	if i < 0 {
		return true
	}
	if c[i] >= 3 {
		c[i] -= 3
		ok := canFormSets(c)
		c[i] += 3
		if ok {
			return true
		}
	}
	if i < 27 && i%9 <= 6 && c[i+1] > 0 && c[i+2] > 0 {
		c[i]--
		c[i+1]--
		c[i+2]--
		ok := canFormSets(c)
		c[i]++
		c[i+1]++
		c[i+2]++
		return ok
	}
	return false
}

// completes 暗手 c 加上 declared 组副露是否和牌
func completes(c *Counts, declared int, rules Rules) bool {
	if c.Total() != 3*(SetsPerHand-declared)+2 {
		return false
	}
	for i := range KindCount {
		if c[i] < 2 {
			continue
		}
		c[i] -= 2
		ok := canFormSets(c)
		c[i] += 2
		if ok {
			return true
		}
	}
	if declared > 0 {
		return false
	}
	if rules.SevenPairs {
		if _, ok := sevenPairSets(c, rules.SevenPairsQuads); ok {
			return true
		}
	}
	return rules.ThirteenOrphans && thirteenOrphansShanten(c) < 0
}

func sevenPairSets(c *Counts, quads bool) ([]Set, bool) {
	var sets []Set
	for i, n := range c {
		switch {
		case n == 0:
		case n == 2:
			sets = append(sets, Set{Kind: MeldPair, Tile: allKinds[i]})
		case n == 4 && quads:
			sets = append(sets, Set{Kind: MeldPair, Tile: allKinds[i]}, Set{Kind: MeldPair, Tile: allKinds[i]})
		default:
			return nil, false
		}
	}
	return sets, len(sets) == 7
}
