package mahjong

// Rules 变体支持的特殊牌型
type Rules struct {
	SevenPairs      bool // 七对
	SevenPairsQuads bool // 七对中四张相同可算两对
	ThirteenOrphans bool // 十三幺
}

var DefaultRules = Rules{SevenPairs: true, ThirteenOrphans: true}

// ShantenResult 向听结果，-1 表示已和牌
type ShantenResult struct {
	Shanten         int
	Style           EHandStyle // 取得最小向听的牌型
	Normal          int
	SevenPairs      int
	ThirteenOrphans int
	Waits           []Tile // 13张听牌时的听牌，能和的牌都已被自己持有4张时为空
}

func (r ShantenResult) Complete() bool {
	return r.Shanten < 0
}

func (r ShantenResult) Tenpai() bool {
	return r.Shanten == 0
}

// Classify 计算向听数。手牌须为13或14张(杠按3张计)
func Classify(h *Hand, rules Rules) (ShantenResult, error) {
	if err := checkSize(h, HandSizeWait, HandSizeWin); err != nil {
		return ShantenResult{}, err
	}
	if err := h.validate(); err != nil {
		return ShantenResult{}, err
	}

	s := newSearcher()
	counts := h.Counts()
	res := s.classify(&counts, len(h.melds), rules)
	if res.Tenpai() && h.Size() == HandSizeWait {
		res.Waits = s.waits(counts, h.HeldCounts(), len(h.melds), rules)
	}
	return res, nil
}

func checkSize(h *Hand, sizes ...int) error {
	n := h.Size()
	for _, s := range sizes {
		if n == s {
			return nil
		}
	}
	return newError(ErrInvalidHandSize, "hand has %d tiles (%d concealed, %d melds), want %v",
		n, len(h.tiles), len(h.melds), sizes)
}

// residual 搜索剩余牌的签名
type residual [KindCount]uint8

// blocks 从某个剩余状态可拆出的面子、搭子、雀头数
type blocks struct {
	sets     int8
	partials int8
	pair     int8
}

func (b blocks) plus(o blocks) blocks {
	return blocks{sets: b.sets + o.sets, partials: b.partials + o.partials, pair: b.pair + o.pair}
}

func (b blocks) covers(o blocks) bool {
	return b.sets >= o.sets && b.partials >= o.partials && b.pair >= o.pair
}

// searcher 单次计算内的拆牌搜索，memo 不跨调用共享
type searcher struct {
	memo map[residual][]blocks
}

func newSearcher() *searcher {
	return &searcher{memo: make(map[residual][]blocks)}
}

func (s *searcher) classify(c *Counts, declared int, rules Rules) ShantenResult {
	res := ShantenResult{
		Style:           HandNormal,
		Normal:          s.normal(c, declared),
		SevenPairs:      MaxTing,
		ThirteenOrphans: MaxTing,
	}
	res.Shanten = res.Normal

	if declared > 0 || c.Total() < HandSizeWait {
		return res
	}
	if rules.SevenPairs {
		res.SevenPairs = sevenPairsShanten(c, rules.SevenPairsQuads)
		if res.SevenPairs < res.Shanten {
			res.Shanten, res.Style = res.SevenPairs, HandSevenPairs
		}
	}
	if rules.ThirteenOrphans {
		res.ThirteenOrphans = thirteenOrphansShanten(c)
		if res.ThirteenOrphans < res.Shanten {
			res.Shanten, res.Style = res.ThirteenOrphans, HandThirteenOrphans
		}
	}
	return res
}

// normal 普通型向听: 8 - 2*面子 - 搭子(受面子上限约束) - 雀头
func (s *searcher) normal(c *Counts, declared int) int {
	var r residual
	for i, n := range c {
		r[i] = uint8(n)
	}
	best := MaxTing
	for _, b := range s.search(r) {
		sets := int(b.sets) + declared
		partials := min(int(b.partials), SetsPerHand-sets)
		best = min(best, 8-2*sets-partials-int(b.pair))
	}
	return best
}

// search 总是从最小的牌开始拆，返回不被支配的拆法
func (s *searcher) search(r residual) []blocks {
	i := lowest(&r)
	if i < 0 {
		return []blocks{{}}
	}
	if got, ok := s.memo[r]; ok {
		return got
	}

	var out []blocks
	try := func(next residual, d blocks) {
		for _, b := range s.search(next) {
			if d.pair > 0 && b.pair > 0 {
				continue
			}
			out = addPareto(out, b.plus(d))
		}
	}

	n := r[i]
	suited, pos := i < 27, i%9
	if n >= 3 {
		next := r
		next[i] -= 3
		try(next, blocks{sets: 1})
	}
	if suited && pos <= 6 && r[i+1] > 0 && r[i+2] > 0 {
		next := r
		next[i]--
		next[i+1]--
		next[i+2]--
		try(next, blocks{sets: 1})
	}
	if n >= 2 {
		next := r
		next[i] -= 2
		try(next, blocks{pair: 1})
		try(next, blocks{partials: 1})
	}
	if suited && pos <= 7 && r[i+1] > 0 {
		next := r
		next[i]--
		next[i+1]--
		try(next, blocks{partials: 1})
	}
	if suited && pos <= 6 && r[i+2] > 0 {
		next := r
		next[i]--
		next[i+2]--
		try(next, blocks{partials: 1})
	}
	next := r
	next[i]--
	try(next, blocks{})

	s.memo[r] = out
	return out
}

func addPareto(list []blocks, b blocks) []blocks {
	for _, e := range list {
		if e.covers(b) {
			return list
		}
	}
	res := list[:0]
	for _, e := range list {
		if !b.covers(e) {
			res = append(res, e)
		}
	}
	return append(res, b)
}

func lowest(r *residual) int {
	for i, n := range r {
		if n > 0 {
			return i
		}
	}
	return -1
}

// waits 13张听牌时能和的牌，已持有4张的牌种不算
func (s *searcher) waits(c Counts, held Counts, declared int, rules Rules) []Tile {
	var res []Tile
	for i := range KindCount {
		if held[i] >= SupplyPerKind {
			continue
		}
		c[i]++
		if completes(&c, declared, rules) {
			res = append(res, allKinds[i])
		}
		c[i]--
	}
	return res
}

// sevenPairsShanten 七对向听
func sevenPairsShanten(c *Counts, quads bool) int {
	pairs, kinds := 0, 0
	for _, n := range c {
		if n == 0 {
			continue
		}
		kinds++
		if quads {
			pairs += n / 2
		} else if n >= 2 {
			pairs++
		}
	}
	if quads {
		return 6 - min(pairs, 7)
	}
	return 6 - pairs + max(0, 7-kinds)
}

// thirteenOrphansShanten 十三幺向听
func thirteenOrphansShanten(c *Counts) int {
	kinds, paired := 0, 0
	for i, n := range c {
		if n == 0 || !allKinds[i].IsTerminalOrHonor() {
			continue
		}
		kinds++
		if n >= 2 {
			paired = 1
		}
	}
	return 13 - kinds - paired
}
