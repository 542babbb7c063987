package mahjong

import (
	"cmp"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"
)

// UsefulTile 有效进张及剩余张数
type UsefulTile struct {
	Tile      Tile
	Remaining int
}

// DiscardOption 打出某张牌后的牌效
type DiscardOption struct {
	Discard     Tile // 13张手牌时为 TileNull
	Shanten     int
	Useful      []UsefulTile
	UsefulCount int
}

// Analysis 牌效分析结果，按打出的牌索引
type Analysis struct {
	Shanten int // 分析前的向听
	Options map[Tile]DiscardOption
}

// Ranked 向听小优先，其次进张种类多，再次进张张数多
func (a *Analysis) Ranked() []DiscardOption {
	res := slices.Collect(maps.Values(a.Options))
	slices.SortFunc(res, func(x, y DiscardOption) int {
		return cmp.Or(
			cmp.Compare(x.Shanten, y.Shanten),
			cmp.Compare(len(y.Useful), len(x.Useful)),
			cmp.Compare(y.UsefulCount, x.UsefulCount),
			cmp.Compare(x.Discard, y.Discard),
		)
	})
	return res
}

// Best 最优打法
func (a *Analysis) Best() (DiscardOption, bool) {
	ranked := a.Ranked()
	if len(ranked) == 0 {
		return DiscardOption{}, false
	}
	return ranked[0], true
}

type analyzeOptions struct {
	rules       Rules
	parallelism int
}

// AnalyzeOption 分析选项
type AnalyzeOption func(*analyzeOptions)

// WithRules 指定特殊牌型
func WithRules(r Rules) AnalyzeOption {
	return func(o *analyzeOptions) {
		o.rules = r
	}
}

// WithParallelism 并发计算各打法，n<=1 为串行
func WithParallelism(n int) AnalyzeOption {
	return func(o *analyzeOptions) {
		o.parallelism = n
	}
}

// Analyze 计算每种打法的向听与有效进张。
// visible 为场上可见的牌(牌河、他家副露、宝牌指示牌等)，不含自己的手牌。
func Analyze(h *Hand, visible Counts, opts ...AnalyzeOption) (*Analysis, error) {
	options := &analyzeOptions{rules: DefaultRules, parallelism: 1}
	for _, opt := range opts {
		opt(options)
	}

	if err := checkSize(h, HandSizeWait, HandSizeWin); err != nil {
		return nil, err
	}
	if err := h.validate(); err != nil {
		return nil, err
	}
	held := h.HeldCounts()
	for i := range KindCount {
		if visible[i] < 0 {
			return nil, newError(ErrTileSupplyExceeded, "negative visible count for %s", allKinds[i])
		}
		if visible[i]+held[i] > SupplyPerKind {
			return nil, newError(ErrTileSupplyExceeded, "%s: %d visible + %d held exceeds %d",
				allKinds[i], visible[i], held[i], SupplyPerKind)
		}
	}

	counts := h.Counts()
	declared := len(h.melds)
	analysis := &Analysis{
		Shanten: newSearcher().classify(&counts, declared, options.rules).Shanten,
		Options: make(map[Tile]DiscardOption),
	}

	// 13张直接算进张
	if h.Size() == HandSizeWait {
		opt := evalDiscard(counts, held, visible, declared, options.rules, TileNull)
		analysis.Options[TileNull] = opt
		return analysis, nil
	}

	candidates := counts.Kinds()
	results := make([]DiscardOption, len(candidates))
	var g errgroup.Group
	g.SetLimit(max(options.parallelism, 1))
	for i, discard := range candidates {
		g.Go(func() error {
			after := counts
			after.Add(discard, -1)
			results[i] = evalDiscard(after, held, visible, declared, options.rules, discard)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, r := range results {
		analysis.Options[r.Discard] = r
	}
	return analysis, nil
}

// evalDiscard 对13张暗手计算向听与有效进张，每次调用独占一个 searcher
func evalDiscard(c, held, visible Counts, declared int, rules Rules, discard Tile) DiscardOption {
	s := newSearcher()
	shanten := s.classify(&c, declared, rules).Shanten
	opt := DiscardOption{Discard: discard, Shanten: shanten}
	for i := range KindCount {
		remaining := SupplyPerKind - visible[i] - held[i]
		if remaining <= 0 {
			continue
		}
		c[i]++
		next := s.classify(&c, declared, rules).Shanten
		c[i]--
		if next < shanten {
			opt.Useful = append(opt.Useful, UsefulTile{Tile: allKinds[i], Remaining: remaining})
			opt.UsefulCount += remaining
		}
	}
	return opt
}
