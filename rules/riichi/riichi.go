// Package riichi 日本麻将(立直麻将)：役、翻、符与点数计算
package riichi

import (
	"github.com/kevin-chtw/tw_mjcore/mahjong"
	"github.com/kevin-chtw/tw_mjcore/rules"
)

// Config 规则选项
type Config struct {
	OpenTanyao    bool `mapstructure:"open_tanyao"`    // 食断
	RedFives      bool `mapstructure:"red_fives"`      // 赤宝牌
	KiriageMangan bool `mapstructure:"kiriage_mangan"` // 切上满贯
	DoubleYakuman bool `mapstructure:"double_yakuman"` // 双倍役满
}

var DefaultConfig = Config{
	OpenTanyao: true,
	RedFives:   true,
}

type RuleSet struct {
	cfg Config
}

func New(cfg Config) *RuleSet {
	return &RuleSet{cfg: cfg}
}

func init() {
	rules.MustRegister(New(DefaultConfig))
}

func (r *RuleSet) Name() string {
	return rules.NameRiichi
}

func (r *RuleSet) Config() Config {
	return r.cfg
}

func (r *RuleSet) Shapes() mahjong.Rules {
	return mahjong.Rules{SevenPairs: true, ThirteenOrphans: true}
}

// RefineWinLegality 至少一役；副露后不能立直
func (r *RuleSet) RefineWinLegality(d *mahjong.Decomposition, ctx *rules.Context) rules.Verdict {
	if (ctx.Riichi || ctx.DoubleRiichi) && !d.IsConcealed() {
		return rules.Reject(rules.ReasonContextConflict, "riichi declared with an open hand")
	}
	for _, a := range rules.Attributions(d, ctx.WinTile) {
		if y := r.yaku(d, a, ctx); y.han > 0 || y.yakuman > 0 {
			return rules.Accept()
		}
	}
	return rules.Reject(rules.ReasonNoYaku, "no yaku in %s", d.Style)
}

// Score 取和了牌各种归属中点数最高者
func (r *RuleSet) Score(d *mahjong.Decomposition, ctx *rules.Context) (rules.ScoreResult, error) {
	var best rules.ScoreResult
	found := false
	for _, a := range rules.Attributions(d, ctx.WinTile) {
		y := r.yaku(d, a, ctx)
		if y.han == 0 && y.yakuman == 0 {
			continue
		}
		res := r.settle(d, a, ctx, y)
		if !found || res.Points > best.Points || (res.Points == best.Points && res.Value > best.Value) {
			best = res
			found = true
		}
	}
	if !found {
		return rules.ScoreResult{}, rules.Reject(rules.ReasonNoYaku, "no yaku in %s", d.Style).Err()
	}
	return best, nil
}

func (r *RuleSet) settle(d *mahjong.Decomposition, a rules.Attribution, ctx *rules.Context, y yakuList) rules.ScoreResult {
	res := rules.ScoreResult{
		Ruleset:       rules.NameRiichi,
		Decomposition: d,
		Wait:          a.Wait,
	}
	if y.yakuman > 0 {
		res.Patterns = y.patterns
		res.Value = 13 * y.yakuman
		res.Base = yakumanBase * y.yakuman
		res.Limit = limitName(res.Base)
	} else {
		dora := r.dora(d, ctx)
		res.Patterns = append(y.patterns, dora...)
		res.Value = y.han
		for _, p := range dora {
			res.Value += p.Value
		}
		res.Fu = fu(d, a, ctx, y.pinfu)
		res.Base, res.Limit = r.basePoints(res.Value, res.Fu)
	}
	res.Payments, res.Points = payments(res.Base, ctx)
	return res
}
