// Package mcr 国标麻将：番种累加，8番起和，花牌另计
package mcr

import (
	"github.com/kevin-chtw/tw_mjcore/mahjong"
	"github.com/kevin-chtw/tw_mjcore/rules"
)

// Config 规则选项
type Config struct {
	MinFan int `mapstructure:"min_fan"` // 起和番，不含花牌
}

var DefaultConfig = Config{MinFan: 8}

// basePay 每家的底分
const basePay = 8

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
	return rules.NameMCR
}

func (r *RuleSet) Config() Config {
	return r.cfg
}

// Shapes 七对可含四张相同
func (r *RuleSet) Shapes() mahjong.Rules {
	return mahjong.Rules{SevenPairs: true, SevenPairsQuads: true, ThirteenOrphans: true}
}

// uniqueWait 和牌前只听一张，边张、嵌张、单钓才计番
func (r *RuleSet) uniqueWait(d *mahjong.Decomposition, ctx *rules.Context) bool {
	waits, err := rules.WaitsBefore(d, ctx.WinTile, r.Shapes())
	return err == nil && len(waits) == 1
}

func (r *RuleSet) RefineWinLegality(d *mahjong.Decomposition, ctx *rules.Context) rules.Verdict {
	best := 0
	unique := r.uniqueWait(d, ctx)
	for _, a := range rules.Attributions(d, ctx.WinTile) {
		best = max(best, count(d, a, ctx, unique).total(false))
	}
	if best < r.cfg.MinFan {
		return rules.Reject(rules.ReasonValueFloor, "%d fan below %d", best, r.cfg.MinFan)
	}
	return rules.Accept()
}

func (r *RuleSet) Score(d *mahjong.Decomposition, ctx *rules.Context) (rules.ScoreResult, error) {
	var best *tally
	var wait rules.WaitKind
	unique := r.uniqueWait(d, ctx)
	for _, a := range rules.Attributions(d, ctx.WinTile) {
		t := count(d, a, ctx, unique)
		if best == nil || t.total(true) > best.total(true) {
			best, wait = t, a.Wait
		}
	}
	if best == nil {
		return rules.ScoreResult{}, rules.Reject(rules.ReasonContextConflict, "win tile %s not in hand", ctx.WinTile).Err()
	}

	fan := best.total(true)
	res := rules.ScoreResult{
		Ruleset:       rules.NameMCR,
		Patterns:      best.patterns(),
		Value:         fan,
		Base:          basePay,
		Decomposition: d,
		Wait:          wait,
	}
	if ctx.SelfDrawn {
		res.Payments.FromOthers = basePay + fan
		if !ctx.Dealer {
			res.Payments.FromDealer = basePay + fan
		}
		res.Points = 3 * (basePay + fan)
	} else {
		res.Payments.FromDiscarder = basePay + fan
		res.Payments.FromOthers = basePay
		res.Points = 3*basePay + fan
	}
	return res, nil
}
