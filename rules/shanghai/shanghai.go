// Package shanghai 上海麻将：番数封顶，按番查表付分，花牌计番
package shanghai

import (
	"github.com/kevin-chtw/tw_mjcore/mahjong"
	"github.com/kevin-chtw/tw_mjcore/rules"
)

type Config struct {
	Cap        int   `mapstructure:"cap"`         // 封顶番数
	MinFan     int   `mapstructure:"min_fan"`     // 起和番
	SevenPairs bool  `mapstructure:"seven_pairs"` // 是否承认七对
	PayTable   []int `mapstructure:"pay_table"`   // 第 i 项为 i+1 番的付分
}

var DefaultConfig = Config{
	Cap:      8,
	MinFan:   1,
	PayTable: []int{1, 2, 4, 6, 8, 10, 12, 15},
}

type RuleSet struct {
	cfg Config
}

func New(cfg Config) *RuleSet {
	if cfg.Cap <= 0 {
		cfg.Cap = DefaultConfig.Cap
	}
	if len(cfg.PayTable) == 0 {
		cfg.PayTable = DefaultConfig.PayTable
	}
	return &RuleSet{cfg: cfg}
}

func init() {
	rules.MustRegister(New(DefaultConfig))
}

func (r *RuleSet) Name() string {
	return rules.NameShanghai
}

func (r *RuleSet) Config() Config {
	return r.cfg
}

func (r *RuleSet) Shapes() mahjong.Rules {
	return mahjong.Rules{SevenPairs: r.cfg.SevenPairs}
}

func (r *RuleSet) RefineWinLegality(d *mahjong.Decomposition, ctx *rules.Context) rules.Verdict {
	if d.Style != mahjong.HandNormal && !(d.Style == mahjong.HandSevenPairs && r.cfg.SevenPairs) {
		return rules.Reject(rules.ReasonShapeNotAllowed, "%s not allowed", d.Style)
	}
	best := 0
	for _, a := range rules.Attributions(d, ctx.WinTile) {
		best = max(best, r.fan(d, a, ctx).value)
	}
	if best < r.cfg.MinFan {
		return rules.Reject(rules.ReasonValueFloor, "%d fan below %d", best, r.cfg.MinFan)
	}
	return rules.Accept()
}

func (r *RuleSet) Score(d *mahjong.Decomposition, ctx *rules.Context) (rules.ScoreResult, error) {
	var best *fanList
	var wait rules.WaitKind
	for _, a := range rules.Attributions(d, ctx.WinTile) {
		f := r.fan(d, a, ctx)
		if best == nil || f.value > best.value {
			best, wait = f, a.Wait
		}
	}
	if best == nil {
		return rules.ScoreResult{}, rules.Reject(rules.ReasonContextConflict, "win tile %s not in hand", ctx.WinTile).Err()
	}

	res := rules.ScoreResult{
		Ruleset:       rules.NameShanghai,
		Patterns:      best.patterns,
		Value:         best.value,
		Decomposition: d,
		Wait:          wait,
	}
	if best.capped {
		res.Limit = "cap"
	}
	pay := r.pay(best.value)
	res.Base = pay
	if ctx.SelfDrawn {
		res.Payments.FromOthers = pay
		if !ctx.Dealer {
			res.Payments.FromDealer = pay
		}
		res.Points = 3 * pay
	} else {
		res.Payments.FromDiscarder = pay
		res.Points = pay
	}
	return res, nil
}

// pay 查表，超出表长取最后一项
func (r *RuleSet) pay(fan int) int {
	if fan <= 0 {
		return 0
	}
	i := min(fan, len(r.cfg.PayTable)) - 1
	return r.cfg.PayTable[i]
}
