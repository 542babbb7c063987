package rules

import (
	"github.com/kevin-chtw/tw_mjcore/mahjong"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Engine 绑定一种规则的牌局引擎，拆牌与牌效与规则无关
type Engine struct {
	rs RuleSet
}

// NewEngine 按名字选择已注册的规则
func NewEngine(name string) (*Engine, error) {
	rs, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return &Engine{rs: rs}, nil
}

func NewEngineFor(rs RuleSet) *Engine {
	return &Engine{rs: rs}
}

func (e *Engine) RuleSet() RuleSet {
	return e.rs
}

func (e *Engine) Classify(h *mahjong.Hand) (mahjong.ShantenResult, error) {
	return mahjong.Classify(h, e.rs.Shapes())
}

func (e *Engine) Decompose(h *mahjong.Hand) ([]mahjong.Decomposition, error) {
	return mahjong.Decompose(h, e.rs.Shapes())
}

func (e *Engine) Analyze(h *mahjong.Hand, visible mahjong.Counts, opts ...mahjong.AnalyzeOption) (*mahjong.Analysis, error) {
	opts = append([]mahjong.AnalyzeOption{mahjong.WithRules(e.rs.Shapes())}, opts...)
	return mahjong.Analyze(h, visible, opts...)
}

// Evaluate 判和并算分：逐个拆法判定，取点数最高者(同点取番数高者，再同取先出现者)。
// 没有可和的拆法时返回第一个拒绝原因，不作为错误。
func (e *Engine) Evaluate(h *mahjong.Hand, ctx Context) (Outcome, error) {
	decs, err := e.Decompose(h)
	if err != nil {
		return Outcome{}, err
	}
	if v := ctx.Conflict(h); !v.Accepted {
		return Outcome{Verdict: v}, nil
	}
	if len(decs) == 0 {
		return Outcome{Verdict: Reject(ReasonNotComplete, "%s is not a complete hand", h)}, nil
	}
	ctx.fillFlowers(h)

	var best *ScoreResult
	var rejected Verdict
	for i := range decs {
		d := &decs[i]
		v := e.rs.RefineWinLegality(d, &ctx)
		if len(Attributions(d, ctx.WinTile)) == 0 {
			v = Reject(ReasonContextConflict, "win tile %s only appears in declared melds", ctx.WinTile)
		}
		if !v.Accepted {
			if rejected.Reason == ReasonNone {
				rejected = v
			}
			continue
		}
		res, err := e.rs.Score(d, &ctx)
		if err != nil {
			return Outcome{}, err
		}
		if best == nil || res.Points > best.Points || (res.Points == best.Points && res.Value > best.Value) {
			best = &res
		}
	}

	if best == nil {
		logger.Log.Debugf("%s rejects %s: %s %s", e.rs.Name(), h, rejected.Reason, rejected.Detail)
		return Outcome{Verdict: rejected, Candidates: len(decs)}, nil
	}
	logger.Log.Debugf("%s scores %s: %s", e.rs.Name(), h, best)
	return Outcome{Verdict: Accept(), Result: best, Candidates: len(decs)}, nil
}
