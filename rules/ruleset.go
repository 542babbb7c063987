package rules

import "github.com/kevin-chtw/tw_mjcore/mahjong"

// 已知的规则名
const (
	NameRiichi   = "riichi"
	NameMCR      = "mcr"
	NameShanghai = "shanghai"
)

// RuleSet 一种麻将规则的判和与算分
type RuleSet interface {
	Name() string
	// Shapes 该规则承认的特殊牌型
	Shapes() mahjong.Rules
	// RefineWinLegality 在通用拆牌之上判断是否允许和牌
	RefineWinLegality(d *mahjong.Decomposition, ctx *Context) Verdict
	// Score 计算一种拆法的得分
	Score(d *mahjong.Decomposition, ctx *Context) (ScoreResult, error)
}
