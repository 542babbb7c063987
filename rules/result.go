package rules

import (
	"fmt"
	"strings"

	"github.com/kevin-chtw/tw_mjcore/mahjong"
)

// Reason 拒绝和牌的原因
type Reason int

const (
	ReasonNone            Reason = iota
	ReasonNotComplete            // 未和牌
	ReasonNoYaku                 // 无役
	ReasonValueFloor             // 番数不足
	ReasonShapeNotAllowed        // 规则不承认该牌型
	ReasonContextConflict        // 场况矛盾
)

func (r Reason) String() string {
	switch r {
	case ReasonNotComplete:
		return "not_complete"
	case ReasonNoYaku:
		return "no_yaku"
	case ReasonValueFloor:
		return "value_floor"
	case ReasonShapeNotAllowed:
		return "shape_not_allowed"
	case ReasonContextConflict:
		return "context_conflict"
	default:
		return "none"
	}
}

// Verdict 判和结果
type Verdict struct {
	Accepted bool
	Reason   Reason
	Detail   string
}

func Accept() Verdict {
	return Verdict{Accepted: true}
}

func Reject(reason Reason, format string, args ...any) Verdict {
	return Verdict{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// Err 拒绝时返回 ErrIllegalWinDeclaration
func (v Verdict) Err() error {
	if v.Accepted {
		return nil
	}
	return mahjong.Errorf(mahjong.ErrIllegalWinDeclaration, "%s: %s", v.Reason, v.Detail)
}

// Pattern 一个计分番种
type Pattern struct {
	Name  string
	Value int
}

// Payments 各家支付
type Payments struct {
	FromDiscarder int // 放铳者
	FromDealer    int // 自摸时庄家
	FromOthers    int // 自摸时每个闲家
}

// ScoreResult 一种拆法的得分
type ScoreResult struct {
	Ruleset       string
	Patterns      []Pattern
	Value         int // 番数
	Fu            int
	Base          int
	Points        int
	Limit         string
	Payments      Payments
	Decomposition *mahjong.Decomposition
	Wait          WaitKind
}

// PatternNames 番种名列表
func (r *ScoreResult) PatternNames() []string {
	names := make([]string, len(r.Patterns))
	for i, p := range r.Patterns {
		names[i] = p.Name
	}
	return names
}

// HasPattern 是否计了某番种
func (r *ScoreResult) HasPattern(name string) bool {
	for _, p := range r.Patterns {
		if p.Name == name {
			return true
		}
	}
	return false
}

func (r *ScoreResult) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d", r.Ruleset, r.Value)
	if r.Fu > 0 {
		fmt.Fprintf(&sb, "/%d", r.Fu)
	}
	fmt.Fprintf(&sb, " %d", r.Points)
	if r.Limit != "" {
		sb.WriteString(" " + r.Limit)
	}
	for _, p := range r.Patterns {
		fmt.Fprintf(&sb, " %s:%d", p.Name, p.Value)
	}
	return sb.String()
}

// Outcome 一次判和算分的结果，Result 仅在 Verdict 通过时非空
type Outcome struct {
	Verdict Verdict
	Result  *ScoreResult
	// Candidates 参与比较的拆法数
	Candidates int
}

func (o Outcome) Accepted() bool {
	return o.Verdict.Accepted
}
