package riichi

import (
	"strconv"

	"github.com/kevin-chtw/tw_mjcore/rules"
)

const (
	manganBase    = 2000
	hanemanBase   = 3000
	baimanBase    = 4000
	sanbaimanBase = 6000
	yakumanBase   = 8000
)

// basePoints 基本点与满贯等级
func (r *RuleSet) basePoints(han, fu int) (int, string) {
	switch {
	case han >= 13:
		return yakumanBase, "kazoe_yakuman"
	case han >= 11:
		return sanbaimanBase, "sanbaiman"
	case han >= 8:
		return baimanBase, "baiman"
	case han >= 6:
		return hanemanBase, "haneman"
	case han >= 5:
		return manganBase, "mangan"
	}
	if r.cfg.KiriageMangan && ((han == 4 && fu == 30) || (han == 3 && fu == 60)) {
		return manganBase, "mangan"
	}
	base := fu << (han + 2)
	if base > manganBase {
		return manganBase, "mangan"
	}
	return base, ""
}

func limitName(base int) string {
	if n := base / yakumanBase; n > 1 {
		return "yakuman_x" + strconv.Itoa(n)
	}
	return "yakuman"
}

// payments 按基本点计算支付，含本场
func payments(base int, ctx *rules.Context) (rules.Payments, int) {
	var p rules.Payments
	switch {
	case !ctx.SelfDrawn && ctx.Dealer:
		p.FromDiscarder = roundUp(6*base, 100) + 300*ctx.Honba
		return p, p.FromDiscarder
	case !ctx.SelfDrawn:
		p.FromDiscarder = roundUp(4*base, 100) + 300*ctx.Honba
		return p, p.FromDiscarder
	case ctx.Dealer:
		p.FromOthers = roundUp(2*base, 100) + 100*ctx.Honba
		return p, 3 * p.FromOthers
	default:
		p.FromDealer = roundUp(2*base, 100) + 100*ctx.Honba
		p.FromOthers = roundUp(base, 100) + 100*ctx.Honba
		return p, p.FromDealer + 2*p.FromOthers
	}
}
