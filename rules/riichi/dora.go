package riichi

import (
	"github.com/kevin-chtw/tw_mjcore/mahjong"
	"github.com/kevin-chtw/tw_mjcore/rules"
)

// DoraOf 指示牌的下一张为宝牌：数牌 9 接 1，风牌东南西北循环，箭牌白发中循环
func DoraOf(indicator mahjong.Tile) mahjong.Tile {
	if indicator.Index() < 0 {
		return mahjong.TileNull
	}
	c, p := indicator.Kind().Info()
	switch c {
	case mahjong.ColorWind:
		return mahjong.MakeTile(c, (p+1)%4)
	case mahjong.ColorDragon:
		return mahjong.MakeTile(c, (p+2)%3)
	default:
		return mahjong.MakeTile(c, (p+1)%9)
	}
}

func countDora(counts mahjong.Counts, indicators []mahjong.Tile) int {
	n := 0
	for _, ind := range indicators {
		if dora := DoraOf(ind); dora != mahjong.TileNull {
			n += counts.Of(dora)
		}
	}
	return n
}

// dora 宝牌、里宝牌、赤宝牌，不算役
func (r *RuleSet) dora(d *mahjong.Decomposition, ctx *rules.Context) []rules.Pattern {
	var res []rules.Pattern
	counts := d.Counts()
	if n := countDora(counts, ctx.Indicators); n > 0 {
		res = append(res, rules.Pattern{Name: "dora", Value: n})
	}
	if ctx.Riichi {
		if n := countDora(counts, ctx.UraIndicators); n > 0 {
			res = append(res, rules.Pattern{Name: "ura_dora", Value: n})
		}
	}
	if r.cfg.RedFives && d.RedFives > 0 {
		res = append(res, rules.Pattern{Name: "aka_dora", Value: d.RedFives})
	}
	return res
}
