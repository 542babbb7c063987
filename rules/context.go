package rules

import (
	"slices"

	"github.com/kevin-chtw/tw_mjcore/mahjong"
)

// Context 手牌之外的和牌场况
type Context struct {
	SeatWind      mahjong.Tile   // 自风
	RoundWind     mahjong.Tile   // 场风
	WinTile       mahjong.Tile   // 和了牌
	SelfDrawn     bool           // 自摸
	Dealer        bool           // 庄家
	Indicators    []mahjong.Tile // 宝牌指示牌
	UraIndicators []mahjong.Tile // 里宝牌指示牌
	Riichi        bool
	DoubleRiichi  bool
	Ippatsu       bool
	LastTile      bool // 海底摸月/河底捞鱼
	AfterKon      bool // 杠上开花
	RobbingKon    bool // 抢杠
	FirstDraw     bool // 天和/地和
	LastCopy      bool // 和绝张
	Flowers       []mahjong.Tile
	Honba         int // 本场数
}

// DefaultContext 东场东家荣和
func DefaultContext(win mahjong.Tile) Context {
	return Context{
		SeatWind:  mahjong.TileDong,
		RoundWind: mahjong.TileDong,
		WinTile:   win,
		Dealer:    true,
	}
}

// Conflict 检查场况与手牌是否自相矛盾，无矛盾返回 Accept()
func (c *Context) Conflict(h *mahjong.Hand) Verdict {
	if !c.WinTile.IsValid() || c.WinTile.IsExtra() {
		return Reject(ReasonContextConflict, "win tile %v is not a playable tile", c.WinTile)
	}
	held := h.HeldCounts()
	if held.Of(c.WinTile) == 0 {
		return Reject(ReasonContextConflict, "win tile %s not in hand", c.WinTile)
	}
	if !c.SeatWind.IsWind() || !c.RoundWind.IsWind() {
		return Reject(ReasonContextConflict, "seat %s / round %s must be winds", c.SeatWind, c.RoundWind)
	}
	switch {
	case c.RobbingKon && c.SelfDrawn:
		return Reject(ReasonContextConflict, "robbing a kon cannot be self drawn")
	case c.AfterKon && !c.SelfDrawn:
		return Reject(ReasonContextConflict, "replacement tile win must be self drawn")
	case c.AfterKon && c.LastTile:
		return Reject(ReasonContextConflict, "replacement tile cannot be the last tile")
	case c.DoubleRiichi && !c.Riichi:
		return Reject(ReasonContextConflict, "double riichi without riichi")
	case c.Ippatsu && !c.Riichi:
		return Reject(ReasonContextConflict, "ippatsu without riichi")
	case c.Honba < 0:
		return Reject(ReasonContextConflict, "negative honba %d", c.Honba)
	}
	return Accept()
}

// fillFlowers 场况没给花牌时取手牌的花
func (c *Context) fillFlowers(h *mahjong.Hand) {
	if len(c.Flowers) == 0 {
		c.Flowers = h.Flowers()
	}
	c.Indicators = slices.Clone(c.Indicators)
	c.UraIndicators = slices.Clone(c.UraIndicators)
}
