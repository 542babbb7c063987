package mahjong

import (
	"slices"
	"strings"
)

// Meld 副露
type Meld struct {
	Type  EGroupType
	Tiles []Tile // 有序
	From  int32  // 来源座位，自摸为 SeatNull
}

// NewMeld 校验并构造副露
func NewMeld(typ EGroupType, tiles []Tile, from int32) (Meld, error) {
	sorted := sortTiles(slices.Clone(tiles))
	m := Meld{Type: typ, Tiles: sorted, From: from}
	if err := m.Validate(); err != nil {
		return Meld{}, err
	}
	return m, nil
}

// Validate 检查副露形状与类型是否一致
func (m Meld) Validate() error {
	want := MeldNone
	switch m.Type {
	case GroupTypeChow:
		want = MeldChow
	case GroupTypePon:
		want = MeldPon
	case GroupTypeZhiKon, GroupTypeAnKon, GroupTypeBuKon:
		want = MeldKon
	default:
		return newError(ErrMalformedMeld, "unknown meld type %d", m.Type)
	}
	if got := ClassifyTiles(m.Tiles); got != want {
		return newError(ErrMalformedMeld, "%s tiles [%s] form %s", m.Type, joinTiles(m.Tiles), got)
	}
	if m.Type == GroupTypeAnKon && m.From != SeatNull {
		return newError(ErrMalformedMeld, "concealed kon claimed from seat %d", m.From)
	}
	return nil
}

// Kind 面子形状
func (m Meld) Kind() EMeldKind {
	switch m.Type {
	case GroupTypeChow:
		return MeldChow
	case GroupTypePon:
		return MeldPon
	case GroupTypeZhiKon, GroupTypeAnKon, GroupTypeBuKon:
		return MeldKon
	}
	return MeldNone
}

func (m Meld) Concealed() bool {
	return m.Type == GroupTypeAnKon
}

// First 最小的牌(去赤)
func (m Meld) First() Tile {
	if len(m.Tiles) == 0 {
		return TileNull
	}
	return m.Tiles[0].Kind()
}

func (m Meld) String() string {
	return m.Type.String() + ":" + joinTiles(m.Tiles)
}

// ClassifyTiles 判断一组牌的形状，无法成组返回 MeldNone
func ClassifyTiles(tiles []Tile) EMeldKind {
	if len(tiles) < 2 || len(tiles) > 4 {
		return MeldNone
	}
	kinds := make([]Tile, len(tiles))
	for i, t := range tiles {
		if t.Index() < 0 {
			return MeldNone
		}
		kinds[i] = t.Kind()
	}
	slices.Sort(kinds)

	identical := kinds[0] == kinds[len(kinds)-1]
	switch len(kinds) {
	case 2:
		if identical {
			return MeldPair
		}
	case 3:
		if identical {
			return MeldPon
		}
		if isRun(kinds[0], kinds[1], kinds[2]) {
			return MeldChow
		}
	case 4:
		if identical {
			return MeldKon
		}
	}
	return MeldNone
}

func isRun(a, b, c Tile) bool {
	if !a.IsSuit() || a.Color() != b.Color() || a.Color() != c.Color() {
		return false
	}
	return b.Point() == a.Point()+1 && c.Point() == b.Point()+1
}

func joinTiles(tiles []Tile) string {
	var sb strings.Builder
	for _, t := range tiles {
		sb.WriteString(t.String())
	}
	return sb.String()
}
