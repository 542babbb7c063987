package mahjong

import (
	"slices"
	"strings"
)

// Hand 一名玩家的手牌：暗牌 + 副露 + 花牌
type Hand struct {
	tiles   []Tile
	melds   []Meld
	flowers []Tile
}

// NewHand 花牌会被放入花牌区
func NewHand(tiles []Tile, melds ...Meld) *Hand {
	h := &Hand{melds: slices.Clone(melds)}
	for _, t := range tiles {
		h.Draw(t)
	}
	return h
}

func (h *Hand) Clone() *Hand {
	return &Hand{
		tiles:   slices.Clone(h.tiles),
		melds:   slices.Clone(h.melds),
		flowers: slices.Clone(h.flowers),
	}
}

// Draw 摸牌
func (h *Hand) Draw(t Tile) {
	if t.IsExtra() {
		h.flowers = append(h.flowers, t)
		return
	}
	i, _ := slices.BinarySearch(h.tiles, t)
	h.tiles = slices.Insert(h.tiles, i, t)
}

// Discard 打出一张牌
func (h *Hand) Discard(t Tile) error {
	tiles, err := removeTiles(h.tiles, t)
	if err != nil {
		return err
	}
	h.tiles = tiles
	return nil
}

// Declare 副露。claimed 为吃碰杠的那张别家牌，暗杠与补杠传 TileNull
func (h *Hand) Declare(m Meld, claimed Tile) error {
	if err := m.Validate(); err != nil {
		return err
	}

	switch m.Type {
	case GroupTypeBuKon:
		idx := slices.IndexFunc(h.melds, func(o Meld) bool {
			return o.Type == GroupTypePon && o.First() == m.First()
		})
		if idx < 0 {
			return newError(ErrMalformedMeld, "no pon of %s to upgrade", m.First())
		}
		tiles, err := removeTiles(h.tiles, m.First())
		if err != nil {
			return err
		}
		h.tiles = tiles
		h.melds[idx] = m
		return nil
	case GroupTypeAnKon:
		tiles, err := removeTiles(h.tiles, m.Tiles...)
		if err != nil {
			return err
		}
		h.tiles = tiles
	default:
		taken := slices.Clone(m.Tiles)
		if claimed != TileNull {
			i := slices.IndexFunc(taken, func(t Tile) bool { return t.Kind() == claimed.Kind() })
			if i < 0 {
				return newError(ErrMalformedMeld, "claimed %s not part of %s", claimed, m)
			}
			taken = slices.Delete(taken, i, i+1)
		}
		tiles, err := removeTiles(h.tiles, taken...)
		if err != nil {
			return err
		}
		h.tiles = tiles
	}
	h.melds = append(h.melds, m)
	return nil
}

// Tiles 暗牌副本
func (h *Hand) Tiles() []Tile {
	return slices.Clone(h.tiles)
}

func (h *Hand) Melds() []Meld {
	return slices.Clone(h.melds)
}

func (h *Hand) Flowers() []Tile {
	return slices.Clone(h.flowers)
}

// Counts 暗牌按牌种计数
func (h *Hand) Counts() Counts {
	return CountTiles(h.tiles)
}

// HeldCounts 暗牌+副露计数
func (h *Hand) HeldCounts() Counts {
	c := h.Counts()
	for _, m := range h.melds {
		for _, t := range m.Tiles {
			c.Add(t, 1)
		}
	}
	return c
}

// Size 按向听规则计算的张数，杠只算3张
func (h *Hand) Size() int {
	return len(h.tiles) + 3*len(h.melds)
}

// IsConcealed 门清(暗杠不破门清)
func (h *Hand) IsConcealed() bool {
	for _, m := range h.melds {
		if !m.Concealed() {
			return false
		}
	}
	return true
}

// RedFives 赤五张数
func (h *Hand) RedFives() int {
	n := 0
	for _, t := range h.tiles {
		if t.IsRed() {
			n++
		}
	}
	for _, m := range h.melds {
		for _, t := range m.Tiles {
			if t.IsRed() {
				n++
			}
		}
	}
	return n
}

func (h *Hand) String() string {
	parts := []string{FormatTiles(h.tiles)}
	for _, m := range h.melds {
		parts = append(parts, meldPrefix(m)+FormatTiles(m.Tiles))
	}
	if len(h.flowers) > 0 {
		parts = append(parts, "F:"+FormatTiles(h.flowers))
	}
	return strings.Join(parts, " ")
}

// validate 结构校验：副露形状与每种牌张数
func (h *Hand) validate() error {
	for _, m := range h.melds {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	for _, t := range h.tiles {
		if t.Index() < 0 {
			return newError(ErrInvalidTile, "invalid concealed tile %d", t)
		}
	}
	held := h.HeldCounts()
	if t, ok := held.Exceeds(SupplyPerKind); ok {
		return newError(ErrTileSupplyExceeded, "hand holds %d copies of %s", held.Of(t), t)
	}
	return nil
}

func removeTiles(from []Tile, tiles ...Tile) ([]Tile, error) {
	res := slices.Clone(from)
	for _, t := range tiles {
		i := slices.Index(res, t)
		if i < 0 {
			i = slices.IndexFunc(res, func(o Tile) bool { return o.Kind() == t.Kind() })
		}
		if i < 0 {
			return nil, newError(ErrTileNotInHand, "%s not in hand", t)
		}
		res = slices.Delete(res, i, i+1)
	}
	return res, nil
}
