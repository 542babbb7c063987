package mahjong

import "slices"

// Counts 按牌种统计张数，下标为 Tile.Index()
type Counts [KindCount]int

// CountTiles 统计，花牌和无效牌被忽略
func CountTiles(tiles []Tile) Counts {
	var c Counts
	for _, t := range tiles {
		if i := t.Index(); i >= 0 {
			c[i]++
		}
	}
	return c
}

func (c *Counts) Add(t Tile, n int) {
	if i := t.Index(); i >= 0 {
		c[i] += n
	}
}

func (c *Counts) Of(t Tile) int {
	if i := t.Index(); i >= 0 {
		return c[i]
	}
	return 0
}

func (c *Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Merge 逐项相加
func (c Counts) Merge(o Counts) Counts {
	for i := range c {
		c[i] += o[i]
	}
	return c
}

// Tiles 展开为有序牌列表
func (c *Counts) Tiles() []Tile {
	res := make([]Tile, 0, c.Total())
	for i, n := range c {
		res = append(res, MakeTiles(allKinds[i], n)...)
	}
	return res
}

// Exceeds 返回第一个超过 supply 的牌种
func (c *Counts) Exceeds(supply int) (Tile, bool) {
	for i, n := range c {
		if n > supply {
			return allKinds[i], true
		}
	}
	return TileNull, false
}

// Kinds 持有的牌种
func (c *Counts) Kinds() []Tile {
	var res []Tile
	for i, n := range c {
		if n > 0 {
			res = append(res, allKinds[i])
		}
	}
	return res
}

func sortTiles(tiles []Tile) []Tile {
	slices.Sort(tiles)
	return tiles
}
