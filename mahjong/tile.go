package mahjong

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	flagNormal = 1
	flagRed    = 2
)

var (
	TileNull   Tile = -1
	TileInf    Tile = MakeTile(ColorEnd, 0)    // 无效牌
	TileZhong  Tile = MakeTile(ColorDragon, 0) // 中
	TileFa     Tile = MakeTile(ColorDragon, 1) // 发
	TileBai    Tile = MakeTile(ColorDragon, 2) // 白
	TileDong   Tile = MakeTile(ColorWind, 0)   // 东
	TileNan    Tile = MakeTile(ColorWind, 1)   // 南
	TileXi     Tile = MakeTile(ColorWind, 2)   // 西
	TileBei    Tile = MakeTile(ColorWind, 3)   // 北
	TileMei    Tile = MakeTile(ColorFlower, 0) // 梅
	TileLan    Tile = MakeTile(ColorFlower, 1) // 兰
	TileZhu    Tile = MakeTile(ColorFlower, 2) // 竹
	TileJu     Tile = MakeTile(ColorFlower, 3) // 菊
	TileSpring Tile = MakeTile(ColorSeason, 0) // 春
	TileSummer Tile = MakeTile(ColorSeason, 1) // 夏
	TileAutumn Tile = MakeTile(ColorSeason, 2) // 秋
	TileWinter Tile = MakeTile(ColorSeason, 3) // 冬
)

// 静态表
var singleTileMap = map[rune]Tile{
	// 风
	'东': TileDong,
	'南': TileNan,
	'西': TileXi,
	'北': TileBei,
	// 箭
	'中': TileZhong,
	'发': TileFa,
	'白': TileBai,
	// 花
	'梅': TileMei,
	'兰': TileLan,
	'竹': TileZhu,
	'菊': TileJu,
	// 季
	'春': TileSpring,
	'夏': TileSummer,
	'秋': TileAutumn,
	'冬': TileWinter,
}

// 静态表：最后一个 rune -> 颜色
var lastRuneToColor = map[rune]EColor{
	'万': ColorCharacter,
	'条': ColorBamboo,
	'筒': ColorDot,
}

// 34种牌，按序号排列
var allKinds = func() [KindCount]Tile {
	var kinds [KindCount]Tile
	for c := ColorBegin; c < ColorFlower; c++ {
		for p := range PointCountByColor[c] {
			kinds[seqBeginByColor[c]+p] = MakeTile(c, p)
		}
	}
	return kinds
}()

type Tile int32

func MakeTile(color EColor, point int) Tile {
	return Tile((int(color)<<8 | (point << 4) | flagNormal))
}

// MakeRedTile 赤五
func MakeRedTile(color EColor) Tile {
	return Tile((int(color)<<8 | (4 << 4) | flagRed))
}

// TileAt 序号转牌
func TileAt(index int) Tile {
	if index < 0 || index >= KindCount {
		return TileNull
	}
	return allKinds[index]
}

// AllKinds 34种牌
func AllKinds() []Tile {
	return allKinds[:]
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) Flag() int {
	return int(t & 0x0F)
}

func (t Tile) IsValid() bool {
	if t <= 0 || t >= TileInf {
		return false
	}
	c, p := t.Info()
	if c >= ColorEnd || p >= PointCountByColor[c] {
		return false
	}
	switch t.Flag() {
	case flagNormal:
		return true
	case flagRed:
		return c <= ColorDot && p == 4
	}
	return false
}

func (t Tile) IsRed() bool {
	return t.Flag() == flagRed
}

// Kind 去掉赤宝标记
func (t Tile) Kind() Tile {
	if t == TileNull {
		return t
	}
	return MakeTile(t.Color(), t.Point())
}

// Index 0..33，花牌与无效牌返回-1
func (t Tile) Index() int {
	if !t.IsValid() || t.IsExtra() {
		return -1
	}
	return seqBeginByColor[t.Color()] + t.Point()
}

func (t Tile) IsSuit() bool { // 数牌
	return t.IsValid() && t.Color() >= ColorCharacter && t.Color() <= ColorDot
}

func (t Tile) IsHonor() bool { // 字牌
	return t.IsValid() && (t.Color() == ColorWind || t.Color() == ColorDragon)
}

func (t Tile) IsWind() bool {
	return t.IsValid() && t.Color() == ColorWind
}

func (t Tile) IsDragon() bool { // 箭牌
	return t.IsValid() && t.Color() == ColorDragon
}

func (t Tile) IsTerminal() bool { // 老头牌
	return t.IsSuit() && (t.Point() == 0 || t.Point() == 8)
}

func (t Tile) IsTerminalOrHonor() bool { // 幺九牌
	return t.IsTerminal() || t.IsHonor()
}

func (t Tile) IsSimple() bool { // 中张
	return t.IsSuit() && t.Point() > 0 && t.Point() < 8
}

func (t Tile) IsExtra() bool { // 花牌+季牌
	return t > 0 && t < TileInf && (t.Color() == ColorFlower || t.Color() == ColorSeason)
}

// Rank 数牌点数 1..9
func (t Tile) Rank() int {
	return t.Point() + 1
}

func (t Tile) Name() string {
	c, p := t.Info()
	switch c {
	case ColorCharacter:
		return strconv.Itoa(p+1) + "万"
	case ColorBamboo:
		return strconv.Itoa(p+1) + "条"
	case ColorDot:
		return strconv.Itoa(p+1) + "筒"
	case ColorWind:
		names := []string{"东", "南", "西", "北"}
		return names[p]
	case ColorDragon:
		names := []string{"中", "发", "白"}
		return names[p]
	case ColorFlower:
		names := []string{"梅", "兰", "竹", "菊"}
		return names[p]
	case ColorSeason:
		names := []string{"春", "夏", "秋", "冬"}
		return names[p]
	default:
		return ""
	}
}

// String 简写：5m 0p(赤五) 1z..7z 1f..8f
func (t Tile) String() string {
	if !t.IsValid() {
		return "?"
	}
	c, p := t.Info()
	switch c {
	case ColorCharacter, ColorBamboo, ColorDot:
		digit := p + 1
		if t.IsRed() {
			digit = 0
		}
		return strconv.Itoa(digit) + string(suitLetter[c])
	case ColorWind:
		return strconv.Itoa(p+1) + "z"
	case ColorDragon:
		return strconv.Itoa(7-p) + "z"
	case ColorFlower:
		return strconv.Itoa(p+1) + "f"
	case ColorSeason:
		return strconv.Itoa(p+5) + "f"
	}
	return "?"
}

func (t Tile) ToInt32() int32 {
	return int32(t)
}

func TilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, tile.Name())
	}
	return strings.Join(tileNames, ", ")
}

func TilesInt32(tiles []Tile) []int32 {
	res := make([]int32, len(tiles))
	for i, t := range tiles {
		res[i] = int32(t)
	}
	return res
}

func Int32Tile(tiles []int32) []Tile {
	res := make([]Tile, len(tiles))
	for i, t := range tiles {
		res[i] = Tile(t)
	}
	return res
}

// NamesToTiles 解析中文牌名，逗号分隔，如 "1万,2条,东"
func NamesToTiles(names string) ([]Tile, error) {
	parts := strings.Split(names, ",")
	res := make([]Tile, 0, len(parts))
	for _, name := range parts {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		t := nameToTile(name)
		if t == TileNull {
			return nil, newError(ErrInvalidTile, "unknown tile name %q", name)
		}
		res = append(res, t)
	}
	return res, nil
}

func nameToTile(name string) Tile {
	if name == "" {
		return TileNull
	}

	r, size := utf8.DecodeRuneInString(name)
	if size == len(name) {
		if t, ok := singleTileMap[r]; ok {
			return t
		}
		return TileNull
	}

	r, size = utf8.DecodeLastRuneInString(name)
	color, ok := lastRuneToColor[r]
	if !ok {
		return TileNull
	}
	prefix := name[:len(name)-size]
	num, err := strconv.Atoi(prefix)
	if err != nil || num < 1 || num > 9 {
		return TileNull
	}
	return MakeTile(color, num-1)
}

func MakeTiles(t Tile, count int) []Tile {
	if count <= 0 {
		return []Tile{}
	}
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}
