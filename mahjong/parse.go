package mahjong

import (
	"strings"
)

var suitLetter = map[EColor]byte{
	ColorCharacter: 'm',
	ColorBamboo:    's',
	ColorDot:       'p',
}

var letterSuit = map[byte]EColor{
	'm': ColorCharacter,
	's': ColorBamboo,
	'p': ColorDot,
}

var meldPrefixes = map[string]EGroupType{
	"C":  GroupTypeChow,
	"P":  GroupTypePon,
	"K":  GroupTypeZhiKon,
	"Kk": GroupTypeAnKon,
	"Ka": GroupTypeBuKon,
}

// ParseTiles 解析简写，如 "123m406p77z1f"，0 表示赤五
func ParseTiles(s string) ([]Tile, error) {
	var res []Tile
	var digits []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			continue
		case c >= '0' && c <= '9':
			digits = append(digits, c-'0')
		default:
			if len(digits) == 0 {
				return nil, newError(ErrInvalidTile, "suit %q without ranks in %q", c, s)
			}
			for _, d := range digits {
				t, err := letterTile(c, int(d))
				if err != nil {
					return nil, err
				}
				res = append(res, t)
			}
			digits = digits[:0]
		}
	}
	if len(digits) > 0 {
		return nil, newError(ErrInvalidTile, "ranks without suit in %q", s)
	}
	return res, nil
}

// MustParseTiles 解析失败直接 panic，用于常量与测试
func MustParseTiles(s string) []Tile {
	tiles, err := ParseTiles(s)
	if err != nil {
		panic(err)
	}
	return tiles
}

func letterTile(letter byte, d int) (Tile, error) {
	if color, ok := letterSuit[letter]; ok {
		if d == 0 {
			return MakeRedTile(color), nil
		}
		return MakeTile(color, d-1), nil
	}
	switch letter {
	case 'z':
		switch {
		case d >= 1 && d <= 4:
			return MakeTile(ColorWind, d-1), nil
		case d >= 5 && d <= 7:
			return MakeTile(ColorDragon, 7-d), nil
		}
	case 'f':
		switch {
		case d >= 1 && d <= 4:
			return MakeTile(ColorFlower, d-1), nil
		case d >= 5 && d <= 8:
			return MakeTile(ColorSeason, d-5), nil
		}
	default:
		return TileNull, newError(ErrInvalidTile, "unknown suit %q", letter)
	}
	return TileNull, newError(ErrInvalidTile, "rank %d out of range for %q", d, letter)
}

// FormatTiles 与 ParseTiles 互逆的紧凑写法
func FormatTiles(tiles []Tile) string {
	var sb strings.Builder
	var pending []byte
	var suit byte
	flush := func() {
		if len(pending) > 0 {
			sb.Write(pending)
			sb.WriteByte(suit)
			pending = pending[:0]
		}
	}
	for _, t := range tiles {
		s := t.String()
		if len(s) != 2 {
			continue
		}
		if s[1] != suit {
			flush()
			suit = s[1]
		}
		pending = append(pending, s[0])
	}
	flush()
	return sb.String()
}

// ParseHand 解析手牌，如 "123m44p D:4p P:777z Kk:1111s F:1f"。
// C 吃, P 碰, K 明杠, Kk 暗杠, Ka 补杠, D 摸到的牌, F 花牌；无前缀为暗牌。
func ParseHand(s string) (*Hand, error) {
	var concealed []Tile
	var melds []Meld
	for _, field := range strings.Fields(s) {
		prefix, body, found := strings.Cut(field, ":")
		if !found {
			tiles, err := ParseTiles(field)
			if err != nil {
				return nil, err
			}
			concealed = append(concealed, tiles...)
			continue
		}

		tiles, err := ParseTiles(body)
		if err != nil {
			return nil, err
		}
		switch prefix {
		case "D", "F":
			concealed = append(concealed, tiles...)
		default:
			typ, ok := meldPrefixes[prefix]
			if !ok {
				return nil, newError(ErrMalformedMeld, "unknown meld prefix %q", prefix)
			}
			m, err := NewMeld(typ, tiles, SeatNull)
			if err != nil {
				return nil, err
			}
			melds = append(melds, m)
		}
	}
	return NewHand(concealed, melds...), nil
}

// MustParseHand 解析失败直接 panic
func MustParseHand(s string) *Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(err)
	}
	return h
}

func meldPrefix(m Meld) string {
	for p, typ := range meldPrefixes {
		if typ == m.Type {
			return p + ":"
		}
	}
	return ""
}
