package mahjong

// 手牌牌型
type EHandStyle int

const (
	HandNone            EHandStyle = iota // 无
	HandNormal                            // 普通手牌: 4面子+1将
	HandSevenPairs                        // 七对
	HandThirteenOrphans                   // 十三幺
)

func (s EHandStyle) String() string {
	switch s {
	case HandNormal:
		return "normal"
	case HandSevenPairs:
		return "seven_pairs"
	case HandThirteenOrphans:
		return "thirteen_orphans"
	default:
		return "none"
	}
}

const (
	SeatNull int32 = -1
)

const (
	KindCount     = 34 // 不含花牌的牌种数
	SupplyPerKind = 4  // 每种牌张数
	SetsPerHand   = 4  // 面子数
	HandSizeWait  = 13 // 听牌张数
	HandSizeWin   = 14 // 和牌张数
	MaxTing       = 99 // 不适用的牌型向听
)

type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万
	ColorBamboo                      // 条
	ColorDot                         // 筒
	ColorWind                        // 风牌
	ColorDragon                      // 箭牌
	ColorFlower                      // 花牌
	ColorSeason                      // 季牌
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 4, 3, 4, 4}
var SameTileCountByColor = [ColorEnd]int{4, 4, 4, 4, 4, 1, 1}
var seqBeginByColor = [ColorEnd]int{0, 9, 18, 27, 31, 34, 38}

// 副露类型
type EGroupType int

const (
	GroupTypeNone   EGroupType = iota
	GroupTypeChow              // 吃
	GroupTypePon               // 碰
	GroupTypeZhiKon            // 直杠
	GroupTypeAnKon             // 暗杠
	GroupTypeBuKon             // 补杠
)

func (g EGroupType) String() string {
	switch g {
	case GroupTypeChow:
		return "chow"
	case GroupTypePon:
		return "pon"
	case GroupTypeZhiKon:
		return "zhikon"
	case GroupTypeAnKon:
		return "ankon"
	case GroupTypeBuKon:
		return "bukon"
	default:
		return "none"
	}
}

// 面子形状
type EMeldKind int

const (
	MeldNone EMeldKind = iota
	MeldChow           // 顺子
	MeldPon            // 刻子
	MeldKon            // 杠
	MeldPair           // 对子
)

func (k EMeldKind) String() string {
	switch k {
	case MeldChow:
		return "chow"
	case MeldPon:
		return "pon"
	case MeldKon:
		return "kon"
	case MeldPair:
		return "pair"
	default:
		return "none"
	}
}
