package riichi_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_mjcore/mahjong"
	"github.com/kevin-chtw/tw_mjcore/rules"
	"github.com/kevin-chtw/tw_mjcore/rules/riichi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tile(s string) mahjong.Tile {
	return mahjong.MustParseTiles(s)[0]
}

// 南家
func seat(win string, selfDrawn bool) rules.Context {
	return rules.Context{
		SeatWind:  mahjong.TileNan,
		RoundWind: mahjong.TileDong,
		WinTile:   tile(win),
		SelfDrawn: selfDrawn,
	}
}

type scoreCase struct {
	hand     string
	ctx      rules.Context
	cfg      riichi.Config
	han      int
	fu       int
	points   int
	patterns []string
}

func Test_Score(t *testing.T) {
	dealerRiichi := rules.DefaultContext(tile("1z"))
	dealerRiichi.Riichi = true

	dealerTsumo := rules.DefaultContext(tile("4p"))
	dealerTsumo.SelfDrawn = true

	riichiRon := seat("5s", false)
	riichiRon.Riichi = true

	testCases := []scoreCase{
		{
			// 平和自摸断幺 3番20符
			hand:     "234m567p234s678s55p",
			ctx:      seat("2m", true),
			cfg:      riichi.DefaultConfig,
			han:      3,
			fu:       20,
			points:   2700,
			patterns: []string{"menzen_tsumo", "tanyao", "pinfu"},
		},
		{
			// 中单骑荣和 1番40符
			hand:     "234m678p345s777z99s",
			ctx:      seat("9s", false),
			cfg:      riichi.DefaultConfig,
			han:      1,
			fu:       40,
			points:   1300,
			patterns: []string{"yakuhai_chun"},
		},
		{
			// 庄家立直七对 3番25符
			hand:     "1133m5577p2288s11z",
			ctx:      dealerRiichi,
			cfg:      riichi.DefaultConfig,
			han:      3,
			fu:       25,
			points:   4800,
			patterns: []string{"riichi", "chiitoitsu"},
		},
		{
			// 4番30符
			hand:     "223344m567p345s88s",
			ctx:      riichiRon,
			cfg:      riichi.DefaultConfig,
			han:      4,
			fu:       30,
			points:   7700,
			patterns: []string{"riichi", "tanyao", "pinfu", "iipeikou"},
		},
		{
			// 切上满贯
			hand:     "223344m567p345s88s",
			ctx:      riichiRon,
			cfg:      riichi.Config{OpenTanyao: true, KiriageMangan: true},
			han:      4,
			fu:       30,
			points:   8000,
			patterns: []string{"riichi", "tanyao", "pinfu", "iipeikou"},
		},
		{
			// 荣和双碰的刻子算明刻
			hand:     "222m444p234s678s55s",
			ctx:      seat("4p", false),
			cfg:      riichi.DefaultConfig,
			han:      1,
			fu:       40,
			points:   1300,
			patterns: []string{"tanyao"},
		},
		{
			hand:     "222m444p234s678s55s",
			ctx:      seat("4p", true),
			cfg:      riichi.DefaultConfig,
			han:      2,
			fu:       30,
			points:   2000,
			patterns: []string{"menzen_tsumo", "tanyao"},
		},
		{
			// 庄家自摸大三元
			hand:     "555z666z777z123m44p",
			ctx:      dealerTsumo,
			cfg:      riichi.DefaultConfig,
			han:      13,
			points:   48000,
			patterns: []string{"daisangen"},
		},
	}

	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			engine := rules.NewEngineFor(riichi.New(tc.cfg))
			out, err := engine.Evaluate(mahjong.MustParseHand(tc.hand), tc.ctx)
			require.NoError(t, err)
			require.True(t, out.Accepted(), "rejected: %+v", out.Verdict)
			assert.Equal(t, tc.han, out.Result.Value)
			assert.Equal(t, tc.fu, out.Result.Fu)
			assert.Equal(t, tc.points, out.Result.Points)
			assert.ElementsMatch(t, tc.patterns, out.Result.PatternNames())
		})
	}
}

func Test_Payments(t *testing.T) {
	engine := rules.NewEngineFor(riichi.New(riichi.DefaultConfig))
	hand := mahjong.MustParseHand("234m567p234s678s55p")

	ctx := seat("2m", true)
	ctx.Honba = 1
	out, err := engine.Evaluate(hand, ctx)
	require.NoError(t, err)
	require.True(t, out.Accepted())
	assert.Equal(t, rules.Payments{FromDealer: 1400, FromOthers: 800}, out.Result.Payments)
	assert.Equal(t, 3000, out.Result.Points)

	ctx = rules.DefaultContext(tile("2m"))
	ctx.SelfDrawn = true
	out, err = engine.Evaluate(hand, ctx)
	require.NoError(t, err)
	assert.Equal(t, rules.Payments{FromOthers: 1300}, out.Result.Payments)
	assert.Equal(t, 3900, out.Result.Points)
}

func Test_NoYaku(t *testing.T) {
	engine := rules.NewEngineFor(riichi.New(riichi.DefaultConfig))
	hand := mahjong.MustParseHand("123m456p789s55s P:888p")

	out, err := engine.Evaluate(hand, seat("5s", false))
	require.NoError(t, err)
	assert.False(t, out.Accepted())
	assert.Equal(t, rules.ReasonNoYaku, out.Verdict.Reason)
	assert.ErrorIs(t, out.Verdict.Err(), mahjong.ErrIllegalWinDeclaration)

	ctx := seat("5s", false)
	ctx.Riichi = true
	out, err = engine.Evaluate(hand, ctx)
	require.NoError(t, err)
	assert.Equal(t, rules.ReasonContextConflict, out.Verdict.Reason)
}

func Test_OpenTanyao(t *testing.T) {
	hand := mahjong.MustParseHand("234m567p345s55s P:888p")
	out, err := rules.NewEngineFor(riichi.New(riichi.Config{})).Evaluate(hand, seat("5s", false))
	require.NoError(t, err)
	assert.Equal(t, rules.ReasonNoYaku, out.Verdict.Reason)

	out, err = rules.NewEngineFor(riichi.New(riichi.DefaultConfig)).Evaluate(hand, seat("5s", false))
	require.NoError(t, err)
	require.True(t, out.Accepted())
	// 1番 30符(副露无符)
	assert.Equal(t, 30, out.Result.Fu)
	assert.Equal(t, 1000, out.Result.Points)
}

func Test_Dora(t *testing.T) {
	testCases := []struct {
		indicator string
		dora      string
	}{
		{"9m", "1m"},
		{"4p", "5p"},
		{"0s", "6s"},
		{"4z", "1z"},
		{"1z", "2z"},
		{"5z", "6z"},
		{"6z", "7z"},
		{"7z", "5z"},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, tile(tc.dora), riichi.DoraOf(tile(tc.indicator)))
		})
	}
	assert.Equal(t, mahjong.TileNull, riichi.DoraOf(mahjong.TileMei))

	// 宝牌不算役，但计入番数
	ctx := seat("2m", true)
	ctx.Indicators = []mahjong.Tile{tile("4p")}
	ctx.UraIndicators = []mahjong.Tile{tile("1m")}
	engine := rules.NewEngineFor(riichi.New(riichi.DefaultConfig))
	out, err := engine.Evaluate(mahjong.MustParseHand("234m567p234s678s55p"), ctx)
	require.NoError(t, err)
	require.True(t, out.Accepted())
	assert.Equal(t, 6, out.Result.Value)
	assert.True(t, out.Result.HasPattern("dora"))
	assert.False(t, out.Result.HasPattern("ura_dora"))
	assert.Equal(t, "haneman", out.Result.Limit)
}

func Test_Registered(t *testing.T) {
	rs, err := rules.Lookup(rules.NameRiichi)
	require.NoError(t, err)
	assert.Equal(t, rules.NameRiichi, rs.Name())
}
