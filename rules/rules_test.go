package rules_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_mjcore/mahjong"
	"github.com/kevin-chtw/tw_mjcore/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tile(s string) mahjong.Tile {
	return mahjong.MustParseTiles(s)[0]
}

// pungCounter 每个刻子10点，没有刻子不许和
type pungCounter struct{}

func (pungCounter) Name() string          { return rules.NameShanghai }
func (pungCounter) Shapes() mahjong.Rules { return mahjong.DefaultRules }

func (pungCounter) RefineWinLegality(d *mahjong.Decomposition, ctx *rules.Context) rules.Verdict {
	if len(rules.Triplets(d)) == 0 {
		return rules.Reject(rules.ReasonValueFloor, "no pungs")
	}
	return rules.Accept()
}

func (pungCounter) Score(d *mahjong.Decomposition, ctx *rules.Context) (rules.ScoreResult, error) {
	n := len(rules.Triplets(d))
	return rules.ScoreResult{
		Ruleset:       rules.NameShanghai,
		Patterns:      []rules.Pattern{{Name: "pungs", Value: n}},
		Value:         n,
		Points:        10 * n,
		Decomposition: d,
	}, nil
}

func Test_EvaluateKeepsBest(t *testing.T) {
	engine := rules.NewEngineFor(pungCounter{})
	out, err := engine.Evaluate(mahjong.MustParseHand("111222333m456p77s"), rules.DefaultContext(tile("7s")))
	require.NoError(t, err)
	require.True(t, out.Accepted())
	assert.Equal(t, 2, out.Candidates)
	assert.Equal(t, 30, out.Result.Points)
	assert.False(t, rules.AllChows(out.Result.Decomposition))
	assert.Len(t, rules.Triplets(out.Result.Decomposition), 3)
}

func Test_EvaluateRejections(t *testing.T) {
	engine := rules.NewEngineFor(pungCounter{})

	out, err := engine.Evaluate(mahjong.MustParseHand("123m456p789s234s77z"), rules.DefaultContext(tile("7z")))
	require.NoError(t, err)
	assert.False(t, out.Accepted())
	assert.Equal(t, rules.ReasonValueFloor, out.Verdict.Reason)
	assert.ErrorIs(t, out.Verdict.Err(), mahjong.ErrIllegalWinDeclaration)

	out, err = engine.Evaluate(mahjong.MustParseHand("123m456p789s234s17z"), rules.DefaultContext(tile("7z")))
	require.NoError(t, err)
	assert.Equal(t, rules.ReasonNotComplete, out.Verdict.Reason)

	out, err = engine.Evaluate(mahjong.MustParseHand("111m456p789s234s77z"), rules.DefaultContext(tile("5z")))
	require.NoError(t, err)
	assert.Equal(t, rules.ReasonContextConflict, out.Verdict.Reason)

	// 和了牌只在副露里
	out, err = engine.Evaluate(mahjong.MustParseHand("456p789s234s77z P:111m"), rules.DefaultContext(tile("1m")))
	require.NoError(t, err)
	assert.Equal(t, rules.ReasonContextConflict, out.Verdict.Reason)

	ctx := rules.DefaultContext(tile("1m"))
	ctx.RobbingKon = true
	ctx.SelfDrawn = true
	out, err = engine.Evaluate(mahjong.MustParseHand("111m456p789s234s77z"), ctx)
	require.NoError(t, err)
	assert.Equal(t, rules.ReasonContextConflict, out.Verdict.Reason)

	_, err = engine.Evaluate(mahjong.MustParseHand("111m456p789s234s7z"), rules.DefaultContext(tile("1m")))
	assert.ErrorIs(t, err, mahjong.ErrInvalidHandSize)
}

func Test_EvaluateFillsFlowers(t *testing.T) {
	var seen []mahjong.Tile
	rs := flowerSpy{seen: &seen}
	_, err := rules.NewEngineFor(rs).Evaluate(mahjong.MustParseHand("111m456p789s234s77z F:15f"), rules.DefaultContext(tile("1m")))
	require.NoError(t, err)
	assert.Equal(t, []mahjong.Tile{mahjong.TileMei, mahjong.TileSpring}, seen)
}

type flowerSpy struct {
	pungCounter
	seen *[]mahjong.Tile
}

func (f flowerSpy) RefineWinLegality(d *mahjong.Decomposition, ctx *rules.Context) rules.Verdict {
	*f.seen = ctx.Flowers
	return rules.Accept()
}

func Test_Attributions(t *testing.T) {
	testCases := []struct {
		hand  string
		win   string
		waits []rules.WaitKind
	}{
		{"123m456p789s234s77z", "3m", []rules.WaitKind{rules.WaitPenchan}},
		{"789m456p789s234s77z", "7m", []rules.WaitKind{rules.WaitPenchan}},
		{"234m456p789s234s77z", "3m", []rules.WaitKind{rules.WaitKanchan}},
		{"234m456p789s234s77z", "2m", []rules.WaitKind{rules.WaitRyanmen}},
		{"234m456p789s234s77z", "7z", []rules.WaitKind{rules.WaitTanki}},
		{"111m456p789s234s77z", "1m", []rules.WaitKind{rules.WaitShanpon}},
		{"234m456p789s234s44m", "4m", []rules.WaitKind{rules.WaitTanki, rules.WaitRyanmen}},
		// 两个相同顺子只算一次
		{"234234m456p789s77z", "2m", []rules.WaitKind{rules.WaitRyanmen}},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			decs, err := mahjong.Decompose(mahjong.MustParseHand(tc.hand), mahjong.DefaultRules)
			require.NoError(t, err)
			require.Len(t, decs, 1)
			var waits []rules.WaitKind
			for _, a := range rules.Attributions(&decs[0], tile(tc.win)) {
				waits = append(waits, a.Wait)
			}
			assert.Equal(t, tc.waits, waits)
		})
	}
}

func Test_Predicates(t *testing.T) {
	decompose := func(s string) *mahjong.Decomposition {
		decs, err := mahjong.Decompose(mahjong.MustParseHand(s), mahjong.DefaultRules)
		require.NoError(t, err)
		require.NotEmpty(t, decs)
		return &decs[0]
	}

	d := decompose("123456789m11155z")
	assert.True(t, rules.HalfFlush(d))
	assert.False(t, rules.FullFlush(d))
	assert.True(t, rules.Straight(d))

	d = decompose("111m999p111s999s55z")
	assert.True(t, rules.AllTriplets(d))
	assert.True(t, rules.OutsideHand(d, true))
	assert.False(t, rules.OutsideHand(d, false))
	assert.True(t, rules.Every(d, mahjong.Tile.IsTerminalOrHonor))

	d = decompose("222m444p234s678s55s")
	assert.True(t, rules.AllSimples(d))
	// 荣和双碰完成的 222m 算明刻
	assert.Equal(t, 1, rules.ConcealedTriplets(d, rules.Attribution{Wait: rules.WaitShanpon, Set: 0}, false))
	assert.Equal(t, 2, rules.ConcealedTriplets(d, rules.Attribution{Wait: rules.WaitShanpon, Set: 0}, true))

	d = decompose("123m123p123s555z77z")
	assert.True(t, rules.InThreeSuits(d, 0, true))
	assert.Equal(t, 1, rules.DragonTriplets(d))
}

func Test_Registry(t *testing.T) {
	_, err := rules.Lookup("hongkong")
	assert.ErrorIs(t, err, mahjong.ErrUnsupportedShape)

	_, err = rules.NewEngine("hongkong")
	assert.ErrorIs(t, err, mahjong.ErrUnsupportedShape)

	err = rules.Register(renamed{name: "sichuan"})
	assert.ErrorIs(t, err, mahjong.ErrUnsupportedShape)
}

type renamed struct {
	pungCounter
	name string
}

func (r renamed) Name() string { return r.name }

func Test_WaitKinds(t *testing.T) {
	waits, err := rules.WaitKinds(mahjong.MustParseHand("123m456p789s234s7z"), mahjong.DefaultRules)
	require.NoError(t, err)
	assert.Equal(t, []mahjong.Tile{tile("7z")}, waits)
}

func Test_WaitsBefore(t *testing.T) {
	testCases := []struct {
		hand  string
		win   string
		waits string
	}{
		{"23455m456p789s111z", "5m", "25m"},
		{"23455m456p111z C:789s", "5m", "25m"},
		{"123m456p789s11122z", "2m", "2m"},
		{"222m234p567p888s55s", "5s", "5s"},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			decs, err := mahjong.Decompose(mahjong.MustParseHand(tc.hand), mahjong.DefaultRules)
			require.NoError(t, err)
			require.NotEmpty(t, decs)
			waits, err := rules.WaitsBefore(&decs[0], tile(tc.win), mahjong.DefaultRules)
			require.NoError(t, err)
			assert.ElementsMatch(t, mahjong.MustParseTiles(tc.waits), waits)
		})
	}

	decs, err := mahjong.Decompose(mahjong.MustParseHand("23455m456p111z C:789s"), mahjong.DefaultRules)
	require.NoError(t, err)
	require.NotEmpty(t, decs)
	_, err = rules.WaitsBefore(&decs[0], tile("9s"), mahjong.DefaultRules)
	assert.ErrorIs(t, err, mahjong.ErrTileNotInHand)
}
