package mahjong_test

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_mjcore/mahjong"
)

type decomposeCase struct {
	hand   string
	styles []mahjong.EHandStyle
}

func Test_Decompose(t *testing.T) {
	testCases := []decomposeCase{
		{
			hand:   "111m234p567p888s55s",
			styles: []mahjong.EHandStyle{mahjong.HandNormal},
		},
		{
			// 三连刻与三同顺两种拆法
			hand:   "111222333m456p77s",
			styles: []mahjong.EHandStyle{mahjong.HandNormal, mahjong.HandNormal},
		},
		{
			// 同时是七对与普通型
			hand:   "112233m445566p77s",
			styles: []mahjong.EHandStyle{mahjong.HandNormal, mahjong.HandSevenPairs},
		},
		{
			hand:   "19m19p19s1234567z9p",
			styles: []mahjong.EHandStyle{mahjong.HandThirteenOrphans},
		},
		{
			hand:   "123m456p55s P:777z Kk:1111s",
			styles: []mahjong.EHandStyle{mahjong.HandNormal},
		},
		{
			// 四张1m只有刻子加顺子一种拆法
			hand:   "111123m456p789s55s",
			styles: []mahjong.EHandStyle{mahjong.HandNormal},
		},
		{
			hand:   "111122223333m55s",
			styles: []mahjong.EHandStyle{mahjong.HandNormal, mahjong.HandNormal},
		},
		{
			hand: "159m159p159s13577z",
		},
	}

	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			hand := mahjong.MustParseHand(tc.hand)
			decs, err := mahjong.Decompose(hand, mahjong.DefaultRules)
			if err != nil {
				t.Fatalf("Decompose(%s) err: %v", tc.hand, err)
			}
			if len(decs) != len(tc.styles) {
				t.Fatalf("Decompose(%s) = %d decompositions, want %d", tc.hand, len(decs), len(tc.styles))
			}
			held := hand.HeldCounts()
			seen := make(map[string]int)
			for j, d := range decs {
				key := decompositionKey(d)
				if k, ok := seen[key]; ok {
					t.Errorf("decomposition %d duplicates %d: %s", j, k, key)
				}
				seen[key] = j
				if d.Style != tc.styles[j] {
					t.Errorf("decomposition %d style = %s, want %s", j, d.Style, tc.styles[j])
				}
				if d.Counts() != held {
					t.Errorf("decomposition %d counts differ from hand", j)
				}
				if d.Style != mahjong.HandNormal {
					continue
				}
				var parts mahjong.Counts
				for _, s := range d.Sets {
					for _, tile := range s.Tiles() {
						parts.Add(tile, 1)
					}
				}
				parts.Add(d.Pair, 2)
				if parts != held {
					t.Errorf("decomposition %d sets %+v pair %s do not partition %s", j, d.Sets, d.Pair, tc.hand)
				}
			}
		})
	}
}

func decompositionKey(d mahjong.Decomposition) string {
	sets := slices.SortedFunc(slices.Values(d.Sets), func(a, b mahjong.Set) int {
		return cmp.Or(cmp.Compare(a.Kind, b.Kind), cmp.Compare(a.Tile, b.Tile))
	})
	return fmt.Sprint(d.Style, d.Pair, sets)
}

func Test_DecomposeDeclaredFirst(t *testing.T) {
	hand := mahjong.MustParseHand("123m456p55s P:777z Kk:1111s")
	decs, err := mahjong.Decompose(hand, mahjong.DefaultRules)
	if err != nil || len(decs) != 1 {
		t.Fatalf("Decompose = %v, %v", decs, err)
	}
	d := decs[0]
	if len(d.Sets) != 4 || !d.Sets[0].Declared || !d.Sets[1].Declared {
		t.Fatalf("declared sets not first: %+v", d.Sets)
	}
	if !d.Sets[0].Open || d.Sets[1].Open {
		t.Errorf("open flags wrong: %+v", d.Sets[:2])
	}
	if d.Sets[1].Kind != mahjong.MeldKon || d.Sets[1].Type != mahjong.GroupTypeAnKon {
		t.Errorf("concealed kon lost: %+v", d.Sets[1])
	}
	if d.IsConcealed() {
		t.Errorf("hand with a pon reported concealed")
	}
	if d.Pair != mahjong.MustParseTiles("5s")[0] {
		t.Errorf("pair = %s, want 5s", d.Pair)
	}
}

func Test_DecomposeWrongSize(t *testing.T) {
	hand := mahjong.MustParseHand("111m234p567p888s5s")
	if _, err := mahjong.Decompose(hand, mahjong.DefaultRules); !errors.Is(err, mahjong.ErrInvalidHandSize) {
		t.Fatalf("Decompose 13 tiles err = %v, want ErrInvalidHandSize", err)
	}
}

func Test_DecomposeRandomComplete(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 1))
	for i := range 100 {
		hand := mahjong.NewHand(randomComplete(r))
		decs, err := mahjong.Decompose(hand, mahjong.Rules{})
		if err != nil {
			t.Fatal(err)
		}
		if len(decs) == 0 {
			t.Fatalf("round %d: %s has no decomposition", i, hand)
		}
	}
}
