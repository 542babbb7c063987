package service

import (
	"strings"

	"github.com/kevin-chtw/tw_mjcore/mahjong"
	"github.com/kevin-chtw/tw_mjcore/rules"
	"github.com/kevin-chtw/tw_mjcore/utils"
	"google.golang.org/protobuf/types/known/structpb"
)

// 请求字段
const (
	fieldOp      = "op"
	fieldRuleset = "ruleset"
	fieldHand    = "hand"
	fieldVisible = "visible"
	fieldContext = "context"
)

func parseTile(s string) (mahjong.Tile, error) {
	tiles, err := mahjong.ParseTiles(s)
	if err != nil {
		return mahjong.TileNull, err
	}
	if len(tiles) != 1 {
		return mahjong.TileNull, mahjong.Errorf(mahjong.ErrInvalidTile, "%q is not a single tile", s)
	}
	return tiles[0], nil
}

// tileOr 字段缺失时取默认值
func tileOr(s *structpb.Struct, key string, def mahjong.Tile) (mahjong.Tile, error) {
	if !utils.Has(s, key) {
		return def, nil
	}
	return parseTile(utils.String(s, key))
}

func parseHand(req *structpb.Struct) (*mahjong.Hand, error) {
	notation := utils.String(req, fieldHand)
	if strings.TrimSpace(notation) == "" {
		return nil, mahjong.Errorf(mahjong.ErrInvalidHandSize, "empty hand")
	}
	return mahjong.ParseHand(notation)
}

// drawnTile 手牌记法中 D: 标记的牌
func drawnTile(notation string) (mahjong.Tile, bool) {
	for _, field := range strings.Fields(notation) {
		if body, ok := strings.CutPrefix(field, "D:"); ok {
			if t, err := parseTile(body); err == nil {
				return t, true
			}
		}
	}
	return mahjong.TileNull, false
}

func parseVisible(req *structpb.Struct) (mahjong.Counts, error) {
	tiles, err := mahjong.ParseTiles(utils.String(req, fieldVisible))
	if err != nil {
		return mahjong.Counts{}, err
	}
	return mahjong.CountTiles(tiles), nil
}

// parseContext 读取和牌场况。和了牌缺省取手牌中 D: 的牌，庄家缺省按自风是否为东
func parseContext(req *structpb.Struct) (rules.Context, error) {
	c := utils.Struct(req, fieldContext)
	var ctx rules.Context
	var err error
	if ctx.SeatWind, err = tileOr(c, "seat_wind", mahjong.TileDong); err != nil {
		return ctx, err
	}
	if ctx.RoundWind, err = tileOr(c, "round_wind", mahjong.TileDong); err != nil {
		return ctx, err
	}

	if utils.Has(c, "win_tile") {
		if ctx.WinTile, err = parseTile(utils.String(c, "win_tile")); err != nil {
			return ctx, err
		}
	} else if t, ok := drawnTile(utils.String(req, fieldHand)); ok {
		ctx.WinTile = t
	} else {
		return ctx, mahjong.Errorf(mahjong.ErrIllegalWinDeclaration, "no win tile given")
	}

	for key, dst := range map[string]*[]mahjong.Tile{
		"indicators":     &ctx.Indicators,
		"ura_indicators": &ctx.UraIndicators,
		"flowers":        &ctx.Flowers,
	} {
		if *dst, err = mahjong.ParseTiles(utils.String(c, key)); err != nil {
			return ctx, err
		}
	}

	ctx.Dealer = ctx.SeatWind == mahjong.TileDong
	if utils.Has(c, "dealer") {
		ctx.Dealer = utils.Bool(c, "dealer")
	}
	ctx.SelfDrawn = utils.Bool(c, "self_drawn")
	ctx.Riichi = utils.Bool(c, "riichi")
	ctx.DoubleRiichi = utils.Bool(c, "double_riichi")
	ctx.Ippatsu = utils.Bool(c, "ippatsu")
	ctx.LastTile = utils.Bool(c, "last_tile")
	ctx.AfterKon = utils.Bool(c, "after_kon")
	ctx.RobbingKon = utils.Bool(c, "robbing_kon")
	ctx.FirstDraw = utils.Bool(c, "first_draw")
	ctx.LastCopy = utils.Bool(c, "last_copy")
	ctx.Honba = utils.Int(c, "honba")
	return ctx, nil
}

func classifyFields(res mahjong.ShantenResult) map[string]any {
	return map[string]any{
		"shanten":          res.Shanten,
		"style":            res.Style.String(),
		"normal":           res.Normal,
		"seven_pairs":      res.SevenPairs,
		"thirteen_orphans": res.ThirteenOrphans,
		"waits":            mahjong.FormatTiles(res.Waits),
	}
}

func setFields(s mahjong.Set) any {
	return map[string]any{
		"kind":     s.Kind.String(),
		"tiles":    mahjong.FormatTiles(s.Tiles()),
		"declared": s.Declared,
		"open":     s.Open,
	}
}

func decompositionFields(d mahjong.Decomposition) any {
	fields := map[string]any{
		"style":     d.Style.String(),
		"sets":      utils.List(d.Sets, setFields),
		"red_fives": d.RedFives,
	}
	if d.Pair != mahjong.TileNull {
		fields["pair"] = d.Pair.String()
	}
	return fields
}

func usefulFields(u mahjong.UsefulTile) any {
	return map[string]any{
		"tile":      u.Tile.String(),
		"remaining": u.Remaining,
	}
}

func optionFields(o mahjong.DiscardOption) any {
	fields := map[string]any{
		"shanten":      o.Shanten,
		"useful":       utils.List(o.Useful, usefulFields),
		"useful_count": o.UsefulCount,
	}
	if o.Discard != mahjong.TileNull {
		fields["discard"] = o.Discard.String()
	}
	return fields
}

func patternFields(p rules.Pattern) any {
	return map[string]any{"name": p.Name, "value": p.Value}
}

func outcomeFields(o rules.Outcome) map[string]any {
	fields := map[string]any{
		"accepted":   o.Verdict.Accepted,
		"candidates": o.Candidates,
	}
	if !o.Accepted() {
		fields["reason"] = o.Verdict.Reason.String()
		fields["detail"] = o.Verdict.Detail
		return fields
	}

	r := o.Result
	result := map[string]any{
		"ruleset":  r.Ruleset,
		"patterns": utils.List(r.Patterns, patternFields),
		"value":    r.Value,
		"fu":       r.Fu,
		"base":     r.Base,
		"points":   r.Points,
		"limit":    r.Limit,
		"wait":     r.Wait.String(),
		"payments": map[string]any{
			"from_discarder": r.Payments.FromDiscarder,
			"from_dealer":    r.Payments.FromDealer,
			"from_others":    r.Payments.FromOthers,
		},
	}
	if r.Decomposition != nil {
		result["decomposition"] = decompositionFields(*r.Decomposition)
	}
	fields["result"] = result
	return fields
}
