package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kevin-chtw/tw_mjcore/config"
	"github.com/kevin-chtw/tw_mjcore/rules"
	"github.com/kevin-chtw/tw_mjcore/service"
	"github.com/kevin-chtw/tw_mjcore/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	perrors "github.com/topfreegames/pitaya/v3/pkg/errors"
	"google.golang.org/protobuf/types/known/structpb"
)

type memCache struct {
	data map[string]*structpb.Struct
	hits int
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]*structpb.Struct)}
}

func (c *memCache) Get(_ context.Context, key string) (*structpb.Struct, bool, error) {
	v, ok := c.data[key]
	if ok {
		c.hits++
	}
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, value *structpb.Struct) error {
	c.data[key] = value
	return nil
}

func newRemote(t *testing.T, cache storage.ResultCache) *service.Remote {
	t.Helper()
	r := service.NewRemote(config.Default(), cache)
	r.Init()
	return r
}

func request(t *testing.T, fields map[string]any) *structpb.Struct {
	t.Helper()
	req, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	return req
}

func call(t *testing.T, r *service.Remote, fields map[string]any) map[string]any {
	t.Helper()
	rsp, err := r.Message(context.Background(), request(t, fields))
	require.NoError(t, err)
	return rsp.AsMap()
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	var e *perrors.Error
	require.True(t, errors.As(err, &e), "not a pitaya error: %v", err)
	return e.Code
}

func Test_Classify(t *testing.T) {
	r := newRemote(t, nil)
	got := call(t, r, map[string]any{
		"op":   service.OpClassify,
		"hand": "123m456p78s11z P:777z",
	})
	assert.EqualValues(t, 0, got["shanten"])
	assert.Equal(t, "normal", got["style"])
	assert.Equal(t, "69s", got["waits"])
}

func Test_Decompose(t *testing.T) {
	r := newRemote(t, nil)
	got := call(t, r, map[string]any{
		"op":   service.OpDecompose,
		"hand": "111222333m456p77s",
	})
	assert.Equal(t, true, got["complete"])
	decs := got["decompositions"].([]any)
	require.Len(t, decs, 2)
	first := decs[0].(map[string]any)
	assert.Equal(t, "normal", first["style"])
	assert.Equal(t, "7s", first["pair"])
	assert.Len(t, first["sets"], 4)
}

func Test_Analyze(t *testing.T) {
	r := newRemote(t, nil)
	got := call(t, r, map[string]any{
		"op":      service.OpAnalyze,
		"hand":    "111m234p567p888s5s9s",
		"visible": "55s",
	})
	assert.EqualValues(t, 0, got["shanten"])
	options := got["options"].([]any)
	require.NotEmpty(t, options)
	best := options[0].(map[string]any)
	assert.Equal(t, "5s", best["discard"])
	assert.EqualValues(t, 7, best["useful_count"])
	assert.Len(t, best["useful"], 2)
}

func Test_Evaluate(t *testing.T) {
	r := newRemote(t, nil)

	got := call(t, r, map[string]any{
		"op":   service.OpEvaluate,
		"hand": "234m567p234s678s55p",
		"context": map[string]any{
			"seat_wind":  "2z",
			"win_tile":   "2m",
			"self_drawn": true,
		},
	})
	require.Equal(t, true, got["accepted"])
	result := got["result"].(map[string]any)
	assert.Equal(t, rules.NameRiichi, result["ruleset"])
	assert.EqualValues(t, 3, result["value"])
	assert.EqualValues(t, 20, result["fu"])
	assert.EqualValues(t, 2700, result["points"])

	got = call(t, r, map[string]any{
		"op":      service.OpEvaluate,
		"ruleset": rules.NameMCR,
		"hand":    "222m234p567p888s D:5s 5s",
		"context": map[string]any{"seat_wind": "2z"},
	})
	require.Equal(t, true, got["accepted"])
	result = got["result"].(map[string]any)
	assert.EqualValues(t, 8, result["value"])
	assert.EqualValues(t, 32, result["points"])
	assert.Equal(t, "tanki", result["wait"])
}

func Test_EvaluateRejected(t *testing.T) {
	r := newRemote(t, nil)
	got := call(t, r, map[string]any{
		"op":      service.OpEvaluate,
		"hand":    "123m456p789s11z23z",
		"context": map[string]any{"win_tile": "1z"},
	})
	assert.Equal(t, false, got["accepted"])
	assert.Equal(t, "not_complete", got["reason"])
	assert.NotContains(t, got, "result")
}

func Test_MessageErrors(t *testing.T) {
	r := newRemote(t, nil)
	testCases := []struct {
		name   string
		fields map[string]any
		code   string
	}{
		{"unknown op", map[string]any{"op": "deal"}, service.CodeBadRequest},
		{"bad tile", map[string]any{"op": service.OpClassify, "hand": "12x"}, "INVALID_TILE"},
		{"wrong size", map[string]any{"op": service.OpDecompose, "hand": "123m456p789s11z2z"}, "INVALID_HAND_SIZE"},
		{"unknown ruleset", map[string]any{"op": service.OpClassify, "ruleset": "sichuan", "hand": "123m"}, "UNSUPPORTED_SHAPE"},
		{"no win tile", map[string]any{"op": service.OpEvaluate, "hand": "123m456p789s11z23z"}, "ILLEGAL_WIN_DECLARATION"},
		{"bad meld", map[string]any{"op": service.OpClassify, "hand": "123m456p78s11z C:135m"}, "MALFORMED_MELD"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Message(context.Background(), request(t, tc.fields))
			require.Error(t, err)
			assert.Equal(t, tc.code, errCode(t, err))
		})
	}

	_, err := r.Message(context.Background(), nil)
	assert.Equal(t, service.CodeBadRequest, errCode(t, err))
}

func Test_MessageCache(t *testing.T) {
	cache := newMemCache()
	r := newRemote(t, cache)
	fields := map[string]any{
		"op":   service.OpClassify,
		"hand": "123m456p78s11z P:777z",
	}

	first := call(t, r, fields)
	assert.Len(t, cache.data, 1)
	assert.Zero(t, cache.hits)

	second := call(t, r, fields)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.hits)

	// 命中时直接返回缓存内容
	key, err := storage.Key(service.OpClassify, rules.NameRiichi, config.Default().RulesDigest(), request(t, fields))
	require.NoError(t, err)
	cache.data[key] = request(t, map[string]any{"stale": true})
	assert.Equal(t, map[string]any{"stale": true}, call(t, r, fields))
}

// 规则配置不同时不命中对方写入的结果
func Test_MessageCacheConfig(t *testing.T) {
	cache := newMemCache()
	fields := map[string]any{
		"op":   service.OpClassify,
		"hand": "123m456p78s11z P:777z",
	}

	first := call(t, newRemote(t, cache), fields)

	cfg := config.Default()
	cfg.MCR.MinFan = 4
	other := service.NewRemote(cfg, cache)
	other.Init()
	assert.Equal(t, first, call(t, other, fields))
	assert.Zero(t, cache.hits)
	assert.Len(t, cache.data, 2)
}
