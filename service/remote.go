package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/kevin-chtw/tw_mjcore/config"
	"github.com/kevin-chtw/tw_mjcore/mahjong"
	"github.com/kevin-chtw/tw_mjcore/rules"
	"github.com/kevin-chtw/tw_mjcore/storage"
	"github.com/kevin-chtw/tw_mjcore/utils"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	perrors "github.com/topfreegames/pitaya/v3/pkg/errors"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/types/known/structpb"
)

// 支持的操作
const (
	OpClassify  = "classify"
	OpDecompose = "decompose"
	OpAnalyze   = "analyze"
	OpEvaluate  = "evaluate"
)

// 非牌型错误的错误码
const (
	CodeBadRequest = "MJ-400"
	CodeInternal   = "MJ-500"
)

type handler func(*Remote, *rules.Engine, *structpb.Struct) (*structpb.Struct, error)

// Remote 牌型计算服务
type Remote struct {
	component.Base
	cfg      *config.Config
	digest   string
	cache    storage.ResultCache
	handlers map[string]handler
}

// NewRemote cache 为空时不缓存
func NewRemote(cfg *config.Config, cache storage.ResultCache) *Remote {
	if cache == nil {
		cache = storage.NopCache{}
	}
	return &Remote{
		cfg:      cfg,
		digest:   cfg.RulesDigest(),
		cache:    cache,
		handlers: make(map[string]handler),
	}
}

// Init 组件初始化
func (r *Remote) Init() {
	r.handlers[OpClassify] = (*Remote).handleClassify
	r.handlers[OpDecompose] = (*Remote).handleDecompose
	r.handlers[OpAnalyze] = (*Remote).handleAnalyze
	r.handlers[OpEvaluate] = (*Remote).handleEvaluate
}

// Message 按 op 分发请求，结果只由请求内容和规则决定，可缓存
func (r *Remote) Message(ctx context.Context, req *structpb.Struct) (rsp *structpb.Struct, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Log.Errorf("panic recovered %s\n %s", rec, string(debug.Stack()))
			rsp, err = nil, perrors.NewError(fmt.Errorf("panic: %v", rec), CodeInternal)
		}
	}()
	if req == nil {
		return nil, perrors.NewError(errors.New("nil request"), CodeBadRequest)
	}

	op := utils.String(req, fieldOp)
	h, ok := r.handlers[op]
	if !ok {
		return nil, perrors.NewError(fmt.Errorf("invalid op %q", op), CodeBadRequest)
	}
	ruleset := utils.String(req, fieldRuleset)
	if ruleset == "" {
		ruleset = r.cfg.Ruleset
	}
	logger.Log.Infof("%s %s %s", op, ruleset, utils.String(req, fieldHand))

	key, err := storage.Key(op, ruleset, r.digest, req)
	if err != nil {
		return nil, perrors.NewError(err, CodeBadRequest)
	}
	if cached, hit, err := r.cache.Get(ctx, key); err != nil {
		logger.Log.Warnf("cache get %s: %v", key, err)
	} else if hit {
		return cached, nil
	}

	engine, err := rules.NewEngine(ruleset)
	if err != nil {
		return nil, toError(err)
	}
	rsp, err = h(r, engine, req)
	if err != nil {
		return nil, toError(err)
	}
	if err := r.cache.Set(ctx, key, rsp); err != nil {
		logger.Log.Warnf("cache set %s: %v", key, err)
	}
	return rsp, nil
}

// toError 牌型错误保留其错误码
func toError(err error) error {
	var e *mahjong.Error
	if errors.As(err, &e) {
		return perrors.NewError(err, string(e.Code))
	}
	return perrors.NewError(err, CodeBadRequest)
}

func (r *Remote) handleClassify(e *rules.Engine, req *structpb.Struct) (*structpb.Struct, error) {
	hand, err := parseHand(req)
	if err != nil {
		return nil, err
	}
	res, err := e.Classify(hand)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(classifyFields(res))
}

func (r *Remote) handleDecompose(e *rules.Engine, req *structpb.Struct) (*structpb.Struct, error) {
	hand, err := parseHand(req)
	if err != nil {
		return nil, err
	}
	decs, err := e.Decompose(hand)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(map[string]any{
		"complete":       len(decs) > 0,
		"decompositions": utils.List(decs, decompositionFields),
	})
}

func (r *Remote) handleAnalyze(e *rules.Engine, req *structpb.Struct) (*structpb.Struct, error) {
	hand, err := parseHand(req)
	if err != nil {
		return nil, err
	}
	visible, err := parseVisible(req)
	if err != nil {
		return nil, err
	}
	analysis, err := e.Analyze(hand, visible, mahjong.WithParallelism(r.cfg.Analyzer.Parallelism))
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(map[string]any{
		"shanten": analysis.Shanten,
		"options": utils.List(analysis.Ranked(), optionFields),
	})
}

func (r *Remote) handleEvaluate(e *rules.Engine, req *structpb.Struct) (*structpb.Struct, error) {
	hand, err := parseHand(req)
	if err != nil {
		return nil, err
	}
	ctx, err := parseContext(req)
	if err != nil {
		return nil, err
	}
	outcome, err := e.Evaluate(hand, ctx)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(outcomeFields(outcome))
}
