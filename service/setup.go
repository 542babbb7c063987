package service

import (
	"strings"

	"github.com/kevin-chtw/tw_mjcore/config"
	"github.com/kevin-chtw/tw_mjcore/storage"
	"github.com/kevin-chtw/tw_mjcore/utils"
	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/interfaces"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

const (
	serviceName = "mjcore"
	cacheModule = "mjcache"
)

// Setup 安装日志，按配置注册规则、缓存模块以及 remote 与客户端入口
func Setup(app pitaya.Pitaya, cfg *config.Config) (*Remote, error) {
	logger.SetLogger(utils.Logger(cfg.Level(), cfg.LogDir))
	if err := config.Apply(cfg); err != nil {
		return nil, err
	}

	cache, err := storage.New(cfg.Cache)
	if err != nil {
		return nil, err
	}
	if m, ok := cache.(interfaces.Module); ok {
		if err := app.RegisterModule(m, cacheModule); err != nil {
			return nil, err
		}
	}

	remote := NewRemote(cfg, cache)
	app.RegisterRemote(remote,
		component.WithName(serviceName),
		component.WithNameFunc(strings.ToLower),
	)
	app.Register(NewPlayer(app, remote),
		component.WithName(serviceName),
		component.WithNameFunc(strings.ToLower),
	)
	logger.Log.Infof("%s ready, ruleset %s, cache %s", serviceName, cfg.Ruleset, cfg.Cache.Driver)
	return remote, nil
}
