package service

import (
	"context"
	"errors"

	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	perrors "github.com/topfreegames/pitaya/v3/pkg/errors"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/types/known/structpb"
)

// Player 面向客户端的入口，要求已绑定会话，请求交给 Remote 处理
type Player struct {
	component.Base
	app    pitaya.Pitaya
	remote *Remote
}

func NewPlayer(app pitaya.Pitaya, remote *Remote) *Player {
	return &Player{
		app:    app,
		remote: remote,
	}
}

func (p *Player) Message(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	userID := p.app.GetSessionFromCtx(ctx).UID()
	if userID == "" {
		logger.Log.Error("user ID not found in session")
		return nil, perrors.NewError(errors.New("session not bound"), CodeBadRequest)
	}
	rsp, err := p.remote.Message(ctx, req)
	if err != nil {
		logger.Log.Errorf("player %s: %v", userID, err)
	}
	return rsp, err
}
