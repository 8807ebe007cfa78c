package instance

import (
	"context"

	"github.com/bililive-go/douyin-params/src/configs"
	"github.com/bililive-go/douyin-params/src/interfaces"
	"github.com/bililive-go/douyin-params/src/live/douyin"
)

type key int

const Key key = 114514

type Instance struct {
	Config   *configs.Config
	Logger   *interfaces.Logger
	Preparer *douyin.Preparer
}

func GetInstance(ctx context.Context) *Instance {
	if s, ok := ctx.Value(Key).(*Instance); ok {
		return s
	}
	return nil
}
