package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hr3lxphr6j/requests"

	"github.com/bililive-go/douyin-params/src/instance"
	"github.com/bililive-go/douyin-params/src/live"
	"github.com/bililive-go/douyin-params/src/pkg/utils"
)

type requestOptions struct {
	Url    string
	App    bool
	RoomId string
	SecUid string
}

// prepareApiUrl returns the configured api url with the douyin parameters for opts appended.
func prepareApiUrl(ctx context.Context, opts requestOptions) (string, error) {
	inst := instance.GetInstance(ctx)
	p := inst.Preparer

	q := utils.NewQueryBuilder()
	if opts.App {
		p.FillAppCommonParams(q)
	} else {
		p.FillCommonParams(q)
	}
	if opts.Url != "" {
		if _, err := url.Parse(opts.Url); err != nil {
			return "", fmt.Errorf("%v: %w", err, live.ErrRoomUrlIncorrect)
		}
		webRid, err := p.ExtractWebRid(opts.Url)
		if err != nil {
			return "", err
		}
		inst.Logger.WithField("web_rid", webRid).Debug("web rid extracted")
		p.FillWebRid(q, webRid)
	}
	if opts.RoomId != "" {
		p.FillRoomId(q, opts.RoomId)
	}
	if opts.SecUid != "" {
		p.FillSecUid(q, opts.SecUid)
	}

	if _, err := requests.NewRequest(http.MethodGet, inst.Config.ApiUrl, q.Options()...); err != nil {
		return "", err
	}
	return q.Apply(inst.Config.ApiUrl)
}

func wsParamLines(ctx context.Context) []string {
	p := instance.GetInstance(ctx).Preparer
	m := make(map[string]string)
	p.FillWsParams(m)
	keys := p.Params().Websocket.Keys()
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s=%s", k, m[k]))
	}
	return lines
}
