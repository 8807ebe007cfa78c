package douyin

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/bililive-go/douyin-params/src/live"
	"github.com/bililive-go/douyin-params/src/pkg/utils"
)

// Preparer extracts room ids and fills request parameters for douyin api calls.
type Preparer struct {
	params *Params
}

// NewPreparer keeps its own copy of params, later changes to params do not reach it.
func NewPreparer(params *Params) *Preparer {
	if params == nil {
		return &Preparer{params: DefaultParams()}
	}
	return &Preparer{params: params.clone()}
}

// Params returns a copy of the tables in use.
func (p *Preparer) Params() *Params {
	return p.params.clone()
}

// ExtractWebRid returns the web rid captured by the url pattern.
// Every failure is reported as live.ErrInvalidExtractionUrl.
func (p *Preparer) ExtractWebRid(url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("empty url: %w", live.ErrInvalidExtractionUrl)
	}
	match := p.params.UrlPattern.FindStringSubmatch(url)
	if len(match) < 2 || match[1] == "" {
		logrus.WithField("url", url).Debug("no web rid found in url")
		return "", fmt.Errorf("%s: %w", url, live.ErrInvalidExtractionUrl)
	}
	return match[1], nil
}

func (p *Preparer) FillCommonParams(q *utils.QueryBuilder) {
	fillQuery(q, p.params.Common)
}

func (p *Preparer) FillAppCommonParams(q *utils.QueryBuilder) {
	fillQuery(q, p.params.AppCommon)
}

func (p *Preparer) FillCommonParamsMap(m map[string]string) {
	fillMap(m, p.params.Common)
}

func (p *Preparer) FillWsParams(m map[string]string) {
	fillMap(m, p.params.Websocket)
}

func (p *Preparer) FillWebRid(q *utils.QueryBuilder, webRid string) {
	q.Set(p.params.WebRidKey, webRid)
}

func (p *Preparer) FillRoomId(q *utils.QueryBuilder, roomId string) {
	q.Set(p.params.RoomIdKey, roomId)
}

func (p *Preparer) FillSecUid(q *utils.QueryBuilder, secUid string) {
	q.Set(p.params.SecUserIdKey, secUid)
}

func fillQuery(q *utils.QueryBuilder, set ParamSet) {
	for _, param := range set {
		q.Set(param.Key, param.Value)
	}
}

func fillMap(m map[string]string, set ParamSet) {
	for _, param := range set {
		m[param.Key] = param.Value
	}
}

var defaultPreparer = NewPreparer(DefaultParams())

func ExtractWebRid(url string) (string, error) {
	return defaultPreparer.ExtractWebRid(url)
}

func FillCommonParams(q *utils.QueryBuilder) {
	defaultPreparer.FillCommonParams(q)
}

func FillAppCommonParams(q *utils.QueryBuilder) {
	defaultPreparer.FillAppCommonParams(q)
}

func FillCommonParamsMap(m map[string]string) {
	defaultPreparer.FillCommonParamsMap(m)
}

func FillWsParams(m map[string]string) {
	defaultPreparer.FillWsParams(m)
}

func FillWebRid(q *utils.QueryBuilder, webRid string) {
	defaultPreparer.FillWebRid(q, webRid)
}

func FillRoomId(q *utils.QueryBuilder, roomId string) {
	defaultPreparer.FillRoomId(q, roomId)
}

func FillSecUid(q *utils.QueryBuilder, secUid string) {
	defaultPreparer.FillSecUid(q, secUid)
}
