package douyin

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bililive-go/douyin-params/src/live"
	"github.com/bililive-go/douyin-params/src/pkg/utils"
)

func TestExtractWebRid(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"live url", "https://live.douyin.com/123456", "123456"},
		{"live url with query", "https://live.douyin.com/123?room_id=456", "123"},
		{"no scheme", "live.douyin.com/abc_def.1", "abc_def.1"},
		{"www host", "https://www.douyin.com/user_name", "user_name"},
		{"trailing path", "https://live.douyin.com/987/extra", "987"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractWebRid(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractWebRidInvalid(t *testing.T) {
	for _, u := range []string{
		"",
		"not a url",
		"https://www.bilibili.com/123",
		"https://live.douyin.com/",
	} {
		t.Run(u, func(t *testing.T) {
			got, err := ExtractWebRid(u)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, live.ErrInvalidExtractionUrl))
		})
	}
}

func TestExtractWebRidCustomPattern(t *testing.T) {
	re, err := utils.CompileSingleGroupPattern(`room_id=(\d*)`)
	require.NoError(t, err)
	params := DefaultParams()
	params.UrlPattern = re
	p := NewPreparer(params)

	got, err := p.ExtractWebRid("https://live.douyin.com/123?room_id=456")
	require.NoError(t, err)
	assert.Equal(t, "456", got)

	_, err = p.ExtractWebRid("https://live.douyin.com/123?room_id=")
	assert.ErrorIs(t, err, live.ErrInvalidExtractionUrl)

	_, err = p.ExtractWebRid("https://live.douyin.com/123")
	assert.ErrorIs(t, err, live.ErrInvalidExtractionUrl)
}

func TestExtractWebRidOptionalGroup(t *testing.T) {
	re, err := utils.CompileSingleGroupPattern(`douyin\.com/(?:room/(\d+))?`)
	require.NoError(t, err)
	params := DefaultParams()
	params.UrlPattern = re
	p := NewPreparer(params)

	got, err := p.ExtractWebRid("https://live.douyin.com/room/42")
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	_, err = p.ExtractWebRid("https://live.douyin.com/other")
	assert.ErrorIs(t, err, live.ErrInvalidExtractionUrl)
}

func TestFillCommonParams(t *testing.T) {
	q := utils.NewQueryBuilder()
	FillCommonParams(q)

	common := DefaultParams().Common
	assert.Equal(t, common.Keys(), q.Keys())
	for _, p := range common {
		v, ok := q.Get(p.Key)
		assert.True(t, ok)
		assert.Equal(t, p.Value, v)
	}
	assert.Equal(t, len(q.Options()), q.Len())
}

func TestFillAppCommonParams(t *testing.T) {
	q := utils.NewQueryBuilder()
	FillAppCommonParams(q)
	assert.Equal(t, "verifyFp=verify_lxj5zv70_7szNlAB7_pxNY_48Vh_ALKF_GA1Uf3yteoOY&type_id=0&live_id=1&version_code=99.99.99&app_id=1128", q.Encode())
}

func TestFillOverlappingSets(t *testing.T) {
	params := &Params{
		Common:       ParamSet{{"a", "1"}, {"b", "2"}},
		AppCommon:    ParamSet{{"b", "3"}, {"c", "4"}},
		WebRidKey:    WebRidKey,
		SecUserIdKey: SecUserIdKey,
		UrlPattern:   defaultUrlPattern,
	}
	p := NewPreparer(params)

	q := utils.NewQueryBuilder()
	p.FillCommonParams(q)
	p.FillAppCommonParams(q)
	assert.Equal(t, "a=1&b=3&c=4", q.Encode())

	m := map[string]string{}
	p.FillCommonParamsMap(m)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, m)
}

func TestFillWebRidTwice(t *testing.T) {
	q := utils.NewQueryBuilder()
	FillWebRid(q, "111")
	FillWebRid(q, "222")
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, "web_rid=222", q.Encode())
}

func TestFillSecUid(t *testing.T) {
	q := utils.NewQueryBuilder()
	FillSecUid(q, "MS4wLjABAAAA")
	FillWebRid(q, "123")
	assert.Equal(t, []string{SecUserIdKey, WebRidKey}, q.Keys())
	v, _ := q.Get(SecUserIdKey)
	assert.Equal(t, "MS4wLjABAAAA", v)
}

func TestFillRoomId(t *testing.T) {
	params := DefaultParams()
	params.RoomIdKey = "rid"
	p := NewPreparer(params)

	q := utils.NewQueryBuilder()
	p.FillRoomId(q, "1")
	p.FillRoomId(q, "2")
	assert.Equal(t, "rid=2", q.Encode())

	q = utils.NewQueryBuilder()
	FillRoomId(q, "7")
	assert.Equal(t, RoomIdKey+"=7", q.Encode())
}

func TestPreparerOwnsItsTables(t *testing.T) {
	params := DefaultParams()
	p := NewPreparer(params)

	params.Common[0].Value = "changed"
	params.Common = append(params.Common, Param{"extra", "1"})
	params.WebRidKey = "other"

	got := p.Params()
	assert.Equal(t, DefaultParams().Common, got.Common)
	assert.Equal(t, WebRidKey, got.WebRidKey)

	got.AppCommon[0].Value = "changed"
	got.Websocket = nil
	assert.Equal(t, DefaultParams().AppCommon, p.Params().AppCommon)
	assert.Equal(t, DefaultParams().Websocket, p.Params().Websocket)

	q := utils.NewQueryBuilder()
	p.FillCommonParams(q)
	assert.Equal(t, DefaultParams().Common.Keys(), q.Keys())
}

func TestFillWsParams(t *testing.T) {
	m := map[string]string{"compress": "none", "cursor": "t-1"}
	FillWsParams(m)

	ws := DefaultParams().Websocket
	assert.Len(t, m, len(ws)+1)
	assert.Equal(t, "gzip", m["compress"])
	assert.Equal(t, "t-1", m["cursor"])
	assert.Equal(t, paramMap(ws)["im_path"], m["im_path"])
}

func TestFillCommonParamsMapIdempotent(t *testing.T) {
	m := map[string]string{}
	FillCommonParamsMap(m)
	first := make(map[string]string, len(m))
	for k, v := range m {
		first[k] = v
	}
	FillCommonParamsMap(m)
	assert.Equal(t, first, m)
	assert.Equal(t, paramMap(DefaultParams().Common), m)
}

func TestPreparerConcurrentUse(t *testing.T) {
	p := NewPreparer(nil)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q := utils.NewQueryBuilder()
			p.FillCommonParams(q)
			rid, err := p.ExtractWebRid("https://live.douyin.com/123")
			assert.NoError(t, err)
			p.FillWebRid(q, rid)
			assert.Equal(t, len(p.Params().Common)+1, q.Len())
		}()
	}
	wg.Wait()
}
