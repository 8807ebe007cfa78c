package douyin

import (
	"fmt"
	"regexp"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"
)

const (
	WebRidKey    = "web_rid"
	RoomIdKey    = "room_id"
	SecUserIdKey = "sec_user_id"

	UrlRegex = `(?:https?://)?(?:www\.)?(?:live\.)?douyin\.com/([a-zA-Z0-9_.]+)`
)

type Param struct {
	Key   string
	Value string
}

// ParamSet is an ordered list of query parameters.
type ParamSet []Param

func (s ParamSet) Keys() []string {
	return lo.Map(s, func(p Param, _ int) string {
		return p.Key
	})
}

// Merge returns a new set holding s overlaid by other.
// Keys already in s keep their position, new keys from other are appended.
func (s ParamSet) Merge(other ParamSet) ParamSet {
	merged := make(ParamSet, len(s), len(s)+len(other))
	copy(merged, s)
	index := make(map[string]int, len(merged))
	for i, p := range merged {
		index[p.Key] = i
	}
	for _, p := range other {
		if i, ok := index[p.Key]; ok {
			merged[i].Value = p.Value
			continue
		}
		index[p.Key] = len(merged)
		merged = append(merged, p)
	}
	return merged
}

// ParamSetFromMapSlice converts an ordered yaml mapping into a ParamSet.
// Scalar values are formatted with %v, so `live_id: 1` becomes "1".
func ParamSetFromMapSlice(ms yaml.MapSlice) (ParamSet, error) {
	set := make(ParamSet, 0, len(ms))
	for _, item := range ms {
		key, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("param key %v is not a string", item.Key)
		}
		switch v := item.Value.(type) {
		case nil:
			set = append(set, Param{Key: key})
		case string, bool, int, int64, uint64, float64:
			set = append(set, Param{Key: key, Value: fmt.Sprintf("%v", v)})
		default:
			return nil, fmt.Errorf("param %s has unsupported value type %T", key, item.Value)
		}
	}
	return set, nil
}

// ParamSetFromJSON reads a flat JSON object into a ParamSet, keeping document order.
func ParamSetFromJSON(data []byte) (ParamSet, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("params json is not valid")
	}
	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		return nil, fmt.Errorf("params json must be an object")
	}
	set := make(ParamSet, 0)
	var err error
	result.ForEach(func(key, value gjson.Result) bool {
		if value.IsObject() || value.IsArray() {
			err = fmt.Errorf("param %s must be a scalar", key.String())
			return false
		}
		set = append(set, Param{Key: key.String(), Value: value.String()})
		return true
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// Params holds the parameter tables and the room url pattern.
// It is read-only once built and may be shared between goroutines.
type Params struct {
	Common       ParamSet
	AppCommon    ParamSet
	Websocket    ParamSet
	WebRidKey    string
	RoomIdKey    string
	SecUserIdKey string
	UrlPattern   *regexp.Regexp
}

var defaultUrlPattern = regexp.MustCompile(UrlRegex)

func DefaultParams() *Params {
	return &Params{
		Common: ParamSet{
			{"aid", "6383"},
			{"app_name", "douyin_web"},
			{"live_id", "1"},
			{"device_platform", "web"},
			{"language", "zh-CN"},
			{"enter_from", "web_live"},
			{"cookie_enabled", "true"},
			{"screen_width", "1920"},
			{"screen_height", "1080"},
			{"browser_language", "zh-CN"},
			{"browser_platform", "Win32"},
			{"browser_name", "Chrome"},
			{"browser_version", "116.0.0.0"},
		},
		AppCommon: ParamSet{
			{"verifyFp", "verify_lxj5zv70_7szNlAB7_pxNY_48Vh_ALKF_GA1Uf3yteoOY"},
			{"type_id", "0"},
			{"live_id", "1"},
			{"version_code", "99.99.99"},
			{"app_id", "1128"},
		},
		Websocket: ParamSet{
			{"app_name", "douyin_web"},
			{"version_code", "180800"},
			{"webcast_sdk_version", "1.0.14-beta.0"},
			{"update_version_code", "1.0.14-beta.0"},
			{"compress", "gzip"},
			{"device_platform", "web"},
			{"cookie_enabled", "true"},
			{"screen_width", "1920"},
			{"screen_height", "1080"},
			{"browser_language", "zh-CN"},
			{"browser_platform", "Win32"},
			{"browser_name", "Mozilla"},
			{"browser_online", "true"},
			{"tz_name", "Asia/Shanghai"},
			{"host", "https://live.douyin.com"},
			{"aid", "6383"},
			{"live_id", "1"},
			{"did_rule", "3"},
			{"endpoint", "live_pc"},
			{"support_wrds", "1"},
			{"im_path", "/webcast/im/fetch/"},
			{"identity", "audience"},
			{"need_persist_msg_count", "15"},
			{"heartbeatDuration", "0"},
		},
		WebRidKey:    WebRidKey,
		RoomIdKey:    RoomIdKey,
		SecUserIdKey: SecUserIdKey,
		UrlPattern:   defaultUrlPattern,
	}
}

// clone copies the tables so the copy shares no slice with p.
// The compiled pattern is safe for concurrent use and is shared.
func (p *Params) clone() *Params {
	c := *p
	c.Common = append(ParamSet(nil), p.Common...)
	c.AppCommon = append(ParamSet(nil), p.AppCommon...)
	c.Websocket = append(ParamSet(nil), p.Websocket...)
	return &c
}
