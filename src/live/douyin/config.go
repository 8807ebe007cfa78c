package douyin

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/bililive-go/douyin-params/src/configs"
	"github.com/bililive-go/douyin-params/src/pkg/utils"
)

// NewParamsFromConfig starts from DefaultParams and applies the overrides in cfg.
// A configured param set replaces the built-in one, the json file is merged over Common.
func NewParamsFromConfig(cfg *configs.Douyin) (*Params, error) {
	params := DefaultParams()
	if cfg == nil {
		return params, nil
	}
	if !utils.IsBlankPattern(cfg.UrlRegex) {
		re, err := utils.CompileSingleGroupPattern(cfg.UrlRegex)
		if err != nil {
			return nil, err
		}
		params.UrlPattern = re
	}

	var err error
	if params.Common, err = replaceSet(params.Common, cfg.CommonParams, "common_params"); err != nil {
		return nil, err
	}
	if params.AppCommon, err = replaceSet(params.AppCommon, cfg.AppCommonParams, "app_common_params"); err != nil {
		return nil, err
	}
	if params.Websocket, err = replaceSet(params.Websocket, cfg.WebsocketParams, "websocket_params"); err != nil {
		return nil, err
	}

	if cfg.ParamsJsonFile != "" {
		b, err := os.ReadFile(cfg.ParamsJsonFile)
		if err != nil {
			return nil, fmt.Errorf("can`t open file: %s", cfg.ParamsJsonFile)
		}
		extra, err := ParamSetFromJSON(b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.ParamsJsonFile, err)
		}
		params.Common = params.Common.Merge(extra)
	}
	return params, nil
}

func replaceSet(builtin ParamSet, ms yaml.MapSlice, name string) (ParamSet, error) {
	if len(ms) == 0 {
		return builtin, nil
	}
	set, err := ParamSetFromMapSlice(ms)
	if err != nil {
		return nil, fmt.Errorf("douyin.%s: %w", name, err)
	}
	return set, nil
}
