package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bililive-go/douyin-params/src/cmd/douyin-params/internal/flag"
	"github.com/bililive-go/douyin-params/src/configs"
	"github.com/bililive-go/douyin-params/src/consts"
	"github.com/bililive-go/douyin-params/src/instance"
	"github.com/bililive-go/douyin-params/src/live/douyin"
	"github.com/bililive-go/douyin-params/src/log"
)

func getConfig() (*configs.Config, error) {
	var config *configs.Config
	if *flag.Conf != "" {
		c, err := configs.NewConfigWithFile(*flag.Conf)
		if err != nil {
			return nil, err
		}
		config = c
	} else {
		config = flag.GenConfigFromFlags()
	}
	return config, config.Verify()
}

func main() {
	flag.Parse(os.Args[1:])
	os.Exit(run())
}

func run() int {
	config, err := getConfig()
	if err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		return 1
	}
	configs.SetCurrentConfig(config)

	inst := new(instance.Instance)
	inst.Config = config
	ctx := context.WithValue(context.Background(), instance.Key, inst)

	logger := log.New(ctx)
	defer logger.Close()
	logger.Debugf("%+v", consts.AppInfo)
	if config.File != "" {
		logger.Debugf("config path: %s.", config.File)
		logger.Debugf("other flags have been ignored.")
	}

	params, err := douyin.NewParamsFromConfig(&config.Douyin)
	if err != nil {
		logger.WithError(err).Error("failed to load douyin params")
		return 1
	}
	inst.Preparer = douyin.NewPreparer(params)

	if *flag.Ws {
		for _, line := range wsParamLines(ctx) {
			fmt.Println(line)
		}
		return 0
	}

	api, err := prepareApiUrl(ctx, requestOptions{
		Url:    *flag.Url,
		App:    *flag.App,
		RoomId: *flag.RoomId,
		SecUid: *flag.SecUid,
	})
	if err != nil {
		logger.WithField("url", *flag.Url).Error(err)
		return 1
	}
	fmt.Println(api)
	return 0
}
