package flag

import (
	"github.com/alecthomas/kingpin"

	"github.com/bililive-go/douyin-params/src/configs"
	"github.com/bililive-go/douyin-params/src/consts"
)

var (
	app = kingpin.New(consts.AppName, "Prepare douyin api request parameters.").Version(consts.AppVersion)

	Debug  = app.Flag("debug", "Enable debug mode.").Default("false").Bool()
	Conf   = app.Flag("config", "Config file.").Short('c').String()
	ApiUrl = app.Flag("api", "Api url the parameters are appended to.").String()
	App    = app.Flag("app", "Use the app common parameters instead of the web ones.").Default("false").Bool()
	Ws     = app.Flag("ws", "Print the websocket parameters and exit.").Default("false").Bool()
	SecUid = app.Flag("sec-uid", "Secondary user id to add to the request.").String()
	RoomId = app.Flag("room-id", "Room id to add to the request.").String()
	Url    = app.Arg("url", "Live room url.").String()
)

// Parse fills the flag values from args, exiting on usage errors.
func Parse(args []string) {
	kingpin.MustParse(app.Parse(args))
}

func GenConfigFromFlags() *configs.Config {
	config := configs.NewConfig()
	config.Debug = *Debug
	if *ApiUrl != "" {
		config.ApiUrl = *ApiUrl
	}
	return config
}
