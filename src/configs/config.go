package configs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/bililive-go/douyin-params/src/pkg/utils"
)

type Log struct {
	OutPutFolder string `yaml:"out_put_folder"`
	SaveLastLog  bool   `yaml:"save_last_log"`
}

// Douyin overrides the built-in douyin request parameters.
// An empty field keeps the built-in value.
type Douyin struct {
	UrlRegex        string        `yaml:"url_regex"`
	CommonParams    yaml.MapSlice `yaml:"common_params"`
	AppCommonParams yaml.MapSlice `yaml:"app_common_params"`
	WebsocketParams yaml.MapSlice `yaml:"websocket_params"`
	// JSON object whose entries are merged over the common params.
	ParamsJsonFile string `yaml:"params_json_file"`
}

func (d *Douyin) verify() error {
	if d == nil {
		return nil
	}
	if !utils.IsBlankPattern(d.UrlRegex) {
		if _, err := utils.CompileSingleGroupPattern(d.UrlRegex); err != nil {
			return fmt.Errorf("invalid douyin.url_regex: %w", err)
		}
	}
	if d.ParamsJsonFile != "" {
		if _, err := os.Stat(d.ParamsJsonFile); err != nil {
			return fmt.Errorf(`the params json file: "%s" is not exist`, d.ParamsJsonFile)
		}
	}
	return nil
}

// Config content all config info.
type Config struct {
	File   string `yaml:"-"`
	Debug  bool   `yaml:"debug"`
	Log    Log    `yaml:"log"`
	ApiUrl string `yaml:"api_url"`
	Douyin Douyin `yaml:"douyin"`
}

var config *Config

func SetCurrentConfig(cfg *Config) {
	config = cfg
}

func GetCurrentConfig() *Config {
	return config
}

var defaultConfig = Config{
	Debug: false,
	Log: Log{
		OutPutFolder: "./",
		SaveLastLog:  false,
	},
	ApiUrl: "https://live.douyin.com/webcast/room/web/enter/",
	File:   "",
}

func NewConfig() *Config {
	config := defaultConfig
	return &config
}

// Verify will return an error when this config has problem.
func (c *Config) Verify() error {
	if c == nil {
		return fmt.Errorf("config is null")
	}
	if c.ApiUrl == "" {
		return fmt.Errorf("the api_url can not be empty")
	}
	if c.Log.SaveLastLog {
		if _, err := os.Stat(c.Log.OutPutFolder); err != nil {
			return fmt.Errorf(`the log out put folder: "%s" is not exist`, c.Log.OutPutFolder)
		}
	}
	return c.Douyin.verify()
}

func NewConfigWithBytes(b []byte) (*Config, error) {
	config := defaultConfig
	if err := yaml.Unmarshal(b, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func NewConfigWithFile(file string) (*Config, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("can`t open file: %s", file)
	}
	config, err := NewConfigWithBytes(b)
	if err != nil {
		return nil, err
	}
	config.File = file
	return config, nil
}

func (c Config) GetFilePath() (string, error) {
	if c.File == "" {
		return "", errors.New("config path not set")
	}
	return c.File, nil
}
