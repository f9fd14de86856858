package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cuckoo711/notepreview/parse/title"
	"github.com/cuckoo711/notepreview/server"
)

// ServeConfig 服务配置，可以通过 yaml 文件加载
type ServeConfig struct {
	Listen        string `yaml:"listen"`         // 监听地址
	DictionaryURL string `yaml:"dictionary_url"` // 标题词典的拉取地址，可为空
}

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the preview REST server",
	Run:   serveRun,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "yaml config path")
}

func loadServeConfig(path string) (*ServeConfig, error) {
	cfg := &ServeConfig{Listen: ":8080"}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	return cfg, nil
}

func serveRun(cmd *cobra.Command, args []string) {
	cfg, err := loadServeConfig(serveConfigPath)
	if err != nil {
		fmt.Println("load config error:", err)
		return
	}

	var provider title.Provider
	if cfg.DictionaryURL != "" {
		provider = &title.HTTPProvider{URL: cfg.DictionaryURL}
	}

	if err := server.Serve(cfg.Listen, title.NewTranslator(provider)); err != nil {
		fmt.Println("serve error:", err)
	}
}
