package main

import (
	"context"
	"testing"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/fortune_bear/internal/conf"
)

func TestInitApp_MissingConfigSections(t *testing.T) {
	// 缺段的配置应返回错误而不是 panic
	cases := []struct {
		name string
		bc   *conf.Bootstrap
	}{
		{"空配置", &conf.Bootstrap{}},
		{"缺 server.http", &conf.Bootstrap{
			Server: &conf.Server{},
			Data:   &conf.Data{Database: &conf.Database{}},
			Llm:    &conf.LLM{},
		}},
		{"缺 data.database", &conf.Bootstrap{
			Server: &conf.Server{Http: &conf.HTTP{}},
			Data:   &conf.Data{},
			Llm:    &conf.LLM{},
		}},
		{"缺 llm", &conf.Bootstrap{
			Server: &conf.Server{Http: &conf.HTTP{}},
			Data:   &conf.Data{Database: &conf.Database{}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("initApp panic: %v", r)
				}
			}()
			app, cleanup, err := initApp(context.Background(), tc.bc, log.DefaultLogger)
			if err == nil {
				t.Error("initApp error = nil, want 配置缺段错误")
			}
			if app != nil || cleanup != nil {
				t.Error("出错时不应返回已构造的应用")
			}
		})
	}
}
