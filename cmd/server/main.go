package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/fortune_bear/internal/biz"
	"github.com/iWorld-y/fortune_bear/internal/conf"
	"github.com/iWorld-y/fortune_bear/internal/data"
	"github.com/iWorld-y/fortune_bear/internal/fortune"
	"github.com/iWorld-y/fortune_bear/internal/llm"
	"github.com/iWorld-y/fortune_bear/internal/server"
	"github.com/iWorld-y/fortune_bear/internal/service"
	"github.com/iWorld-y/fortune_bear/pkg/logger"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name 是服务的名称
	Name string = "fortune-bear"
	// Version 是服务的版本号
	Version string
	// flagconf 是配置文件的路径命令行参数
	flagconf string

	id, _ = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "configs/config.yaml", "config path, eg: -conf config.yaml")
}

func main() {
	flag.Parse()
	// 初始化日志记录器，包含时间戳、调用者信息、服务ID等上下文
	klogger := log.With(log.NewStdLogger(os.Stdout),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
	)

	// 配置来源：文件 + 环境变量，yaml 中的 ${ENV:default} 占位符由环境变量解析
	c := config.New(
		config.WithSource(
			file.NewSource(flagconf),
			env.NewSource(),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		panic(err)
	}

	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		panic(err)
	}

	if bc.Log != nil {
		if err := logger.Init(bc.Log.Level, bc.Log.File); err != nil {
			panic(err)
		}
	}

	app, cleanup, err := initApp(context.Background(), &bc, klogger)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		panic(err)
	}
}

// initApp 手工完成依赖装配：长生命周期的协作对象在此构造一次，
// 之后通过参数注入，处理请求的过程中不再出现全局可变状态。
func initApp(ctx context.Context, bc *conf.Bootstrap, klogger log.Logger) (*kratos.App, func(), error) {
	// 配置段缺失时给出可读错误，而不是在取字段时崩溃
	if bc.Server == nil || bc.Server.Http == nil {
		return nil, nil, fmt.Errorf("配置缺少 server.http 段")
	}
	if bc.Data == nil || bc.Data.Database == nil {
		return nil, nil, fmt.Errorf("配置缺少 data.database 段")
	}
	if bc.Llm == nil {
		return nil, nil, fmt.Errorf("配置缺少 llm 段")
	}

	content, err := fortune.LoadContent()
	if err != nil {
		return nil, nil, err
	}
	assigner := fortune.NewAssigner(content)

	llmTimeout, _ := time.ParseDuration(bc.Llm.Timeout)
	gen, err := llm.NewClient(ctx, llm.Config{
		BaseURL:     bc.Llm.BaseUrl,
		APIKey:      bc.Llm.ApiKey,
		Model:       bc.Llm.Model,
		Temperature: float32(bc.Llm.Temperature),
		MaxTokens:   int(bc.Llm.MaxTokens),
		Timeout:     llmTimeout,
		RPM:         int(bc.Llm.Rpm),
		QPS:         int(bc.Llm.Qps),
	})
	if err != nil {
		return nil, nil, err
	}

	d, cleanup, err := data.NewData(bc.Data, klogger)
	if err != nil {
		return nil, nil, err
	}

	ucFortune := biz.NewFortuneUseCase(content, assigner, gen, nil, klogger)
	ucReview := biz.NewReviewUseCase(data.NewReviewRepo(d, klogger), klogger)
	svc := service.NewFortuneService(ucFortune, ucReview, klogger)
	hs := server.NewHTTPServer(bc.Server, svc, klogger)

	app := kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(klogger),
		kratos.Server(hs),
	)
	return app, cleanup, nil
}
