// Package conf 定义服务的启动配置结构
package conf

type Bootstrap struct {
	Server *Server
	Data   *Data
	Llm    *LLM
	Log    *Log
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr    string
	Timeout string
}

type Data struct {
	Database *Database
}

type Database struct {
	Driver string
	Source string
}

type LLM struct {
	BaseUrl     string `json:"base_url"`
	ApiKey      string `json:"api_key"`
	Model       string `json:"model"`
	Temperature float64
	MaxTokens   int32  `json:"max_tokens"`
	Timeout     string `json:"timeout"`
	Rpm         int32
	Qps         int32
}

type Log struct {
	Level string
	File  string
}
