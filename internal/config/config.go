// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - 通过 WithAppName / WithConfigPaths 选项设置
//  3. 环境变量 - 通过 WithEnvPrefix 选项启用
//  4. CLI flags - 通过 WithCommand 选项设置
package config

// Config 应用配置。
type Config struct {
	Expand ExpandConfig      `json:"expand" desc:"展开行为配置"`
	Vars   map[string]string `json:"vars" desc:"额外的模板变量表"`
}

// ExpandConfig 展开行为配置。
type ExpandConfig struct {
	NoEscape bool   `json:"no-escape" desc:"禁用 %% 转义"`
	NoEnv    bool   `json:"no-env" desc:"不读取进程环境变量"`
	Output   string `json:"output" desc:"输出文件路径，空表示标准输出"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Expand: ExpandConfig{
			NoEscape: false,
			NoEnv:    false,
			Output:   "",
		},
		Vars: map[string]string{},
	}
}
