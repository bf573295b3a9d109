package cfgexp

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260821-go-pkg-pctexp/pkg/pctexp"
)

// options 配置加载选项。
type options struct {
	appName     string // 应用名称，用于生成默认配置路径
	cmd         *cli.Command
	configPaths []string
	envPrefix   string
	vars        map[string]string // 叠加在进程环境之上的展开变量
	lookup      pctexp.Lookup     // 完全自定义的查找链（优先于 vars）
	noExpansion bool              // 是否禁用配置文件变量展开（默认启用）
}

// Option 配置加载选项函数。
type Option func(*options)

// WithCommand 绑定 CLI 命令，读取显式设置的 flags 以覆盖配置（最高优先级）。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithAppName 设置应用名称，用于生成默认搜索路径（见 [DefaultPaths]）。
//
// 示例：
//
//	cfgexp.Load(defaultConfig,
//	    cfgexp.WithAppName("myapp"),  // 自动搜索 .myapp.yaml 等
//	    cfgexp.WithCommand(cmd),
//	)
func WithAppName(name string) Option {
	return func(o *options) {
		o.appName = name
	}
}

// WithConfigPaths 设置配置文件搜索路径。
//
// 按顺序查找，命中首个文件即停止。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		o.configPaths = paths
	}
}

// WithEnvPrefix 启用环境变量前缀解析。
//
// 环境变量命名规则：
//   - 前缀 + 大写的配置 key
//   - 点号 (.) 和连字符 (-) 转为下划线 (_)
//
// 示例 (前缀为 "MYAPP_")：
//   - MYAPP_DEBUG → debug
//   - MYAPP_SERVER_URL → server.url
//
// 注意：通过反射自动生成配置 key 的绑定，只匹配结构体中定义的 key。
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithVars 提供额外的展开变量，优先于进程环境变量。
//
// 配置文件中的 %NAME% 引用会先查这里，未命中再查环境。
// 若已使用 [WithLookup]，该选项不会生效。
func WithVars(vars map[string]string) Option {
	return func(o *options) {
		o.vars = vars
	}
}

// WithLookup 完全替换配置文件展开使用的变量查找。
//
// 设置后 [WithVars] 与进程环境均不再参与查找。
func WithLookup(lookup pctexp.Lookup) Option {
	return func(o *options) {
		o.lookup = lookup
	}
}

// WithoutExpansion 禁用配置文件的变量展开。
//
// 默认会在解析前展开 %NAME% 引用（%% 表示字面 %）。
// 该选项会保留原始 %...% 字符串。
func WithoutExpansion() Option {
	return func(o *options) {
		o.noExpansion = true
	}
}
