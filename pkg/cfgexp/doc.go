// Package cfgexp 提供带变量展开的配置加载功能。
//
// 支持 YAML/JSON，按默认值、配置文件、环境变量与 CLI flags 逐层覆盖。
// 配置 key 使用 json tag 统一描述，YAML 与 JSON 共享同一套 key。
// 配置文件内容在解析前会经 pctexp 展开 %NAME% 引用。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置文件 - 通过 [WithConfigPaths] 或 [WithAppName] 设置
//  3. 环境变量(前缀) - 通过 [WithEnvPrefix] 自动生成绑定
//  4. CLI flags - 通过 [WithCommand] 选项设置，最高优先级
//
// # 快速开始
//
// 定义配置结构体（json + desc 标签）：
//
//	type Config struct {
//	    Name    string        `json:"name"    desc:"应用名称"`
//	    Debug   bool          `json:"debug"   desc:"调试模式"`
//	    Timeout time.Duration `json:"timeout" desc:"超时时间"`
//	}
//
// 推荐使用 LoadCmd：
//
//	cfg, err := cfgexp.LoadCmd(cmd, DefaultConfig(), "myapp",
//	    cfgexp.WithEnvPrefix("MYAPP_"),
//	)
//
// # 配置文件路径
//
// [WithAppName] 会生成默认搜索路径（见 [DefaultPaths]）：
//   - .myapp.yaml (当前目录)
//   - ~/.myapp.yaml (用户主目录)
//   - /etc/myapp/config.yaml (系统配置)
//   - config.yaml, config/config.yaml (通用路径)
//
// # 变量展开
//
// 配置文件在解析前展开 %NAME% 引用，查找顺序为
// [WithVars] 提供的变量、进程环境变量；%% 表示字面 %。
// 展开是严格的：引用了未定义的变量会使加载失败，
// 不存在静默保留或替换为空串的行为。
//
// 示例：
//
//	# config.yaml
//	api_key: "%OPENAI_API_KEY%"
//	data_dir: "%HOME%/.local/share/myapp"
//	sampling: "100%% of requests"
//
// 使用 [WithoutExpansion] 可整体禁用；[WithLookup] 可替换
// 整条查找链（如仅允许白名单变量）。
//
// # 环境变量(前缀)
//
// 通过 [WithEnvPrefix] 启用环境变量支持：
//   - 前缀 + 大写的配置 key
//   - 点号 (.) 和连字符 (-) 转为下划线 (_)
//
// 示例 (前缀为 "MYAPP_")：
//   - MYAPP_DEBUG → debug
//   - MYAPP_EXPAND_NO_ENV → expand.no-env
//
// # CLI Flag 映射
//
// 仅替换 "." 为 "-"：
//   - expand.output → --expand-output
//   - expand.no-env → --expand-no-env
package cfgexp
