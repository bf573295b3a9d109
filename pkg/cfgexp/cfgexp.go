package cfgexp

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260821-go-pkg-pctexp/pkg/pctexp"
)

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// appName 为空时只返回通用路径。
// 返回顺序即查找顺序，先命中的文件生效。
//
// 优先级 (从高到低)：
//  1. ./.appname.yaml - 当前目录应用配置
//  2. ~/.appname.yaml - 用户主目录配置
//  3. /etc/appname/config.yaml - 系统级配置
//  4. config.yaml - 当前目录通用配置
//  5. config/config.yaml - 子目录通用配置
func DefaultPaths(appName string) []string {
	var paths []string

	if appName != "" {
		// 当前目录应用配置 (最高优先级)
		paths = append(paths, "."+appName+".yaml")
		// 用户主目录
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "."+appName+".yaml"))
		}
		// 系统配置目录
		paths = append(paths, "/etc/"+appName+"/config.yaml")
	}

	// 当前目录通用配置 (最低优先级)
	paths = append(paths, "config.yaml", "config/config.yaml")

	return paths
}

// Load 读取配置并按优先级合并。
//
// 优先级 (从低到高)：
//  1. 默认值 - defaultConfig
//  2. 配置文件 - [WithConfigPaths] / [WithAppName]
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]
//
// 配置 key 由 json tag 定义，YAML 与 JSON 共享同一套 key。
// 配置文件按顺序查找，命中首个文件即停止；文件内容在解析前
// 会展开 %NAME% 引用（见 [WithVars] / [WithoutExpansion]）。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	return load(defaultConfig, opts...)
}

func load[T any](defaultConfig T, opts ...Option) (*T, error) {
	// 解析选项
	options := &options{}
	for _, opt := range opts {
		opt(options)
	}

	// 默认使用 DefaultPaths 作为配置文件搜索路径
	if len(options.configPaths) == 0 {
		options.configPaths = DefaultPaths(options.appName)
	}

	// 未显式指定查找链时，WithVars 提供的变量覆盖进程环境
	lookup := options.lookup
	if lookup == nil {
		lookup = pctexp.Chain(pctexp.Map(options.vars), pctexp.Env())
	}

	configMap := structToMap(defaultConfig)

	// 2️⃣ 加载配置文件 (按顺序搜索，找到第一个即停止)
	configLoaded := false
	for _, path := range options.configPaths {
		// 尝试读取配置文件
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue // 文件不存在或无法读取，尝试下一个路径
		}

		// 默认启用变量展开，在解析前处理 %NAME% 引用
		if !options.noExpansion {
			expanded, expandErr := pctexp.Expand(string(content), lookup)
			if expandErr != nil {
				return nil, fmt.Errorf("expand config %s: %w", path, expandErr)
			}
			content = []byte(expanded)
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		mergeMaps(configMap, fileMap)

		slog.Debug("Loaded config from file", "path", path, "expansion", !options.noExpansion)
		configLoaded = true

		break
	}

	if len(options.configPaths) > 0 && !configLoaded {
		slog.Debug("No config file found, using defaults")
	}

	// 3️⃣ 自动生成环境变量绑定 (基于配置结构体的 key)
	// 支持包含连字符的 key，例如 rev-auth-user
	if options.envPrefix != "" {
		bindings := envBindings(options.envPrefix, collectConfigKeys(defaultConfig))
		slog.Debug("Generated auto env bindings", "prefix", options.envPrefix, "count", len(bindings))
		for envKey, configPath := range bindings {
			if val := os.Getenv(envKey); val != "" {
				setByPath(configMap, configPath, val)
				slog.Debug("Loaded env binding", "env", envKey, "path", configPath)
			}
		}
	}

	// 4️⃣ 加载 CLI flags (最高优先级，仅当用户明确指定时)
	if options.cmd != nil {
		applyCommandFlags(options.cmd, configMap, reflect.TypeOf(defaultConfig), "")
	}

	// 解析到结构体
	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是 [Load] 的便捷版本，适用于 CLI 场景。
//
// 它会注入 [WithCommand]，appName 非空时额外注入 [WithAppName]。
//
// 示例：
//
//	cfg, err := cfgexp.LoadCmd(cmd, DefaultConfig(), "myapp",
//	    cfgexp.WithEnvPrefix("MYAPP_"),
//	)
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) (*T, error) {
	baseOpts := []Option{WithCommand(cmd)}
	if appName != "" {
		baseOpts = append(baseOpts, WithAppName(appName))
	}

	return load(defaultConfig, append(baseOpts, opts...)...)
}

// MustLoad 调用 [Load] 并在失败时 panic，适合启动阶段。
func MustLoad[T any](defaultConfig T, opts ...Option) *T {
	cfg, err := load(defaultConfig, opts...)
	if err != nil {
		panic(fmt.Sprintf("cfgexp: failed to load config: %v", err))
	}

	return cfg
}

// MustLoadCmd 调用 [LoadCmd] 并在失败时 panic，适合启动阶段。
func MustLoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) *T {
	cfg, err := LoadCmd(cmd, defaultConfig, appName, opts...)
	if err != nil {
		panic(fmt.Sprintf("cfgexp: failed to load config: %v", err))
	}

	return cfg
}

// collectConfigKeys 递归收集配置结构体的 key 列表。
//
// 以 json tag 为准，返回叶子路径（如 expand.no-env）。
func collectConfigKeys[T any](defaultConfig T) []string {
	var keys []string
	collectKeysRecursive(reflect.TypeOf(defaultConfig), "", &keys)

	return keys
}

func collectKeysRecursive(typ reflect.Type, prefix string, keys *[]string) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)

		key := configTagName(field)
		if key == "" {
			continue
		}

		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		// 嵌套结构体（非特殊类型）递归处理
		if isStructType(field.Type) {
			collectKeysRecursive(field.Type, fullKey, keys)

			continue
		}

		*keys = append(*keys, fullKey)
	}
}

// envBindings 根据配置 key 生成环境变量映射。
//
// 转换规则：
//   - key 中的 "." 和 "-" 转为 "_"
//   - 转为大写
//   - 添加前缀
//
// 示例 (前缀 "APP_")：
//   - expand.no-env → APP_EXPAND_NO_ENV
//   - vars → APP_VARS
func envBindings(prefix string, keys []string) map[string]string {
	bindings := make(map[string]string, len(keys))
	for _, key := range keys {
		envKey := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
		bindings[prefix+envKey] = key
	}

	return bindings
}

// applyCommandFlags 将用户显式设置的 CLI flags 写入配置 map。
//
// 根据 json tag 生成 CLI flag 名称，仅替换 "." 为 "-"。
//
// 映射示例 (json tag → CLI flags)：
//   - expand.output → --expand-output
//   - expand.no-env → --expand-no-env
func applyCommandFlags(cmd *cli.Command, config map[string]any, typ reflect.Type, prefix string) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)

		key := configTagName(field)
		if key == "" {
			continue
		}

		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if isStructType(field.Type) {
			applyCommandFlags(cmd, config, field.Type, fullKey)

			continue
		}

		cliFlag := strings.ReplaceAll(fullKey, ".", "-")
		if !cmd.IsSet(cliFlag) {
			continue
		}

		setFlagValue(cmd, config, fullKey, cliFlag, field.Type)
	}
}

// setFlagValue 按字段类型读取 CLI 值并写入配置 map。
//
// 支持的类型：
//   - 基本类型: string, bool
//   - 整数类型: int, int64, uint, uint64
//   - 浮点数: float64
//   - 时间类型: time.Duration
//   - 切片类型: []string, []int, []int64, []float64
//   - Map 类型: map[string]string
func setFlagValue(cmd *cli.Command, config map[string]any, configPath, cliFlag string, fieldType reflect.Type) {
	if fieldType == durationType {
		setByPath(config, configPath, cmd.Duration(cliFlag))

		return
	}

	switch fieldType.Kind() {
	case reflect.String:
		setByPath(config, configPath, cmd.String(cliFlag))
	case reflect.Bool:
		setByPath(config, configPath, cmd.Bool(cliFlag))
	case reflect.Int:
		setByPath(config, configPath, cmd.Int(cliFlag))
	case reflect.Int64:
		setByPath(config, configPath, cmd.Int64(cliFlag))
	case reflect.Uint:
		setByPath(config, configPath, cmd.Uint(cliFlag))
	case reflect.Uint64:
		setByPath(config, configPath, cmd.Uint64(cliFlag))
	case reflect.Float64:
		setByPath(config, configPath, cmd.Float64(cliFlag))
	case reflect.Slice:
		setSliceFlagValue(cmd, config, configPath, cliFlag, fieldType)
	case reflect.Map:
		if fieldType.Key().Kind() == reflect.String && fieldType.Elem().Kind() == reflect.String {
			setByPath(config, configPath, cmd.StringMap(cliFlag))
		}
	default:
		// 不支持的类型，忽略
	}
}

// setSliceFlagValue 处理切片类型的 CLI flag 值。
func setSliceFlagValue(cmd *cli.Command, config map[string]any, configPath, cliFlag string, fieldType reflect.Type) {
	switch fieldType.Elem().Kind() {
	case reflect.String:
		setByPath(config, configPath, cmd.StringSlice(cliFlag))
	case reflect.Int:
		setByPath(config, configPath, cmd.IntSlice(cliFlag))
	case reflect.Int64:
		setByPath(config, configPath, cmd.Int64Slice(cliFlag))
	case reflect.Float64:
		setByPath(config, configPath, cmd.Float64Slice(cliFlag))
	default:
		// 不支持的切片元素类型，忽略
	}
}

// ExpandStrings 对一组模板执行同一查找链的展开。
//
// 使用与 [Load] 相同的默认查找规则（vars 覆盖进程环境），
// 供需要在配置之外复用展开语义的调用方使用。
func ExpandStrings(templates []string, vars map[string]string) ([]string, error) {
	lookup := pctexp.Chain(pctexp.Map(vars), pctexp.Env())

	out := make([]string, len(templates))
	for i, tpl := range templates {
		expanded, err := pctexp.Expand(tpl, lookup)
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", tpl, err)
		}
		out[i] = expanded
	}

	return out, nil
}
