// Author: lwmacct (https://github.com/lwmacct)
package cfgexp_test

import (
	"fmt"
	"os"

	"github.com/lwmacct/260821-go-pkg-pctexp/pkg/cfgexp"
)

// Example_defaultPaths 演示 DefaultPaths 的搜索顺序。
func Example_defaultPaths() {
	// 不指定应用名称时，返回基础路径
	paths := cfgexp.DefaultPaths("")
	fmt.Println("基础路径数量:", len(paths))

	// 指定应用名称时，会包含应用专属配置路径
	paths = cfgexp.DefaultPaths("myapp")
	fmt.Println("带应用名路径数量:", len(paths))

	// Output:
	// 基础路径数量: 2
	// 带应用名路径数量: 5
}

// Example_load 演示如何加载配置。
//
// Load 函数按以下优先级合并配置:
//  1. 默认值 (最低优先级)
//  2. 配置文件
//  3. 环境变量
//  4. CLI flags (最高优先级)
func Example_load() {
	type Config struct {
		Name  string `json:"name"`
		Debug bool   `json:"debug"`
	}

	defaultCfg := Config{
		Name:  "default-app",
		Debug: false,
	}

	// 配置文件不存在时，使用默认值
	cfg, err := cfgexp.Load(defaultCfg,
		cfgexp.WithConfigPaths("nonexistent.yaml"),
	)
	if err != nil {
		fmt.Println("加载失败:", err)

		return
	}

	fmt.Println("Name:", cfg.Name)
	fmt.Println("Debug:", cfg.Debug)

	// Output:
	// Name: default-app
	// Debug: false
}

// Example_load_withVars 演示配置文件中的 %NAME% 引用展开。
//
// 查找顺序：WithVars 提供的变量优先，其次进程环境变量。
func Example_load_withVars() {
	type Config struct {
		DataDir string `json:"data_dir"`
		Rate    string `json:"rate"`
	}

	configContent := `data_dir: "%BASE%/data"
rate: "100%% sampled"
`
	tmpFile := "/tmp/example_vars_test.yaml"
	if err := os.WriteFile(tmpFile, []byte(configContent), 0600); err != nil {
		fmt.Println("创建临时文件失败:", err)

		return
	}
	defer func() { _ = os.Remove(tmpFile) }()

	cfg, err := cfgexp.Load(Config{},
		cfgexp.WithConfigPaths(tmpFile),
		cfgexp.WithVars(map[string]string{"BASE": "/var/lib/myapp"}),
	)
	if err != nil {
		fmt.Println("加载失败:", err)

		return
	}

	fmt.Println("DataDir:", cfg.DataDir)
	fmt.Println("Rate:", cfg.Rate)

	// Output:
	// DataDir: /var/lib/myapp/data
	// Rate: 100% sampled
}

// Example_load_undefinedVariable 演示未定义变量导致的加载失败。
//
// 展开是严格的，不会静默替换为空串。
func Example_load_undefinedVariable() {
	type Config struct {
		APIKey string `json:"api_key"`
	}

	configContent := `api_key: "%SURELY_NOT_SET_ANYWHERE%"
`
	tmpFile := "/tmp/example_undef_test.yaml"
	if err := os.WriteFile(tmpFile, []byte(configContent), 0600); err != nil {
		fmt.Println("创建临时文件失败:", err)

		return
	}
	defer func() { _ = os.Remove(tmpFile) }()

	_, err := cfgexp.Load(Config{},
		cfgexp.WithConfigPaths(tmpFile),
	)
	fmt.Println(err)

	// Output:
	// expand config /tmp/example_undef_test.yaml: pctexp: undefined variable "SURELY_NOT_SET_ANYWHERE"
}

// Example_load_withJSONConfig 演示如何加载 JSON 格式的配置文件。
//
// Load 函数会根据文件扩展名自动选择解析器：
//   - .yaml, .yml → YAML 解析器
//   - .json → JSON 解析器
func Example_load_withJSONConfig() {
	type Config struct {
		Name  string `json:"name"`
		Debug bool   `json:"debug"`
	}

	configContent := `{
  "name": "json-app",
  "debug": true
}`
	tmpFile := "/tmp/example_json_test.json"
	if err := os.WriteFile(tmpFile, []byte(configContent), 0600); err != nil {
		fmt.Println("创建临时文件失败:", err)

		return
	}
	defer func() { _ = os.Remove(tmpFile) }()

	defaultCfg := Config{
		Name:  "default-app",
		Debug: false,
	}

	// 根据 .json 扩展名自动使用 JSON 解析器
	cfg, err := cfgexp.Load(defaultCfg,
		cfgexp.WithConfigPaths(tmpFile),
	)
	if err != nil {
		fmt.Println("加载失败:", err)

		return
	}

	fmt.Println("Name:", cfg.Name)
	fmt.Println("Debug:", cfg.Debug)

	// Output:
	// Name: json-app
	// Debug: true
}
