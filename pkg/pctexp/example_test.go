package pctexp_test

import (
	"fmt"
	"os"

	"github.com/lwmacct/260821-go-pkg-pctexp/pkg/pctexp"
)

// Example_values 演示基于映射的变量展开。
func Example_values() {
	values := map[string]string{
		"HOST": "db.internal",
		"PORT": "5432",
	}

	result, _ := pctexp.ExpandValues("postgres://%HOST%:%PORT%/app", values)
	fmt.Println(result)

	// Output:
	// postgres://db.internal:5432/app
}

// Example_env 演示从进程环境变量展开。
func Example_env() {
	_ = os.Setenv("DATA_DIR", "/var/lib/app")
	defer func() { _ = os.Unsetenv("DATA_DIR") }()

	result, _ := pctexp.ExpandEnv("cache at %DATA_DIR%/cache")
	fmt.Println(result)

	// Output:
	// cache at /var/lib/app/cache
}

// Example_literalPercent 演示 %% 转义产出字面 %。
func Example_literalPercent() {
	result, _ := pctexp.ExpandValues("progress: 100%% done", nil)
	fmt.Println(result)

	// Output:
	// progress: 100% done
}

// Example_undefined 演示未定义变量导致的整体失败。
func Example_undefined() {
	_, err := pctexp.ExpandValues("%HOST%:%PORT%", map[string]string{"HOST": "db"})
	fmt.Println(err)

	// Output:
	// pctexp: undefined variable "PORT"
}

// Example_vars 演示提取模板引用的变量名。
func Example_vars() {
	names, _ := pctexp.Vars("%USER%@%HOST%: last login %WHEN%, user %USER%")
	fmt.Println(names)

	// Output:
	// [USER HOST WHEN]
}

// Example_chain 演示多级查找的优先级覆盖。
func Example_chain() {
	overrides := pctexp.Map(map[string]string{"LEVEL": "debug"})
	defaults := pctexp.Map(map[string]string{"LEVEL": "info", "FORMAT": "json"})

	result, _ := pctexp.Expand("log %LEVEL% as %FORMAT%", pctexp.Chain(overrides, defaults))
	fmt.Println(result)

	// Output:
	// log debug as json
}
