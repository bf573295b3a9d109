// Package version 提供应用的名称、版本信息与版本命令。
package version

import (
	"context"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v3"
)

// AppRawName 应用名称，同时用作默认配置文件的搜索名。
const AppRawName = "pctexp"

// Version 构建版本号，由 -ldflags "-X" 在发布时注入。
var Version = "dev"

// GetVersion 返回当前版本号。
func GetVersion() string {
	return Version
}

// Command 版本命令
var Command = &cli.Command{
	Name:  "version",
	Usage: "显示版本信息",
	Action: func(_ context.Context, _ *cli.Command) error {
		fmt.Printf("%s %s %s/%s\n", AppRawName, Version, runtime.GOOS, runtime.GOARCH)

		return nil
	},
}
