// Package check 提供模板检查命令。
package check

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260821-go-pkg-pctexp/internal/command"
	"github.com/lwmacct/260821-go-pkg-pctexp/internal/version"
)

// Command 检查命令
var Command = &cli.Command{
	Name:      "check",
	Usage:     "检查模板语法并报告变量解析情况",
	ArgsUsage: "[template ...]",
	Action:    action,
	Flags: []cli.Flag{
		&cli.StringMapFlag{
			Name:    "vars",
			Aliases: []string{"v"},
			Value:   command.Defaults.Vars,
			Usage:   "额外变量 (name=value)，优先于环境变量",
		},
		&cli.BoolFlag{
			Name:  "expand-no-escape",
			Value: command.Defaults.Expand.NoEscape,
			Usage: "禁用 %% 转义",
		},
		&cli.BoolFlag{
			Name:  "expand-no-env",
			Value: command.Defaults.Expand.NoEnv,
			Usage: "不读取进程环境变量",
		},
	},
	Commands: []*cli.Command{
		version.Command,
		{
			Name:      "vars",
			Usage:     "仅列出模板引用的变量名",
			ArgsUsage: "[template ...]",
			Action:    varsAction,
		},
	},
}
