// Package expand 提供模板展开命令。
package expand

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260821-go-pkg-pctexp/internal/command"
	"github.com/lwmacct/260821-go-pkg-pctexp/internal/version"
)

// Command 展开命令
var Command = &cli.Command{
	Name:      "expand",
	Usage:     "展开模板中的 %NAME% 变量引用",
	ArgsUsage: "[template ...]",
	Action:    action,
	Commands:  []*cli.Command{version.Command},
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
		&cli.StringFlag{
			Name:    "expand-output",
			Aliases: []string{"o"},
			Value:   command.Defaults.Expand.Output,
			Usage:   "输出文件路径，空表示标准输出",
		},
	},
}
