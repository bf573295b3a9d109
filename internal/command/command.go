// Package command 提供模板展开工具的命令行功能。
package command

import "github.com/lwmacct/260821-go-pkg-pctexp/internal/config"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()
