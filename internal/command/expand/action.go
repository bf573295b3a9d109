package expand

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260821-go-pkg-pctexp/internal/config"
	"github.com/lwmacct/260821-go-pkg-pctexp/internal/version"
	"github.com/lwmacct/260821-go-pkg-pctexp/pkg/cfgexp"
	"github.com/lwmacct/260821-go-pkg-pctexp/pkg/pctexp"
)

func action(_ context.Context, cmd *cli.Command) error {
	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg := cfgexp.MustLoadCmd(cmd, config.DefaultConfig(), version.AppRawName,
		cfgexp.WithEnvPrefix("PCTEXP_"),
	)

	exp := newExpander(cfg)
	lookup := newLookup(cfg)

	var out strings.Builder
	if cmd.Args().Len() == 0 {
		// 无参数时展开整个标准输入
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}

		expanded, err := exp.Expand(string(content), lookup)
		if err != nil {
			return err
		}
		out.WriteString(expanded)
	} else {
		// 每个参数独立展开，逐行输出
		for _, tpl := range cmd.Args().Slice() {
			expanded, err := exp.Expand(tpl, lookup)
			if err != nil {
				return err
			}
			out.WriteString(expanded)
			out.WriteByte('\n')
		}
	}

	return writeOutput(cfg.Expand.Output, out.String())
}

// newExpander 根据配置构造展开器。
func newExpander(cfg *config.Config) *pctexp.Expander {
	var opts []pctexp.Option
	if cfg.Expand.NoEscape {
		opts = append(opts, pctexp.WithoutEscape())
	}

	return pctexp.New(opts...)
}

// newLookup 构造查找链：配置变量优先，进程环境兜底。
func newLookup(cfg *config.Config) pctexp.Lookup {
	lookups := []pctexp.Lookup{pctexp.Map(cfg.Vars)}
	if !cfg.Expand.NoEnv {
		lookups = append(lookups, pctexp.Env())
	}

	return pctexp.Chain(lookups...)
}

func writeOutput(path, content string) error {
	if path == "" {
		_, err := os.Stdout.WriteString(content)

		return err
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // output path is user-chosen
		return fmt.Errorf("write output %s: %w", path, err)
	}
	slog.Info("Expanded output written", "path", path, "bytes", len(content))

	return nil
}
