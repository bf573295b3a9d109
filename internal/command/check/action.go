package check

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260821-go-pkg-pctexp/internal/config"
	"github.com/lwmacct/260821-go-pkg-pctexp/internal/version"
	"github.com/lwmacct/260821-go-pkg-pctexp/pkg/cfgexp"
	"github.com/lwmacct/260821-go-pkg-pctexp/pkg/pctexp"
)

func action(_ context.Context, cmd *cli.Command) error {
	cfg := cfgexp.MustLoadCmd(cmd, config.DefaultConfig(), version.AppRawName,
		cfgexp.WithEnvPrefix("PCTEXP_"),
	)

	templates, err := readTemplates(cmd)
	if err != nil {
		return err
	}

	exp := newExpander(cfg)
	lookup := newLookup(cfg)

	unresolved := 0
	for _, tpl := range templates {
		names, err := exp.Vars(tpl)
		if err != nil {
			return fmt.Errorf("invalid template %q: %w", tpl, err)
		}

		for _, name := range names {
			value, ok := lookup(name)
			if !ok {
				unresolved++
				fmt.Printf("%s\t(undefined)\n", name)

				continue
			}
			fmt.Printf("%s\t%s\n", name, value)
		}
	}

	if unresolved > 0 {
		return fmt.Errorf("%d unresolved variable(s)", unresolved)
	}

	return nil
}

// varsAction 仅列出模板引用的变量名，不做解析。
func varsAction(_ context.Context, cmd *cli.Command) error {
	cfg := cfgexp.MustLoadCmd(cmd, config.DefaultConfig(), version.AppRawName,
		cfgexp.WithEnvPrefix("PCTEXP_"),
	)

	templates, err := readTemplates(cmd)
	if err != nil {
		return err
	}

	exp := newExpander(cfg)
	for _, tpl := range templates {
		names, err := exp.Vars(tpl)
		if err != nil {
			return fmt.Errorf("invalid template %q: %w", tpl, err)
		}

		for _, name := range names {
			fmt.Println(name)
		}
	}

	return nil
}

// readTemplates 返回命令行参数，无参数时读取标准输入。
func readTemplates(cmd *cli.Command) ([]string, error) {
	if cmd.Args().Len() > 0 {
		return cmd.Args().Slice(), nil
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return []string{string(content)}, nil
}

func newExpander(cfg *config.Config) *pctexp.Expander {
	var opts []pctexp.Option
	if cfg.Expand.NoEscape {
		opts = append(opts, pctexp.WithoutEscape())
	}

	return pctexp.New(opts...)
}

func newLookup(cfg *config.Config) pctexp.Lookup {
	lookups := []pctexp.Lookup{pctexp.Map(cfg.Vars)}
	if !cfg.Expand.NoEnv {
		lookups = append(lookups, pctexp.Env())
	}

	return pctexp.Chain(lookups...)
}
