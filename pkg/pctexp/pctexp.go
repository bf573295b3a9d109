package pctexp

import "strings"

// defaultExpander 为包级入口共享的默认配置实例。
var defaultExpander = New()

// ═══════════════════════════════════════════════════════════════════════════
// 展开
// ═══════════════════════════════════════════════════════════════════════════

// Expand 对输入执行单趟 %VAR% 展开。
//
// 从左到右扫描：字面量原样写入输出；"%%" 写入字面量 %；
// %NAME% 经 lookup 解析后按原文写入，替换值不会被再次扫描。
// 任何错误立即中止并丢弃已生成的输出：
//   - [UnterminatedTokenError] - % 开启后直到输入结束没有闭合
//   - [EmptyNameError] - 变量名为空（见 [WithoutEscape]）
//   - [UndefinedVariableError] - lookup 对变量名没有返回值
//
// lookup 按从左到右的顺序、对每个语法合法的变量恰好调用一次，
// 首个错误出现后不再调用；lookup 为 nil 时所有变量均视为未定义。
func (e *Expander) Expand(s string, lookup Lookup) (string, error) {
	if lookup == nil {
		lookup = Map(nil)
	}

	var buf strings.Builder
	buf.Grow(len(s))

	for i := 0; i < len(s); {
		token, next, err := e.next(s, i)
		if err != nil {
			return "", err
		}

		if token.Kind == TokenVar {
			value, ok := lookup(token.Text)
			if !ok {
				return "", &UndefinedVariableError{Name: token.Text}
			}
			buf.WriteString(value)
		} else {
			buf.WriteString(token.Text)
		}

		i = next
	}

	return buf.String(), nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 包级入口
// ═══════════════════════════════════════════════════════════════════════════

// Expand 使用默认配置展开输入，见 [Expander.Expand]。
func Expand(s string, lookup Lookup) (string, error) {
	return defaultExpander.Expand(s, lookup)
}

// ExpandValues 使用内存映射作为查找展开输入。
func ExpandValues(s string, values map[string]string) (string, error) {
	return defaultExpander.Expand(s, Map(values))
}

// ExpandEnv 使用进程环境变量作为查找展开输入。
//
// 环境在每次调用时实时读取，不做缓存；两次调用之间的
// 环境变更会反映在结果中。
func ExpandEnv(s string) (string, error) {
	return defaultExpander.Expand(s, Env())
}

// MustExpand 调用 [Expand] 并在失败时 panic，适合写死的常量模板。
func MustExpand(s string, lookup Lookup) string {
	out, err := defaultExpander.Expand(s, lookup)
	if err != nil {
		panic(err)
	}

	return out
}

// Escape 将输入中的所有 % 转义为 "%%"。
//
// 对任意 s，Expand(Escape(s), lookup) 恒等于 s 且不触发任何查找。
func Escape(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}
