package pctexp

// Expander 执行 %VAR% 展开与切分。
//
// 通过 [New] 创建并用 Option 配置；构造完成后不可变，可并发使用。
// 查找能力由每次调用传入，Expander 自身不持有任何跨调用状态。
type Expander struct {
	noEscape bool
}

// New 创建 Expander。
//
// 默认配置：
//   - "%%" 转义启用，展开为字面量 %
//
// 示例：
//
//	exp := pctexp.New(pctexp.WithoutEscape())
//	_, err := exp.Expand("50%%", lookup)
//	// err: pctexp: empty variable name at byte 2
func New(opts ...Option) *Expander {
	e := &Expander{}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Option 配置 Expander 的选项函数。
type Option func(*Expander)

// WithoutEscape 禁用 "%%" 转义。
//
// 禁用后每个 % 都是定界符，"%%" 被解析为空变量名并返回
// [EmptyNameError]。适合要求 % 严格成对、不允许字面量 % 的输入。
//
// 默认的转义配对规则为贪婪且从左到右：处于字面量上下文的 %
// 若紧跟另一个 %，二者合并为一个字面量 %；仅当后继字符不是 %
// 时才开启变量引用。因此 "%%%" 解析为字面量 % 加一个未闭合的引用。
func WithoutEscape() Option {
	return func(e *Expander) {
		e.noEscape = true
	}
}
