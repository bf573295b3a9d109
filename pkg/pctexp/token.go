package pctexp

import "strings"

// TokenKind 标识扫描片段的类型。
type TokenKind int

const (
	// TokenLiteral 字面量片段；"%%" 转义产出 Text 为 "%" 的字面量。
	TokenLiteral TokenKind = iota
	// TokenVar 变量引用，Text 为去掉定界符的变量名。
	TokenVar
)

// Token 扫描产出的单个片段。
//
// Text 直接引用输入字符串的切片，不做拷贝。Pos 为片段起始的字节偏移，
// 变量引用从开启定界符 % 算起。
type Token struct {
	Kind TokenKind
	Pos  int
	Text string
}

// next 从偏移 i 处解析下一个片段，返回片段与新的游标位置。
//
// 展开与切分共用的状态机：字面量态与变量态两种状态，
// 前瞻仅一个字符（区分 "%%" 转义与变量开启）。
func (e *Expander) next(s string, i int) (Token, int, error) {
	if s[i] != '%' {
		end := strings.IndexByte(s[i:], '%')
		if end < 0 {
			end = len(s) - i
		}

		return Token{Kind: TokenLiteral, Pos: i, Text: s[i : i+end]}, i + end, nil
	}

	// "%%" 转义：贪婪配对，仅在字面量上下文生效
	if !e.noEscape && i+1 < len(s) && s[i+1] == '%' {
		return Token{Kind: TokenLiteral, Pos: i, Text: s[i : i+1]}, i + 2, nil
	}

	// 变量引用开启：首个 % 即闭合
	end := strings.IndexByte(s[i+1:], '%')
	if end < 0 {
		return Token{}, len(s), &UnterminatedTokenError{Pos: i}
	}

	name := s[i+1 : i+1+end]
	if name == "" {
		return Token{}, len(s), &EmptyNameError{Pos: i}
	}

	return Token{Kind: TokenVar, Pos: i, Text: name}, i + end + 2, nil
}

// Tokens 将输入切分为字面量与变量片段。
//
// 语法错误与 [Expander.Expand] 一致；变量是否有定义不在切分职责内。
func (e *Expander) Tokens(s string) ([]Token, error) {
	var tokens []Token
	for i := 0; i < len(s); {
		token, next, err := e.next(s, i)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		i = next
	}

	return tokens, nil
}

// Vars 返回输入引用的变量名，按首次出现顺序去重。
func (e *Expander) Vars(s string) ([]string, error) {
	var names []string
	seen := make(map[string]bool)
	for i := 0; i < len(s); {
		token, next, err := e.next(s, i)
		if err != nil {
			return nil, err
		}
		if token.Kind == TokenVar && !seen[token.Text] {
			seen[token.Text] = true
			names = append(names, token.Text)
		}
		i = next
	}

	return names, nil
}

// Tokens 使用默认配置切分输入，见 [Expander.Tokens]。
func Tokens(s string) ([]Token, error) {
	return defaultExpander.Tokens(s)
}

// Vars 使用默认配置提取变量名，见 [Expander.Vars]。
func Vars(s string) ([]string, error) {
	return defaultExpander.Vars(s)
}
