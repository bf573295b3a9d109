package pctexp

import "fmt"

// UnterminatedTokenError 表示 % 开启的变量引用直到输入结束都没有闭合。
//
// Pos 为开启定界符 % 的字节偏移。
type UnterminatedTokenError struct {
	Pos int
}

func (e *UnterminatedTokenError) Error() string {
	return fmt.Sprintf("pctexp: unterminated variable token at byte %d", e.Pos)
}

// EmptyNameError 表示扫描出了空的变量名。
//
// 默认配置下 "%%" 会被识别为转义，不会产生空名；本错误仅在
// [WithoutEscape] 模式下出现。Pos 为开启定界符 % 的字节偏移。
type EmptyNameError struct {
	Pos int
}

func (e *EmptyNameError) Error() string {
	return fmt.Sprintf("pctexp: empty variable name at byte %d", e.Pos)
}

// UndefinedVariableError 表示变量名语法合法但查找没有返回值。
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("pctexp: undefined variable %q", e.Name)
}
