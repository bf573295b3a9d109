// Package pctexp 提供 %VAR% 风格的占位符展开。
//
// 该包模拟 Windows ExpandEnvironmentStrings 的 %NAME% 语法，
// 但采用严格校验：未闭合的定界符、空变量名、未定义变量一律返回错误，
// 不沿用平台原语的静默透传行为，适合配置模板等需要确定性结果的场景。
//
// # 设计参考
//
//   - ExpandEnvironmentStrings: https://learn.microsoft.com/en-us/windows/win32/api/processenv/nf-processenv-expandenvironmentstringsw
//
// # 语义说明
//
//  1. 单趟从左到右扫描，输入被切分为字面量与 %NAME% 两类片段
//  2. "%%" 展开为字面量 %；转义配对贪婪且从左到右，
//     仅当 % 的后继字符不是 % 时才开启变量引用
//  3. 变量引用内首个 % 即闭合，变量名不能包含 %
//  4. 替换值按原文写入，不做递归展开
//  5. 任何错误立即中止，不返回部分结果
//
// # 错误分类
//
//   - [UnterminatedTokenError] - % 开启后直到输入结束没有闭合
//   - [EmptyNameError] - 变量名为空（默认配置下不会出现，见 [WithoutEscape]）
//   - [UndefinedVariableError] - 查找对变量名没有返回值
//
// # 快速开始
//
// 使用自定义映射展开：
//
//	values := map[string]string{"PATH": "/usr/bin"}
//	out, err := pctexp.ExpandValues("bin at %PATH%", values)
//
// 使用进程环境变量展开（每次调用实时读取，不做快照）：
//
//	out, err := pctexp.ExpandEnv("home is %HOME%")
//
// 自定义查找能力（任意 name -> (value, ok) 函数）：
//
//	out, err := pctexp.Expand("db=%DB_URL%", func(name string) (string, bool) {
//	    return secrets.Get(name)
//	})
//
// 详见 [Expander.Expand] 文档。
package pctexp
