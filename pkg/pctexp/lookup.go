package pctexp

import "os"

// Lookup 将变量名解析为替换值。
//
// 第二个返回值表示变量是否有定义；返回 false 时展开以
// [UndefinedVariableError] 失败。展开过程按从左到右的顺序、
// 对每个语法合法的变量恰好调用一次，并在首个错误处停止调用，
// 调用方不应依赖除此之外的调用次数。
type Lookup func(name string) (string, bool)

// Map 返回基于内存映射的查找。
//
// values 为 nil 时所有变量均视为未定义。
func Map(values map[string]string) Lookup {
	return func(name string) (string, bool) {
		value, ok := values[name]

		return value, ok
	}
}

// Env 返回基于进程环境变量的查找。
//
// 每次调用实时读取环境（不做快照），两次展开之间的环境变更会被感知。
func Env() Lookup {
	return os.LookupEnv
}

// Chain 依次尝试多个查找，返回首个命中的值。
//
// 全部未命中时变量视为未定义。常用于让调用方提供的值覆盖环境变量：
//
//	lookup := pctexp.Chain(pctexp.Map(overrides), pctexp.Env())
func Chain(lookups ...Lookup) Lookup {
	return func(name string) (string, bool) {
		for _, lookup := range lookups {
			if value, ok := lookup(name); ok {
				return value, true
			}
		}

		return "", false
	}
}
