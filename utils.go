package clex

import "unsafe"

// StringToBytes 将字符串转换为字节切片, 不进行内存分配.
// 参见 https://github.com/golang/go/issues/53003#issuecomment-1140276077.
// 返回的 []byte 切片绝不能被修改, 否则会破坏字符串的不可变性.
func StringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesToString 将字节切片转换为字符串, 不进行内存分配.
// 参见 https://github.com/golang/go/issues/53003#issuecomment-1140276077.
// 在 b 被修改后, 返回的字符串不应再被使用.
func BytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
