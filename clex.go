package clex

import "io"

// Scan 使用默认规则表扫描源文本.
func Scan(src []byte) ([]Token, []ErrorRecord) {
	return NewScanner().Scan(src)
}

// ScanString 扫描一个字符串, 不复制其内容.
func ScanString(src string) ([]Token, []ErrorRecord) {
	return Scan(StringToBytes(src))
}

// ScanReader 读入 r 的全部内容后扫描. 返回的 error 只可能来自读取本身,
// 扫描不会失败.
func ScanReader(r io.Reader) ([]Token, []ErrorRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	tokens, errs := Scan(data)
	return tokens, errs, nil
}

// Analysis 捆绑一次完整分析的全部结果, 供展示层一次取走.
type Analysis struct {
	Tokens []Token
	Errors []ErrorRecord
	Stats  Stats
	Tree   *ParseNode
}

// Analyze 对一份源文本执行扫描, 统计与形状树构建.
func Analyze(src []byte) *Analysis {
	tokens, errs := Scan(src)
	return &Analysis{
		Tokens: tokens,
		Errors: errs,
		Stats:  Aggregate(tokens),
		Tree:   BuildTree(tokens),
	}
}
