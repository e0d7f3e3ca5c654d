package clex

// Stats 是一次聚合得到的四个相互独立的计数器.
type Stats struct {
	Keyword    int `json:"keyword"`
	Identifier int `json:"identifier"`
	Constant   int `json:"constant"`
	Operator   int `json:"operator"`
}

// Aggregate 统计 token 流中的关键字/标识符/常量/运算符数量.
// 空输入得到全零计数. 常量与运算符按类别名称归类,
// 见 Category.IsConstant 与 Category.IsOperator.
func Aggregate(tokens []Token) Stats {
	var st Stats
	for _, t := range tokens {
		switch {
		case t.Category == KEYWORD:
			st.Keyword++
		case t.Category == IDENTIFIER:
			st.Identifier++
		case t.Category.IsConstant():
			st.Constant++
		case t.Category.IsOperator():
			st.Operator++
		}
	}
	return st
}
