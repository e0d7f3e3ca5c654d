package clex

import "bytes"

// DiffRow 是位置对齐比较中一处不一致的记录. Position 从 1 开始;
// 越界一侧的标签为空字符串, 否则为 "类别: 词素".
type DiffRow struct {
	Position int    `json:"position"`
	Left     string `json:"left"`
	Right    string `json:"right"`
}

// Diff 对两个独立扫描得到的 token 流做逐位置比较.
// 两个流相等当且仅当长度相同且每一对 token 在 (行号, 类别, 词素) 上
// 完全相等. 不相等时, 对 0..max(len(a),len(b))-1 的每个下标比较一对
// token (越界一侧视为空占位), 为每处不同输出一行.
//
// 这是朴素的位置对齐, 不做编辑距离计算: 一次插入或删除会使其后所有
// 下标错位, 其余部分全部被标记为不同. 这是记录在案的限制, 不是缺陷.
func Diff(a, b []Token) (bool, []DiffRow) {
	if tokensEqual(a, b) {
		return true, nil
	}
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	var rows []DiffRow
	for i := 0; i < n; i++ {
		inA, inB := i < len(a), i < len(b)
		if inA && inB && sameToken(a[i], b[i]) {
			continue
		}
		var left, right string
		if inA {
			left = a[i].Label()
		}
		if inB {
			right = b[i].Label()
		}
		rows = append(rows, DiffRow{Position: i + 1, Left: left, Right: right})
	}
	return false, rows
}

func tokensEqual(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sameToken(a[i], b[i]) {
			return false
		}
	}
	return true
}

func sameToken(x, y Token) bool {
	return x.Line == y.Line && x.Category == y.Category && bytes.Equal(x.Lexeme, y.Lexeme)
}
