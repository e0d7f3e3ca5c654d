package clex

import (
	"bytes"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return &bytes.Buffer{}
	},
}

// ParseNode 是形状树中的一个节点: 一个标签加上有序的子节点列表.
// 节点只会在一次自顶向下的构建过程中被追加, 因此树中不可能出现环,
// 每个非根节点恰好有一个父节点.
type ParseNode struct {
	Label    string       `json:"label"`
	Children []*ParseNode `json:"children,omitempty"`
}

func NewParseNode(label string) *ParseNode {
	return &ParseNode{Label: label}
}

// Add 追加一个带标签的子节点并返回它.
func (n *ParseNode) Add(label string) *ParseNode {
	child := &ParseNode{Label: label}
	n.Children = append(n.Children, child)
	return child
}

func (n *ParseNode) String() string {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer bufferPool.Put(buf)
	buf.Reset()
	n.Format(buf, "", RenderOptions{Style: StyleDefault})
	return buf.String()
}

// Format 将节点及其子树写入 w. indent 是当前行的前缀,
// 每个子节点根据 opts.Style 得到分支连接线或一级缩进.
func (n *ParseNode) Format(w *bytes.Buffer, indent string, opts RenderOptions) {
	w.WriteString(n.Label)
	last := len(n.Children) - 1
	for i, c := range n.Children {
		w.WriteByte('\n')
		w.WriteString(indent)
		childIndent := indent
		if opts.Style == StyleIndent {
			w.WriteString("\t")
			childIndent += "\t"
		} else if i == last {
			w.WriteString("└── ")
			childIndent += "    "
		} else {
			w.WriteString("├── ")
			childIndent += "│   "
		}
		c.Format(w, childIndent, opts)
	}
}
