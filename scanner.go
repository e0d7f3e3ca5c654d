package clex

// Scanner 按规则表对源文本做优先级匹配扫描.
type Scanner struct {
	rules []tokenRule
}

func NewScanner() *Scanner {
	return &Scanner{rules: ruleTable}
}

// Scan 将源文本转换为两个按源序排列的序列: token 与词法错误.
// 扫描永不失败: 每个输入字符要么进入某个 token, 要么进入一条错误记录,
// 要么作为空白/换行被丢弃. 换行在丢弃时递增行计数.
// 词素是从 src 复制出来的, 返回后结果与调用方的缓冲区互不影响.
func (s *Scanner) Scan(src []byte) ([]Token, []ErrorRecord) {
	var tokens []Token
	var errs []ErrorRecord
	line := 1
	pos := 0
	for pos < len(src) {
		rest := src[pos:]
		n := 0
		for _, r := range s.rules {
			loc := r.re.FindIndex(rest)
			if loc == nil {
				continue
			}
			n = loc[1]
			switch r.cat {
			case WHITESPACE:
			case NEWLINE:
				line++
			case UNKNOWN:
				errs = append(errs, ErrorRecord{Line: line, Kind: ErrKindUnknownToken, Lexeme: string(rest[:n])})
			default:
				tokens = append(tokens, Token{Line: line, Category: r.cat, Lexeme: append([]byte(nil), rest[:n]...)})
			}
			break
		}
		if n == 0 {
			// 兜底规则对任何字节都应命中; 万一没有, 仍记录错误并前进一个
			// 字节, 以保证终止且不丢失字符.
			errs = append(errs, ErrorRecord{Line: line, Kind: ErrKindUnknownToken, Lexeme: string(rest[:1])})
			n = 1
		}
		pos += n
	}
	return tokens, errs
}
