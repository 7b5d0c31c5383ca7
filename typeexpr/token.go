package typeexpr

// tokenKind classifies a single lexical unit of an unexposed template
// argument string (spec.md §4.E step 1).
type tokenKind int

const (
	tokIdent tokenKind = iota
	tokScope // "::"
	tokLt    // "<"
	tokGt    // ">"
	tokComma
	tokStar      // "*"
	tokAmp       // "&"
	tokAmpAmp    // "&&"
	tokEllipsis  // "..."
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokConst
	tokVolatile
)

type token struct {
	kind tokenKind
	text string
}

var keywordsDropped = map[string]bool{
	"class": true, "typename": true, "struct": true,
}

// tokenize splits s into tokens per spec.md §4.E.1: identifiers, "::",
// "<", ">", ",", "*", "&", "&&", "...", parens and brackets. class/
// typename/struct keywords are dropped entirely (not emitted as
// tokens); const/volatile are emitted as qualifier tokens so the parser
// can attach them to the preceding type token.
func tokenize(s string) []token {
	var toks []token
	n := len(s)
	for i := 0; i < n; {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == ':' && i+1 < n && s[i+1] == ':':
			toks = append(toks, token{tokScope, "::"})
			i += 2
		case c == '<':
			toks = append(toks, token{tokLt, "<"})
			i++
		case c == '>':
			toks = append(toks, token{tokGt, ">"})
			i++
		case c == ',':
			toks = append(toks, token{tokComma, ","})
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "("})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")"})
			i++
		case c == '[':
			toks = append(toks, token{tokLBracket, "["})
			i++
		case c == ']':
			toks = append(toks, token{tokRBracket, "]"})
			i++
		case c == '.' && i+2 < n && s[i+1] == '.' && s[i+2] == '.':
			toks = append(toks, token{tokEllipsis, "..."})
			i += 3
		case c == '&' && i+1 < n && s[i+1] == '&':
			toks = append(toks, token{tokAmpAmp, "&&"})
			i += 2
		case c == '&':
			toks = append(toks, token{tokAmp, "&"})
			i++
		case c == '*':
			toks = append(toks, token{tokStar, "*"})
			i++
		default:
			j := i
			for j < n && isIdentByte(s[j]) {
				j++
			}
			if j == i {
				// unrecognized byte: skip it rather than silently dropping
				// the rest of the string (§4.E edge policies: "nothing is
				// silently dropped").
				i++
				continue
			}
			word := s[i:j]
			i = j
			switch word {
			case "class", "typename", "struct":
				// dropped per §4.E.1
			case "const":
				toks = append(toks, token{tokConst, "const"})
			case "volatile":
				toks = append(toks, token{tokVolatile, "volatile"})
			default:
				toks = append(toks, token{tokIdent, word})
			}
		}
	}
	return normalizeGtGt(toks)
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// normalizeGtGt returns toks unchanged: "> >" and ">>" already tokenize
// to the same two tokGt tokens, so they parse to equal trees (§4.E edge
// policies, §8 "Template-string parser").
func normalizeGtGt(toks []token) []token {
	// The tokenizer already emits one tokGt per '>' rune, whether the
	// input spelled "> >" or ">>"; both produce the same token stream.
	// No further collapsing is required here — the parser treats each
	// tokGt as closing exactly one level, so the two spellings are
	// already equivalent token-for-token.
	return toks
}
