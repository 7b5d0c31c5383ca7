// Package qualname implements the qualified-name and namespace algebra
// described in spec.md §4.A: parsing a front-end-supplied fully scoped
// name into tokens, relativizing it against a using_namespace root, and
// rendering it back out for diagrams.
package qualname

import "strings"

// anonymousTokens are elided at construction time; a front-end may spell
// an anonymous namespace several ways depending on its diagnostics mode.
var anonymousTokens = map[string]bool{
	"":                      true,
	"(anonymous namespace)": true,
	"<anonymous>":           true,
}

// Name is an ordered sequence of identifier tokens: namespaces, classes,
// templates. Equality between two Names is token-wise.
type Name struct {
	tokens []string
}

// New builds a Name from already-split tokens, eliding anonymous ones.
func New(tokens ...string) Name {
	n := Name{}
	for _, t := range tokens {
		n.Push(t)
	}
	return n
}

// Parse splits a fully-qualified string such as "a::b::c<T,U>" into
// tokens. Per §4.A, everything from the first unbalanced '<' onward is
// dropped before splitting on "::".
func Parse(s string) Name {
	s = stripTemplateArgs(s)
	var n Name
	for _, tok := range strings.Split(s, "::") {
		n.Push(tok)
	}
	return n
}

// stripTemplateArgs drops the template-argument suffix starting at the
// first '<' that is never closed within the remainder of the string.
func stripTemplateArgs(s string) string {
	depth := 0
	cut := -1
	for i, r := range s {
		switch r {
		case '<':
			if depth == 0 && cut == -1 {
				cut = i
			}
			depth++
		case '>':
			if depth > 0 {
				depth--
				if depth == 0 {
					cut = -1
				}
			}
		}
	}
	if cut >= 0 {
		return s[:cut]
	}
	return s
}

// Push appends a token, silently eliding the anonymous-namespace
// spellings in anonymousTokens so they never surface in a rendered name
// (§4.A). An inline namespace's name is kept as an ordinary token; Push
// cannot tell it apart from any other namespace.
func (n *Name) Push(token string) {
	token = strings.TrimSpace(token)
	if anonymousTokens[token] {
		return
	}
	n.tokens = append(n.tokens, token)
}

// PopBack removes the last token, if any.
func (n *Name) PopBack() {
	if len(n.tokens) == 0 {
		return
	}
	n.tokens = n.tokens[:len(n.tokens)-1]
}

// Name returns the last token (the unqualified name), or "" if empty.
func (n Name) Name() string {
	if len(n.tokens) == 0 {
		return ""
	}
	return n.tokens[len(n.tokens)-1]
}

// IsEmpty reports whether the name carries no tokens.
func (n Name) IsEmpty() bool {
	return len(n.tokens) == 0
}

// Tokens returns the underlying token slice; callers must not mutate it.
func (n Name) Tokens() []string {
	return n.tokens
}

// Equal reports token-wise equality.
func (n Name) Equal(other Name) bool {
	if len(n.tokens) != len(other.tokens) {
		return false
	}
	for i := range n.tokens {
		if n.tokens[i] != other.tokens[i] {
			return false
		}
	}
	return true
}

// RelativeTo strips the longest matching prefix shared with root and
// returns the remaining suffix. If root does not prefix n, n is returned
// unchanged (§4.A).
func (n Name) RelativeTo(root Name) Name {
	i := 0
	for i < len(root.tokens) && i < len(n.tokens) && root.tokens[i] == n.tokens[i] {
		i++
	}
	if i != len(root.tokens) {
		// root is not a full prefix of n
		return n
	}
	rel := Name{}
	rel.tokens = append(rel.tokens, n.tokens[i:]...)
	return rel
}

// String renders the name back into "a::b::c" form. Anonymous-namespace
// tokens were never stored, so rendering never reintroduces them.
func (n Name) String() string {
	return strings.Join(n.tokens, "::")
}

// HasPrefix reports whether root token-wise prefixes n, used by the
// filter engine's namespace predicates (§4.D.2).
func (n Name) HasPrefix(root Name) bool {
	if len(root.tokens) > len(n.tokens) {
		return false
	}
	for i := range root.tokens {
		if root.tokens[i] != n.tokens[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so callers may Push/PopBack without aliasing.
func (n Name) Clone() Name {
	c := Name{tokens: make([]string, len(n.tokens))}
	copy(c.tokens, n.tokens)
	return c
}
