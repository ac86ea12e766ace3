package extract

import (
	"bufio"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// RootLabel labels the tree returned by Chunker.Parse.
const RootLabel = "S"

// Tree is a shallow parse tree. A node with an empty Label is a leaf holding Token.
type Tree struct {
	Label    string
	Token    Token
	Children []*Tree
}

// IsLeaf reports whether t is a token leaf.
func (t *Tree) IsLeaf() bool { return t.Label == "" }

// Leaves returns the tokens under t in order.
func (t *Tree) Leaves() []Token {
	if t.IsLeaf() {
		return []Token{t.Token}
	}
	var out []Token
	for _, c := range t.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// Subtrees returns t and every labelled node beneath it in preorder.
func (t *Tree) Subtrees() []*Tree {
	if t.IsLeaf() {
		return nil
	}
	out := []*Tree{t}
	for _, c := range t.Children {
		out = append(out, c.Subtrees()...)
	}
	return out
}

// String renders t in bracketed notation, e.g. (S (NP the/DT cat/NN) sat/VBD).
func (t *Tree) String() string {
	if t.IsLeaf() {
		return t.Token.Text + "/" + t.Token.Tag
	}
	parts := make([]string, 0, len(t.Children)+1)
	parts = append(parts, t.Label)
	for _, c := range t.Children {
		parts = append(parts, c.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// tag returns the symbol a node presents to chunk rules: the POS tag for a leaf,
// the chunk label for an already built chunk.
func (t *Tree) tag() string {
	if t.IsLeaf() {
		return t.Token.Tag
	}
	return t.Label
}

type stage struct {
	label string
	rules []*regexp.Regexp
}

// Chunker groups tagged tokens into flat phrase chunks with a cascade of
// tag-pattern rules. Stages run in grammar order; chunks built by an earlier
// stage are visible to later stages under their label.
type Chunker struct {
	stages []stage
}

// DefaultGrammar chunks noun, prepositional and verb phrases.
const DefaultGrammar = `
NP:
    {<DT>?<JJ.*|NN.*>+<NN.*>}
PP:
    {<DT>?<JJ.*|NN.*>*<NN.*><IN><DT>?<JJ.*|NN.*>*<NN.*>}
VP:
    {<VB.*><RB.*>*<IN|TO>*<RB.*>+}
    {<VB.*><RB.*>*<IN|TO>*<DT>?<NP|NN.*>+}
    {<RB.*>+<VB.*>}
    {<VB.*><RB.*>+}
    {<VB.*>+<RP>*<DT>?<NP|PP|RB.*|NN.*>+}
`

// ParseGrammar compiles a chunk grammar. Each stage starts with "LABEL:" and is
// followed by one or more "{tag pattern}" rules, optionally on the same line.
// Blank lines and lines starting with '#' are ignored.
func ParseGrammar(src string) (*Chunker, error) {
	c := &Chunker{}
	sc := bufio.NewScanner(strings.NewReader(src))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.Index(line, ":"); i > 0 && !strings.HasPrefix(line, "{") {
			label := strings.TrimSpace(line[:i])
			if label == "" || strings.ContainsAny(label, "<>{} ") {
				return nil, fmt.Errorf("line %d: invalid chunk label %q", lineNo, label)
			}
			c.stages = append(c.stages, stage{label: label})
			line = strings.TrimSpace(line[i+1:])
			if line == "" {
				continue
			}
		}
		if len(c.stages) == 0 {
			return nil, fmt.Errorf("line %d: rule outside of a stage", lineNo)
		}
		if !strings.HasPrefix(line, "{") || !strings.HasSuffix(line, "}") {
			return nil, fmt.Errorf("line %d: expected {pattern}, got %q", lineNo, line)
		}
		re, err := compileTagPattern(line[1 : len(line)-1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		st := &c.stages[len(c.stages)-1]
		st.rules = append(st.rules, re)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for _, st := range c.stages {
		if len(st.rules) == 0 {
			return nil, fmt.Errorf("stage %s has no rules", st.label)
		}
	}
	return c, nil
}

// MustParseGrammar is ParseGrammar that panics on error.
func MustParseGrammar(src string) *Chunker {
	c, err := ParseGrammar(src)
	if err != nil {
		panic(err)
	}
	return c
}

// compileTagPattern turns a tag pattern such as <DT>?<JJ.*|NN.*>+ into a regular
// expression over strings of the form "<DT><JJ><NN>". Inside angle brackets '.'
// matches any character of a single tag, so a match never spans two tags.
func compileTagPattern(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	depth := 0
	for _, r := range pattern {
		switch {
		case r == ' ' || r == '\t':
		case r == '<':
			if depth > 0 {
				return nil, fmt.Errorf("nested '<' in tag pattern %q", pattern)
			}
			depth++
			b.WriteString("(?:<(?:")
		case r == '>':
			if depth == 0 {
				return nil, fmt.Errorf("unbalanced '>' in tag pattern %q", pattern)
			}
			depth--
			b.WriteString(")>)")
		case r == '.' && depth > 0:
			b.WriteString(`[^{}<>]`)
		case (r == '{' || r == '}') && depth > 0:
			return nil, fmt.Errorf("brace inside tag in pattern %q", pattern)
		default:
			b.WriteRune(r)
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced '<' in tag pattern %q", pattern)
	}
	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("compile tag pattern %q: %w", pattern, err)
	}
	return re, nil
}

// Parse chunks a tagged token sequence and returns a tree labelled RootLabel.
func (c *Chunker) Parse(tokens []Token) *Tree {
	items := make([]*Tree, len(tokens))
	for i, tok := range tokens {
		items[i] = &Tree{Token: tok}
	}
	for _, st := range c.stages {
		items = st.apply(items)
	}
	return &Tree{Label: RootLabel, Children: items}
}

type span struct{ from, to int }

// apply runs the stage rules in order. Each rule only sees runs of items not yet
// chunked by this stage; every non-empty match becomes a chunk.
func (st stage) apply(items []*Tree) []*Tree {
	chunked := make([]bool, len(items))
	var spans []span

	for _, re := range st.rules {
		for i := 0; i < len(items); {
			if chunked[i] {
				i++
				continue
			}
			j := i
			for j < len(items) && !chunked[j] {
				j++
			}
			spans = append(spans, matchRun(re, items, i, j, chunked)...)
			i = j
		}
	}
	if len(spans) == 0 {
		return items
	}

	sort.Slice(spans, func(a, b int) bool { return spans[a].from < spans[b].from })
	out := make([]*Tree, 0, len(items))
	next := 0
	for _, s := range spans {
		out = append(out, items[next:s.from]...)
		children := make([]*Tree, s.to-s.from)
		copy(children, items[s.from:s.to])
		out = append(out, &Tree{Label: st.label, Children: children})
		next = s.to
	}
	return append(out, items[next:]...)
}

// matchRun matches re against items[i:j] and marks matched items as chunked.
func matchRun(re *regexp.Regexp, items []*Tree, i, j int, chunked []bool) []span {
	var b strings.Builder
	starts := make(map[int]int, j-i)
	ends := make(map[int]int, j-i)
	for k := i; k < j; k++ {
		starts[b.Len()] = k
		b.WriteByte('<')
		b.WriteString(items[k].tag())
		b.WriteByte('>')
		ends[b.Len()] = k + 1
	}

	var out []span
	for _, m := range re.FindAllStringIndex(b.String(), -1) {
		if m[0] == m[1] {
			continue
		}
		from, okFrom := starts[m[0]]
		to, okTo := ends[m[1]]
		if !okFrom || !okTo {
			continue
		}
		for k := from; k < to; k++ {
			chunked[k] = true
		}
		out = append(out, span{from: from, to: to})
	}
	return out
}
