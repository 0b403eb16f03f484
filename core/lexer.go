package core

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// reservedWords maps source text to its construct kind.
var reservedWords = map[string]Tag{
	"di":       DisableInt,
	"ei":       EnableInt,
	"dup":      Dup,
	"+":        Add,
	"-":        Sub,
	"*":        Mul,
	"/":        Div,
	"mod":      Mod,
	"emit":     Emit,
	".":        Emit,
	"read":     Read,
	"swap":     Swap,
	"drop":     Drop,
	"over":     Over,
	"=":        Eq,
	"<":        Less,
	">":        More,
	"variable": Variable,
	"allot":    Allot,
	"!":        Store,
	"@":        Load,
	"if":       If,
	"else":     Else,
	"then":     Then,
	":":        Define,
	";":        Return,
	":intr":    DefineInterrupt,
	"do":       Do,
	"loop":     Loop,
	"begin":    Begin,
	"until":    Until,
	"i":        LoopIndex,
}

// stringPrefix starts a quoted word that is a string literal.
const stringPrefix = ". "

// IsReserved tells if the word is a reserved word.
func IsReserved(word string) bool {
	_, found := reservedWords[word]
	return found
}

// Lex splits the source into terms. Words are separated by white space and
// may be quoted the way a POSIX shell quotes them. Term 0 is the entry term.
func Lex(src string) ([]*Term, error) {
	words, err := shellquote.Split(src)
	if err != nil {
		return nil, fmt.Errorf("failed to split source: %w", err)
	}

	terms := make([]*Term, 0, len(words)+1)
	terms = append(terms, &Term{Pos: 0, Tag: EntryPoint})

	for n, word := range words {
		terms = append(terms, lexWord(n+1, word))
	}

	return terms, nil
}

func lexWord(pos int, word string) *Term {
	if strings.HasPrefix(word, stringPrefix) {
		return &Term{
			Pos:  pos,
			Tag:  String,
			Text: `."` + strings.TrimPrefix(word, stringPrefix) + `"`,
		}
	}

	tag, found := reservedWords[word]
	if !found {
		tag = Unresolved
	}

	return &Term{Pos: pos, Tag: tag, Text: word}
}
