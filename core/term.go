package core

import "fmt"

// Tag is the construct kind of a term.
type Tag int

// The closed set of construct kinds. Unresolved marks a word that is not
// reserved; reference resolution later turns it into a call or leaves it as
// a number literal.
const (
	Unresolved Tag = iota
	EntryPoint

	Add
	Sub
	Mul
	Div
	Mod
	Eq
	More
	Less
	Drop
	Swap
	Over
	Dup
	Emit
	Read
	EnableInt
	DisableInt
	Store
	Load

	Variable
	Allot
	If
	Else
	Then
	Define
	DefineInterrupt
	Return
	Do
	Loop
	Begin
	Until
	LoopIndex
	Call
	String

	numTags
)

var tagNames = [numTags]string{
	Unresolved:      "word",
	EntryPoint:      "entry",
	Add:             "+",
	Sub:             "-",
	Mul:             "*",
	Div:             "/",
	Mod:             "mod",
	Eq:              "=",
	More:            ">",
	Less:            "<",
	Drop:            "drop",
	Swap:            "swap",
	Over:            "over",
	Dup:             "dup",
	Emit:            "emit",
	Read:            "read",
	EnableInt:       "ei",
	DisableInt:      "di",
	Store:           "!",
	Load:            "@",
	Variable:        "variable",
	Allot:           "allot",
	If:              "if",
	Else:            "else",
	Then:            "then",
	Define:          ":",
	DefineInterrupt: ":intr",
	Return:          ";",
	Do:              "do",
	Loop:            "loop",
	Begin:           "begin",
	Until:           "until",
	LoopIndex:       "i",
	Call:            "call",
	String:          "string",
}

func (t Tag) String() string {
	if t < 0 || t >= numTags {
		return fmt.Sprintf("Tag(%d)", int(t))
	}

	return tagNames[t]
}

// Target is an optional term index. The zero value holds no index.
type Target struct {
	pos int
	set bool
}

// TargetOf creates a target that points at the given term index.
func TargetOf(pos int) Target {
	return Target{pos: pos, set: true}
}

// Get returns the index and whether there is one.
func (t Target) Get() (int, bool) {
	return t.pos, t.set
}

func (t Target) String() string {
	if !t.set {
		return "-"
	}

	return fmt.Sprintf("@%d", t.pos)
}

// Term is one lexical unit of the source.
type Term struct {
	// Pos is the 1-based index of the word in the source. The entry term
	// has position 0.
	Pos  int
	Tag  Tag
	Text string

	// Target is the term index a jump or call of this term goes to.
	Target Target

	// Consumed is set on terms absorbed by a declaration. They generate no
	// code.
	Consumed bool
}

func (t *Term) String() string {
	return fmt.Sprintf("%d:%s(%q)%s", t.Pos, t.Tag, t.Text, t.Target)
}
