package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexUnterminatedChar         Code = 1004
	LexEmptyChar                Code = 1005
	LexBadEscape                Code = 1006
	LexUnterminatedRawString    Code = 1007

	// Разбор операндов
	ResolveInfo          Code = 2000
	ResolveNoCandidate   Code = 2001
	ResolveAmbiguous     Code = 2002
	ResolveDepthExceeded Code = 2003
	ResolveIllFormed     Code = 2004
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexUnterminatedChar:         "Unterminated character literal",
	LexEmptyChar:                "Empty character literal",
	LexBadEscape:                "Invalid escape sequence",
	LexUnterminatedRawString:    "Unterminated raw string literal",
	ResolveInfo:                 "Operand resolution information",
	ResolveNoCandidate:          "Operator not found at top level",
	ResolveAmbiguous:            "Operands are ambiguous",
	ResolveDepthExceeded:        "Template nesting too deep to resolve",
	ResolveIllFormed:            "Expression is ill-formed",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("RES%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
