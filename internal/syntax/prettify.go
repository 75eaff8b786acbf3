package syntax

import (
	"regexp"
	"strings"
)

func compileTypeRules() typeRules {
	return typeRules{
		comma:         regexp.MustCompile(`\s*,\s*`),
		classPrefix:   regexp.MustCompile(`\b(?:class|struct)\s+`),
		basicString:   regexp.MustCompile(`std(?:::[a-zA-Z0-9_]+)?::basic_string<char`),
		basicView:     regexp.MustCompile(`std(?:::[a-zA-Z0-9_]+)?::basic_string_view<char`),
		allocator:     regexp.MustCompile(`,\s*std(?:::[a-zA-Z0-9_]+)?::allocator<`),
		defaultDelete: regexp.MustCompile(`,\s*std(?:::[a-zA-Z0-9_]+)?::default_delete<`),
	}
}

// PrettifyType tidies a demangled type or signature:
//
//	"std::basic_string<char, std::char_traits<char>, std::allocator<char> >" -> "std::string"
//	"std::vector<int,std::allocator<int> >"                                  -> "std::vector<int>"
func (m *Model) PrettifyType(s string) string {
	s = replaceFixpoint(s, "> >", ">>")
	s = m.types.comma.ReplaceAllString(s, ", ")
	s = m.types.classPrefix.ReplaceAllString(s, "")
	s = replaceTemplate(s, m.types.basicString, "std::string")
	s = replaceTemplate(s, m.types.basicView, "std::string_view")
	s = replaceTemplate(s, m.types.allocator, "")
	s = replaceTemplate(s, m.types.defaultDelete, "")
	return replaceFixpoint(s, "std::__cxx11::", "std::")
}

// replaceFixpoint repeats the replacement until nothing changes, so "> > >"
// collapses fully.
func replaceFixpoint(s, old, repl string) string {
	for strings.Contains(s, old) {
		s = strings.ReplaceAll(s, old, repl)
	}
	return s
}

// replaceTemplate replaces each match of re together with the rest of the
// template argument list it opens, up to the matching '>'.
func replaceTemplate(s string, re *regexp.Regexp, repl string) string {
	cursor := 0
	for cursor <= len(s) {
		loc := re.FindStringIndex(s[cursor:])
		if loc == nil {
			break
		}
		begin, end := cursor+loc[0], cursor+loc[1]
		for depth := 1; end < len(s) && depth > 0; end++ {
			switch s[end] {
			case '<':
				depth++
			case '>':
				depth--
			}
		}
		s = s[:begin] + repl + s[end:]
		cursor = begin + len(repl)
	}
	return s
}
