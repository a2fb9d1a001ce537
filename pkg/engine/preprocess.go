package engine

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource rewrites script source into something zygomys accepts:
//
//   - ; and ;; line comments become // comments
//   - :keyword becomes the string literal "__kw_keyword", so keywords never
//     collide with user variables
//   - kebab-case identifiers become snake_case, since zygomys reads the
//     hyphen as subtraction
//
// String literals (double-quoted and backtick) pass through untouched.
func preprocessSource(source string) string {
	s := &scanner{src: []byte(source)}
	s.out = make([]byte, 0, len(source)+len(source)/4)
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '"':
			s.copyQuoted('"', true)
		case c == '`':
			s.copyQuoted('`', false)
		case c == ';':
			s.copyComment()
		case c == ':' && s.peek(1) == '=':
			s.emit(2)
		case c == ':' && isLetter(s.peek(1)):
			s.copyKeyword()
		case c == '-' && s.pos > 0 && isIdentChar(s.src[s.pos-1]) && isLetter(s.peek(1)):
			s.out = append(s.out, '_')
			s.pos++
		default:
			s.emit(1)
		}
	}
	return string(s.out)
}

type scanner struct {
	src []byte
	out []byte
	pos int
}

// peek returns the byte n positions ahead, or 0 past the end.
func (s *scanner) peek(n int) byte {
	if s.pos+n < len(s.src) {
		return s.src[s.pos+n]
	}
	return 0
}

func (s *scanner) emit(n int) {
	end := min(s.pos+n, len(s.src))
	s.out = append(s.out, s.src[s.pos:end]...)
	s.pos = end
}

func (s *scanner) copyQuoted(quote byte, escapes bool) {
	s.emit(1)
	for s.pos < len(s.src) && s.src[s.pos] != quote {
		if escapes && s.src[s.pos] == '\\' {
			s.emit(2)
			continue
		}
		s.emit(1)
	}
	s.emit(1)
}

func (s *scanner) copyComment() {
	s.out = append(s.out, '/', '/')
	for s.pos < len(s.src) && s.src[s.pos] == ';' {
		s.pos++
	}
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.emit(1)
	}
}

func (s *scanner) copyKeyword() {
	start := s.pos + 1
	end := start
	for end < len(s.src) && isKWChar(s.src[end]) {
		end++
	}
	s.out = append(s.out, '"')
	s.out = append(s.out, kwPrefix...)
	s.out = append(s.out, s.src[start:end]...)
	s.out = append(s.out, '"')
	s.pos = end
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isIdentChar(c) || c == '-'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}
