package logger

import "strings"

// stripAnsiCodes removes CSI sequences (\x1b[...m) and OSC 8 hyperlinks
// (\x1b]8;;uri\x07) so the log file stays plain text.
func stripAnsiCodes(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '\x1b' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}

		switch s[i+1] {
		case '[':
			i += 2
			for i < len(s) && !isFinalByte(s[i]) {
				i++
			}
		case ']':
			i += 2
			for i < len(s) && s[i] != '\x07' {
				// ST terminator variant: ESC \
				if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\' {
					i++
					break
				}
				i++
			}
		default:
			b.WriteByte(s[i])
		}
	}

	return b.String()
}

func isFinalByte(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
