package entities

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CommentStyle identifies how a copyright line is wrapped for a file type.
type CommentStyle string

const (
	StyleHash     CommentStyle = "hash"
	StyleDash     CommentStyle = "dash"
	StyleMarkdown CommentStyle = "markdown"
	StyleStar     CommentStyle = "star"
)

// copyrightTemplate is the canonical header line inserted into files.
const copyrightTemplate = "Copyright (c) %d by %s. All rights reserved."

// encodingPattern matches a PEP-263 style encoding declaration line.
var encodingPattern = regexp.MustCompile(`^[ \t\f]*#.*?coding[:=][ \t]*([-_.a-zA-Z0-9]+)`)

// CopyrightHeader is a copyright line located in the head of a file.
// SecondYear is zero when the header carries a single year.
type CopyrightHeader struct {
	Text       string
	FirstYear  int
	SecondYear int
}

// LastYear returns the most recent year the header claims.
func (it CopyrightHeader) LastYear() int {
	if it.SecondYear != 0 {
		return it.SecondYear
	}
	return it.FirstYear
}

// Stale reports whether the header needs renewal for the given year.
func (it CopyrightHeader) Stale(currentYear int) bool {
	return it.LastYear() < currentYear
}

// Renewed returns the header text updated to end at the given year,
// preserving the range form "Y1, Y2".
func (it CopyrightHeader) Renewed(currentYear int) string {
	if it.SecondYear == 0 {
		return strings.Replace(
			it.Text,
			strconv.Itoa(it.FirstYear),
			fmt.Sprintf("%d, %d", it.FirstYear, currentYear),
			1,
		)
	}
	return strings.Replace(
		it.Text,
		strconv.Itoa(it.SecondYear),
		strconv.Itoa(currentYear),
		1,
	)
}

// CopyrightPattern compiles the header pattern for the given owner. The
// owner is quoted so regex metacharacters in entity names (e.g. "Acme
// (Holdings) Ltd.") match literally. The "(c)" parens accept an optional
// backslash escape because markdown headers store them escaped.
func CopyrightPattern(owner string) *regexp.Regexp {
	return regexp.MustCompile(
		`Copyright \\?\(c\\?\) ([0-9]{4})(, [0-9]{4})? by ` + regexp.QuoteMeta(owner),
	)
}

// FindCopyright searches the head of the content for a copyright header
// belonging to the owner matched by pattern.
func FindCopyright(pattern *regexp.Regexp, content string) (CopyrightHeader, bool) {
	m := pattern.FindStringSubmatch(ContentHead(content))
	if m == nil {
		return CopyrightHeader{}, false
	}
	header := CopyrightHeader{Text: m[0]}
	header.FirstYear, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		header.SecondYear, _ = strconv.Atoi(m[2][2:])
	}
	return header, true
}

// ContentHead returns the lines up to and including the first line whose
// first character is alphabetic. The first line of "code" is taken to be
// the first line leading with a letter; the definition is deliberately
// loose so the head stays broad without classifying lines as code.
func ContentHead(content string) string {
	var head []string
	for _, line := range strings.Split(content, "\n") {
		head = append(head, line)
		if line != "" && isAlpha(line[0]) {
			break
		}
	}
	return strings.Join(head, "\n")
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// NewCopyrightLine formats the canonical header line for a year and owner.
func NewCopyrightLine(year int, owner string) string {
	return fmt.Sprintf(copyrightTemplate, year, owner)
}

// Wrap renders the copyright line in the comment syntax of the style.
func (it CommentStyle) Wrap(line string) string {
	switch it {
	case StyleHash:
		return fmt.Sprintf("#\n# %s\n#\n", line)
	case StyleDash:
		return fmt.Sprintf("--\n-- %s\n--\n", line)
	case StyleMarkdown:
		escaped := strings.NewReplacer("(", `\(`, ")", `\)`).Replace(line)
		return fmt.Sprintf("[//]: # (%s)\n", escaped)
	case StyleStar:
		return fmt.Sprintf("/*\n * %s\n */\n", line)
	}
	return ""
}

// PreambleEnd returns the content index right after any shebang and/or
// encoding declaration lines. Only the first two lines are considered,
// matching the PEP-263 recognition window.
func PreambleEnd(content string) int {
	index := 0
	firstLineEnd := strings.Index(content, "\n") + 1
	if firstLineEnd == 0 {
		return 0
	}
	firstLine := content[:firstLineEnd]
	if strings.HasPrefix(firstLine, "#!") || encodingPattern.MatchString(firstLine) {
		index = firstLineEnd
		secondLineEnd := strings.Index(content[firstLineEnd:], "\n")
		if secondLineEnd >= 0 {
			secondLine := content[firstLineEnd : firstLineEnd+secondLineEnd+1]
			if encodingPattern.MatchString(secondLine) {
				index = firstLineEnd + secondLineEnd + 1
			}
		}
	}
	return index
}

// InsertCopyright splices the wrapped header into content, after any
// shebang/encoding preamble, or at the very top followed by a blank line
// unless the file was empty.
func InsertCopyright(content, wrapped string) string {
	index := PreambleEnd(content)
	if index != 0 {
		return content[:index] + wrapped + content[index:]
	}
	newline := ""
	if content != "" {
		newline = "\n"
	}
	return wrapped + newline + content
}
