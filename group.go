package curveviz

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// LabelSeparator joins an object name and a property name in labels.
const LabelSeparator = " : "

// Binding identifies one animated property of one object.
type Binding struct {
	// Path is the slash-separated path of the animated object relative to
	// the clip root. The root object has an empty path.
	Path string
	// Property is the dotted property name, e.g. "m_LocalPosition.x".
	Property string
}

// String returns "path : property", or just the property for the root
// object.
func (b Binding) String() string {
	if b.Path == "" {
		return b.Property
	}
	return b.Path + LabelSeparator + b.Property
}

// Token returns the property name after its last '.', the key used to look
// up heatmap overrides.
func (b Binding) Token() string {
	return b.Property[strings.LastIndexByte(b.Property, '.')+1:]
}

// ObjectName returns the leaf segment of Path.
func (b Binding) ObjectName() string {
	return b.Path[strings.LastIndexByte(b.Path, '/')+1:]
}

// colorSuffixes are the property suffixes of a color group, in channel order.
var colorSuffixes = [4]string{".r", ".g", ".b", ".a"}

// IsColorGroup reports whether bindings are exactly four properties ending
// in .r, .g, .b and .a, in that order.
func IsColorGroup(bindings []Binding) bool {
	if len(bindings) != len(colorSuffixes) {
		return false
	}
	for i, b := range bindings {
		if !strings.HasSuffix(b.Property, colorSuffixes[i]) {
			return false
		}
	}
	return true
}

// CommonPrefix returns the longest prefix shared by every string, sliced
// from strs[0]. Strings are compared in NFC form, so canonically equivalent
// spellings match, and the prefix ends on a normalization boundary.
func CommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	first := norm.NFC.String(strs[0])
	n := len(first)
	for _, s := range strs[1:] {
		n = min(n, sharedRunes(first[:n], norm.NFC.String(s)))
		if n == 0 {
			return ""
		}
	}

	var it norm.Iter
	it.InitString(norm.NFC, strs[0])
	pos, out := 0, 0
	for !it.Done() {
		out += len(it.Next())
		if out > n {
			break
		}
		pos = it.Pos()
	}
	return strs[0][:pos]
}

// sharedRunes returns the byte length of the common rune prefix of a and b.
func sharedRunes(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) {
		r1, size := utf8.DecodeRuneInString(a[n:])
		r2, _ := utf8.DecodeRuneInString(b[n:])
		if r1 != r2 {
			break
		}
		n += size
	}
	return n
}

// GroupLabel derives a dope line's label from its bindings: the leaf object
// name joined to the common prefix of the property names, with a trailing
// '.' trimmed.
func GroupLabel(bindings []Binding) string {
	if len(bindings) == 0 {
		return ""
	}
	names := make([]string, len(bindings))
	for i, b := range bindings {
		names[i] = b.Property
	}
	common := strings.TrimRight(CommonPrefix(names), ".")

	object := bindings[0].ObjectName()
	if object == "" {
		return common
	}
	return object + LabelSeparator + common
}
