package curveviz

import "testing"

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"empty", nil, ""},
		{"single", []string{"m_LocalPosition.x"}, "m_LocalPosition.x"},
		{"vector", []string{"m_LocalPosition.x", "m_LocalPosition.y", "m_LocalPosition.z"}, "m_LocalPosition."},
		{"disjoint", []string{"alpha", "beta"}, ""},
		{"prefix of another", []string{"color", "color.r"}, "color"},
		{"multibyte", []string{"ñandú.x", "ñandú.y"}, "ñandú."},
		{"no split rune", []string{"\u00e9", "\u00e8"}, ""},
		// NFD input compares equal to NFC; the prefix keeps the first
		// string's spelling.
		{"decomposed first", []string{"cafe\u0301.x", "caf\u00e9.y"}, "cafe\u0301."},
		{"composed first", []string{"caf\u00e9.x", "cafe\u0301.y"}, "caf\u00e9."},
		{"decomposed differs", []string{"cafe\u0301", "cafe"}, "caf"},
		{"combining mark kept whole", []string{"q\u0301", "q\u0300"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommonPrefix(tt.in); got != tt.want {
				t.Errorf("CommonPrefix(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGroupLabel(t *testing.T) {
	tests := []struct {
		name     string
		bindings []Binding
		want     string
	}{
		{"none", nil, ""},
		{
			"vector under an object",
			[]Binding{
				{Path: "Root/Arm/Hand", Property: "m_LocalPosition.x"},
				{Path: "Root/Arm/Hand", Property: "m_LocalPosition.y"},
			},
			"Hand : m_LocalPosition",
		},
		{
			"root object",
			[]Binding{{Property: "material._Color.r"}, {Property: "material._Color.g"}},
			"material._Color",
		},
		{
			"single property",
			[]Binding{{Path: "Light", Property: "m_Intensity"}},
			"Light : m_Intensity",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GroupLabel(tt.bindings); got != tt.want {
				t.Errorf("GroupLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func colorBindings(suffixes ...string) []Binding {
	out := make([]Binding, len(suffixes))
	for i, s := range suffixes {
		out[i] = Binding{Path: "Sprite", Property: "m_Color" + s}
	}
	return out
}

func TestIsColorGroup(t *testing.T) {
	tests := []struct {
		name     string
		bindings []Binding
		want     bool
	}{
		{"rgba", colorBindings(".r", ".g", ".b", ".a"), true},
		{"reordered", colorBindings(".g", ".r", ".b", ".a"), false},
		{"alpha first", colorBindings(".a", ".r", ".g", ".b"), false},
		{"three channels", colorBindings(".r", ".g", ".b"), false},
		{"five channels", colorBindings(".r", ".g", ".b", ".a", ".a"), false},
		{"vector", colorBindings(".x", ".y", ".z", ".w"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsColorGroup(tt.bindings); got != tt.want {
				t.Errorf("IsColorGroup = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBinding(t *testing.T) {
	b := Binding{Path: "Root/Body", Property: "m_LocalScale.z"}
	if b.Token() != "z" {
		t.Errorf("Token = %q, want z", b.Token())
	}
	if b.ObjectName() != "Body" {
		t.Errorf("ObjectName = %q, want Body", b.ObjectName())
	}
	if b.String() != "Root/Body : m_LocalScale.z" {
		t.Errorf("String = %q", b.String())
	}

	root := Binding{Property: "m_IsActive"}
	if root.Token() != "m_IsActive" || root.ObjectName() != "" || root.String() != "m_IsActive" {
		t.Errorf("root binding = %q %q %q", root.Token(), root.ObjectName(), root.String())
	}
}
