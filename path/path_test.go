package path

import (
	"slices"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		in   string
		form Format
		want string
	}{
		{"Empty", "", Posix, "."},
		{"Dot", ".", Posix, "."},
		{"Simple", "a/b", Posix, "a/b"},
		{"SeparatorRun", "a//b///c", Posix, "a/b/c"},
		{"EmbeddedDot", "a/./b/./c", Posix, "a/b/c"},
		{"LeadingDot", "./foo", Posix, "foo"},
		{"Trailing", "a/b/", Posix, "a/b"},
		{"Root", "/", Posix, "/"},
		{"RootRun", "///", Posix, "/"},
		{"RootOnlyDots", "/./.", Posix, "/"},
		{"DotDotKept", "a/../b", Posix, "a/../b"},
		{"RootDotDot", "/..", Posix, "/.."},
		{"BackslashOrdinary", `a\b`, Posix, `a\b`},

		{"WinSimple", `a\b`, Windows, `a\b`},
		{"WinForwardInput", "a/b/c", Windows, `a\b\c`},
		{"WinMixed", `a/b\c`, Windows, `a\b\c`},
		{"WinDriveRoot", `C:\`, Windows, `C:\`},
		{"WinDriveRootRun", `C:\\\`, Windows, `C:\`},
		{"WinDriveNoRoot", "C:", Windows, "C:"},
		{"WinDriveRel", "C:a", Windows, "C:a"},
		{"WinDrivePath", `C:/Users//x/`, Windows, `C:\Users\x`},
		{"WinRootNoDrive", `\x`, Windows, `\x`},
		{"WinUNC", `\\host\share`, Windows, `\\host\share`},
		{"WinUNCRun", `\\\\host\share`, Windows, `\\host\share`},
		{"WinUNCOnly", `\\`, Windows, `\\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.in, tt.form).String()
			if got != tt.want {
				t.Errorf("New(%q, %v) = %q, want %q", tt.in, tt.form, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []struct {
		in   string
		form Format
	}{
		{"", Posix},
		{"a//b/./c/", Posix},
		{"/../a/..", Posix},
		{`C:\\Users\.\x\`, Windows},
		{`\\\host\\share\.\f`, Windows},
		{`.\`, Windows},
	}
	for _, tt := range inputs {
		p := New(tt.in, tt.form)
		again := New(p.String(), tt.form)
		if p.String() != again.String() {
			t.Errorf("normalize(%q) not idempotent: %q then %q",
				tt.in, p.String(), again.String())
		}
	}
}

func TestDriveRootAnchor(t *testing.T) {
	tests := []struct {
		in     string
		form   Format
		drive  string
		root   string
		anchor string
		abs    bool
	}{
		{"/a/b", Posix, "", "/", "/", true},
		{"a/b", Posix, "", "", "", false},
		{"/", Posix, "", "/", "/", true},
		{`C:\x`, Windows, "C:", `\`, `C:\`, true},
		{`C:\`, Windows, "C:", `\`, `C:\`, true},
		{"C:", Windows, "C:", "", "C:", false},
		{"C:a", Windows, "C:", "", "C:", false},
		{`\x`, Windows, "", `\`, `\`, false},
		{`\\host\share`, Windows, `\\host\share`, `\`, `\\host\share`, true},
		{`\\host\share\f`, Windows, `\\host\share`, `\`, `\\host\share\`, true},
		{`x\y`, Windows, "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p := New(tt.in, tt.form)
			if got := p.Drive(); got != tt.drive {
				t.Errorf("Drive(%q) = %q, want %q", tt.in, got, tt.drive)
			}
			if got := p.Root(); got != tt.root {
				t.Errorf("Root(%q) = %q, want %q", tt.in, got, tt.root)
			}
			if got := p.Anchor(); got != tt.anchor {
				t.Errorf("Anchor(%q) = %q, want %q", tt.in, got, tt.anchor)
			}
			if got := p.IsAbs(); got != tt.abs {
				t.Errorf("IsAbs(%q) = %v, want %v", tt.in, got, tt.abs)
			}
		})
	}
}

func TestParentName(t *testing.T) {
	tests := []struct {
		in     string
		form   Format
		parent string
		name   string
	}{
		{"a/b/c", Posix, "a/b", "c"},
		{"a", Posix, ".", "a"},
		{"/a/b", Posix, "/a", "b"},
		{"/a", Posix, "/", "a"},
		{"/", Posix, "/", ""},
		{".", Posix, ".", ""},
		{`C:\a\b`, Windows, `C:\a`, "b"},
		{`C:\a`, Windows, `C:\`, "a"},
		{"C:a", Windows, "C:", "a"},
		{`\\host\share\x`, Windows, `\\host\share`, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p := New(tt.in, tt.form)
			if got := p.Parent().String(); got != tt.parent {
				t.Errorf("Parent(%q) = %q, want %q", tt.in, got, tt.parent)
			}
			if got := p.Name(); got != tt.name {
				t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.name)
			}
		})
	}
}

func TestParentJoinName(t *testing.T) {
	// parent(p).Join(name(p)) reconstructs p whenever p has a name.
	for _, in := range []string{"a/b/c", "/a", "a", "x/y.txt", "/deep/er/most"} {
		p := New(in, Posix)
		if !p.HasName() {
			t.Fatalf("test path %q has no name", in)
		}
		got := p.Parent().Join(New(p.Name(), Posix))
		if !got.Equal(p) {
			t.Errorf("Parent(%q).Join(Name) = %q, want %q", in, got, p)
		}
	}
}

func TestStemSuffix(t *testing.T) {
	tests := []struct {
		in       string
		stem     string
		suffix   string
		suffixes []string
	}{
		{"a.tar.gz", "a.tar", ".gz", []string{"tar", "gz"}},
		{"dir/report.txt", "report", ".txt", []string{"txt"}},
		{"archive", "archive", "", nil},
		{".bashrc", ".bashrc", ".bashrc", nil},
		{"a.", "a", ".", []string{""}},
		// Suffix spans the whole relative remainder, not just the name.
		{"a.b/c", "c", ".b/c", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p := New(tt.in, Posix)
			if got := p.Stem(); got != tt.stem {
				t.Errorf("Stem(%q) = %q, want %q", tt.in, got, tt.stem)
			}
			if got := p.Suffix(); got != tt.suffix {
				t.Errorf("Suffix(%q) = %q, want %q", tt.in, got, tt.suffix)
			}
			if got := p.Suffixes(); !slices.Equal(got, tt.suffixes) {
				t.Errorf("Suffixes(%q) = %q, want %q", tt.in, got, tt.suffixes)
			}
		})
	}
}

func TestStemSuffixReconstructsName(t *testing.T) {
	for _, in := range []string{"a.tar.gz", "x/report.txt", "v1.2.3.json"} {
		p := New(in, Posix)
		sfx := p.Suffixes()
		if len(sfx) == 0 {
			t.Fatalf("test path %q has no suffix", in)
		}
		got := p.Stem() + "." + sfx[len(sfx)-1]
		if got != p.Name() {
			t.Errorf("Stem+suffix of %q = %q, want %q", in, got, p.Name())
		}
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		p, q string
		form Format
		want string
	}{
		{"Simple", "a", "b", Posix, "a/b"},
		{"Nested", "a/b", "c/d", Posix, "a/b/c/d"},
		{"OntoDot", ".", "b", Posix, "b"},
		{"JoinDot", "/a", ".", Posix, "/a"},
		{"OntoRoot", "/", "a", Posix, "/a"},
		{"AbsoluteReplaces", "a/b", "/x", Posix, "/x"},
		{"WinSimple", `C:\`, "x", Windows, `C:\x`},
		{"WinDriveReplaces", `a\b`, "C:y", Windows, "C:y"},
		{"WinRootReplaces", `a\b`, `\x`, Windows, `\x`},
		{"WinDriveNoRoot", "C:", "a", Windows, `C:\a`},
		{"WinUNC", `\\host\share`, "f", Windows, `\\host\share\f`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.p, tt.form).Join(New(tt.q, tt.form)).String()
			if got != tt.want {
				t.Errorf("Join(%q, %q) = %q, want %q", tt.p, tt.q, got, tt.want)
			}
		})
	}
}

func TestJoinCrossFormat(t *testing.T) {
	p := New("a/b", Posix)
	q := New(`c\d`, Windows)
	if got := p.Join(q).String(); got != "a/b/c/d" {
		t.Errorf("cross-format join = %q, want %q", got, "a/b/c/d")
	}
	if got := p.Join(q).Format(); got != Posix {
		t.Errorf("cross-format join kept format %v, want Posix", got)
	}
}

func TestConcat(t *testing.T) {
	tests := []struct {
		p, q string
		want string
	}{
		{"a", "b", "ab"},
		{"a", "/b", "a/b"},
		{"/", "a", "/a"},
		{".", "b", "b"},
		{"a", ".", "a"},
		{"file", ".txt", "file.txt"},
	}

	for _, tt := range tests {
		got := New(tt.p, Posix).Concat(New(tt.q, Posix)).String()
		if got != tt.want {
			t.Errorf("Concat(%q, %q) = %q, want %q", tt.p, tt.q, got, tt.want)
		}
	}
}

func TestWithNameSuffix(t *testing.T) {
	p := New("a/b/report.txt", Posix)
	if got := p.WithoutName().String(); got != "a/b" {
		t.Errorf("WithoutName = %q, want %q", got, "a/b")
	}
	if got := p.WithName("x.md").String(); got != "a/b/x.md" {
		t.Errorf("WithName = %q, want %q", got, "a/b/x.md")
	}
	if got := p.WithSuffix(".md").String(); got != "a/b/report.md" {
		t.Errorf("WithSuffix = %q, want %q", got, "a/b/report.md")
	}
	q := New("a/v.tar.gz", Posix)
	if got := q.WithSuffixes(".zip").String(); got != "a/v.zip" {
		t.Errorf("WithSuffixes = %q, want %q", got, "a/v.zip")
	}
}

func TestTo(t *testing.T) {
	tests := []struct {
		name string
		in   string
		from Format
		to   Format
		want string
	}{
		{"PosixToWindows", "/a/b", Posix, Windows, `\a\b`},
		{"WindowsToPosix", `C:\x\y`, Windows, Posix, "C:/x/y"},
		{"UNCCollapses", `\\host\share`, Windows, Posix, "/host/share"},
		{"Retag", "a/b", Posix, Posix, "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.in, tt.from).To(tt.to).String()
			if got != tt.want {
				t.Errorf("To(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToRoundTrip(t *testing.T) {
	for _, in := range []string{"/a/b", "a/b/c", "x.txt", "/"} {
		p := New(in, Posix)
		back := p.To(Windows).To(Posix)
		if !back.Equal(p) {
			t.Errorf("round trip of %q = %q", in, back)
		}
	}
}

func TestEqual(t *testing.T) {
	if !New("a/b", Posix).Equal(New(`a\b`, Windows)) {
		t.Error("a/b (posix) should equal a\\b (windows)")
	}
	if New("a/b", Posix).Equal(New("a/c", Posix)) {
		t.Error("a/b should not equal a/c")
	}
}

func TestRelativeTo(t *testing.T) {
	tests := []struct {
		p, other string
		want     string
		ok       bool
	}{
		{"/a/b/c", "/a", "b/c", true},
		{"/a/b", "/", "a/b", true},
		{"/", "/", ".", true},
		{"/a/b", "/a/b", ".", true},
		{"/a/b", "/x", "", false},
		{"ab/c", "a", "", false},
		{"a/b", ".", "a/b", true},
	}

	for _, tt := range tests {
		got, ok := New(tt.p, Posix).RelativeTo(New(tt.other, Posix))
		if ok != tt.ok || (ok && got.String() != tt.want) {
			t.Errorf("RelativeTo(%q, %q) = %q, %v, want %q, %v",
				tt.p, tt.other, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSegments(t *testing.T) {
	tests := []struct {
		in   string
		form Format
		want []string
	}{
		{"a/b/c", Posix, []string{"a", "b", "c"}},
		{"/a/b", Posix, []string{"/", "a", "b"}},
		{"/", Posix, []string{"/"}},
		{".", Posix, []string{"."}},
		{"a", Posix, []string{"a"}},
		{`C:\x\y`, Windows, []string{`C:\`, "x", "y"}},
		{"C:x", Windows, []string{"C:", "x"}},
		{`\\host\share\f`, Windows, []string{`\\host\share\`, "f"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := slices.Collect(New(tt.in, tt.form).Segments())
			if !slices.Equal(got, tt.want) {
				t.Errorf("Segments(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSegmentsLazy(t *testing.T) {
	// Breaking out of the loop must not consume the rest.
	var got []string
	for s := range New("a/b/c/d", Posix).Segments() {
		got = append(got, s)
		if len(got) == 2 {
			break
		}
	}
	if !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("partial Segments = %q", got)
	}
}

func TestMake(t *testing.T) {
	if got := Make(Posix, "a", "b", "c").String(); got != "a/b/c" {
		t.Errorf("Make = %q, want a/b/c", got)
	}
	if got := Make(Posix, "a", "/x", "y").String(); got != "/x/y" {
		t.Errorf("Make with absolute segment = %q, want /x/y", got)
	}
	if got := Make(Windows).String(); got != "." {
		t.Errorf("empty Make = %q, want .", got)
	}
}

func TestZeroValue(t *testing.T) {
	var p Path
	if p.String() != "." {
		t.Errorf("zero Path = %q, want .", p.String())
	}
	if p.Join(New("a", Native)).String() != "a" {
		t.Error("zero Path should join like the current directory")
	}
}
