package exporter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"naca/airfoil"
)

func generate(t *testing.T, params airfoil.Parameters) *airfoil.CurveSet {
	t.Helper()
	cs, err := airfoil.Generate(params)
	if err != nil {
		t.Fatal(err)
	}
	return cs
}

func TestToDat(t *testing.T) {
	cs := &airfoil.CurveSet{
		X:       []float64{0, 1},
		YCamber: []float64{0, 0},
		Upper:   []airfoil.Point{{X: 0, Y: 0}, {X: 1, Y: 0.00126}},
		Lower:   []airfoil.Point{{X: 0, Y: 0}, {X: 1, Y: -0.00126}},
	}
	want := "NACA 0012\n" +
		"1.000000  0.001260\n" +
		"0.000000  0.000000\n" +
		"1.000000  -0.001260\n"
	if got := ToDat(cs, "NACA 0012"); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestToDatStructure(t *testing.T) {
	params := airfoil.Parameters{M: 0.02, P: 0.4, T: 0.12, SampleCount: 200}
	cs := generate(t, params)
	text := ToDat(cs, params.Designation())

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if lines[0] != "NACA 2412" {
		t.Errorf("header %q", lines[0])
	}
	if got := len(lines) - 1; got != 2*200-1 {
		t.Errorf("got %d coordinate lines", got)
	}
	for _, l := range lines[1:] {
		cols := strings.Split(l, "  ")
		if len(cols) != 2 {
			t.Fatalf("line %q is not two columns separated by two spaces", l)
		}
		for _, c := range cols {
			dot := strings.IndexByte(c, '.')
			if dot < 0 || len(c)-dot-1 != 6 {
				t.Fatalf("%q does not have six decimals", c)
			}
		}
	}
	// 上表面后缘 -> 前缘
	if !strings.HasPrefix(lines[1], "1.0000") || !strings.Contains(lines[1], "  0.001") {
		t.Errorf("first point %q", lines[1])
	}
	if lines[200] != "0.000000  0.000000" {
		t.Errorf("leading edge line %q", lines[200])
	}
}

func TestWriteDatMatchesToDat(t *testing.T) {
	cs := generate(t, airfoil.Parameters{M: 0, P: 0, T: 0.08, SampleCount: 50})
	var buf bytes.Buffer
	if err := WriteDat(&buf, cs, "NACA 0008"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != ToDat(cs, "NACA 0008") {
		t.Error("WriteDat and ToDat disagree")
	}
}

func TestParseDatRoundTrip(t *testing.T) {
	params := airfoil.Parameters{M: 0.04, P: 0.4, T: 0.15, SampleCount: 70}
	cs := generate(t, params)
	name, pts, err := ParseDat(strings.NewReader(ToDat(cs, params.Designation())))
	if err != nil {
		t.Fatal(err)
	}
	if name != "NACA 4415" {
		t.Errorf("name %q", name)
	}
	if d := cmp.Diff(airfoil.ExportProfile(cs), pts, cmpopts.EquateApprox(0, 1e-6)); d != "" {
		t.Error(d)
	}
}

func TestParseDatErrors(t *testing.T) {
	if _, _, err := ParseDat(strings.NewReader("\n\n")); !errors.Is(err, ErrNoHeader) {
		t.Errorf("empty input: %v", err)
	}
	if _, _, err := ParseDat(strings.NewReader("NACA 0012\n1.0 0.0 0.0\n")); err == nil {
		t.Error("three columns accepted")
	}
	if _, _, err := ParseDat(strings.NewReader("NACA 0012\n1.0 abc\n")); err == nil {
		t.Error("bad number accepted")
	}
	_, pts, err := ParseDat(strings.NewReader("NACA 0012\n\n 1.0\t0.5 \n0 0\n"))
	if err != nil || len(pts) != 2 {
		t.Errorf("tolerant parse: %v %v", pts, err)
	}
}

func TestASCII(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"NACA 2412", "NACA 2412"},
		{"NACA 2412 Airfoil", "NACA 2412 Airfoil"},
		{"Profil à cambrure", "Profil a cambrure"},
		{"NACA 2412 — Ünïcode", "NACA 2412  Unicode"},
		{"翼型 NACA 0012", " NACA 0012"},
	}
	for _, tt := range tests {
		got := ASCII(tt.in)
		if got != tt.want {
			t.Errorf("ASCII(%q) = %q, want %q", tt.in, got, tt.want)
		}
		for i := 0; i < len(got); i++ {
			if got[i] > 127 {
				t.Errorf("ASCII(%q) kept byte %#x", tt.in, got[i])
			}
		}
	}
}

func TestToDatStripsNonASCII(t *testing.T) {
	cs := generate(t, airfoil.Parameters{M: 0, T: 0.12, SampleCount: 3})
	text := ToDat(cs, "NACA 0012 ✈")
	if !strings.HasPrefix(text, "NACA 0012 \n") {
		t.Errorf("header %q", strings.SplitN(text, "\n", 2)[0])
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("NACA 2412"); got != "NACA 2412.dat" {
		t.Errorf("got %q", got)
	}
}
