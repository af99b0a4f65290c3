package formatter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/bstree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

func TestSprintLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	tree := bstree.New(1, 2, 3, 4, 5, 6, 7)
	out := Sprint(tree)
	t.Logf("\n%s", out)
	// digits measure 2 ens, so each level is indented by 4
	want := strings.Join([]string{
		"      ╭─7",
		"  ╭─6",
		"      ╰─5",
		"4",
		"      ╭─3",
		"  ╰─2",
		"      ╰─1",
	}, "\n") + "\n"
	if out != want {
		t.Fatalf("unexpected layout:\n%s\nwant:\n%s", out, want)
	}
}

func TestSprintLayoutOfLetters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	tree := bstree.New("a", "b", "c", "d", "e", "f", "g")
	out := Sprint(tree)
	t.Logf("\n%s", out)
	want := strings.Join([]string{
		"    ╭─g",
		" ╭─f",
		"    ╰─e",
		"d",
		"    ╭─c",
		" ╰─b",
		"    ╰─a",
	}, "\n") + "\n"
	if out != want {
		t.Fatalf("unexpected layout:\n%s\nwant:\n%s", out, want)
	}
}

func TestStringWidth(t *testing.T) {
	grapheme.SetupGraphemeClasses()
	for _, c := range []struct {
		s string
		w int
	}{
		{"abc", 3},
		{"7", 2},
		{"42", 4},
	} {
		if w := stringWidth(c.s, uax11.LatinContext); w != c.w {
			t.Errorf("width of %q: got=%d want=%d", c.s, w, c.w)
		}
	}
}

func TestSprintEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	if out := Sprint(bstree.New[int]()); out != "" {
		t.Fatalf("expected no output for empty tree, got %q", out)
	}
}

func TestOutputRespectsLineWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	tree := bstree.New(1000, 2000)
	for _, k := range []int{3000, 4000, 5000, 6000} {
		tree.Insert(k)
	}
	config := &Config{LineWidth: 20, Context: uax11.LatinContext}
	var b bytes.Buffer
	if err := Output(tree, &b, config, NewConsoleFixedWidthFormat(nil)); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", b.String())
	// edges count edgeWidth ens each, everything else is measured
	r := strings.NewReplacer(RightEdge, "", LeftEdge, "")
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != tree.Len() {
		t.Fatalf("expected %d lines, got %d", tree.Len(), len(lines))
	}
	for _, line := range lines {
		w := stringWidth(r.Replace(line), uax11.LatinContext)
		if line != r.Replace(line) {
			w += edgeWidth
		}
		if w > 20 {
			t.Errorf("line %q exceeds line width: %d", line, w)
		}
	}
}

func TestOutputColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	fw := NewConsoleFixedWidthFormat(nil)
	fw.Colored = true
	var b bytes.Buffer
	err := Output(bstree.New(5, 3, 8), &b, &Config{}, fw)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "\x1b[") {
		t.Fatalf("expected escape sequences in colored output, got %q", b.String())
	}
	for _, k := range []string{"3", "5", "8"} {
		if !strings.Contains(b.String(), k) {
			t.Errorf("key %s missing from output", k)
		}
	}
}

func TestOutputRejectsNil(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstree")
	defer teardown()

	var b bytes.Buffer
	err := Output(bstree.New(1), &b, nil, NewConsoleFixedWidthFormat(nil))
	if !errors.Is(err, bstree.ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
}

func TestLayoutStep(t *testing.T) {
	if s := layoutStep(1, 2, 0); s != 3 {
		t.Errorf("unbounded step: got=%d want=3", s)
	}
	if s := layoutStep(4, 5, 20); s != 3 {
		t.Errorf("bounded step: got=%d want=3", s)
	}
	if s := layoutStep(4, 50, 20); s != edgeWidth {
		t.Errorf("minimal step: got=%d want=%d", s, edgeWidth)
	}
}
