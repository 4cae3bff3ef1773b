package render

import (
	"strings"
	"testing"

	"github.com/starford/globelex/internal/definition"
)

func TestHTML_ParagraphsAndLists(t *testing.T) {
	doc := definition.Structure("Intro\na) one\nii) two\nOutro")
	got, err := HTML(doc)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	want := `<div class="mb-2">Intro</div>` +
		`<ul class="list-disc mb-4"><li class="ml-4 mb-2">one</li><li class="ml-8 mb-2">two</li></ul>` +
		`<div class="mb-2">Outro</div>`
	if got != want {
		t.Errorf("HTML =\n%s\nwant\n%s", got, want)
	}
}

func TestHTML_OneListPerRun(t *testing.T) {
	got, err := HTML(definition.Structure("a) x\nb) y\nmid\n1) z"))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(got, "<ul"); n != 2 {
		t.Errorf("lists = %d, want 2 in %s", n, got)
	}
	if !strings.HasPrefix(got, "<ul") || !strings.HasSuffix(got, "</ul>") {
		t.Errorf("lists at boundaries not closed: %s", got)
	}
}

func TestHTML_EscapesText(t *testing.T) {
	got, err := HTML(definition.Structure(`a) <script>alert("x")</script> & co`))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("text not escaped: %s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") || !strings.Contains(got, "&amp; co") {
		t.Errorf("unexpected escaping: %s", got)
	}
}

func TestHTML_Empty(t *testing.T) {
	got, err := HTML(definition.Structure(""))
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("HTML = %q, want empty", got)
	}
	got, _ = HTML(definition.Structure("\n"))
	if got != `<div class="mb-2"></div><div class="mb-2"></div>` {
		t.Errorf("empty lines = %q", got)
	}
}

func TestText(t *testing.T) {
	var b strings.Builder
	doc := definition.Structure("Désigne :\na) une entité\nii) liée\n\nFin")
	if err := Text(&b, doc); err != nil {
		t.Fatal(err)
	}
	want := "Désigne :\n  • une entité\n    ◦ liée\n\nFin\n"
	if b.String() != want {
		t.Errorf("text = %q, want %q", b.String(), want)
	}
}
