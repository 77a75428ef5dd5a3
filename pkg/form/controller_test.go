package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pigeonhole/go-formkit/pkg/testsupport"
)

func TestNewController_SeedsDefaults(t *testing.T) {
	c := NewController(testsupport.ArticleSchema())

	want := map[string]any{
		"title":     "",
		"body":      "",
		"published": false,
	}
	if diff := cmp.Diff(want, c.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_MarksDirtyWithoutValidating(t *testing.T) {
	c := NewController(testsupport.ArticleSchema())

	if c.Dirty("title") {
		t.Fatalf("title dirty before any write")
	}

	c.Write("title", "   ")

	if !c.Dirty("title") {
		t.Fatalf("title not marked dirty after write")
	}
	if got := c.Error("title"); got != "" {
		t.Fatalf("write validated eagerly: %q", got)
	}
	if got := c.Read("title"); got != "   " {
		t.Fatalf("write did not keep raw value: %q", got)
	}
}

func TestTouch(t *testing.T) {
	c := NewController(testsupport.ArticleSchema())

	if c.Touched("body") {
		t.Fatalf("body touched before any visit")
	}
	c.Touch("body")
	if !c.Touched("body") {
		t.Fatalf("body not marked touched")
	}
	if c.Dirty("body") {
		t.Fatalf("touch must not mark dirty")
	}
}

func TestRead_PanicsOutsideSchema(t *testing.T) {
	c := NewController(testsupport.ArticleSchema())

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for undeclared field")
		}
	}()
	c.Read("owner")
}

func TestBinding_WritesThrough(t *testing.T) {
	c := NewController(testsupport.ArticleSchema())

	binding := c.Binding("title")
	if binding.Name != "title" || binding.Value != "" || binding.Error != "" {
		t.Fatalf("unexpected initial binding: %+v", binding)
	}

	binding.OnChange("Algorithms")

	if got := c.Read("title"); got != "Algorithms" {
		t.Fatalf("binding write not visible: %q", got)
	}
	if got := c.Binding("title").Value; got != "Algorithms" {
		t.Fatalf("fresh binding misses value: %q", got)
	}
}

func TestValues_ReturnsSnapshot(t *testing.T) {
	c := NewController(testsupport.ArticleSchema())

	snapshot := c.Values()
	snapshot["title"] = "mutated"

	if got := c.Read("title"); got != "" {
		t.Fatalf("controller mutated through snapshot: %q", got)
	}
}
