package insights

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeArticle(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "older.md", `---
slug: older-post
title: "Older post"
description: "First one"
date: 2026-01-10T00:00:00Z
topic: Scheduling
---

Some **bold** body text.
`)
	writeArticle(t, dir, "newer.md", `---
slug: newer-post
title: "Newer post"
description: "Second one"
date: 2026-05-20T00:00:00Z
topic: Lead intake
---

Plain body.
`)
	writeArticle(t, dir, "broken.md", "no frontmatter here")
	writeArticle(t, dir, "notes.txt", "ignored entirely")

	if err := LoadAll(dir); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	all := GetAll()
	if len(all) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(all))
	}
	if all[0].Slug != "newer-post" || all[1].Slug != "older-post" {
		t.Errorf("Articles should sort by date descending, got %s, %s", all[0].Slug, all[1].Slug)
	}
	if !strings.Contains(all[1].HTMLContent, "<strong>bold</strong>") {
		t.Errorf("Markdown body should render to HTML, got %q", all[1].HTMLContent)
	}
	if all[0].Topic != "Lead intake" {
		t.Errorf("Frontmatter topic lost, got %q", all[0].Topic)
	}
}

func TestGetBySlug(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "a.md", `---
slug: the-one
title: "The one"
description: "d"
date: 2026-03-01T00:00:00Z
topic: Ops
---

Body.
`)
	if err := LoadAll(dir); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	if a := GetBySlug("the-one"); a == nil || a.Title != "The one" {
		t.Errorf("GetBySlug returned %v", a)
	}
	if a := GetBySlug("missing"); a != nil {
		t.Errorf("Expected nil for unknown slug, got %v", a)
	}
}

func TestLoadAllMissingDir(t *testing.T) {
	if err := LoadAll(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected error for missing directory")
	}
}
