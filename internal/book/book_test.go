package book

import (
	"errors"
	"testing"
)

// chapterTitles is a small helper for order assertions
func chapterTitles(b *Book) []string {
	titles := make([]string, 0, len(b.Chapters))
	for _, c := range b.Chapters {
		titles = append(titles, c.Title)
	}
	return titles
}

func TestAddChapter(t *testing.T) {
	b := &Book{}

	if err := b.AddChapter(&Chapter{Title: "One"}); err != nil {
		t.Fatalf("AddChapter failed: %v", err)
	}
	if err := b.AddChapter(&Chapter{Title: "Two"}); err != nil {
		t.Fatalf("AddChapter failed: %v", err)
	}

	if len(b.Chapters) != 2 {
		t.Fatalf("chapter count = %d, want 2", len(b.Chapters))
	}
	if b.Chapters[0].Title != "One" || b.Chapters[1].Title != "Two" {
		t.Errorf("chapter order = %v, want [One Two]", chapterTitles(b))
	}
}

func TestAddChapter_Nil(t *testing.T) {
	b := &Book{}

	err := b.AddChapter(nil)
	if !errors.Is(err, ErrNilChapter) {
		t.Errorf("AddChapter(nil) error = %v, want ErrNilChapter", err)
	}
	if len(b.Chapters) != 0 {
		t.Errorf("chapter count = %d, want 0", len(b.Chapters))
	}
}

func TestFindChapterByTitle_CaseInsensitive(t *testing.T) {
	b := &Book{}
	b.AddChapter(&Chapter{Title: "Intro", Content: "a"})
	b.AddChapter(&Chapter{Title: "Middle", Content: "b"})

	for _, query := range []string{"Intro", "intro", "INTRO", "iNtRo"} {
		ch := b.FindChapterByTitle(query)
		if ch == nil {
			t.Errorf("FindChapterByTitle(%q) = nil, want chapter", query)
			continue
		}
		if ch.Title != "Intro" {
			t.Errorf("FindChapterByTitle(%q).Title = %q, want %q", query, ch.Title, "Intro")
		}
	}

	if ch := b.FindChapterByTitle("Epilogue"); ch != nil {
		t.Errorf("FindChapterByTitle(%q) = %v, want nil", "Epilogue", ch)
	}
}

func TestFindChapterByTitle_FirstMatch(t *testing.T) {
	b := &Book{}
	first := &Chapter{Title: "Notes", Content: "first"}
	b.AddChapter(first)
	b.AddChapter(&Chapter{Title: "notes", Content: "second"})

	got := b.FindChapterByTitle("NOTES")
	if got != first {
		t.Errorf("FindChapterByTitle returned the later duplicate, want the first")
	}
}

func TestRemoveChapterByTitle(t *testing.T) {
	b := &Book{}
	b.AddChapter(&Chapter{Title: "One"})
	b.AddChapter(&Chapter{Title: "Two"})
	b.AddChapter(&Chapter{Title: "Three"})

	if !b.RemoveChapterByTitle("two") {
		t.Fatal("RemoveChapterByTitle(\"two\") = false, want true")
	}
	if len(b.Chapters) != 2 {
		t.Fatalf("chapter count = %d, want 2", len(b.Chapters))
	}

	// Remaining chapters keep their relative order
	titles := chapterTitles(b)
	if titles[0] != "One" || titles[1] != "Three" {
		t.Errorf("chapter order after remove = %v, want [One Three]", titles)
	}
}

func TestRemoveChapterByTitle_Missing(t *testing.T) {
	b := &Book{}
	b.AddChapter(&Chapter{Title: "One"})
	b.AddChapter(&Chapter{Title: "Two"})

	if b.RemoveChapterByTitle("Ten") {
		t.Error("RemoveChapterByTitle(\"Ten\") = true, want false")
	}

	titles := chapterTitles(b)
	if len(titles) != 2 || titles[0] != "One" || titles[1] != "Two" {
		t.Errorf("chapters changed by failed remove: %v", titles)
	}
}

func TestRemoveChapterByTitle_FirstOccurrenceOnly(t *testing.T) {
	b := &Book{}
	b.AddChapter(&Chapter{Title: "Notes", Content: "first"})
	b.AddChapter(&Chapter{Title: "Notes", Content: "second"})

	if !b.RemoveChapterByTitle("Notes") {
		t.Fatal("RemoveChapterByTitle = false, want true")
	}
	if len(b.Chapters) != 1 {
		t.Fatalf("chapter count = %d, want 1", len(b.Chapters))
	}
	if b.Chapters[0].Content != "second" {
		t.Errorf("remaining chapter content = %q, want %q", b.Chapters[0].Content, "second")
	}
}

func TestValidateMetadata(t *testing.T) {
	tests := []struct {
		name    string
		meta    Metadata
		wantOK  bool
		wantMsg string
	}{
		{
			name:    "valid",
			meta:    Metadata{Title: "Go in Practice", Author: "Jane Doe"},
			wantOK:  true,
			wantMsg: "Metadata is valid.",
		},
		{
			name:    "blank author",
			meta:    Metadata{Title: "Go in Practice"},
			wantOK:  false,
			wantMsg: "Author is missing.",
		},
		{
			name:    "blank title",
			meta:    Metadata{Author: "Jane Doe"},
			wantOK:  false,
			wantMsg: "Title is missing.",
		},
		{
			name:    "both blank",
			meta:    Metadata{},
			wantOK:  false,
			wantMsg: "Title is missing.\nAuthor is missing.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Book{Metadata: tt.meta}
			ok, msg := b.ValidateMetadata()
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if msg != tt.wantMsg {
				t.Errorf("message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}
