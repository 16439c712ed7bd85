package storage

import "testing"

func TestKeyLayout(t *testing.T) {
	t.Parallel()

	const id = "a1c6cef6-d987-4225-8bc4-def387e8b5bf"

	if got, want := ArchiveKey(id), id+"/"+id+".zip"; got != want {
		t.Fatalf("archive key %s, want %s", got, want)
	}
	if got, want := BannerKey(id), id+"/banner"; got != want {
		t.Fatalf("banner key %s, want %s", got, want)
	}
	if got, want := IconKey(id), id+"/icon"; got != want {
		t.Fatalf("icon key %s, want %s", got, want)
	}

	keys := Keys(id)
	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(keys))
	}
}
