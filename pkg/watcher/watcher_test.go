package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "building.obj")
	if err := os.WriteFile(file, []byte("v 0 0 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	fw, err := New(10*time.Millisecond, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer fw.Close()

	changed := make(chan string, 1)
	if err := fw.Watch([]string{file}, func(path string) {
		select {
		case changed <- path:
		default:
		}
	}); err != nil {
		t.Fatal(err)
	}
	fw.Start()

	if err := os.WriteFile(file, []byte("v 1 1 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case path := <-changed:
		abs, _ := filepath.Abs(file)
		if path != abs {
			t.Errorf("callback got %s, want %s", path, abs)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change callback after write")
	}
}

func TestWatchMissingFileFails(t *testing.T) {
	fw, err := New(10*time.Millisecond, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer fw.Close()

	missing := filepath.Join(t.TempDir(), "nope.obj")
	if err := fw.Watch([]string{missing}, func(string) {}); err == nil {
		t.Error("watching a missing file should fail")
	}
}

func TestCloseCancelsPendingCallbacks(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "rooms.yaml")
	if err := os.WriteFile(file, []byte("rooms: []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	fw, err := New(100*time.Millisecond, nil)
	if err != nil {
		t.Fatal(err)
	}

	changed := make(chan string, 1)
	if err := fw.Watch([]string{file}, func(path string) { changed <- path }); err != nil {
		t.Fatal(err)
	}
	fw.Start()

	if err := os.WriteFile(file, []byte("rooms: [{}]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// Close inside the debounce window, before the timer can fire.
	time.Sleep(20 * time.Millisecond)
	if err := fw.Close(); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
		t.Error("callback fired after close")
	case <-time.After(300 * time.Millisecond):
	}
}
