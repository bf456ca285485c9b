package perftcache_test

import (
	"testing"

	"chess-core/perftcache"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func openMem(t *testing.T) *perftcache.Cache {
	t.Helper()
	c, err := perftcache.Open("")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return c
}

func TestGetMiss(t *testing.T) {
	c := openMem(t)
	n, ok, err := c.Get(kiwipete, 3)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok || n != 0 {
		t.Fatalf("Get on empty cache = %d, %v; want miss", n, ok)
	}
}

func TestPutGet(t *testing.T) {
	c := openMem(t)
	if err := c.Put(kiwipete, 3, 97862); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Put(kiwipete, 2, 2039); err != nil {
		t.Fatalf("Put: %v", err)
	}

	for depth, want := range map[int]uint64{2: 2039, 3: 97862} {
		n, ok, err := c.Get(kiwipete, depth)
		if err != nil {
			t.Fatalf("Get depth %d: %v", depth, err)
		}
		if !ok || n != want {
			t.Errorf("Get depth %d = %d, %v; want %d, true", depth, n, ok, want)
		}
	}
	if _, ok, _ := c.Get(kiwipete, 4); ok {
		t.Errorf("depth 4 should miss")
	}
}

func TestPersistsOnDisk(t *testing.T) {
	dir := t.TempDir()
	c, err := perftcache.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := c.Put(kiwipete, 1, 48); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	c, err = perftcache.Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer c.Close()
	n, ok, err := c.Get(kiwipete, 1)
	if err != nil || !ok || n != 48 {
		t.Fatalf("Get after reopen = %d, %v, %v; want 48, true, nil", n, ok, err)
	}
}
