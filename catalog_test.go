package ink

import "testing"

func TestCatalogRegister(t *testing.T) {
	cat := newTestCatalog("alpha", "bravo", "charlie")

	if cat.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", cat.Len())
	}
	for i, name := range []string{"alpha", "bravo", "charlie"} {
		l := cat.Layer(i)
		if l == nil {
			t.Fatalf("Layer(%d) = nil", i)
		}
		if l.Ordinal() != i || l.Name() != name {
			t.Errorf("Layer(%d) = {%d %q}, want {%d %q}", i, l.Ordinal(), l.Name(), i, name)
		}
		byName, ok := cat.ByName(name)
		if !ok || byName != l {
			t.Errorf("ByName(%q) = %v, %v, want the registered handle", name, byName, ok)
		}
	}
}

func TestCatalogLayerOutOfRange(t *testing.T) {
	cat := newTestCatalog("alpha")
	if l := cat.Layer(-1); l != nil {
		t.Errorf("Layer(-1) = %v, want nil", l)
	}
	if l := cat.Layer(1); l != nil {
		t.Errorf("Layer(1) = %v, want nil", l)
	}
	if _, ok := cat.ByName("missing"); ok {
		t.Error("ByName(missing) reported ok")
	}
}

func TestCatalogRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(*Catalog)
	}{
		{"nil transform", func(c *Catalog) { c.Register("x", nil) }},
		{"duplicate name", func(c *Catalog) {
			c.Register("x", testSolid(Color{}))
			c.Register("x", testSolid(Color{}))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register did not panic")
				}
			}()
			tt.fn(NewCatalog())
		})
	}
}

func TestCatalogFreezeOnGridConstruction(t *testing.T) {
	cat := newTestCatalog("alpha")
	if cat.Frozen() {
		t.Fatal("catalog frozen before grid construction")
	}

	mustGrid(cat, DrawStyleSet, 2, 2)

	if !cat.Frozen() {
		t.Fatal("catalog not frozen by grid construction")
	}
	defer func() {
		if recover() == nil {
			t.Error("Register after freeze did not panic")
		}
	}()
	cat.Register("late", testSolid(Color{}))
}

func TestCatalogLayersStableHandles(t *testing.T) {
	cat := NewCatalog()
	first := cat.Register("first", testSolid(Color{}))
	for i := 0; i < 100; i++ {
		cat.Register(string(rune('a'+i%26))+string(rune('0'+i/26)), testSolid(Color{}))
	}
	if got := cat.Layer(0); got != first {
		t.Error("handle from early registration invalidated by later growth")
	}

	all := cat.Layers()
	if len(all) != cat.Len() {
		t.Fatalf("Layers() len = %d, want %d", len(all), cat.Len())
	}
	for i, l := range all {
		if l.Ordinal() != i {
			t.Fatalf("Layers()[%d].Ordinal() = %d", i, l.Ordinal())
		}
	}
}
