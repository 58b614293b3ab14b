package alder

import "testing"

func TestGameObjectAddRemoveComponent(t *testing.T) {
	obj := NewGameObject(nil, Position{})
	obj.AddComponent(&Velocity{DX: 1})
	obj.AddComponent(&Velocity{DX: 2})
	obj.AddComponent(&Velocity{DX: 3})

	if err := obj.RemoveComponent(1); err != nil {
		t.Fatalf("RemoveComponent(1): %v", err)
	}

	comps := obj.Components()
	if len(comps) != 2 {
		t.Fatalf("len(Components()) = %d, want 2", len(comps))
	}
	// Order of the survivors is preserved.
	if comps[0].(*Velocity).DX != 1 || comps[1].(*Velocity).DX != 3 {
		t.Errorf("components after remove = %+v, want DX 1 then 3", comps)
	}
}

func TestGameObjectRemoveComponentOutOfBounds(t *testing.T) {
	obj := NewGameObject([]Component{&Velocity{}}, Position{})

	tests := []struct {
		index int
		want  string
	}{
		{-1, "component index -1 out of bounds (length 1)"},
		{1, "component index 1 out of bounds (length 1)"},
	}
	for _, tt := range tests {
		err := obj.RemoveComponent(tt.index)
		if err == nil {
			t.Fatalf("RemoveComponent(%d): expected error", tt.index)
		}
		if err.Error() != tt.want {
			t.Errorf("RemoveComponent(%d) error = %q, want %q", tt.index, err, tt.want)
		}
	}
	if len(obj.Components()) != 1 {
		t.Error("failed remove must leave the component list unchanged")
	}
}

func TestGameObjectTranslate(t *testing.T) {
	obj := NewGameObject(nil, Position{X: 10, Y: -5, Z: 3})
	obj.Translate(-4, 9)

	want := Position{X: 6, Y: 4, Z: 3}
	if obj.Position != want {
		t.Errorf("Position = %+v, want %+v", obj.Position, want)
	}
}

func TestSpriteConstruction(t *testing.T) {
	img := NewBitmap(2, 2)
	sp := NewSprite(img, true, Point{X: 5, Y: -5})

	if sp.Image != img {
		t.Error("Image not retained")
	}
	if !sp.CastsShadow {
		t.Error("CastsShadow not retained")
	}
	if sp.Offset != (Point{X: 5, Y: -5}) {
		t.Errorf("Offset = %+v, want {5 -5}", sp.Offset)
	}
}
