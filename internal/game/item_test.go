package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestItemUsable(t *testing.T) {
	tests := map[string]struct {
		itemType string
		exp      bool
	}{
		"consumable": {itemType: ItemTypeConsumable, exp: true},
		"misc":       {itemType: ItemTypeMisc, exp: true},
		"weapon":     {itemType: ItemTypeWeapon, exp: false},
		"material":   {itemType: ItemTypeMaterial, exp: false},
		"key item":   {itemType: ItemTypeKeyItem, exp: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i := &Item{Name: "Thing", Type: tt.itemType}
			testutil.AssertEqual(t, "usable", i.Usable(), tt.exp)
		})
	}
}

func TestItemValidate(t *testing.T) {
	ok := &Item{Name: "Red Glow Potion", Type: ItemTypeConsumable,
		Effect: &ItemEffect{Type: EffectHealHP, Value: 10}}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, i := range map[string]*Item{
		"missing name":    {Type: ItemTypeConsumable},
		"unknown type":    {Name: "Thing", Type: "trinket"},
		"negative weight": {Name: "Thing", Type: ItemTypeMisc, Weight: -1},
		"untyped effect":  {Name: "Thing", Type: ItemTypeConsumable, Effect: &ItemEffect{Value: 3}},
	} {
		t.Run(name, func(t *testing.T) {
			if err := i.Validate(); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
