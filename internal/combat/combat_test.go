package combat

import (
	"strings"
	"testing"

	"github.com/halcyar/go-saga/internal/game"
	"github.com/pixil98/go-testutil"
)

// memStore is an in-memory Storer for catalog fixtures.
type memStore[T interface{ Validate() error }] struct {
	records map[string]T
}

func (s *memStore[T]) Save(id string, o T) error {
	s.records[id] = o
	return nil
}

func (s *memStore[T]) Get(id string) T {
	return s.records[id]
}

func (s *memStore[T]) GetAll() map[string]T {
	return s.records
}

// fixedRoller replays a scripted sequence of rolls.
type fixedRoller struct {
	rolls []int
	next  int
}

func (r *fixedRoller) Roll(n int) int {
	if r.next >= len(r.rolls) {
		return 1
	}
	v := r.rolls[r.next]
	r.next++
	return v
}

func testCatalog() *game.Catalog {
	return &game.Catalog{
		Chapters: &memStore[*game.Chapter]{records: map[string]*game.Chapter{}},
		Items:    &memStore[*game.Item]{records: map[string]*game.Item{}},
		Enemies: &memStore[*game.Enemy]{records: map[string]*game.Enemy{
			"shadow_wisp": {
				Name: "Shadow Wisp", HP: 12, MaxHP: 12, Evasion: 10, Armor: 1,
				Weakness: "light", WeaknessBonus: 3,
				Attacks: []game.EnemyAttack{
					{Description: "The wisp rakes at you with smoky claws!", Damage: 4},
					{Description: "The wisp lets out a piercing shriek!", Damage: 2, Effect: "fear", EffectChance: 50},
				},
				Drops: []game.InventoryStack{
					{ID: "gold", Quantity: 15},
					{ID: "shadow_essence", Name: "Shadow Essence", Quantity: 1},
				},
				Exp: 20,
			},
			"stone_golem": {
				Name: "Stone Golem", HP: 30, MaxHP: 30, Evasion: 0, Armor: 20,
				Attacks: []game.EnemyAttack{{Description: "The golem swings a massive fist!", Damage: 6}},
			},
			"training_dummy": {
				Name: "Training Dummy", HP: 5, MaxHP: 5, Evasion: 0,
			},
		}},
	}
}

func testPlayer() *game.Player {
	p, err := game.NewPlayer("Aria", game.BackgroundWarrior, nil)
	if err != nil {
		panic(err)
	}
	return &p
}

func TestStart(t *testing.T) {
	m := NewManager(testCatalog(), &fixedRoller{})
	p := testPlayer()

	t.Run("known enemy", func(t *testing.T) {
		snap := m.Start("shadow_wisp", p)
		if snap == nil {
			t.Fatal("expected snapshot, got nil")
		}

		testutil.AssertEqual(t, "enemy id", snap.EnemyID, "shadow_wisp")
		testutil.AssertEqual(t, "enemy name", snap.EnemyName, "Shadow Wisp")
		testutil.AssertEqual(t, "enemy hp", snap.EnemyHP, 12)
		testutil.AssertEqual(t, "enemy max hp", snap.EnemyMaxHP, 12)
		testutil.AssertEqual(t, "evasion", snap.Evasion, 10)
		testutil.AssertEqual(t, "armor", snap.Armor, 1)
		testutil.AssertEqual(t, "turn", snap.Turn, 1)
		testutil.AssertEqual(t, "active", snap.Active, true)
		testutil.AssertEqual(t, "player hp", snap.PlayerHP, p.HP)
		testutil.AssertEqual(t, "player max hp", snap.PlayerMaxHP, p.MaxHP)
	})

	t.Run("unknown enemy", func(t *testing.T) {
		if snap := m.Start("phantom", p); snap != nil {
			t.Fatalf("expected nil snapshot, got %+v", snap)
		}
	})
}

func TestPlayerAttack(t *testing.T) {
	tests := map[string]struct {
		enemyID      string
		attackType   string
		weaponDamage int
		lightAttack  bool
		roll         int
		expHit       bool
		expCritical  bool
		expFumble    bool
		expDamage    int
		expEnemyHP   int
		expDefeated  bool
		expThreshold int
		expLine      string
	}{
		// Warrior default spread gives strength 3: threshold vs the wisp
		// is 3*20 + 10 - 10 = 60.
		"hit at threshold": {
			enemyID: "shadow_wisp", attackType: AttackMelee, weaponDamage: 4, roll: 60,
			expHit: true, expDamage: 6, expEnemyHP: 6, expThreshold: 60,
			expLine: "Your attack hits Shadow Wisp!",
		},
		"miss over threshold": {
			enemyID: "shadow_wisp", attackType: AttackMelee, weaponDamage: 4, roll: 61,
			expHit: false, expEnemyHP: 12, expThreshold: 60,
			expLine: "deftly dodges",
		},
		"low roll fumbles": {
			enemyID: "shadow_wisp", attackType: AttackMelee, weaponDamage: 4, roll: 5,
			expHit: false, expFumble: true, expEnemyHP: 12, expThreshold: 60,
			expLine: "goes completely wide",
		},
		"high roll crits through": {
			enemyID: "shadow_wisp", attackType: AttackMelee, weaponDamage: 4, roll: 96,
			expHit: true, expCritical: true, expDamage: 13, expEnemyHP: 0, expDefeated: true,
			expThreshold: 60, expLine: "critical hit, damage doubled",
		},
		"light attack exploits weakness": {
			enemyID: "shadow_wisp", attackType: AttackMelee, weaponDamage: 4, lightAttack: true, roll: 40,
			expHit: true, expDamage: 9, expEnemyHP: 3, expThreshold: 60,
			expLine: "sears the shadow creature",
		},
		"magic uses intelligence": {
			// Intelligence stays 2: threshold 2*20 + 10 - 10 = 50.
			enemyID: "shadow_wisp", attackType: AttackMagic, weaponDamage: 4, roll: 55,
			expHit: false, expEnemyHP: 12, expThreshold: 50,
			expLine: "deftly dodges",
		},
		"armor floors damage at one": {
			// Golem threshold: 3*20 + 10 - 0 = 70, armor 20 swallows the hit.
			enemyID: "stone_golem", attackType: AttackMelee, weaponDamage: 4, roll: 50,
			expHit: true, expDamage: 1, expEnemyHP: 29, expThreshold: 70,
			expLine: "You deal 1 damage!",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := NewManager(testCatalog(), &fixedRoller{rolls: []int{tt.roll}})
			p := testPlayer()
			snap := m.Start(tt.enemyID, p)

			res := m.PlayerAttack(snap, p, tt.attackType, tt.weaponDamage, tt.lightAttack)

			testutil.AssertEqual(t, "hit", res.Hit, tt.expHit)
			testutil.AssertEqual(t, "critical", res.Critical, tt.expCritical)
			testutil.AssertEqual(t, "fumble", res.Fumble, tt.expFumble)
			testutil.AssertEqual(t, "damage", res.Damage, tt.expDamage)
			testutil.AssertEqual(t, "enemy hp", res.EnemyHP, tt.expEnemyHP)
			testutil.AssertEqual(t, "snapshot hp", snap.EnemyHP, tt.expEnemyHP)
			testutil.AssertEqual(t, "defeated", res.Defeated, tt.expDefeated)
			testutil.AssertEqual(t, "roll", res.Roll, tt.roll)
			testutil.AssertEqual(t, "threshold", res.Threshold, tt.expThreshold)
			if !containsSubstring(res.Narrative, tt.expLine) {
				t.Errorf("expected narrative containing %q, got %v", tt.expLine, res.Narrative)
			}
		})
	}
}

func TestPlayerAttackDefeatNarrative(t *testing.T) {
	m := NewManager(testCatalog(), &fixedRoller{rolls: []int{50}})
	p := testPlayer()
	snap := m.Start("shadow_wisp", p)
	snap.EnemyHP = 3

	res := m.PlayerAttack(snap, p, AttackMelee, 4, false)

	testutil.AssertEqual(t, "defeated", res.Defeated, true)
	testutil.AssertEqual(t, "enemy hp floor", snap.EnemyHP, 0)
	if !containsSubstring(res.Narrative, "Shadow Wisp falls!") {
		t.Errorf("expected defeat line, got %v", res.Narrative)
	}
}

func TestEnemyAttack(t *testing.T) {
	tests := map[string]struct {
		enemyID   string
		rolls     []int
		expDamage int
		expDodged bool
		expEffect string
		expHP     int
		expLine   string
		setupSnap func(*game.CombatSnapshot)
	}{
		// Dodge threshold for dexterity 2 is 25.
		"dodged": {
			enemyID: "shadow_wisp",
			rolls:   []int{1, 25},
			expDodged: true, expHP: 26,
			expLine: "You nimbly evade",
		},
		"claws land": {
			enemyID: "shadow_wisp",
			rolls:   []int{1, 26},
			expDamage: 4, expHP: 22,
			expLine: "You take 4 damage!",
		},
		"shriek applies fear": {
			enemyID: "shadow_wisp",
			rolls:   []int{2, 80, 50},
			expDamage: 2, expEffect: "fear", expHP: 24,
			expLine: "You are afflicted with fear!",
		},
		"shriek effect misses chance": {
			enemyID: "shadow_wisp",
			rolls:   []int{2, 80, 51},
			expDamage: 2, expHP: 24,
			expLine: "You take 2 damage!",
		},
		"no attacks hesitates": {
			enemyID: "training_dummy",
			rolls:   []int{},
			expHP:   26,
			expLine: "The enemy hesitates.",
		},
		"unknown enemy cannot act": {
			enemyID: "shadow_wisp",
			rolls:   []int{},
			expHP:   26,
			expLine: "The enemy cannot act.",
			setupSnap: func(snap *game.CombatSnapshot) {
				snap.EnemyID = "phantom"
			},
		},
		"damage floors player hp at zero": {
			enemyID: "shadow_wisp",
			rolls:   []int{1, 99},
			expDamage: 4, expHP: 0,
			expLine: "HP: 0/26",
			setupSnap: func(snap *game.CombatSnapshot) {
				snap.PlayerHP = 2
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := NewManager(testCatalog(), &fixedRoller{rolls: tt.rolls})
			p := testPlayer()
			snap := m.Start(tt.enemyID, p)
			if tt.setupSnap != nil {
				tt.setupSnap(snap)
			}

			res := m.EnemyAttack(snap, p)

			testutil.AssertEqual(t, "damage", res.Damage, tt.expDamage)
			testutil.AssertEqual(t, "dodged", res.Dodged, tt.expDodged)
			testutil.AssertEqual(t, "effect", res.Effect, tt.expEffect)
			testutil.AssertEqual(t, "player hp", res.PlayerHP, tt.expHP)
			testutil.AssertEqual(t, "snapshot player hp", snap.PlayerHP, tt.expHP)
			if !containsSubstring(res.Narrative, tt.expLine) {
				t.Errorf("expected narrative containing %q, got %v", tt.expLine, res.Narrative)
			}
		})
	}
}

func containsSubstring(lines []string, sub string) bool {
	for _, l := range lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}
