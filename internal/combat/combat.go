package combat

import (
	"fmt"

	"github.com/halcyar/go-saga/internal/dice"
	"github.com/halcyar/go-saga/internal/game"
)

// Attack types map to the attribute that governs the hit roll.
const (
	AttackMelee  = "melee"
	AttackRanged = "ranged"
	AttackMagic  = "magic"
)

// Manager resolves encounters against a loaded catalog. All entropy flows
// through the injected roller so tests can script every swing.
type Manager struct {
	catalog *game.Catalog
	roller  dice.Roller
}

func NewManager(catalog *game.Catalog, roller dice.Roller) *Manager {
	return &Manager{catalog: catalog, roller: roller}
}

// Start opens an encounter with the named enemy, seeding a snapshot from
// its definition and the player's current pools. Unknown enemies yield
// nil.
func (m *Manager) Start(enemyID string, p *game.Player) *game.CombatSnapshot {
	enemy := m.catalog.Enemy(enemyID)
	if enemy == nil {
		return nil
	}

	return &game.CombatSnapshot{
		EnemyID:     enemyID,
		EnemyName:   enemy.Name,
		EnemyHP:     enemy.HP,
		EnemyMaxHP:  enemy.MaxHP,
		Evasion:     enemy.Evasion,
		Armor:       enemy.Armor,
		Turn:        1,
		Active:      true,
		PlayerHP:    p.HP,
		PlayerMaxHP: p.MaxHP,
	}
}

// AttackResult reports one player swing.
type AttackResult struct {
	Hit      bool
	Critical bool
	Fumble   bool
	Damage   int

	Narrative []string

	EnemyHP  int
	Defeated bool

	Roll      int
	Threshold int
}

// attackAttribute maps an attack type to its governing attribute.
func attackAttribute(attackType string) string {
	switch attackType {
	case AttackRanged:
		return "dexterity"
	case AttackMagic:
		return "intelligence"
	default:
		return "strength"
	}
}

// PlayerAttack resolves one swing against the snapshot's enemy. The hit
// threshold is attribute*20 + 10 minus the enemy's evasion, clamped to
// [5, 95]. A roll of 5 or under always misses; 96 or over always lands
// and doubles the damage.
func (m *Manager) PlayerAttack(snap *game.CombatSnapshot, p *game.Player, attackType string, weaponDamage int, lightAttack bool) *AttackResult {
	attrName := attackAttribute(attackType)
	attrValue := p.Attributes.Value(attrName)

	threshold := clampPercent(attrValue*20 + 10 - snap.Evasion)
	roll := m.roller.Roll(100)

	fumble := roll <= 5
	critical := roll >= 96
	hit := critical || (!fumble && roll <= threshold)

	res := &AttackResult{
		Hit:       hit,
		Critical:  critical,
		Fumble:    fumble,
		EnemyHP:   snap.EnemyHP,
		Roll:      roll,
		Threshold: threshold,
	}

	if fumble {
		res.Narrative = []string{
			"Your attack goes completely wide!",
			fmt.Sprintf("(rolled %d, a fumble)", roll),
		}
		return res
	}

	if !hit {
		res.Narrative = []string{
			fmt.Sprintf("%s deftly dodges your attack!", snap.EnemyName),
			fmt.Sprintf("(rolled %d, needed %d or less)", roll, threshold),
		}
		return res
	}

	var narrative []string

	weaknessBonus := 0
	enemy := m.catalog.Enemy(snap.EnemyID)
	if lightAttack && enemy != nil && enemy.Weakness == "light" {
		weaknessBonus = enemy.BonusAgainstWeakness()
		narrative = append(narrative, "Your light-infused attack sears the shadow creature!")
	}

	multiplier := 1
	if critical {
		multiplier = 2
	}

	damage := (weaponDamage + attrValue + weaknessBonus) * multiplier
	damage -= snap.Armor
	if damage < 1 {
		damage = 1
	}

	snap.EnemyHP -= damage
	if snap.EnemyHP < 0 {
		snap.EnemyHP = 0
	}

	if critical {
		narrative = append(narrative,
			"A perfect strike!",
			fmt.Sprintf("Your attack finds %s's weak point!", snap.EnemyName),
			fmt.Sprintf("(rolled %d, critical hit, damage doubled)", roll),
		)
	} else {
		narrative = append(narrative,
			fmt.Sprintf("Your attack hits %s!", snap.EnemyName),
			fmt.Sprintf("(rolled %d, success)", roll),
		)
	}

	narrative = append(narrative,
		fmt.Sprintf("You deal %d damage!", damage),
		fmt.Sprintf("%s HP: %d/%d", snap.EnemyName, snap.EnemyHP, snap.EnemyMaxHP),
	)

	res.Damage = damage
	res.EnemyHP = snap.EnemyHP
	res.Defeated = snap.EnemyHP <= 0

	if res.Defeated {
		narrative = append(narrative, "", fmt.Sprintf("%s falls!", snap.EnemyName))
	}

	res.Narrative = narrative
	return res
}

// EnemyAttackResult reports one enemy move.
type EnemyAttackResult struct {
	Damage    int
	Effect    string
	Dodged    bool
	Narrative []string
	PlayerHP  int
}

// EnemyAttack picks one of the enemy's moves at random and resolves it
// against the player. Dodging is a straight dexterity roll; nothing
// reduces damage that lands.
func (m *Manager) EnemyAttack(snap *game.CombatSnapshot, p *game.Player) *EnemyAttackResult {
	enemy := m.catalog.Enemy(snap.EnemyID)
	if enemy == nil {
		return &EnemyAttackResult{
			Narrative: []string{"The enemy cannot act."},
			PlayerHP:  snap.PlayerHP,
		}
	}

	if len(enemy.Attacks) == 0 {
		return &EnemyAttackResult{
			Narrative: []string{"The enemy hesitates."},
			PlayerHP:  snap.PlayerHP,
		}
	}

	attack := enemy.Attacks[m.roller.Roll(len(enemy.Attacks))-1]

	description := attack.Description
	if description == "" {
		description = fmt.Sprintf("%s attacks!", snap.EnemyName)
	}
	narrative := []string{description}

	dodgeThreshold := p.Attributes.Value("dexterity")*10 + 5
	roll := m.roller.Roll(100)

	if roll <= dodgeThreshold {
		narrative = append(narrative,
			"You nimbly evade the attack!",
			fmt.Sprintf("(dodge roll %d, needed %d or less)", roll, dodgeThreshold),
		)
		return &EnemyAttackResult{
			Dodged:    true,
			Narrative: narrative,
			PlayerHP:  snap.PlayerHP,
		}
	}

	damage := attack.AttackDamage()
	snap.PlayerHP -= damage
	if snap.PlayerHP < 0 {
		snap.PlayerHP = 0
	}

	narrative = append(narrative,
		fmt.Sprintf("You take %d damage!", damage),
		fmt.Sprintf("HP: %d/%d", snap.PlayerHP, snap.PlayerMaxHP),
	)

	var effect string
	if attack.Effect != "" && m.roller.Roll(100) <= attack.EffectChance {
		effect = attack.Effect
		narrative = append(narrative, fmt.Sprintf("You are afflicted with %s!", effect))
	}

	return &EnemyAttackResult{
		Damage:    damage,
		Effect:    effect,
		Narrative: narrative,
		PlayerHP:  snap.PlayerHP,
	}
}

func clampPercent(v int) int {
	if v < 5 {
		return 5
	}
	if v > 95 {
		return 95
	}
	return v
}
