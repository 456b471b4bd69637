package combat

import "testing"

// mockCombatant is a test implementation of the Combatant interface.
type mockCombatant struct {
	name      string
	hp, maxHP int
}

func newMockCombatant(name string, hp int) *mockCombatant {
	return &mockCombatant{name: name, hp: hp, maxHP: hp}
}

func (m *mockCombatant) GetName() string { return m.name }
func (m *mockCombatant) IsAlive() bool   { return m.hp > 0 }
func (m *mockCombatant) GetHP() int      { return m.hp }
func (m *mockCombatant) GetMaxHP() int   { return m.maxHP }

func (m *mockCombatant) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > m.hp {
		actual = m.hp
	}
	m.hp -= actual
	return actual
}

func (m *mockCombatant) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if m.hp+actual > m.maxHP {
		actual = m.maxHP - m.hp
	}
	m.hp += actual
	return actual
}

func TestAttackDamage(t *testing.T) {
	tests := []struct {
		attack, roll, expected int
	}{
		{30, 20, 30},
		{30, 1, 1},
		{30, 10, 15},
		{30, 7, 10}, // 210/20 = 10.5
		{50, 13, 32},
		{0, 20, 0},
		{30, 0, 0},
	}

	for _, tt := range tests {
		got := AttackDamage(tt.attack, tt.roll)
		if got != tt.expected {
			t.Errorf("AttackDamage(%d, %d) = %d, want %d", tt.attack, tt.roll, got, tt.expected)
		}
	}
}

func TestDodgeDamage(t *testing.T) {
	tests := []struct {
		pending, roll, expected int
	}{
		{15, 20, 0},
		{15, 0, 15},
		{15, 10, 7}, // 7.5
		{10, 1, 9},  // 9.5
		{10, 19, 0}, // 0.5
		{15, 25, 0},
		{15, -3, 15},
	}

	for _, tt := range tests {
		got := DodgeDamage(tt.pending, tt.roll)
		if got != tt.expected {
			t.Errorf("DodgeDamage(%d, %d) = %d, want %d", tt.pending, tt.roll, got, tt.expected)
		}
	}
}

func TestSelectEnemyAttack(t *testing.T) {
	tests := []struct {
		f        float64
		expected AttackKind
	}{
		{0, AttackMedium},
		{0.49, AttackMedium},
		{0.5, AttackStrong},
		{0.79, AttackStrong},
		{0.8, AttackDrain},
		{0.999, AttackDrain},
	}

	for _, tt := range tests {
		got := SelectEnemyAttack(tt.f)
		if got != tt.expected {
			t.Errorf("SelectEnemyAttack(%v) = %v, want %v", tt.f, got, tt.expected)
		}
	}
}

func TestAttackKindDamage(t *testing.T) {
	tests := []struct {
		kind     AttackKind
		damage   int
		id, name string
	}{
		{AttackMedium, 10, "medium", "Ataque Médio"},
		{AttackStrong, 15, "strong", "ATAQUE FORTE"},
		{AttackDrain, 10, "drain", "Drenagem de Vida"},
		{AttackNone, 0, "none", "Nenhum"},
	}

	for _, tt := range tests {
		if got := tt.kind.Damage(); got != tt.damage {
			t.Errorf("%v.Damage() = %d, want %d", tt.kind, got, tt.damage)
		}
		if got := tt.kind.ID(); got != tt.id {
			t.Errorf("AttackKind(%d).ID() = %q, want %q", tt.kind, got, tt.id)
		}
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("AttackKind(%d).String() = %q, want %q", tt.kind, got, tt.name)
		}
	}
}

func TestLootPotions(t *testing.T) {
	tests := []struct {
		f        float64
		expected int
	}{
		{0, 2},
		{0.24, 2},
		{0.25, 1},
		{0.74, 1},
		{0.75, 0},
		{0.99, 0},
	}

	for _, tt := range tests {
		got := LootPotions(tt.f)
		if got != tt.expected {
			t.Errorf("LootPotions(%v) = %d, want %d", tt.f, got, tt.expected)
		}
	}
}

func TestResolverAttack(t *testing.T) {
	resolver := NewResolver(&ScriptedRoller{Dice: []int{20, 20, 20, 20}})
	target := newMockCombatant("Nocthar", 120)

	result := resolver.Attack(30, target)
	if result.Roll != 20 || result.Damage != 30 {
		t.Errorf("Attack() = roll %d damage %d, want roll 20 damage 30", result.Roll, result.Damage)
	}
	if target.GetHP() != 90 {
		t.Errorf("Target HP = %d, want 90", target.GetHP())
	}
	if result.Defeated {
		t.Error("Target should not be defeated at 90 HP")
	}

	for i := 0; i < 3; i++ {
		result = resolver.Attack(30, target)
	}
	if !result.Defeated {
		t.Error("Target should be defeated after 120 total damage")
	}
	if target.GetHP() != 0 {
		t.Errorf("Target HP = %d, want 0", target.GetHP())
	}
}

func TestResolverLand(t *testing.T) {
	tests := []struct {
		name        string
		kind        AttackKind
		dodge       bool
		dodgeRoll   int
		playerHP    int
		enemyHP     int
		wantDamage  int
		wantPlayer  int
		wantEnemy   int
		wantDrained int
		wantFatal   bool
	}{
		{"medium undodged", AttackMedium, false, 0, 100, 50, 10, 90, 50, 0, false},
		{"strong perfect dodge", AttackStrong, true, 20, 100, 50, 0, 100, 50, 0, false},
		{"strong partial dodge", AttackStrong, true, 10, 100, 50, 7, 93, 50, 0, false},
		{"drain undodged", AttackDrain, false, 0, 100, 50, 10, 90, 60, 10, false},
		{"drain dodged still heals", AttackDrain, true, 20, 100, 50, 0, 100, 60, 10, false},
		{"drain heal capped", AttackDrain, false, 0, 100, 115, 10, 90, 120, 5, false},
		{"fatal", AttackStrong, false, 0, 15, 50, 15, 0, 50, 0, true},
		{"overkill floors at zero", AttackStrong, false, 0, 5, 50, 15, 0, 50, 0, true},
	}

	for _, tt := range tests {
		resolver := NewResolver(&ScriptedRoller{Dice: []int{tt.dodgeRoll}})
		player := newMockCombatant("Hero", 100)
		player.hp = tt.playerHP
		enemy := newMockCombatant("Lord", 120)
		enemy.hp = tt.enemyHP

		result := resolver.Land(tt.kind, tt.kind.Damage(), tt.dodge, enemy, player)

		if result.Damage != tt.wantDamage {
			t.Errorf("%s: Damage = %d, want %d", tt.name, result.Damage, tt.wantDamage)
		}
		if player.GetHP() != tt.wantPlayer {
			t.Errorf("%s: player HP = %d, want %d", tt.name, player.GetHP(), tt.wantPlayer)
		}
		if enemy.GetHP() != tt.wantEnemy {
			t.Errorf("%s: enemy HP = %d, want %d", tt.name, enemy.GetHP(), tt.wantEnemy)
		}
		if result.Drained != tt.wantDrained {
			t.Errorf("%s: Drained = %d, want %d", tt.name, result.Drained, tt.wantDrained)
		}
		if result.Fatal != tt.wantFatal {
			t.Errorf("%s: Fatal = %v, want %v", tt.name, result.Fatal, tt.wantFatal)
		}
		if result.Dodged != tt.dodge {
			t.Errorf("%s: Dodged = %v, want %v", tt.name, result.Dodged, tt.dodge)
		}
	}
}

func TestRandRollerDeterministic(t *testing.T) {
	r1 := NewRandRoller(12345)
	r2 := NewRandRoller(12345)

	for i := 0; i < 50; i++ {
		a, b := r1.D20(), r2.D20()
		if a != b {
			t.Fatalf("Roll %d mismatch: %d != %d", i, a, b)
		}
		if a < 1 || a > DieSides {
			t.Fatalf("D20() = %d, out of range", a)
		}
		f := r1.Float()
		if f != r2.Float() {
			t.Fatalf("Float %d mismatch", i)
		}
		if f < 0 || f >= 1 {
			t.Fatalf("Float() = %v, out of range", f)
		}
	}
}

func TestScriptedRollerRepeatsLast(t *testing.T) {
	r := &ScriptedRoller{Dice: []int{3, 7}, Floats: []float64{0.1}}

	if got := r.D20(); got != 3 {
		t.Errorf("D20() = %d, want 3", got)
	}
	if got := r.D20(); got != 7 {
		t.Errorf("D20() = %d, want 7", got)
	}
	if got := r.D20(); got != 7 {
		t.Errorf("D20() after script = %d, want 7", got)
	}
	if got := r.Float(); got != 0.1 {
		t.Errorf("Float() = %v, want 0.1", got)
	}
	if got := r.Float(); got != 0.1 {
		t.Errorf("Float() after script = %v, want 0.1", got)
	}

	empty := &ScriptedRoller{}
	if empty.D20() != DieSides || empty.Float() != 0 {
		t.Error("Empty ScriptedRoller should return 20 and 0")
	}
}
