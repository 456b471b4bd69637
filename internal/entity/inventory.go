package entity

// Inventory is the hero's bag. It only tracks potions.
type Inventory struct {
	Potions int
}

// AddPotions adds n potions. Non-positive amounts are ignored.
func (inv *Inventory) AddPotions(n int) {
	if n > 0 {
		inv.Potions += n
	}
}

// UsePotion consumes one potion and reports whether one was available.
func (inv *Inventory) UsePotion() bool {
	if inv.Potions <= 0 {
		return false
	}
	inv.Potions--
	return true
}
