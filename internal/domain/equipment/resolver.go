package equipment

// Equip returns a new equipment list with the target line equipped and
// every conflicting line unequipped. It only toggles Equipped flags; it
// never changes quantities or removes lines. An unknown instance id
// returns the input unchanged.
//
// Slot rules:
//   - body armor displaces other body armor only
//   - a shield displaces other shields and two-handed weapons
//   - a two-handed weapon displaces every other weapon and any shield
//   - a one-handed non-Light weapon displaces two-handers; with a shield
//     up it also displaces every other one-hander, otherwise only other
//     non-Light one-handers
//   - a Light weapon dual-wields up to two with no shield, evicting the
//     oldest Light weapon when a third would result
func Equip(items []EquippedItem, instanceID string) []EquippedItem {
	target := -1
	for idx := range items {
		if items[idx].InstanceID == instanceID {
			target = idx
			break
		}
	}
	if target == -1 {
		return items
	}

	out := make([]EquippedItem, len(items))
	copy(out, items)

	item := &out[target]

	switch {
	case item.IsBodyArmor():
		for idx := range out {
			if idx != target && out[idx].IsBodyArmor() {
				out[idx].Equipped = false
			}
		}

	case item.IsShield():
		for idx := range out {
			if idx == target {
				continue
			}
			if out[idx].IsShield() || (out[idx].Equipped && out[idx].IsTwoHanded()) {
				out[idx].Equipped = false
			}
		}

	case item.IsTwoHanded():
		for idx := range out {
			if idx == target {
				continue
			}
			if out[idx].IsWeapon() || out[idx].IsShield() {
				out[idx].Equipped = false
			}
		}

	case item.IsLightWeapon():
		equipLightWeapon(out, target)

	case item.IsOneHanded():
		equipOneHandedWeapon(out, target)
	}

	out[target].Equipped = true
	return out
}

// Unequip returns a new list with the target line unequipped. No
// cascading effects. An unknown instance id returns the input unchanged.
func Unequip(items []EquippedItem, instanceID string) []EquippedItem {
	target := -1
	for idx := range items {
		if items[idx].InstanceID == instanceID {
			target = idx
			break
		}
	}
	if target == -1 {
		return items
	}

	out := make([]EquippedItem, len(items))
	copy(out, items)
	out[target].Equipped = false
	return out
}

func equipOneHandedWeapon(out []EquippedItem, target int) {
	shieldUp := hasEquippedShield(out, target)

	for idx := range out {
		if idx == target || !out[idx].Equipped {
			continue
		}
		switch {
		case out[idx].IsTwoHanded():
			out[idx].Equipped = false
		case shieldUp && out[idx].IsOneHanded():
			// one main weapon + shield only
			out[idx].Equipped = false
		case !shieldUp && out[idx].IsOneHanded() && !out[idx].IsLightWeapon():
			// at most one non-Light one-hander; Light weapons stay
			out[idx].Equipped = false
		}
	}
}

func equipLightWeapon(out []EquippedItem, target int) {
	shieldUp := hasEquippedShield(out, target)

	for idx := range out {
		if idx == target || !out[idx].Equipped {
			continue
		}
		switch {
		case out[idx].IsTwoHanded():
			out[idx].Equipped = false
		case shieldUp && out[idx].IsOneHanded():
			// shield + a single Light weapon only
			out[idx].Equipped = false
		case !shieldUp && out[idx].IsOneHanded() && !out[idx].IsLightWeapon():
			out[idx].Equipped = false
		}
	}

	if shieldUp {
		return
	}

	// Dual-wield cap: with the target counted, at most two Light weapons
	// stay equipped. List order stands in for equip age, so the first
	// equipped Light weapon is the oldest one evicted.
	equippedLight := 0
	for idx := range out {
		if idx != target && out[idx].Equipped && out[idx].IsLightWeapon() {
			equippedLight++
		}
	}
	for idx := range out {
		if equippedLight < 2 {
			break
		}
		if idx != target && out[idx].Equipped && out[idx].IsLightWeapon() {
			out[idx].Equipped = false
			equippedLight--
		}
	}
}

func hasEquippedShield(items []EquippedItem, exclude int) bool {
	for idx := range items {
		if idx != exclude && items[idx].Equipped && items[idx].IsShield() {
			return true
		}
	}
	return false
}
