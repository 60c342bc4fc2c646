package combat

// Built-in card catalog. Each constructor returns a fresh definition so
// callers can hold distinct pointers per deck without sharing authored
// state.

// Strike — 1 energy. Deal 6 damage. Melee.
func Strike() *Card {
	return &Card{
		Name:        "Strike",
		Description: "Deal 6 damage.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectDamage, Amount: 6, Target: TargetOpponent, Reflectable: true},
		},
		BuildsCombo: true,
		Upgrade: &UpgradeCondition{
			Predicate:     UpCardPlayedLifetime,
			Comparison:    CompGTE,
			RequiredValue: 25,
		},
		UpgradeTo: "Strike+",
	}
}

// StrikePlus — 1 energy. Deal 9 damage. Upgraded Strike.
func StrikePlus() *Card {
	return &Card{
		Name:        "Strike+",
		Description: "Deal 9 damage.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectDamage, Amount: 9, Target: TargetOpponent, Reflectable: true},
		},
		BuildsCombo: true,
	}
}

// Fireball — 2 energy. Deal 10 fire damage at range.
func Fireball() *Card {
	return &Card{
		Name:        "Fireball",
		Description: "Deal 10 fire damage.",
		Cost:        2,
		Effects: []CardEffect{
			{Kind: EffectDamage, Amount: 10, Target: TargetOpponent, Element: ElementFire},
		},
		Upgrade: &UpgradeCondition{
			Predicate:     UpDamageDealtThisFight,
			Comparison:    CompGTE,
			RequiredValue: 50,
		},
		UpgradeTo: "Inferno",
	}
}

// Inferno — 2 energy. Deal 10 fire damage and Burn. Upgraded Fireball.
func Inferno() *Card {
	return &Card{
		Name:        "Inferno",
		Description: "Deal 10 fire damage and apply 3 Burn for 2 turns.",
		Cost:        2,
		Effects: []CardEffect{
			{Kind: EffectDamage, Amount: 10, Target: TargetOpponent, Element: ElementFire},
			{Kind: EffectApplyStatus, Status: StatusBurn, Amount: 3, Duration: 2, Target: TargetOpponent, Element: ElementFire},
		},
	}
}

// Guard — 1 energy. Gain 5 Shield.
func Guard() *Card {
	return &Card{
		Name:        "Guard",
		Description: "Gain 5 Shield.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectApplyStatus, Status: StatusShield, Amount: 5, Target: TargetSelf},
		},
		Upgrade: &UpgradeCondition{
			Predicate:     UpShieldGrantedLifetime,
			Comparison:    CompGTE,
			RequiredValue: 100,
		},
		UpgradeTo: "Bulwark",
	}
}

// Bulwark — 1 energy. Gain 8 Shield. Upgraded Guard.
func Bulwark() *Card {
	return &Card{
		Name:        "Bulwark",
		Description: "Gain 8 Shield.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectApplyStatus, Status: StatusShield, Amount: 8, Target: TargetSelf},
		},
	}
}

// BrambleCoat — 1 energy. Gain 3 Thorns.
func BrambleCoat() *Card {
	return &Card{
		Name:        "Bramble Coat",
		Description: "Gain 3 Thorns.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectApplyStatus, Status: StatusThorns, Amount: 3, Target: TargetSelf},
		},
	}
}

// Mend — 1 energy. Restore 6 health.
func Mend() *Card {
	return &Card{
		Name:        "Mend",
		Description: "Restore 6 health.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectHeal, Amount: 6, Target: TargetSelf},
		},
		Upgrade: &UpgradeCondition{
			Predicate:     UpHealingGivenLifetime,
			Comparison:    CompGTE,
			RequiredValue: 60,
		},
		UpgradeTo: "Renewal",
	}
}

// Renewal — 1 energy. Restore 6 health and gain 2 Salve. Upgraded Mend.
func Renewal() *Card {
	return &Card{
		Name:        "Renewal",
		Description: "Restore 6 health and apply 2 Salve for 3 turns.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectHeal, Amount: 6, Target: TargetSelf},
			{Kind: EffectApplyStatus, Status: StatusSalve, Amount: 2, Duration: 3, Target: TargetSelf},
		},
	}
}

// Insight — 0 energy. Draw a card.
func Insight() *Card {
	return &Card{
		Name:        "Insight",
		Description: "Draw a card.",
		Cost:        0,
		Effects: []CardEffect{
			{Kind: EffectDrawCard, Amount: 1, Target: TargetSelf},
		},
	}
}

// SecondWind — 1 energy. Restore 2 energy and draw a card.
func SecondWind() *Card {
	return &Card{
		Name:        "Second Wind",
		Description: "Restore 2 energy and draw a card.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectRestoreEnergy, Amount: 2, Target: TargetSelf},
			{Kind: EffectDrawCard, Amount: 1, Target: TargetSelf},
		},
	}
}

// CripplingBlow — 1 energy. Deal 4 damage and Weak. Melee.
func CripplingBlow() *Card {
	return &Card{
		Name:        "Crippling Blow",
		Description: "Deal 4 damage and apply 2 Weak for 2 turns.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectDamage, Amount: 4, Target: TargetOpponent, Reflectable: true},
			{Kind: EffectApplyStatus, Status: StatusWeak, Amount: 2, Duration: 2, Target: TargetOpponent},
		},
		BuildsCombo: true,
	}
}

// ArmorShatter — 2 energy. Deal 5 damage and Break. Melee.
func ArmorShatter() *Card {
	return &Card{
		Name:        "Armor Shatter",
		Description: "Deal 5 damage and apply 1 Break for 2 turns.",
		Cost:        2,
		Effects: []CardEffect{
			{Kind: EffectDamage, Amount: 5, Target: TargetOpponent, Reflectable: true},
			{Kind: EffectApplyStatus, Status: StatusBreak, Amount: 1, Duration: 2, Target: TargetOpponent},
		},
		BuildsCombo: true,
	}
}

// Concuss — 2 energy. Stun the opponent for a turn.
func Concuss() *Card {
	return &Card{
		Name:        "Concuss",
		Description: "Stun the enemy for 1 turn.",
		Cost:        2,
		Effects: []CardEffect{
			{Kind: EffectApplyStatus, Status: StatusStun, Amount: 1, Duration: 1, Target: TargetOpponent},
		},
	}
}

// WarCry — 1 energy. Gain 3 Strength for 3 turns.
func WarCry() *Card {
	return &Card{
		Name:        "War Cry",
		Description: "Gain 3 Strength for 3 turns.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectApplyStatus, Status: StatusStrength, Amount: 3, Duration: 3, Target: TargetSelf},
		},
	}
}

// Execute — 2 energy. Deal 8 damage, or 16 to a wounded enemy. Melee.
// Replace policy: the heavier hit fires instead of the base when the
// target is below half health.
func Execute() *Card {
	return &Card{
		Name:        "Execute",
		Description: "Deal 16 damage if the enemy is above 50% health; otherwise deal 8.",
		Cost:        2,
		Effects: []CardEffect{
			{
				Kind:        EffectDamage,
				Amount:      16,
				Target:      TargetOpponent,
				Reflectable: true,
				Condition: &ConditionDescriptor{
					Predicate: PredTargetHealthAbovePercent,
					Threshold: 50,
				},
				Policy: CombineReplace,
				Alternative: &CardEffect{
					Kind:        EffectDamage,
					Amount:      8,
					Target:      TargetOpponent,
					Reflectable: true,
				},
			},
		},
		BuildsCombo: true,
	}
}

// OpportunistJab — 1 energy. Deal 5 damage, plus 4 bonus against a
// weakened enemy. Additional policy: the base always fires; the rider
// fires only when the condition holds.
func OpportunistJab() *Card {
	return &Card{
		Name:        "Opportunist Jab",
		Description: "Deal 5 damage. If the enemy is below 40% health, deal 4 more.",
		Cost:        1,
		Effects: []CardEffect{
			{
				Kind:        EffectDamage,
				Amount:      5,
				Target:      TargetOpponent,
				Reflectable: true,
				Condition: &ConditionDescriptor{
					Predicate: PredTargetHealthBelowPercent,
					Threshold: 40,
				},
				Policy: CombineAdditional,
				Alternative: &CardEffect{
					Kind:        EffectDamage,
					Amount:      4,
					Target:      TargetOpponent,
					Reflectable: true,
				},
			},
		},
		BuildsCombo: true,
	}
}

// Desperation — 1 energy. Only bites when the caster is hurt.
func Desperation() *Card {
	return &Card{
		Name:        "Desperation",
		Description: "If you are below 30% health, deal 14 damage.",
		Cost:        1,
		Effects: []CardEffect{
			{
				Kind:   EffectDamage,
				Amount: 14,
				Target: TargetOpponent,
				Condition: &ConditionDescriptor{
					Predicate: PredSourceHealthBelowPercent,
					Threshold: 30,
				},
				Policy: CombineReplace,
			},
		},
	}
}

// Momentum — 1 energy. Scales with combo count gauge via combos built.
func Momentum() *Card {
	return &Card{
		Name:        "Momentum",
		Description: "Deal 4 damage, plus 1 per 2 combo steps built this fight (max +8).",
		Cost:        1,
		Effects: []CardEffect{
			{
				Kind:        EffectDamage,
				Amount:      4,
				Target:      TargetOpponent,
				Reflectable: true,
				Scaling: &ScalingDescriptor{
					Counter:    CounterCombosBuilt,
					Scope:      ScopeFight,
					Multiplier: 0.5,
					Cap:        8,
				},
			},
		},
		BuildsCombo: true,
	}
}

// Veteran — 2 energy. Scales with lifetime fights won.
func Veteran() *Card {
	return &Card{
		Name:        "Veteran",
		Description: "Deal 8 damage, plus 1 per fight ever won (max +10).",
		Cost:        2,
		Effects: []CardEffect{
			{
				Kind:   EffectDamage,
				Amount: 8,
				Target: TargetOpponent,
				Scaling: &ScalingDescriptor{
					Counter:    CounterFightsWon,
					Scope:      ScopeLifetime,
					Multiplier: 1.0,
					Cap:        10,
				},
			},
		},
	}
}

// ComboFinisher — 2 energy. Requires a built-up combo; big payoff.
func ComboFinisher() *Card {
	return &Card{
		Name:        "Combo Finisher",
		Description: "Requires combo 3. Deal 18 damage.",
		Cost:        2,
		Effects: []CardEffect{
			{Kind: EffectDamage, Amount: 18, Target: TargetOpponent, Reflectable: true},
		},
		RequiresCombo: 3,
	}
}

// AggressiveStance — 1 energy. Enter Aggressive.
func AggressiveStance() *Card {
	return &Card{
		Name:        "Aggressive Stance",
		Description: "Enter the Aggressive stance: deal 25% more damage.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectEnterStance, Stance: StanceAggressive, Target: TargetSelf},
		},
	}
}

// DefensiveStance — 1 energy. Enter Defensive.
func DefensiveStance() *Card {
	return &Card{
		Name:        "Defensive Stance",
		Description: "Enter the Defensive stance: take 25% less damage.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectEnterStance, Stance: StanceDefensive, Target: TargetSelf},
		},
	}
}

// FocusedStance — 1 energy. Enter Focused.
func FocusedStance() *Card {
	return &Card{
		Name:        "Focused Stance",
		Description: "Enter the Focused stance: energy restoration grants 1 extra.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectEnterStance, Stance: StanceFocused, Target: TargetSelf},
		},
	}
}

// BerserkerStance — 1 energy. Enter Berserker.
func BerserkerStance() *Card {
	return &Card{
		Name:        "Berserker Stance",
		Description: "Enter the Berserker stance: deal 50% more damage, take 25% more.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectEnterStance, Stance: StanceBerserker, Target: TargetSelf},
		},
	}
}

// GuardianStance — 1 energy. Enter Guardian.
func GuardianStance() *Card {
	return &Card{
		Name:        "Guardian Stance",
		Description: "Enter the Guardian stance: shield you apply to yourself is 50% stronger.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectEnterStance, Stance: StanceGuardian, Target: TargetSelf},
		},
	}
}

// MysticStance — 1 energy. Enter Mystic.
func MysticStance() *Card {
	return &Card{
		Name:        "Mystic Stance",
		Description: "Enter the Mystic stance: healing you give is 25% stronger.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectEnterStance, Stance: StanceMystic, Target: TargetSelf},
		},
	}
}

// LimitBreakStance — 2 energy. Enter LimitBreak. Needs a full combo.
func LimitBreakStance() *Card {
	return &Card{
		Name:        "Limit Break",
		Description: "Requires combo 5. Enter the Limit Break stance: deal 50% more damage.",
		Cost:        2,
		Effects: []CardEffect{
			{Kind: EffectEnterStance, Stance: StanceLimitBreak, Target: TargetSelf},
		},
	}
}

// CenterSelf — 0 energy. Exit the current stance.
func CenterSelf() *Card {
	return &Card{
		Name:        "Center Self",
		Description: "Exit your current stance.",
		Cost:        0,
		Effects: []CardEffect{
			{Kind: EffectExitStance, Target: TargetSelf},
		},
	}
}

// StanceStrike — 1 energy. Punishes from Aggressive only.
func StanceStrike() *Card {
	return &Card{
		Name:        "Stance Strike",
		Description: "Aggressive only. Deal 9 damage.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectDamage, Amount: 9, Target: TargetOpponent, Reflectable: true},
		},
		RequiredStance: StanceAggressive,
		BuildsCombo:    true,
	}
}

// ChainLightning — 2 energy. Hits every enemy.
func ChainLightning() *Card {
	return &Card{
		Name:        "Chain Lightning",
		Description: "Deal 5 lightning damage to all enemies.",
		Cost:        2,
		Effects: []CardEffect{
			{Kind: EffectDamage, Amount: 5, Target: TargetAllEnemies, Element: ElementLightning},
		},
	}
}

// WildBolt — 1 energy. Hits a random enemy.
func WildBolt() *Card {
	return &Card{
		Name:        "Wild Bolt",
		Description: "Deal 7 lightning damage to a random enemy.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectDamage, Amount: 7, Target: TargetRandom, Element: ElementLightning},
		},
	}
}

// Rally — 2 energy. Team-wide shield.
func Rally() *Card {
	return &Card{
		Name:        "Rally",
		Description: "All allies gain 4 Shield.",
		Cost:        2,
		Effects: []CardEffect{
			{Kind: EffectApplyStatus, Status: StatusShield, Amount: 4, Target: TargetAllAllies},
		},
	}
}

// FieldMedic — 1 energy. Heal an ally.
func FieldMedic() *Card {
	return &Card{
		Name:        "Field Medic",
		Description: "Restore 5 health to an ally.",
		Cost:        1,
		Effects: []CardEffect{
			{Kind: EffectHeal, Amount: 5, Target: TargetAlly},
		},
	}
}

// FrostNova — 3 energy. Hits everyone, caster included.
func FrostNova() *Card {
	return &Card{
		Name:        "Frost Nova",
		Description: "Deal 4 ice damage to everyone.",
		Cost:        3,
		Effects: []CardEffect{
			{Kind: EffectDamage, Amount: 4, Target: TargetEveryone, Element: ElementIce},
		},
	}
}

// Flurry — 0 energy. Free chip damage; fuels zero-cost predicates.
func Flurry() *Card {
	return &Card{
		Name:        "Flurry",
		Description: "Deal 2 damage.",
		Cost:        0,
		Effects: []CardEffect{
			{Kind: EffectDamage, Amount: 2, Target: TargetOpponent, Reflectable: true},
		},
		BuildsCombo: true,
		Upgrade: &UpgradeCondition{
			Predicate:     UpZeroCostPlayedThisFight,
			Comparison:    CompGTE,
			RequiredValue: 4,
		},
		UpgradeTo: "Flurry+",
	}
}

// FlurryPlus — 0 energy. Upgraded Flurry rewards spam with a rider.
func FlurryPlus() *Card {
	return &Card{
		Name:        "Flurry+",
		Description: "Deal 2 damage. If you played 2+ free cards this turn, deal 3 more.",
		Cost:        0,
		Effects: []CardEffect{
			{
				Kind:        EffectDamage,
				Amount:      2,
				Target:      TargetOpponent,
				Reflectable: true,
				Condition: &ConditionDescriptor{
					Predicate: PredZeroCostPlayedThisTurnAtLeast,
					Threshold: 2,
				},
				Policy: CombineAdditional,
				Alternative: &CardEffect{
					Kind:        EffectDamage,
					Amount:      3,
					Target:      TargetOpponent,
					Reflectable: true,
				},
			},
		},
		BuildsCombo: true,
	}
}
