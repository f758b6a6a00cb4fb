package entities

// Skill identifies a trainable skill. SkillLevel and SkillMagicLevel are
// reported through the same advance event as weapon skills.
type Skill int

const (
	SkillFist Skill = iota
	SkillClub
	SkillSword
	SkillAxe
	SkillDistance
	SkillShield
	SkillFishing
	SkillMagicLevel
	SkillLevel
)

// StatsChange is the kind of health/mana change reported to scripts
type StatsChange int

const (
	StatsChangeHealthGain StatsChange = iota
	StatsChangeHealthLoss
	StatsChangeManaGain
	StatsChangeManaLoss
)

// CombatType is a damage type. Values are bit flags so that immunities
// can be expressed as masks.
type CombatType uint32

const (
	CombatNone           CombatType = 0
	CombatPhysicalDamage CombatType = 1 << 0
	CombatEnergyDamage   CombatType = 1 << 1
	CombatEarthDamage    CombatType = 1 << 2
	CombatFireDamage     CombatType = 1 << 3
	CombatUndefined      CombatType = 1 << 4
	CombatLifeDrain      CombatType = 1 << 5
	CombatManaDrain      CombatType = 1 << 6
	CombatHealing        CombatType = 1 << 7
	CombatDrownDamage    CombatType = 1 << 8
	CombatIceDamage      CombatType = 1 << 9
	CombatHolyDamage     CombatType = 1 << 10
	CombatDeathDamage    CombatType = 1 << 11
)
