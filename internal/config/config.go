package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Persistence PersistenceConfig `mapstructure:"persistence"`
	Demo        DemoConfig        `mapstructure:"demo"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	Map    MapConfig    `mapstructure:"map"`
	Sight  SightConfig  `mapstructure:"sight"`
	Combat CombatConfig `mapstructure:"combat"`
	Units  UnitsConfig  `mapstructure:"units"`
}

// MapConfig holds map generation settings
type MapConfig struct {
	Width           int     `mapstructure:"width"`
	Height          int     `mapstructure:"height"`
	LandFraction    float64 `mapstructure:"land_fraction"`
	SmoothingPasses int     `mapstructure:"smoothing_passes"`
	Cities          int     `mapstructure:"cities"`
	MinSeparation   int     `mapstructure:"min_separation"`
}

// SightConfig holds per-asset sight radii for fog of war
type SightConfig struct {
	City    int `mapstructure:"city"`
	Army    int `mapstructure:"army"`
	Fighter int `mapstructure:"fighter"`
	Carrier int `mapstructure:"carrier"`
	Missile int `mapstructure:"missile"`
}

// CombatConfig holds the hit-chance table and damage values
type CombatConfig struct {
	BaseAttackerHit           float64 `mapstructure:"base_attacker_hit"`
	BaseDefenderHit           float64 `mapstructure:"base_defender_hit"`
	FighterVsArmyAttackerHit  float64 `mapstructure:"fighter_vs_army_attacker_hit"`
	FighterVsArmyDefenderHit  float64 `mapstructure:"fighter_vs_army_defender_hit"`
	FighterVsOtherAttackerHit float64 `mapstructure:"fighter_vs_other_attacker_hit"`
	FighterVsOtherDefenderHit float64 `mapstructure:"fighter_vs_other_defender_hit"`
	CityDefenseBonus          float64 `mapstructure:"city_defense_bonus"`
	AttackerDamage            int     `mapstructure:"attacker_damage"`
	DefenderDamage            int     `mapstructure:"defender_damage"`
	ReportCapacity            int     `mapstructure:"report_capacity"`
}

// UnitStatConfig holds the catalog entry for one unit type
type UnitStatConfig struct {
	HP    int `mapstructure:"hp"`
	Moves int `mapstructure:"moves"`
	Cost  int `mapstructure:"cost"`
}

// UnitsConfig holds the production catalog and related caps
type UnitsConfig struct {
	Army               UnitStatConfig `mapstructure:"army"`
	Fighter            UnitStatConfig `mapstructure:"fighter"`
	Carrier            UnitStatConfig `mapstructure:"carrier"`
	Missile            UnitStatConfig `mapstructure:"missile"`
	MissileMaxRange    int            `mapstructure:"missile_max_range"`
	MissileBlastRadius int            `mapstructure:"missile_blast_radius"`
	SupportCap         int            `mapstructure:"support_cap"`
	HealPerTurn        int            `mapstructure:"heal_per_turn"`
}

// PersistenceConfig holds save game settings
type PersistenceConfig struct {
	SaveDir string `mapstructure:"save_dir"`
}

// DemoConfig holds demo mode configuration
type DemoConfig struct {
	MaxTurns int `mapstructure:"max_turns"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseLogging bool `mapstructure:"verbose_logging"`
	RevealAllTiles bool `mapstructure:"reveal_all_tiles"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Map generation defaults
	v.SetDefault("game.map.width", 60)
	v.SetDefault("game.map.height", 24)
	v.SetDefault("game.map.land_fraction", 0.55)
	v.SetDefault("game.map.smoothing_passes", 4)
	v.SetDefault("game.map.cities", 12)
	v.SetDefault("game.map.min_separation", 3)

	// Sight radii defaults
	v.SetDefault("game.sight.city", 3)
	v.SetDefault("game.sight.army", 2)
	v.SetDefault("game.sight.fighter", 4)
	v.SetDefault("game.sight.carrier", 2)
	v.SetDefault("game.sight.missile", 2)

	// Combat defaults
	v.SetDefault("game.combat.base_attacker_hit", 0.55)
	v.SetDefault("game.combat.base_defender_hit", 0.50)
	v.SetDefault("game.combat.fighter_vs_army_attacker_hit", 0.65)
	v.SetDefault("game.combat.fighter_vs_army_defender_hit", 0.35)
	v.SetDefault("game.combat.fighter_vs_other_attacker_hit", 0.50)
	v.SetDefault("game.combat.fighter_vs_other_defender_hit", 0.40)
	v.SetDefault("game.combat.city_defense_bonus", 0.10)
	v.SetDefault("game.combat.attacker_damage", 3)
	v.SetDefault("game.combat.defender_damage", 2)
	v.SetDefault("game.combat.report_capacity", 32)

	// Unit catalog defaults
	v.SetDefault("game.units.army.hp", 10)
	v.SetDefault("game.units.army.moves", 1)
	v.SetDefault("game.units.army.cost", 6)
	v.SetDefault("game.units.fighter.hp", 8)
	v.SetDefault("game.units.fighter.moves", 6)
	v.SetDefault("game.units.fighter.cost", 12)
	v.SetDefault("game.units.carrier.hp", 12)
	v.SetDefault("game.units.carrier.moves", 3)
	v.SetDefault("game.units.carrier.cost", 18)
	v.SetDefault("game.units.missile.hp", 6)
	v.SetDefault("game.units.missile.moves", 4)
	v.SetDefault("game.units.missile.cost", 24)
	v.SetDefault("game.units.missile_max_range", 10)
	v.SetDefault("game.units.missile_blast_radius", 2)
	v.SetDefault("game.units.support_cap", 2)
	v.SetDefault("game.units.heal_per_turn", 1)

	// Persistence defaults
	v.SetDefault("persistence.save_dir", "saves")

	// Demo defaults
	v.SetDefault("demo.max_turns", 50)

	// Development defaults
	v.SetDefault("development.verbose_logging", false)
	v.SetDefault("development.reveal_all_tiles", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/empire-hotseat")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("EMP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.Map.Width <= 0 || c.Game.Map.Height <= 0 {
		return fmt.Errorf("game.map dimensions must be positive")
	}
	if c.Game.Map.LandFraction <= 0 || c.Game.Map.LandFraction >= 1 {
		return fmt.Errorf("game.map.land_fraction must be between 0 and 1 exclusive")
	}
	if c.Game.Map.SmoothingPasses < 0 {
		return fmt.Errorf("game.map.smoothing_passes must be non-negative")
	}
	if c.Game.Map.Cities < 0 {
		return fmt.Errorf("game.map.cities must be non-negative")
	}
	if c.Game.Map.MinSeparation < 1 {
		return fmt.Errorf("game.map.min_separation must be at least 1")
	}

	for name, r := range map[string]int{
		"game.sight.city":    c.Game.Sight.City,
		"game.sight.army":    c.Game.Sight.Army,
		"game.sight.fighter": c.Game.Sight.Fighter,
		"game.sight.carrier": c.Game.Sight.Carrier,
		"game.sight.missile": c.Game.Sight.Missile,
	} {
		if r < 0 {
			return fmt.Errorf("%s must be non-negative", name)
		}
	}

	validateChance := func(chance float64, name string) error {
		if chance < 0 || chance > 1 {
			return fmt.Errorf("%s must be between 0 and 1", name)
		}
		return nil
	}
	if err := validateChance(c.Game.Combat.BaseAttackerHit, "game.combat.base_attacker_hit"); err != nil {
		return err
	}
	if err := validateChance(c.Game.Combat.BaseDefenderHit, "game.combat.base_defender_hit"); err != nil {
		return err
	}
	if err := validateChance(c.Game.Combat.FighterVsArmyAttackerHit, "game.combat.fighter_vs_army_attacker_hit"); err != nil {
		return err
	}
	if err := validateChance(c.Game.Combat.FighterVsArmyDefenderHit, "game.combat.fighter_vs_army_defender_hit"); err != nil {
		return err
	}
	if err := validateChance(c.Game.Combat.FighterVsOtherAttackerHit, "game.combat.fighter_vs_other_attacker_hit"); err != nil {
		return err
	}
	if err := validateChance(c.Game.Combat.FighterVsOtherDefenderHit, "game.combat.fighter_vs_other_defender_hit"); err != nil {
		return err
	}
	if c.Game.Combat.AttackerDamage <= 0 || c.Game.Combat.DefenderDamage <= 0 {
		return fmt.Errorf("game.combat damage values must be positive")
	}
	if c.Game.Combat.ReportCapacity <= 0 {
		return fmt.Errorf("game.combat.report_capacity must be positive")
	}

	validateUnit := func(u UnitStatConfig, name string) error {
		if u.HP <= 0 {
			return fmt.Errorf("%s.hp must be positive", name)
		}
		if u.Moves <= 0 {
			return fmt.Errorf("%s.moves must be positive", name)
		}
		if u.Cost <= 0 {
			return fmt.Errorf("%s.cost must be positive", name)
		}
		return nil
	}
	if err := validateUnit(c.Game.Units.Army, "game.units.army"); err != nil {
		return err
	}
	if err := validateUnit(c.Game.Units.Fighter, "game.units.fighter"); err != nil {
		return err
	}
	if err := validateUnit(c.Game.Units.Carrier, "game.units.carrier"); err != nil {
		return err
	}
	if err := validateUnit(c.Game.Units.Missile, "game.units.missile"); err != nil {
		return err
	}
	if c.Game.Units.MissileMaxRange <= 0 {
		return fmt.Errorf("game.units.missile_max_range must be positive")
	}
	if c.Game.Units.MissileBlastRadius < 0 {
		return fmt.Errorf("game.units.missile_blast_radius must be non-negative")
	}
	if c.Game.Units.SupportCap < 0 {
		return fmt.Errorf("game.units.support_cap must be non-negative")
	}
	if c.Game.Units.HealPerTurn < 0 {
		return fmt.Errorf("game.units.heal_per_turn must be non-negative")
	}

	if c.Persistence.SaveDir == "" {
		return fmt.Errorf("persistence.save_dir must not be empty")
	}
	if c.Demo.MaxTurns <= 0 {
		return fmt.Errorf("demo.max_turns must be positive")
	}

	return nil
}
