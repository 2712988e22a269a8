package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/signature-weapons/internal/adapters/actor"
	"github.com/KirkDiggler/signature-weapons/internal/config"
	"github.com/KirkDiggler/signature-weapons/internal/dice"
	"github.com/KirkDiggler/signature-weapons/internal/domain/character"
	"github.com/KirkDiggler/signature-weapons/internal/engine"
	"github.com/KirkDiggler/signature-weapons/internal/logging"
	"github.com/KirkDiggler/signature-weapons/internal/repositories/characters"
	"github.com/KirkDiggler/signature-weapons/internal/weapons"
)

func main() {
	file := flag.String("file", "", "YAML file with a top-level characters list")
	characterID := flag.String("character", "", "character ID, optional when the file holds one character")
	weaponID := flag.String("weapon", "jotun_spear", "signature weapon ID")
	attackID := flag.String("attack", "", "attack ID, empty lists the menu")
	mode := flag.String("mode", "normal", "normal, advantage or disadvantage")
	verbose := flag.Bool("v", false, "log every die")
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	logger, err := logging.NewLogger(config.LoggingConfig{Level: level, Format: "console"})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if *file == "" {
		fmt.Println("Usage: debug-attack -file characters.yaml [-character id] [-weapon id] [-attack id] [-mode adv]")
		os.Exit(1)
	}

	catalog, err := weapons.Load()
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}
	weapon := catalog.Get(*weaponID)
	if weapon == nil {
		logger.Fatal("unknown weapon", zap.String("weapon", *weaponID))
	}

	char, err := loadCharacter(*file, *characterID)
	if err != nil {
		logger.Fatal("failed to load character", zap.Error(err))
	}

	item := char.FindWeapon(weapon.Matches)
	stats := engine.WeaponStats{}
	if item == nil {
		fmt.Printf("warning: %s does not carry %s, using no weapon bonuses\n", char.Name, weapon.Name)
	} else {
		stats.AttackBonus = item.AttackBonus
		stats.DamageBonus = item.DamageBonus
	}

	profile := engine.NewProfile(actor.NewCharacterAdapter(char), stats)

	if *attackID == "" {
		printMenu(weapon, profile)
		return
	}

	def := weapon.Attack(*attackID)
	if def == nil {
		logger.Fatal("unknown attack", zap.String("attack", *attackID))
	}

	rollMode, err := engine.ParseRollMode(*mode)
	if err != nil {
		logger.Fatal("invalid mode", zap.Error(err))
	}

	eng := engine.New(&engine.Config{
		Roller: dice.NewLoggedRoller(dice.NewRandomRoller(), logger),
		Logger: logger,
	})

	result, err := eng.Resolve(context.Background(), def, profile, rollMode)
	if err != nil {
		logger.Fatal("attack failed", zap.Error(err))
	}

	printResult(char, def.Flavor, result)
}

func loadCharacter(path, id string) (*character.Character, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	chars, err := characters.DecodeYAML(f)
	if err != nil {
		return nil, err
	}

	if id == "" {
		if len(chars) != 1 {
			return nil, fmt.Errorf("file holds %d characters, pass -character", len(chars))
		}
		return chars[0], nil
	}
	for _, c := range chars {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("character %q not in %s", id, path)
}

func printMenu(weapon *weapons.Weapon, profile *engine.Profile) {
	base := engine.ResolveCritThreshold(profile)
	fmt.Printf("%s (level %d, crit on %d+)\n\n", weapon.Name, profile.CharacterLevel, base)
	for _, entry := range weapon.AttacksFor(profile.CharacterLevel) {
		lock := "  "
		if entry.Locked {
			lock = "🔒"
		}
		def := entry.Attack
		fmt.Printf("%s %-10s %-20s %-10s L%-3d crit %-6s fumble %s\n",
			lock, def.ID, def.Label, def.Damage, def.MinimumLevel,
			def.CritRangeFrom(base), def.FumbleRange())
	}
}

func printResult(char *character.Character, flavor string, r *engine.Result) {
	fmt.Printf("%s: %s\n", char.Name, r.Label)
	fmt.Printf("  %s\n\n", flavor)
	fmt.Printf("  d20 %v (kept %d, %s)\n", r.AttackRoll.Rolls, r.NaturalRoll, r.Mode.Label())
	fmt.Printf("  to hit %d = %d %+d (STR %+d, prof %+d, weapon %+d, other %+d)\n",
		r.TotalToHit, r.NaturalRoll, r.AttackModifiers.Total(),
		r.AttackModifiers.Strength, r.AttackModifiers.Proficiency, r.AttackModifiers.Weapon, r.AttackModifiers.Other)
	fmt.Printf("  damage %d = %s %v %+d\n", r.DamageTotal, r.DamageExpression, r.Damage.Rolls(), r.DamageModifiers.Total())
	fmt.Printf("  crit on %d+, fumble on %d or less\n", r.CritThreshold, r.FumbleThreshold)
	fmt.Printf("  outcome: %s\n", strings.ToUpper(r.Outcome()))
	if r.Special != "" {
		fmt.Printf("  special: %s\n", r.Special)
	}
}
