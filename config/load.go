package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no config path is given.
const EnvPath = "GAME_CONFIG"

// ErrInvalid marks settings that fail validation.
var ErrInvalid = errors.New("invalid config")

// Settings is the part of the configuration a YAML file may override.
// Keys missing from the file keep their current values.
type Settings struct {
	Player    PlayerConfig    `yaml:"player"`
	World     WorldConfig     `yaml:"world"`
	Combat    CombatConfig    `yaml:"combat"`
	Boss      BossConfig      `yaml:"boss"`
	Inventory InventoryConfig `yaml:"inventory"`
	Camera    CameraConfig    `yaml:"camera"`
	Debug     DebugConfig     `yaml:"debug"`
}

// Current returns a copy of the active settings.
func Current() Settings {
	return Settings{
		Player:    Player,
		World:     World,
		Combat:    Combat,
		Boss:      Boss,
		Inventory: Inventory,
		Camera:    Camera,
		Debug:     Debug,
	}
}

// Apply makes s the active settings. Call it from the game loop only.
func (s Settings) Apply() {
	Player = s.Player
	World = s.World
	Combat = s.Combat
	Boss = s.Boss
	Inventory = s.Inventory
	Camera = s.Camera
	Debug = s.Debug
}

// Load reads overrides from path, or from $GAME_CONFIG when path is empty, on top
// of the current settings. With neither set it returns the current settings.
func Load(path string) (Settings, error) {
	path = ResolvePath(path)
	if path == "" {
		return Current(), nil
	}
	return LoadFrom(Current(), path)
}

// ResolvePath returns the config file Load reads: path, or $GAME_CONFIG when
// path is empty. It is empty when neither is set.
func ResolvePath(path string) string {
	if path == "" {
		return os.Getenv(EnvPath)
	}
	return path
}

// LoadFrom reads overrides from path on top of base and validates the result.
func LoadFrom(base Settings, path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config %s: %w", path, err)
	}
	s := base
	s.Inventory.StartingItems = append([]ItemStack(nil), base.Inventory.StartingItems...)
	if err := yaml.Unmarshal(data, &s); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return base, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// Validate reports every setting that would break movement or collision.
func (s Settings) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	p := s.Player
	check(p.Speed > 0, "player.speed must be positive, got %d", p.Speed)
	check(p.FlySpeed > 0, "player.fly_speed must be positive, got %d", p.FlySpeed)
	check(p.Gravity > 0, "player.gravity must be positive, got %d", p.Gravity)
	check(p.JumpForce >= 0, "player.jump_force must not be negative, got %d", p.JumpForce)
	check(p.Size > 0, "player.size must be positive, got %d", p.Size)
	check(p.MaxHealth > 0, "player.max_health must be positive, got %d", p.MaxHealth)
	check(p.ArmorMaxHealth >= p.MaxHealth, "player.armor_max_health %d is below max_health %d", p.ArmorMaxHealth, p.MaxHealth)
	check(p.HealAmount >= 0, "player.heal_amount must not be negative, got %d", p.HealAmount)
	check(p.HealCooldown >= 0, "player.heal_cooldown must not be negative, got %d", p.HealCooldown)
	check(p.DamageCooldown >= 0, "player.damage_cooldown must not be negative, got %d", p.DamageCooldown)

	w := s.World
	check(w.Columns > 0 && w.Rows > 0, "world is %dx%d tiles", w.Columns, w.Rows)
	// Corner sampling only sees every tile a box touches if the box is no
	// taller than one tile.
	check(w.TileSize >= 2*p.Size, "world.tile_size %d is smaller than the player height %d", w.TileSize, 2*p.Size)
	check(w.TileSize >= 2*s.Boss.Size, "world.tile_size %d is smaller than the boss height %d", w.TileSize, 2*s.Boss.Size)

	b := s.Boss
	check(b.Size > 0, "boss.size must be positive, got %d", b.Size)
	check(b.Speed > 0, "boss.speed must be positive, got %d", b.Speed)
	check(b.Gravity > 0, "boss.gravity must be positive, got %d", b.Gravity)
	check(b.MaxHealth > 0, "boss.max_health must be positive, got %d", b.MaxHealth)

	c := s.Combat
	check(c.Reach > 0, "combat.reach must be positive, got %v", c.Reach)
	check(c.ArrowSpeed > 0, "combat.arrow_speed must be positive, got %d", c.ArrowSpeed)

	check(s.Camera.ShakeFrames >= 0, "camera.shake_frames must not be negative, got %d", s.Camera.ShakeFrames)

	inv := s.Inventory
	check(inv.Slots == 10, "inventory.slots must be 10, got %d", inv.Slots)
	check(inv.MaxStack > 0, "inventory.max_stack must be positive, got %d", inv.MaxStack)
	check(len(inv.StartingItems) <= inv.Slots, "inventory.starting_items has %d entries for %d slots", len(inv.StartingItems), inv.Slots)
	for i, it := range inv.StartingItems {
		check(it.Name != "" && it.Count > 0, "inventory.starting_items[%d] needs a name and a positive count", i)
	}

	return errors.Join(errs...)
}
