package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer every entity is created on.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, in world units per frame
	Speed     int `yaml:"speed"`
	FlySpeed  int `yaml:"fly_speed"`
	Gravity   int `yaml:"gravity"`
	JumpForce int `yaml:"jump_force"`

	// Box width; height is twice this
	Size int `yaml:"size"`

	// Health
	MaxHealth        int     `yaml:"max_health"`
	ArmorMaxHealth   int     `yaml:"armor_max_health"`
	ArmorDamageScale float64 `yaml:"armor_damage_scale"`
	DamageCooldown   int     `yaml:"damage_cooldown"` // frames of immunity after a hit

	// Mob meat
	HealAmount   int `yaml:"heal_amount"`
	HealCooldown int `yaml:"heal_cooldown"` // frames

	Color        color.RGBA `yaml:"-"`
	ArmorColor   color.RGBA `yaml:"-"`
	JetpackColor color.RGBA `yaml:"-"`
}

// WorldConfig controls the size and shape of generated worlds.
type WorldConfig struct {
	TileSize int   `yaml:"tile_size"`
	Columns  int   `yaml:"columns"`
	Rows     int   `yaml:"rows"`
	Seed     int64 `yaml:"seed"`

	SurfaceLevel     float64 `yaml:"surface_level"`     // fraction of rows above the mean surface
	SurfaceAmplitude int     `yaml:"surface_amplitude"` // rows of variation around the mean
	DirtDepth        int     `yaml:"dirt_depth"`
	CaveThreshold    float64 `yaml:"cave_threshold"` // noise above this carves a cave
	TreeChance       float64 `yaml:"tree_chance"`
	ChasmWidth       int     `yaml:"chasm_width"`

	SkyColor color.RGBA `yaml:"-"`
}

// CombatConfig contains tool tuning
type CombatConfig struct {
	Reach float64 `yaml:"reach"` // tiles from the player center

	PickaxeCooldown int `yaml:"pickaxe_cooldown"`

	SwordCooldown int `yaml:"sword_cooldown"`
	SwordDamage   int `yaml:"sword_damage"`
	SwordRange    int `yaml:"sword_range"`

	BowCooldown   int `yaml:"bow_cooldown"`
	ArrowSpeed    int `yaml:"arrow_speed"`
	ArrowDamage   int `yaml:"arrow_damage"`
	ArrowLifetime int `yaml:"arrow_lifetime"`
	ArrowLength   int `yaml:"arrow_length"`

	ArrowColor color.RGBA `yaml:"-"`
	SwingColor color.RGBA `yaml:"-"`
}

// BossConfig contains configuration for the summoned boss
type BossConfig struct {
	Size          int    `yaml:"size"`
	Speed         int    `yaml:"speed"`
	Gravity       int    `yaml:"gravity"`
	JumpForce     int    `yaml:"jump_force"`
	MaxHealth     int    `yaml:"max_health"`
	ContactDamage int    `yaml:"contact_damage"`
	SpawnDistance int    `yaml:"spawn_distance"` // tiles beside the player
	DropItem      string `yaml:"drop_item"`
	DropCount     int    `yaml:"drop_count"`
	HurtFlash     int    `yaml:"hurt_flash"` // frames

	Color     color.RGBA `yaml:"-"`
	HurtColor color.RGBA `yaml:"-"`
}

// ItemStack is an item name with a count
type ItemStack struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// InventoryConfig contains inventory configuration
type InventoryConfig struct {
	Slots         int         `yaml:"slots"`
	MaxStack      int         `yaml:"max_stack"`
	StartingItems []ItemStack `yaml:"starting_items"`
}

// DeathScreenConfig contains the death overlay settings
type DeathScreenConfig struct {
	Title      string `yaml:"title"`
	Hint       string `yaml:"hint"`
	FadeFrames int    `yaml:"fade_frames"`

	OverlayColor color.RGBA `yaml:"-"`
	TitleColor   color.RGBA `yaml:"-"`
	HintColor    color.RGBA `yaml:"-"`
}

// HUDConfig contains health bar and slot bar layout
type HUDConfig struct {
	Margin      int `yaml:"margin"`
	BarWidth    int `yaml:"bar_width"`
	BarHeight   int `yaml:"bar_height"`
	SlotSize    int `yaml:"slot_size"`
	SlotGap     int `yaml:"slot_gap"`
	PulseFrames int `yaml:"pulse_frames"`

	BarBgColor     color.RGBA `yaml:"-"`
	BarFgColor     color.RGBA `yaml:"-"`
	SlotColor      color.RGBA `yaml:"-"`
	SlotEdgeColor  color.RGBA `yaml:"-"`
	SelectedColor  color.RGBA `yaml:"-"`
	CountTextColor color.RGBA `yaml:"-"`
}

// CameraConfig contains screen shake settings
type CameraConfig struct {
	ShakeFrames    int     `yaml:"shake_frames"`
	ShakeIntensity float64 `yaml:"shake_intensity"` // max jitter in pixels
}

// PauseConfig contains pause overlay configuration
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	HintColor    color.RGBA
}

// DebugConfig contains debug visualization settings
type DebugConfig struct {
	SkipMenu bool `yaml:"skip_menu"`
	Enabled  bool `yaml:"enabled"`

	GridColor   color.RGBA `yaml:"-"`
	BoxColor    color.RGBA `yaml:"-"`
	TargetColor color.RGBA `yaml:"-"`
}

// Config is the viewport size
type Config struct {
	Width  int
	Height int
}

var C *Config
var Player PlayerConfig
var World WorldConfig
var Combat CombatConfig
var Boss BossConfig
var Inventory InventoryConfig
var DeathScreen DeathScreenConfig
var HUD HUDConfig
var Camera CameraConfig
var Pause PauseConfig
var Debug DebugConfig

// Common colors
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Gray         = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Player = PlayerConfig{
		Speed:     5,
		FlySpeed:  5,
		Gravity:   3,
		JumpForce: 17,
		Size:      16,

		MaxHealth:        100,
		ArmorMaxHealth:   200,
		ArmorDamageScale: 0.5,
		DamageCooldown:   60,

		HealAmount:   20,
		HealCooldown: 300,

		Color:        color.RGBA{R: 230, G: 200, B: 150, A: 255},
		ArmorColor:   color.RGBA{R: 150, G: 170, B: 200, A: 255},
		JetpackColor: BrightOrange,
	}

	World = WorldConfig{
		TileSize: 32,
		Columns:  160,
		Rows:     60,
		Seed:     1,

		SurfaceLevel:     0.35,
		SurfaceAmplitude: 8,
		DirtDepth:        4,
		CaveThreshold:    0.68,
		TreeChance:       0.08,
		ChasmWidth:       4,

		SkyColor: color.RGBA{R: 120, G: 180, B: 240, A: 255},
	}

	Combat = CombatConfig{
		Reach:           4,
		PickaxeCooldown: 12,
		SwordCooldown:   20,
		SwordDamage:     25,
		SwordRange:      24,
		BowCooldown:     30,
		ArrowSpeed:      8,
		ArrowDamage:     15,
		ArrowLifetime:   120,
		ArrowLength:     12,

		ArrowColor: color.RGBA{R: 90, G: 60, B: 30, A: 255},
		SwingColor: color.RGBA{R: 255, G: 255, B: 255, A: 140},
	}

	Boss = BossConfig{
		Size:          16,
		Speed:         2,
		Gravity:       3,
		JumpForce:     15,
		MaxHealth:     300,
		ContactDamage: 10,
		SpawnDistance: 6,
		DropItem:      "mob-meat",
		DropCount:     3,
		HurtFlash:     12,

		Color:     color.RGBA{R: 90, G: 20, B: 110, A: 255},
		HurtColor: White,
	}

	Inventory = InventoryConfig{
		Slots:    10,
		MaxStack: 64,
		StartingItems: []ItemStack{
			{Name: "pickaxe", Count: 1},
			{Name: "sword", Count: 1},
			{Name: "bow", Count: 1},
			{Name: "dirt", Count: 32},
			{Name: "planks", Count: 16},
			{Name: "mob-meat", Count: 3},
			{Name: "armor", Count: 1},
			{Name: "jetpack", Count: 1},
			{Name: "cursed-idol", Count: 1},
		},
	}

	DeathScreen = DeathScreenConfig{
		Title:      "YOU DIED",
		Hint:       "Press R to respawn",
		FadeFrames: 45,

		OverlayColor: color.RGBA{R: 60, G: 0, B: 0, A: 200},
		TitleColor:   LightRed,
		HintColor:    White,
	}

	HUD = HUDConfig{
		Margin:      10,
		BarWidth:    130,
		BarHeight:   13,
		SlotSize:    24,
		SlotGap:     4,
		PulseFrames: 40,

		BarBgColor:     color.RGBA{R: 40, G: 40, B: 40, A: 255},
		BarFgColor:     color.RGBA{R: 40, G: 220, B: 40, A: 255},
		SlotColor:      color.RGBA{R: 30, G: 30, B: 30, A: 200},
		SlotEdgeColor:  color.RGBA{R: 90, G: 90, B: 90, A: 255},
		SelectedColor:  Yellow,
		CountTextColor: White,
	}

	Camera = CameraConfig{
		ShakeFrames:    12,
		ShakeIntensity: 4,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		HintColor:    Gray,
	}

	Debug = DebugConfig{
		GridColor:   color.RGBA{R: 255, G: 255, B: 255, A: 40},
		BoxColor:    color.RGBA{R: 255, G: 0, B: 255, A: 200},
		TargetColor: BrightGreen,
	}
}
