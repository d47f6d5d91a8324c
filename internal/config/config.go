package config

// DefaultSeedPath is the résumé file used when CVBUILDER_SEED is unset
const DefaultSeedPath = "~/cv.yaml"

// Config is the root application configuration.
type Config struct {
	Seed   string       `yaml:"seed"     env:"CVBUILDER_SEED" env-default:"~/cv.yaml"`
	Lang   string       `yaml:"language" env:"CVBUILDER_LANG" env-default:"en"`
	AI     AIConfig     `yaml:"ai"`
	Layout LayoutConfig `yaml:"layout"`
	Log    LogConfig    `yaml:"log"`
}

// AIConfig holds the claude CLI settings used for summaries.
type AIConfig struct {
	Model  string `yaml:"model"  env:"CVBUILDER_AI_MODEL"  env-default:"haiku"`
	Binary string `yaml:"binary" env:"CVBUILDER_AI_BINARY" env-default:"claude"`
}

// LayoutConfig holds the initial presentation settings.
type LayoutConfig struct {
	Template string `yaml:"template"  env:"CVBUILDER_TEMPLATE"  env-default:"professional"`
	FontSize string `yaml:"font_size" env:"CVBUILDER_FONT_SIZE" env-default:"md"`
	Align    string `yaml:"align"     env:"CVBUILDER_ALIGN"     env-default:"left"`
	Accent   string `yaml:"accent"    env:"CVBUILDER_ACCENT"    env-default:"#0369a1"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"CVBUILDER_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"CVBUILDER_LOG_FORMAT" env-default:"text"`
	File   string `yaml:"file"   env:"CVBUILDER_LOG_FILE"`
}
