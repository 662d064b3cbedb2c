package config

// Config describes a questionnaire setup.
type Config struct {
	Version    int      `yaml:"version"`
	Questions  string   `yaml:"questions"`
	Results    string   `yaml:"results"`
	Categories []string `yaml:"categories"`
	Separator  string   `yaml:"separator"`
	UI         string   `yaml:"ui"`

	// BaseDir anchors relative paths; it is not read from the file.
	BaseDir string `yaml:"-"`
	// Path is the config file the values came from, empty for defaults.
	Path string `yaml:"-"`
}

// Defaults used when no config file or value is present.
const (
	DefaultQuestionsFile = "questions.json"
	DefaultResultsFile   = "results.json"
	DefaultSeparator     = "/"
	DefaultUIMode        = "auto"
)

// DefaultCategories is the pet category set, in tie-break order.
var DefaultCategories = []string{"cat", "dog", "rabbit", "fish"}

// Default returns the built-in config anchored at baseDir.
func Default(baseDir string) Config {
	cfg := Config{Version: 1, BaseDir: baseDir}
	Normalize(&cfg)
	return cfg
}
