package config

// AliasEntry is a single first-token replacement applied to the
// already-translated (Latin) command line: when the submitted line's
// first whitespace-delimited token equals Source, it is replaced with
// Latin before the line reaches the shell.
type AliasEntry struct {
	Source string `yaml:"source"`
	Latin  string `yaml:"latin"`
}

type ShellConfig struct {
	Exec string   `yaml:"exec"`
	Args []string `yaml:"args"`
}

type OutputConfig struct {
	Translate bool `yaml:"translate"`
}

type BreakConfig struct {
	Enabled bool   `yaml:"enabled"`
	With    string `yaml:"with"`
}

type DurationConfig struct {
	MinElapsedTimeMS int `yaml:"min_elapsed_time"`
}

type RCConfig struct {
	OK    string `yaml:"ok"`
	Error string `yaml:"error"`
}

type GitConfig struct {
	Branch        bool   `yaml:"branch"`
	CommitRefLen  int    `yaml:"commit_ref_len"`
	CommitPrepend string `yaml:"commit_prepend"`
	CommitAppend  string `yaml:"commit_append"`
}

type PromptConfig struct {
	PromptLine  string         `yaml:"prompt_line"`
	HistorySize int            `yaml:"history_size"`
	Translate   bool           `yaml:"translate"`
	Break       BreakConfig    `yaml:"break"`
	Duration    DurationConfig `yaml:"duration"`
	RC          RCConfig       `yaml:"rc"`
	Git         GitConfig      `yaml:"git"`
}

// Config is the typed mirror of pyc.yml (spec.md §6). It is produced by
// the (out-of-core) config adapter and consumed read-only by the runtime
// driver and the components it owns.
type Config struct {
	Language string       `yaml:"language"`
	Shell    ShellConfig  `yaml:"shell"`
	Alias    []AliasEntry `yaml:"alias"`
	Output   OutputConfig `yaml:"output"`
	Prompt   PromptConfig `yaml:"prompt"`
}
