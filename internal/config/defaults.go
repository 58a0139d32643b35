package config

// applyDefaults fills zero-valued fields of cfg with pyc's documented
// defaults. Mirrors the teacher's applyDefaults shape: a pure function
// over a value-typed config, not a mutation of a shared global.
func applyDefaults(cfg Config) Config {
	if cfg.Language == "" {
		cfg.Language = "ru"
	}

	if cfg.Shell.Exec == "" {
		cfg.Shell.Exec = "/bin/sh"
	}

	if cfg.Prompt.PromptLine == "" {
		cfg.Prompt.PromptLine = "${KGRN}${USER}${KRST}@${KBLU}${HOSTNAME}${KRST}:${KYEL}${WRKDIR}${KRST} ${RC} "
	}
	if cfg.Prompt.HistorySize <= 0 {
		cfg.Prompt.HistorySize = 256
	}
	if cfg.Prompt.Duration.MinElapsedTimeMS <= 0 {
		cfg.Prompt.Duration.MinElapsedTimeMS = 2000
	}
	if cfg.Prompt.RC.OK == "" {
		cfg.Prompt.RC.OK = "❯"
	}
	if cfg.Prompt.RC.Error == "" {
		cfg.Prompt.RC.Error = "✗"
	}
	if cfg.Prompt.Git.CommitRefLen <= 0 {
		cfg.Prompt.Git.CommitRefLen = 7
	}

	return cfg
}
