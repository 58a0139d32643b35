// Package prompt renders Pyc's configurable prompt line: template
// token expansion, color keys, git status keys, and an optional
// re-translation pass (spec.md §4.D).
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nick/pyc/internal/config"
	"github.com/nick/pyc/internal/ioproc"
	"github.com/nick/pyc/internal/translit"
)

// Renderer expands the configured prompt template for each command
// cycle.
type Renderer struct {
	cfg  config.PromptConfig
	lang translit.Language
	proc *ioproc.Processor
}

// New builds a Renderer bound to the given prompt config and language.
func New(cfg config.PromptConfig, lang translit.Language) *Renderer {
	return &Renderer{cfg: cfg, lang: lang, proc: ioproc.New(lang)}
}

// Input carries the values the runtime knows that the template cannot
// derive on its own.
type Input struct {
	User     string
	Hostname string
	Wrkdir   string
	ExitCode int
	Elapsed  time.Duration
	HasRun   bool // false before any command has completed this session
}

// Render expands the prompt template against in, appends the
// configured break line, and returns the full string ready to write to
// the terminal.
func (r *Renderer) Render(in Input) string {
	cache := newRepoCache(in.Wrkdir)
	line := r.expand(r.cfg.PromptLine, in, cache)

	if r.cfg.Translate {
		line = r.proc.TextToSource(line)
	}

	if r.cfg.Break.Enabled {
		line += "\n" + r.cfg.Break.With
	}

	return line
}

// expand scans for ${KEY} tokens and substitutes resolved values,
// tracking the currently active color so that plain literal runs
// between color tokens are rendered through that color (mirrors the
// teacher's colorToLipgloss + lipgloss.NewStyle().Render pattern).
func (r *Renderer) expand(tpl string, in Input, cache *repoCache) string {
	var out strings.Builder
	color := ""

	emit := func(s string) {
		if color == "" || s == "" {
			out.WriteString(s)
			return
		}
		out.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s))
	}

	i := 0
	for i < len(tpl) {
		start := strings.Index(tpl[i:], "${")
		if start < 0 {
			emit(tpl[i:])
			break
		}
		start += i
		emit(tpl[i:start])

		end := strings.Index(tpl[start:], "}")
		if end < 0 {
			emit(tpl[start:])
			break
		}
		end += start

		key := tpl[start+2 : end]
		i = end + 1

		if code, ok := colorKeys[key]; ok {
			color = code
			continue
		}
		if key == "KRST" {
			color = ""
			continue
		}

		emit(r.resolve(key, in, cache))
	}

	return out.String()
}

func (r *Renderer) resolve(key string, in Input, cache *repoCache) string {
	switch key {
	case "USER":
		return in.User
	case "HOSTNAME":
		return in.Hostname
	case "WRKDIR":
		return in.Wrkdir
	case "LANG":
		return r.renderLangFlag()
	case "CMD_TIME":
		return r.renderCmdTime(in)
	case "RC":
		return r.renderRC(in)
	case "GIT_BRANCH":
		if !r.cfg.Git.Branch {
			return ""
		}
		return cache.branch()
	case "GIT_COMMIT":
		return r.renderCommit(cache)
	default:
		return ""
	}
}

// renderLangFlag paints each character of the language label with a
// color from its country flag (spec.md §4.D).
func (r *Renderer) renderLangFlag() string {
	label := r.lang.Label()
	colors := flagColors[r.lang]
	if len(colors) == 0 {
		return label
	}
	var out strings.Builder
	i := 0
	for _, ch := range label {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i%len(colors)]))
		out.WriteString(style.Render(string(ch)))
		i++
	}
	return out.String()
}

func (r *Renderer) renderCmdTime(in Input) string {
	if !in.HasRun || in.Elapsed < time.Duration(r.cfg.Duration.MinElapsedTimeMS)*time.Millisecond {
		return ""
	}
	return fmt.Sprintf("%.1fs", in.Elapsed.Seconds())
}

func (r *Renderer) renderRC(in Input) string {
	if !in.HasRun {
		return ""
	}
	if in.ExitCode == 0 {
		return r.cfg.RC.OK
	}
	return r.cfg.RC.Error
}

// renderCommit truncates the commit hash to commit_ref_len, clamped to
// the hash's own length, and wraps it with the configured
// prepend/append strings (spec.md §9 decision 2).
func (r *Renderer) renderCommit(cache *repoCache) string {
	hash := cache.commit()
	if hash == "" {
		return ""
	}
	n := r.cfg.Git.CommitRefLen
	if n > len(hash) {
		n = len(hash)
	}
	if n < 0 {
		n = 0
	}
	return r.cfg.Git.CommitPrepend + hash[:n] + r.cfg.Git.CommitAppend
}
