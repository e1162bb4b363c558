package prompter

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
)

// StyleResolver maps a semantic role to the Style used to render it. Keys
// match PROMPTER_COLORS's two-letter codes (§6): cu=cursor/indicator,
// be=box element, bd=disabled, pr=prompt marker, me=message, an=answer
// echo, se=selected row, cb=checkbox.
type StyleResolver struct {
	Cursor   Style
	Box      Style
	Disabled Style
	Marker   Style
	Message  Style
	Answer   Style
	Selected Style
	Checkbox Style
}

// DefaultDarkResolver mirrors the teacher's ThemeDark role assignments.
func DefaultDarkResolver() StyleResolver {
	return StyleResolver{
		Cursor:   Style{FG: BrightCyan},
		Box:      Style{FG: White},
		Disabled: Style{FG: BrightBlack},
		Marker:   Style{FG: BrightGreen},
		Message:  Style{FG: White},
		Answer:   Style{FG: BrightCyan},
		Selected: Style{FG: BrightCyan},
		Checkbox: Style{FG: BrightCyan},
	}
}

// MonochromeResolver is used automatically when the terminal's color
// profile degrades to ascii/no-tty, mirroring the teacher's ThemeMonochrome.
func MonochromeResolver() StyleResolver {
	return StyleResolver{
		Cursor:   Style{Attr: AttrBold},
		Box:      Style{},
		Disabled: Style{Attr: AttrDim},
		Marker:   Style{Attr: AttrBold},
		Message:  Style{},
		Answer:   Style{Attr: AttrBold},
		Selected: Style{Attr: AttrUnderline},
		Checkbox: Style{Attr: AttrBold},
	}
}

// field returns the Style field named by a PROMPTER_COLORS key on r.
func (r *StyleResolver) field(key string) *Style {
	switch key {
	case "cu":
		return &r.Cursor
	case "be":
		return &r.Box
	case "bd":
		return &r.Disabled
	case "pr":
		return &r.Marker
	case "me":
		return &r.Message
	case "an":
		return &r.Answer
	case "se":
		return &r.Selected
	case "cb":
		return &r.Checkbox
	default:
		return nil
	}
}

// ApplyEnvOverrides parses PROMPTER_COLORS ("key=value" pairs separated by
// ':') and overrides the matching roles' foreground color. Unknown keys and
// malformed entries are ignored, matching the teacher's tolerant config
// parsing elsewhere in the codebase. A plain stdlib strings.Split suffices
// here; a config-file library would be overkill for an 8-pair env var.
func (r *StyleResolver) ApplyEnvOverrides(value string) {
	if value == "" {
		return
	}
	for _, pair := range strings.Split(value, ":") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		field := r.field(strings.TrimSpace(k))
		if field == nil {
			continue
		}
		if c, ok := parseColorValue(strings.TrimSpace(v)); ok {
			field.FG = c
		}
	}
}

// parseColorValue accepts a basic color name or a 0-15 palette index.
func parseColorValue(v string) (Color, bool) {
	if n, err := strconv.Atoi(v); err == nil {
		if n >= 0 && n <= 15 {
			return BasicColor(uint8(n)), true
		}
		return Color{}, false
	}
	switch strings.ToLower(v) {
	case "black":
		return Black, true
	case "red":
		return Red, true
	case "green":
		return Green, true
	case "yellow":
		return Yellow, true
	case "blue":
		return Blue, true
	case "magenta":
		return Magenta, true
	case "cyan":
		return Cyan, true
	case "white":
		return White, true
	case "brightblack":
		return BrightBlack, true
	case "brightred":
		return BrightRed, true
	case "brightgreen":
		return BrightGreen, true
	case "brightyellow":
		return BrightYellow, true
	case "brightblue":
		return BrightBlue, true
	case "brightmagenta":
		return BrightMagenta, true
	case "brightcyan":
		return BrightCyan, true
	case "brightwhite":
		return BrightWhite, true
	}
	return Color{}, false
}

// Config holds the prompter's platform/style defaults (spec §6).
type Config struct {
	Indicator             string
	UncheckedBox          string
	CheckedBox            string
	Unavailable           string
	CancellableFirstPrompt bool
	Resolver              StyleResolver
}

// DefaultConfig selects Unix or Windows glyph sets by runtime.GOOS, detects
// the terminal's color profile via colorprofile.Detect, degrades to
// MonochromeResolver on ascii/no-tty terminals, and applies any
// PROMPTER_COLORS override.
func DefaultConfig() Config {
	cfg := Config{CancellableFirstPrompt: true}

	if runtime.GOOS == "windows" {
		cfg.Indicator = ">"
		cfg.UncheckedBox = "( )"
		cfg.CheckedBox = "(x)"
		cfg.Unavailable = "( )"
	} else {
		cfg.Indicator = "❯"
		cfg.UncheckedBox = "◯ "
		cfg.CheckedBox = "◉ "
		cfg.Unavailable = "⊝ "
	}

	profile := ResolveColorProfile(os.Environ())
	if profile <= colorprofile.Ascii {
		cfg.Resolver = MonochromeResolver()
	} else {
		cfg.Resolver = DefaultDarkResolver()
	}

	cfg.Resolver.ApplyEnvOverrides(os.Getenv("PROMPTER_COLORS"))
	return cfg
}

// IsInteractiveTTY reports whether fd is an interactive terminal, used to
// decide whether to enter raw mode at all (spec §6). Platform glyph
// defaults are chosen by runtime.GOOS in DefaultConfig, not by this check.
func IsInteractiveTTY(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
