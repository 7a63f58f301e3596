// Package cli implements the interactive mood pipelines: read context,
// classify it, search the catalog and print recommendations.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/justestif/moodtunes/internal/config"
	"github.com/justestif/moodtunes/internal/mood"
	"github.com/justestif/moodtunes/internal/recommend"
	"github.com/justestif/moodtunes/internal/spotify"
)

// Prompts shown to the user.
const (
	PromptPeriodDay = "Enter the date of your last period (DD) from last month: "
	PromptLanguage  = "Enter preferred language (e.g., English, Spanish, leave blank for any): "
	PromptEra       = "Enter preferred era (e.g., pre-2000 for retro, 2000-2024 for current, leave blank for any): "
	PromptGenre     = "Enter preferred genre (e.g., Pop, Rock, leave blank for any): "
	PromptArtist    = "Enter preferred artist (leave blank for any): "
)

// PromptWeather lists the recognized conditions as examples.
var PromptWeather = weatherPrompt()

func weatherPrompt() string {
	names := make([]string, len(mood.Conditions))
	for i, c := range mood.Conditions {
		names[i] = string(c)
	}
	return fmt.Sprintf("How is the weather today (e.g., %s)? ", strings.Join(names, ", "))
}

// Connector builds a catalog searcher from validated configuration.
type Connector func(ctx context.Context, cfg *config.Config) (recommend.Searcher, error)

// ConfigLoader loads configuration from a path.
type ConfigLoader func(path string) (*config.Config, error)

// Runner runs the cycle and weather pipelines against one input and output.
type Runner struct {
	prompt     *prompter
	out        io.Writer
	configPath string
	loadConfig ConfigLoader
	connect    Connector
	now        func() time.Time
	logger     *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithConfigPath sets the config file to load.
func WithConfigPath(path string) Option {
	return func(r *Runner) {
		r.configPath = path
	}
}

// WithConfigLoader replaces config.Load.
func WithConfigLoader(load ConfigLoader) Option {
	return func(r *Runner) {
		r.loadConfig = load
	}
}

// WithConnector replaces the Spotify connector.
func WithConnector(connect Connector) Option {
	return func(r *Runner) {
		r.connect = connect
	}
}

// WithClock sets the time source used for cycle calculations.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}

// WithLogger sets the diagnostic logger. Diagnostics never go to out.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a Runner reading answers from in and printing to out.
func NewRunner(in io.Reader, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		prompt:     newPrompter(in, out),
		out:        out,
		configPath: config.DefaultPath,
		loadConfig: config.Load,
		now:        time.Now,
		logger:     zap.NewNop(),
	}
	r.connect = r.connectSpotify
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunCycle runs the cycle pipeline. Failures are printed, not returned.
func (r *Runner) RunCycle(ctx context.Context) {
	r.report(r.cycle(ctx, r.runLogger("cycle")))
}

// RunWeather runs the weather pipeline. Failures are printed, not returned.
func (r *Runner) RunWeather(ctx context.Context) {
	r.report(r.weather(ctx, r.runLogger("weather")))
}

func (r *Runner) runLogger(pipeline string) *zap.Logger {
	return r.logger.With(zap.String("pipeline", pipeline), zap.String("run_id", uuid.NewString()))
}

func (r *Runner) report(err error) {
	if err == nil {
		return
	}
	r.logger.Debug("pipeline failed", zap.Stringer("kind", recommend.KindOf(err)), zap.Error(err))
	fmt.Fprintln(r.out, recommend.Message(err))
}

func (r *Runner) cycle(ctx context.Context, logger *zap.Logger) error {
	cfg, err := r.config()
	if err != nil {
		return err
	}

	day, err := r.prompt.ask(PromptPeriodDay)
	if err != nil {
		return recommend.InputError("reading period date", err)
	}

	now := r.now()
	start, err := mood.PeriodStart(day, now)
	if err != nil {
		return recommend.InputError("parsing period date", err)
	}

	phase := mood.PhaseAt(start, now)
	m := mood.PhaseMood(phase)
	logger.Debug("classified cycle",
		zap.Time("period_start", start),
		zap.Int("cycle_day", mood.CycleDay(start, now)),
		zap.Stringer("phase", phase),
		zap.Stringer("mood", m),
	)
	fmt.Fprintf(r.out, "Your current cycle phase is '%s', so the mood is '%s'.\n", phase, m)

	prefs, err := r.preferences()
	if err != nil {
		return recommend.InputError("reading preferences", err)
	}

	return r.recommend(ctx, logger, cfg, m, prefs)
}

func (r *Runner) weather(ctx context.Context, logger *zap.Logger) error {
	cfg, err := r.config()
	if err != nil {
		return err
	}

	label, err := r.prompt.ask(PromptWeather)
	if err != nil {
		return recommend.InputError("reading weather", err)
	}

	m := mood.WeatherMood(mood.WeatherCondition(label))
	logger.Debug("classified weather", zap.String("condition", label), zap.Stringer("mood", m))
	fmt.Fprintf(r.out, "The mood based on the weather is '%s'.\n", m)

	return r.recommend(ctx, logger, cfg, m, recommend.Preferences{})
}

func (r *Runner) config() (*config.Config, error) {
	cfg, err := r.loadConfig(r.configPath)
	if err != nil {
		return nil, recommend.ConfigurationError("loading config", err)
	}
	return cfg, nil
}

func (r *Runner) preferences() (recommend.Preferences, error) {
	var prefs recommend.Preferences

	fields := []struct {
		question string
		dst      *string
	}{
		{PromptLanguage, &prefs.Language},
		{PromptEra, &prefs.Era},
		{PromptGenre, &prefs.Genre},
		{PromptArtist, &prefs.Artist},
	}
	for _, f := range fields {
		answer, err := r.prompt.ask(f.question)
		if err != nil {
			return recommend.Preferences{}, err
		}
		*f.dst = answer
	}

	return prefs, nil
}

// recommend connects to the catalog, searches for m and prints the results.
func (r *Runner) recommend(ctx context.Context, logger *zap.Logger, cfg *config.Config, m mood.Mood, prefs recommend.Preferences) error {
	searcher, err := r.connect(ctx, cfg)
	if err != nil {
		return err
	}

	result, err := recommend.NewService(searcher, recommend.WithLogger(logger)).Recommend(ctx, m, prefs)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.out, "\nRecommended Songs:")
	fmt.Fprint(r.out, recommend.FormatTracks(result.Tracks))
	return nil
}

func (r *Runner) connectSpotify(ctx context.Context, cfg *config.Config) (recommend.Searcher, error) {
	return spotify.Connect(ctx, cfg, r.logger)
}
