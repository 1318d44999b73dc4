// Package main is the entry point for the diabeyes application.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/jwulff/diabeyes-go/internal/advice"
	"github.com/jwulff/diabeyes-go/internal/advisor"
	"github.com/jwulff/diabeyes-go/internal/bloodsugar"
	"github.com/jwulff/diabeyes-go/internal/config"
	"github.com/jwulff/diabeyes-go/internal/domain"
	"github.com/jwulff/diabeyes-go/internal/logger"
	"github.com/jwulff/diabeyes-go/internal/profile"
	"github.com/jwulff/diabeyes-go/internal/render"
	"github.com/jwulff/diabeyes-go/internal/server"
)

// usageError is printed as-is, without the "Error:" prefix.
type usageError string

func (e usageError) Error() string { return string(e) }

func main() {
	if len(os.Args) < 2 {
		showUsage(os.Stdout)
		return
	}
	os.Exit(run(os.Args[1:]))
}

// run executes one command and returns the process exit code. Deferred
// cleanup runs before main exits.
func run(args []string) int {
	cfg := config.Load()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Printf("Error: could not build logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	text := render.NewText(isTerminal(os.Stdout))
	if err := dispatch(os.Stdout, cfg, log, text, args); err != nil {
		report(os.Stdout, err)
		return 1
	}
	return 0
}

func dispatch(w io.Writer, cfg config.Config, log *logger.Logger, text *render.Text, args []string) error {
	cmd, args := args[0], args[1:]

	switch cmd {
	case "classify":
		if len(args) < 1 {
			return usageError("Usage: diabeyes classify <level> [diet|insight]")
		}
		return classify(w, text, args)
	case "diet":
		return dietPlan(w, cfg, log, text, args)
	case "exercise":
		if len(args) < 1 {
			return usageError("Usage: diabeyes exercise <level>")
		}
		return exercisePlan(w, text, args[0])
	case "insights":
		return insights(w, cfg, log, text, args)
	case "finding":
		if len(args) < 1 {
			return usageError("Usage: diabeyes finding <No_DR|Mild|Moderate|Severe|Proliferate_DR>")
		}
		return finding(w, text, strings.Join(args, " "))
	case "suggest":
		if len(args) < 2 {
			return usageError("Usage: diabeyes suggest <cardio|strength|flexibility|balance|high-intensity> <minutes>")
		}
		return suggest(w, cfg, log, args[0], args[1])
	case "chat":
		if len(args) < 1 {
			return usageError("Usage: diabeyes chat <message>")
		}
		return chat(w, args)
	case "profile":
		return profileCommand(w, cfg, log, text, args)
	case "serve":
		return serve(w, cfg, log)
	default:
		showUsage(w)
		return nil
	}
}

// report prints a command failure, listing the accepted values when a
// profile field was rejected.
func report(w io.Writer, err error) {
	var usage usageError
	if errors.As(err, &usage) {
		fmt.Fprintln(w, usage)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for _, f := range verr.Fields {
		switch f {
		case domain.FieldGender:
			fmt.Fprintf(w, "  gender: one of %s\n", strings.Join(domain.Genders, ", "))
		case domain.FieldExercisePreferences:
			fmt.Fprintf(w, "  exercise: one of %s\n", strings.Join(domain.ExerciseTypes, ", "))
		case domain.FieldDiabetesManagementGoals:
			fmt.Fprintf(w, "  goal: one of %s\n", strings.Join(domain.DiabetesGoals, ", "))
		}
	}
}

func showUsage(w io.Writer) {
	fmt.Fprintln(w, "Diabeyes - glucose guidance and health profile")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  diabeyes classify <level> [diet|insight]   - Classify a reading in mg/dL")
	fmt.Fprintln(w, "  diabeyes diet [level]                      - Daily diet plan (defaults to the stored reading)")
	fmt.Fprintln(w, "  diabeyes exercise <level>                  - Exercise tier for a reading")
	fmt.Fprintln(w, "  diabeyes insights [level] [iop] [nephro]   - Health insights (level defaults to the stored reading)")
	fmt.Fprintln(w, "  diabeyes finding <label>                   - Advice for a retinal classifier finding")
	fmt.Fprintln(w, "  diabeyes suggest <type> <minutes>          - Ask the advice service for exercises")
	fmt.Fprintln(w, "  diabeyes chat <message>                    - Talk to the support bot")
	fmt.Fprintln(w, "  diabeyes profile show                      - Print the stored profile")
	fmt.Fprintln(w, "  diabeyes profile set <field> <value>       - Update one profile field")
	fmt.Fprintln(w, "  diabeyes profile save                      - Validate and save the stored profile")
	fmt.Fprintln(w, "  diabeyes profile reset                     - Delete the stored profile")
	fmt.Fprintln(w, "  diabeyes serve                             - Run the HTTP API")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  DIABEYES_STORE           - sqlite (default), redis or memory")
	fmt.Fprintln(w, "  DIABEYES_DB_PATH         - SQLite file (default diabeyes.db)")
	fmt.Fprintln(w, "  REDIS_ADDR               - Redis address when DIABEYES_STORE=redis")
	fmt.Fprintln(w, "  DIABEYES_ADVICE_URL      - Advice service base URL")
	fmt.Fprintln(w, "  DIABEYES_ADVICE_TIMEOUT  - Advice request timeout (default 15s)")
	fmt.Fprintln(w, "  PORT                     - HTTP port for serve (default 8080)")
}

func parseLevel(raw string) (float64, error) {
	level, err := bloodsugar.ParseReading(raw)
	if err != nil {
		return 0, fmt.Errorf("bad reading: %w", err)
	}
	return level, nil
}

func classify(w io.Writer, text *render.Text, args []string) error {
	level, err := parseLevel(args[0])
	if err != nil {
		return err
	}

	name := ""
	if len(args) > 1 {
		name = args[1]
	}
	p, err := bloodsugar.ParseProfile(name)
	if err != nil {
		return fmt.Errorf("bad profile: %w", err)
	}

	result, err := advisor.Classify(level, p)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}
	fmt.Fprint(w, text.Result(result))
	return nil
}

// storedLevel reads the last-known reading. An unreadable stored value counts
// as absent.
func storedLevel(cfg config.Config, log *logger.Logger) (level float64, ok bool, err error) {
	err = withProfiles(cfg, log, func(ctx context.Context, profiles *profile.Store) error {
		var readErr error
		level, ok, readErr = profiles.GlucoseLevel(ctx)
		if readErr != nil && !bloodsugar.IsInvalidReading(readErr) {
			return fmt.Errorf("read profile: %w", readErr)
		}
		return nil
	})
	return level, ok, err
}

func dietPlan(w io.Writer, cfg config.Config, log *logger.Logger, text *render.Text, args []string) error {
	level := float64(advisor.DefaultDietLevel)
	if len(args) > 0 {
		parsed, err := parseLevel(args[0])
		if err != nil {
			return err
		}
		level = parsed
	} else {
		stored, ok, err := storedLevel(cfg, log)
		if err != nil {
			return err
		}
		if ok {
			level = stored
		}
	}

	plan, err := advisor.DietPlan(level, bloodsugar.DietProfile)
	if err != nil {
		return fmt.Errorf("diet plan: %w", err)
	}
	fmt.Fprint(w, text.DietPlan(plan))
	return nil
}

func exercisePlan(w io.Writer, text *render.Text, raw string) error {
	level, err := parseLevel(raw)
	if err != nil {
		return err
	}
	plan, err := advisor.ExercisePlan(level)
	if err != nil {
		return fmt.Errorf("exercise plan: %w", err)
	}
	fmt.Fprint(w, text.ExercisePlan(plan))
	return nil
}

func insights(w io.Writer, cfg config.Config, log *logger.Logger, text *render.Text, args []string) error {
	var level float64
	if len(args) > 0 {
		parsed, err := parseLevel(args[0])
		if err != nil {
			return err
		}
		level = parsed
	} else {
		stored, ok, err := storedLevel(cfg, log)
		if err != nil {
			return err
		}
		if !ok {
			return usageError("No glucose level stored. Usage: diabeyes insights <level> [iop] [nephropathy]")
		}
		level = stored
	}

	var pressure *float64
	if len(args) > 1 {
		v, err := advisor.ParsePressure(args[1])
		if err != nil {
			return err
		}
		pressure = &v
	}

	var nephropathy *bool
	if len(args) > 2 {
		v, err := strconv.ParseBool(args[2])
		if err != nil {
			return fmt.Errorf("nephropathy must be true or false, got %q", args[2])
		}
		nephropathy = &v
	}

	in, err := advisor.HealthInsights(level, pressure, nephropathy)
	if err != nil {
		return fmt.Errorf("health insights: %w", err)
	}
	fmt.Fprint(w, text.Insights(in))
	return nil
}

func finding(w io.Writer, text *render.Text, label string) error {
	f := advisor.ParseFinding(label)
	fmt.Fprint(w, text.Finding(f, advisor.FindingRecommendations(f)))
	return nil
}

func suggest(w io.Writer, cfg config.Config, log *logger.Logger, exerciseType, rawMinutes string) error {
	minutes, err := strconv.Atoi(rawMinutes)
	if err != nil {
		return fmt.Errorf("bad duration: %w", err)
	}

	return withProfiles(cfg, log, func(ctx context.Context, profiles *profile.Store) error {
		p, err := profiles.Get(ctx)
		if err != nil {
			return fmt.Errorf("read profile: %w", err)
		}

		client := advice.NewClient(cfg.AdviceURL, cfg.AdviceTimeout)
		suggestions, err := advice.SuggestExercises(ctx, client, p, exerciseType, minutes)
		if err != nil {
			if advice.IsTimeout(err) {
				return usageError("The advice service did not answer in time. Try again later.")
			}
			return fmt.Errorf("exercise suggestions: %w", err)
		}

		if len(suggestions) == 0 {
			fmt.Fprintln(w, "No suggestions returned.")
			return nil
		}
		for i, s := range suggestions {
			fmt.Fprintf(w, "  %d. %s - %d min, ~%d kcal\n", i+1, s.Name, s.Duration, s.CaloriesBurned)
		}
		return nil
	})
}

func chat(w io.Writer, args []string) error {
	reply, err := advice.Chat(context.Background(), advice.CannedChat{}, strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("chat: %w", err)
	}
	fmt.Fprintln(w, reply.Text)
	return nil
}

func serve(w io.Writer, cfg config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer kv.Close()

	profiles := profile.NewStore(kv, profile.WithKey(cfg.ProfileKey), profile.WithLogger(log))
	client := advice.NewClient(cfg.AdviceURL, cfg.AdviceTimeout)
	srv := server.New(profiles, client, server.WithLogger(log))

	fmt.Fprintf(w, "Serving on :%s (store: %s). Press Ctrl+C to stop.\n", cfg.Port, cfg.Store)
	if err := srv.ListenAndServe(ctx, ":"+cfg.Port); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	fmt.Fprintln(w, "Stopped.")
	return nil
}

func isTerminal(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
