package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jwulff/diabeyes-go/internal/bloodsugar"
	"github.com/jwulff/diabeyes-go/internal/config"
	"github.com/jwulff/diabeyes-go/internal/domain"
	"github.com/jwulff/diabeyes-go/internal/logger"
	"github.com/jwulff/diabeyes-go/internal/profile"
	"github.com/jwulff/diabeyes-go/internal/render"
	"github.com/jwulff/diabeyes-go/internal/storage"
	"github.com/jwulff/diabeyes-go/internal/storage/redis"
	"github.com/jwulff/diabeyes-go/internal/storage/sqlite"
)

// commandTimeout bounds store access for a single CLI command.
const commandTimeout = 10 * time.Second

func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		return sqlite.NewFileStore(cfg.DBPath)
	case config.StoreMemory:
		return sqlite.NewMemoryStore()
	case config.StoreRedis:
		return redis.NewStore(ctx, cfg.RedisAddr, cfg.RedisNamespace)
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// withProfiles opens the configured store for the duration of fn.
func withProfiles(cfg config.Config, log *logger.Logger, fn func(ctx context.Context, profiles *profile.Store) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.AdviceTimeout+commandTimeout)
	defer cancel()

	kv, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer kv.Close()

	return fn(ctx, profile.NewStore(kv, profile.WithKey(cfg.ProfileKey), profile.WithLogger(log)))
}

func profileCommand(w io.Writer, cfg config.Config, log *logger.Logger, text *render.Text, args []string) error {
	const usage = usageError("Usage: diabeyes profile <show|set|save|reset>")
	if len(args) < 1 {
		return usage
	}

	return withProfiles(cfg, log, func(ctx context.Context, profiles *profile.Store) error {
		switch args[0] {
		case "show":
			p, err := profiles.Get(ctx)
			if err != nil {
				return fmt.Errorf("read profile: %w", err)
			}
			fmt.Fprint(w, text.Profile(p))
		case "set":
			if len(args) < 3 {
				return usageError("Usage: diabeyes profile set <name|age|gender|height|weight|glucose|vegetarian|exercise|goal> <value>")
			}
			p, err := setField(ctx, profiles, args[1], strings.Join(args[2:], " "))
			if err != nil {
				return fmt.Errorf("update profile: %w", err)
			}
			fmt.Fprint(w, text.Profile(p))
		case "save":
			return saveProfile(ctx, w, profiles, text)
		case "reset":
			if _, err := profiles.Reset(ctx); err != nil {
				return fmt.Errorf("reset profile: %w", err)
			}
			fmt.Fprintln(w, "Profile deleted.")
		default:
			return usage
		}
		return nil
	})
}

func saveProfile(ctx context.Context, w io.Writer, profiles *profile.Store, text *render.Text) error {
	p, err := profiles.Get(ctx)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	if p == nil {
		p = domain.NewHealthProfile()
	}

	saved, err := profiles.Save(ctx, p)
	if domain.IsValidationError(err) {
		fmt.Fprintf(w, "Profile not saved: %v\n", err)
		fmt.Fprintln(w, "Set the missing fields with 'diabeyes profile set <field> <value>'.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	fmt.Fprint(w, text.Profile(saved))
	return nil
}

// setField applies a single CLI field edit.
func setField(ctx context.Context, profiles *profile.Store, field, value string) (*domain.HealthProfile, error) {
	var u domain.ProfileUpdate

	field = strings.ToLower(field)
	switch field {
	case "name":
		u.Name = &value
	case "age":
		age, err := strconv.Atoi(value)
		if err != nil || age <= 0 {
			return nil, fmt.Errorf("age must be a positive whole number, got %q", value)
		}
		u.Age = &age
	case "gender":
		g := strings.ToLower(value)
		u.Gender = &g
	case "height", "weight":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("%s must be a positive number, got %q", field, value)
		}
		if field == "height" {
			u.Height = &v
		} else {
			u.Weight = &v
		}
	case "vegetarian":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("vegetarian must be true or false, got %q", value)
		}
		u.IsVegetarian = &b
	case "glucose":
		level, err := bloodsugar.ParseReading(value)
		if err != nil {
			return nil, err
		}
		return profiles.RecordGlucose(ctx, level)
	case "exercise", "goal":
		return toggleList(ctx, profiles, field, value)
	default:
		return nil, fmt.Errorf("unknown profile field %q", field)
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}
	return profiles.Update(ctx, u)
}

// toggleList flips an exercise preference or management goal.
func toggleList(ctx context.Context, profiles *profile.Store, field, value string) (*domain.HealthProfile, error) {
	p, err := profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = domain.NewHealthProfile()
	}

	var u domain.ProfileUpdate
	if field == "exercise" {
		p.ToggleExercisePreference(value)
		u.ExercisePreferences = &p.ExercisePreferences
	} else {
		p.ToggleDiabetesGoal(value)
		u.DiabetesManagementGoals = &p.DiabetesManagementGoals
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return profiles.Update(ctx, u)
}
