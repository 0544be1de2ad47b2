package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"gorm.io/gorm"

	"mediashelf/database"
	"mediashelf/internal/auth"
	"mediashelf/internal/config"
	"mediashelf/internal/httpapi/models"
	"mediashelf/internal/httpapi/repository"
)

// Bootstraps the admin account from ADMIN_EMAIL / ADMIN_PASSWORD and, when
// the catalog is empty, loads a handful of approved starter entries.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("could not load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seedAdmin(ctx, db, cfg, logger); err != nil {
		logger.Error("admin seed failed", "error", err)
		os.Exit(1)
	}

	if err := seedCatalog(ctx, db, logger); err != nil {
		logger.Error("catalog seed failed", "error", err)
		os.Exit(1)
	}

	logger.Info("seed complete")
}

func seedAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	if cfg.AdminPassword == "" {
		logger.Warn("ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(db)
	existing, err := userRepo.FindByEmail(ctx, cfg.AdminEmail)
	switch {
	case err == nil:
		existing.Password = hash
		existing.Role = models.RoleAdmin
		existing.Disabled = false
		if err := userRepo.Update(ctx, existing); err != nil {
			return err
		}
		logger.Info("admin account updated", "email", cfg.AdminEmail)
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin := &models.User{
			Email:    cfg.AdminEmail,
			Name:     "Administrator",
			Password: hash,
			Role:     models.RoleAdmin,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			return err
		}
		logger.Info("admin account created", "email", cfg.AdminEmail)
	default:
		return err
	}
	return nil
}

func seedCatalog(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	mediaRepo := repository.NewMediaRepository(db)

	count, err := mediaRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("catalog not empty, skipping starter entries", "count", count)
		return nil
	}

	for _, m := range starterCatalog() {
		entry := m
		if err := mediaRepo.Create(ctx, &entry); err != nil {
			return err
		}
	}
	logger.Info("starter catalog loaded", "entries", len(starterCatalog()))
	return nil
}

func starterCatalog() []models.Media {
	return []models.Media{
		{
			Type:        models.MediaTypeMovie,
			Title:       "Blade Runner",
			Creator:     "Ridley Scott",
			Genre:       ptr("Science Fiction"),
			Description: ptr("A blade runner must pursue and terminate four replicants hiding in Los Angeles."),
			ReleaseDate: date(1982, 6, 25),
			Status:      models.MediaStatusApproved,
		},
		{
			Type:        models.MediaTypeMovie,
			Title:       "Spirited Away",
			Creator:     "Hayao Miyazaki",
			Genre:       ptr("Animation"),
			Description: ptr("A young girl wanders into a world ruled by gods, witches and spirits."),
			ReleaseDate: date(2001, 7, 20),
			Status:      models.MediaStatusApproved,
		},
		{
			Type:        models.MediaTypeMusic,
			Title:       "Kind of Blue",
			Creator:     "Miles Davis",
			Genre:       ptr("Jazz"),
			Description: ptr("The best-selling jazz record of all time."),
			ReleaseDate: date(1959, 8, 17),
			Status:      models.MediaStatusApproved,
		},
		{
			Type:        models.MediaTypeMusic,
			Title:       "OK Computer",
			Creator:     "Radiohead",
			Genre:       ptr("Alternative Rock"),
			Description: ptr("Radiohead's third studio album."),
			ReleaseDate: date(1997, 5, 21),
			Status:      models.MediaStatusApproved,
		},
		{
			Type:        models.MediaTypeGame,
			Title:       "Hollow Knight",
			Creator:     "Team Cherry",
			Genre:       ptr("Metroidvania"),
			Description: ptr("Explore twisting caverns, battle tainted creatures and befriend bizarre bugs."),
			ReleaseDate: date(2017, 2, 24),
			Status:      models.MediaStatusApproved,
		},
		{
			Type:        models.MediaTypeGame,
			Title:       "Outer Wilds",
			Creator:     "Mobius Digital",
			Genre:       ptr("Adventure"),
			Description: ptr("An open world mystery about a solar system trapped in an endless time loop."),
			ReleaseDate: date(2019, 5, 28),
			Status:      models.MediaStatusApproved,
		},
	}
}

func ptr(s string) *string {
	return &s
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
