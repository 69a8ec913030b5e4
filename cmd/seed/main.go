// Command seed loads demo data so the dashboard has something to show.
// It registers a demo account (owner@demo.com / demo123) and a handful
// of projects with documents, bids, change orders, and inspections.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/keelson/sitedesk/internal/config"
	"github.com/keelson/sitedesk/internal/domain/account"
	"github.com/keelson/sitedesk/internal/domain/bid"
	"github.com/keelson/sitedesk/internal/domain/changeorder"
	"github.com/keelson/sitedesk/internal/domain/document"
	"github.com/keelson/sitedesk/internal/domain/inspection"
	"github.com/keelson/sitedesk/internal/domain/project"
	"github.com/keelson/sitedesk/internal/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	if err := seed(context.Background(), db, logger); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	logger.Info("seeding complete", "db", cfg.DB.Path)
}

func seed(ctx context.Context, db *sqlite.DB, logger *slog.Logger) error {
	accounts := account.NewService(sqlite.NewProfileRepository(db), logger)
	projects := project.NewService(sqlite.NewProjectRepository(db), logger)
	documents := document.NewService(sqlite.NewDocumentRepository(db), logger)
	bids := bid.NewService(sqlite.NewBidRepository(db), logger)
	changeOrders := changeorder.NewService(sqlite.NewChangeOrderRepository(db), logger)
	inspections := inspection.NewService(sqlite.NewInspectionRepository(db), logger)

	if _, err := accounts.Register(ctx, account.RegisterRequest{
		Email:    "owner@demo.com",
		Password: "demo123",
		FullName: "John Anderson",
	}); err != nil {
		return fmt.Errorf("registering demo account: %w", err)
	}

	offices, err := projects.Create(ctx, project.CreateRequest{
		Name:        "Downtown Office Complex",
		Description: "Modern 15-story office building with retail space",
		Status:      project.StatusActive,
		Phase:       "Interior Fit-out",
		Location:    "Downtown District",
		Budget:      8_200_000,
		ActualCost:  6_150_000,
		Progress:    75,
		StartDate:   "2024-01-15",
		EndDate:     "2025-06-15",
	})
	if err != nil {
		return err
	}

	tower, err := projects.Create(ctx, project.CreateRequest{
		Name:        "Residential Tower A",
		Description: "25-floor residential tower with amenities",
		Status:      project.StatusActive,
		Phase:       "Structural Work",
		Location:    "Westside",
		Budget:      12_500_000,
		ActualCost:  5_625_000,
		Progress:    45,
		StartDate:   "2023-11-01",
		EndDate:     "2025-12-30",
	})
	if err != nil {
		return err
	}

	if _, err := projects.Create(ctx, project.CreateRequest{
		Name:        "Shopping Center Renovation",
		Description: "Complete renovation of existing shopping center",
		Status:      project.StatusCompleted,
		Phase:       "Completed",
		Location:    "East Mall District",
		Budget:      3_800_000,
		ActualCost:  3_420_000,
		Progress:    100,
		StartDate:   "2024-02-01",
		EndDate:     "2025-04-20",
	}); err != nil {
		return err
	}

	for _, req := range []document.CreateRequest{
		{ProjectID: offices.ID, Name: "Architectural Plans - Level 1-5.pdf", Type: "drawing"},
		{ProjectID: offices.ID, Name: "Structural Specifications.pdf", Type: "specification"},
		{ProjectID: tower.ID, Name: "Site Photo - Foundation Progress.jpg", Type: "photo"},
	} {
		if _, err := documents.Create(ctx, req); err != nil {
			return err
		}
	}

	for _, req := range []bid.CreateRequest{
		{ProjectID: offices.ID, Title: "Electrical Work Package", Status: "sent", Amount: 450_000},
		{ProjectID: offices.ID, Title: "HVAC Installation", Status: "received", Amount: 320_000},
		{ProjectID: tower.ID, Title: "Plumbing Package", Status: "awarded", Amount: 280_000},
	} {
		if _, err := bids.Create(ctx, req); err != nil {
			return err
		}
	}

	for _, req := range []changeorder.CreateRequest{
		{ProjectID: offices.ID, Title: "Additional Electrical Outlets", Status: "approved", Amount: 8_500},
		{ProjectID: offices.ID, Title: "HVAC System Upgrade", Status: "pending", Amount: 15_000},
		{ProjectID: tower.ID, Title: "Foundation Redesign", Status: "rejected", Amount: -5_000},
	} {
		if _, err := changeOrders.Create(ctx, req); err != nil {
			return err
		}
	}

	for _, req := range []inspection.CreateRequest{
		{ProjectID: offices.ID, Title: "Foundation Inspection", Status: "completed", Notes: "Foundation meets all specifications."},
		{ProjectID: offices.ID, Title: "Safety Equipment Check", Status: "pending"},
		{ProjectID: tower.ID, Title: "Electrical Rough-in", Status: "failed", Notes: "Several code violations found."},
	} {
		if _, err := inspections.Create(ctx, req); err != nil {
			return err
		}
	}

	return nil
}
