package main

import (
	"context"
	"fmt"

	"github.com/hnakamura/decksched/internal/card"
	"github.com/hnakamura/decksched/internal/collection"
	"github.com/hnakamura/decksched/internal/config"
	"github.com/hnakamura/decksched/internal/database"
	"github.com/hnakamura/decksched/internal/scheduler"
	"github.com/hnakamura/decksched/internal/srs"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func openCollection(cfg *config.Config) (*collection.Collection, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	return collection.New(db), nil
}

func newScheduler(cfg *config.Config, col *collection.Collection, opts ...scheduler.Option) *scheduler.Scheduler {
	engine := srs.NewEngine(srs.Config{
		LearningStepsMinutes: cfg.Scheduler.LearningStepsMinutes,
		MaxIntervalDays:      cfg.Scheduler.MaxIntervalDays,
	})
	schedCfg := scheduler.Config{
		QueueLimit:   cfg.Scheduler.QueueLimit,
		ReportLimit:  cfg.Scheduler.ReportLimit,
		RolloverHour: cfg.Scheduler.RolloverHour,
		NewFirst:     cfg.Scheduler.NewFirst(),
	}
	return scheduler.New(col, engine, schedCfg, opts...)
}

// studyBackend wires the scheduler and the collection into the study
// session's view of the world. Manual bury and suspend go through
// storage first, then tell the scheduler a reset-worthy mutation happened.
type studyBackend struct {
	sched *scheduler.Scheduler
	col   *collection.Collection
}

func (b *studyBackend) GetNextCard(ctx context.Context) (*card.Card, error) {
	return b.sched.GetNextCard(ctx)
}

func (b *studyBackend) Note(ctx context.Context, noteID int64) (*card.Note, error) {
	return b.col.Note(ctx, noteID)
}

func (b *studyBackend) Answer(ctx context.Context, cardID int64, quality int, takenMs int64) error {
	return b.sched.Answer(ctx, cardID, quality, takenMs)
}

func (b *studyBackend) Bury(ctx context.Context, cardID int64) error {
	if err := b.col.BuryCard(ctx, cardID); err != nil {
		return err
	}
	return b.sched.ApplyMutation(ctx, scheduler.MutationBury)
}

func (b *studyBackend) Suspend(ctx context.Context, cardID int64) error {
	if err := b.col.SuspendCard(ctx, cardID); err != nil {
		return err
	}
	return b.sched.ApplyMutation(ctx, scheduler.MutationSuspend)
}
