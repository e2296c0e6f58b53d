package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/afarenziya/smartdeals/internal/catalog"
	"github.com/afarenziya/smartdeals/internal/domain"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc := time.Local
	a.sched = cron.New(cron.WithParser(cronParser), cron.WithLocation(loc))

	// nightly catalog stats snapshot, logged and kept in the
	// operation log for trend inspection
	_, err := a.sched.AddFunc("@daily", a.snapshotCatalogStats)
	if err != nil {
		zap.S().Errorf("failed to register stats job: %v", err)
	}
}

func (a *Application) snapshotCatalogStats() {
	ctx := context.Background()
	products, err := a.dataStore.ListProductsChronological(ctx)
	if err != nil {
		zap.L().Error("stats job failed to list products", zap.Error(err))
		return
	}
	ov := catalog.ComputeOverview(products)

	zap.L().Info("catalog stats snapshot",
		zap.Int("total_products", ov.TotalProducts),
		zap.Int("featured_products", ov.FeaturedProducts),
		zap.Float64("average_discount", ov.AverageDiscount),
		zap.Int("platforms", len(ov.PlatformDistribution)),
		zap.Int("categories", len(ov.CategoryDistribution)),
	)

	if err := a.dataStore.AddOprLog(ctx, &domain.SysOprLog{
		OprName:   "system",
		OptAction: "stats.snapshot",
		OptDesc:   "nightly catalog stats snapshot",
		OptTime:   time.Now(),
	}); err != nil {
		zap.L().Error("stats job failed to record snapshot", zap.Error(err))
	}
}
