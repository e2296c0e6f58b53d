package app

import (
	"context"
	"os"
	"path"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/gorm"

	"github.com/afarenziya/smartdeals/config"
	"github.com/afarenziya/smartdeals/internal/audit"
	"github.com/afarenziya/smartdeals/internal/domain"
	"github.com/afarenziya/smartdeals/internal/mailer"
	"github.com/afarenziya/smartdeals/internal/store"
)

// Application wires configuration, the store, the event bus, the
// mailer and the scheduler together. It is constructed explicitly and
// passed down; there is no process-wide singleton.
type Application struct {
	appConfig *config.AppConfig
	gormDB    *gorm.DB
	dataStore store.Store
	sched     *cron.Cron
	bus       EventBus.Bus
	mail      mailer.Mailer
	recorder  *audit.Recorder
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ StoreProvider     = (*Application)(nil)
	_ BusProvider       = (*Application)(nil)
	_ MailerProvider    = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Store() store.Store {
	return a.dataStore
}

func (a *Application) Bus() EventBus.Bus {
	return a.bus
}

func (a *Application) Mailer() mailer.Mailer {
	return a.mail
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// OverrideStore replaces the application's store (used in tests).
func (a *Application) OverrideStore(s store.Store) {
	a.dataStore = s
}

func (a *Application) Init(cfg *config.AppConfig) {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger(cfg)

	// Pick the store: relational when the database is enabled,
	// in-memory fallback otherwise.
	if cfg.Database.Enabled {
		a.gormDB = getDatabase(cfg.Database)
		zap.S().Info("database connection successful, type: postgres")
		if err := a.MigrateDB(false); err != nil {
			zap.S().Errorf("database migration failed: %v", err)
		}
		a.dataStore = store.NewGormStore(a.gormDB)
	} else {
		zap.S().Warn("database disabled, using in-memory store; data will not survive a restart")
		a.dataStore = store.NewMemoryStore()
	}

	a.checkSuper()
	a.checkCatalogSeed()

	a.bus = EventBus.New()
	a.recorder, err = audit.NewRecorder(a.bus, a.dataStore)
	if err != nil {
		zap.S().Errorf("failed to attach audit recorder: %v", err)
	}

	if cfg.Smtp.Enabled {
		a.mail = mailer.NewSmtpMailer(cfg.Smtp)
	} else {
		a.mail = mailer.Disabled{}
	}

	a.initJob()
}

func (a *Application) initLogger(cfg *config.AppConfig) {
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   path.Join(cfg.GetLogDir(), cfg.Logger.Filename),
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}
	zap.ReplaceGlobals(logger)
}

func (a *Application) MigrateDB(track bool) (err error) {
	if a.gormDB == nil {
		return nil
	}
	if track {
		return a.gormDB.Debug().Migrator().AutoMigrate(domain.Tables...)
	}
	return a.gormDB.Migrator().AutoMigrate(domain.Tables...)
}

func (a *Application) DropAll() {
	if a.gormDB != nil {
		_ = a.gormDB.Migrator().DropTable(domain.Tables...)
	}
}

// InitDb recreates the schema from scratch.
func (a *Application) InitDb() {
	if a.gormDB == nil {
		return
	}
	_ = a.gormDB.Migrator().DropTable(domain.Tables...)
	if err := a.gormDB.Migrator().AutoMigrate(domain.Tables...); err != nil {
		zap.S().Error(err)
	}
}

// StartBackgroundJobs starts the cron runner, stopped via Release.
func (a *Application) StartBackgroundJobs(ctx context.Context) {
	if a.sched != nil {
		a.sched.Start()
		go func() {
			<-ctx.Done()
			a.sched.Stop()
		}()
	}
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.recorder != nil {
		a.recorder.Close()
	}
	_ = zap.L().Sync()
}
