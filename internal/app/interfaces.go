package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"

	"github.com/afarenziya/smartdeals/config"
	"github.com/afarenziya/smartdeals/internal/mailer"
	"github.com/afarenziya/smartdeals/internal/store"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides data store access
type StoreProvider interface {
	Store() store.Store
}

// BusProvider provides the event bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// MailerProvider provides the contact notification mailer
type MailerProvider interface {
	Mailer() mailer.Mailer
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}
