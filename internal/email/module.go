package email

import (
	"github.com/shandysiswandi/mailbridge/internal/email/inbound"
	"github.com/shandysiswandi/mailbridge/internal/email/outbound/dispatch"
	"github.com/shandysiswandi/mailbridge/internal/email/usecase"
	"github.com/shandysiswandi/mailbridge/internal/pkg/clock"
	"github.com/shandysiswandi/mailbridge/internal/pkg/config"
	"github.com/shandysiswandi/mailbridge/internal/pkg/goroutine"
	"github.com/shandysiswandi/mailbridge/internal/pkg/instrument"
	"github.com/shandysiswandi/mailbridge/internal/pkg/messaging"
	"github.com/shandysiswandi/mailbridge/internal/pkg/router"
	"github.com/shandysiswandi/mailbridge/internal/pkg/uid"
	"github.com/shandysiswandi/mailbridge/internal/pkg/validator"
)

type Dependency struct {
	Publisher  messaging.Publisher
	Config     config.Config
	Instrument instrument.Instrumentation
	UID        uid.NumberID
	Clock      clock.Clocker
	Goroutine  *goroutine.Manager
	Validator  validator.Validator
	Router     *router.Router
}

func New(dep Dependency) error {
	topic := dep.Config.GetString("dispatch.topic")
	if topic == "" {
		topic = "mail.dispatch"
	}

	uc := usecase.New(usecase.Dependency{
		Config:     dep.Config,
		Validator:  dep.Validator,
		Instrument: dep.Instrument,
		Goroutine:  dep.Goroutine,
		Dispatcher: dispatch.New(dep.Publisher, topic, dep.UID, dep.Clock, dep.Instrument),
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
