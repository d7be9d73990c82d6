package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	memmedia "pets-day-registration/internal/adapters/media/memory"
	mem "pets-day-registration/internal/adapters/storage/memory"
	pg "pets-day-registration/internal/adapters/storage/postgres"
	"pets-day-registration/internal/adapters/storage/supabase"
	"pets-day-registration/internal/domain/events"
	"pets-day-registration/internal/domain/media"
	"pets-day-registration/internal/domain/registration"
	"pets-day-registration/internal/domain/search"
	"pets-day-registration/internal/domain/staff"
	"pets-day-registration/internal/middleware"
	"pets-day-registration/internal/platform/logger"
	"pets-day-registration/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Tokens emite y verifica sesiones de staff. nil => modo dev:
	// AuthContext acepta headers X-Debug-User-ID / X-Debug-Role y el
	// login de staff emite tokens que nadie verifica.
	Tokens interface {
		auth.Issuer
		auth.Verifier
	}

	// Storage: DB (Postgres) > Supabase (legacy) > in-memory.
	DB       *sql.DB
	Supabase *supabase.Gateway

	// nil => fotos en memoria (dev).
	MediaStore media.Store

	Log logger.Logger

	WorkflowTTL    time.Duration
	SearchCacheTTL time.Duration

	// Seeds para modo memoria (dev/tests). SeedEvent nil siembra un
	// evento default para que la inscripción funcione out of the box.
	SeedEvent *events.CreateInput
	SeedStaff *staff.CreateInput
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))

	var verifier auth.Verifier
	var issuer auth.Issuer = devIssuer{}
	if opts.Tokens != nil {
		verifier = opts.Tokens
		issuer = opts.Tokens
	}
	r.Use(middleware.AuthContext(verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		gateway    registration.Gateway
		eventRepo  events.Repository
		staffRepo  staff.Repository
		searchRepo search.Repository
	)

	switch {
	case opts.DB != nil:
		gateway = pg.NewGateway(opts.DB)
		eventRepo = pg.NewEventsRepo(opts.DB)
		staffRepo = pg.NewStaffRepo(opts.DB)
		searchRepo = pg.NewSearchRepo(opts.DB)
	case opts.Supabase != nil:
		gateway = opts.Supabase
		eventRepo = opts.Supabase.Events()
		staffRepo = opts.Supabase.Staff()
		searchRepo = opts.Supabase
	default:
		memEvents := mem.NewEventRepo()
		memGateway := mem.NewGateway(memEvents)
		gateway = memGateway
		eventRepo = memEvents
		staffRepo = mem.NewStaffRepo()
		searchRepo = memGateway
	}

	mediaStore := opts.MediaStore
	if mediaStore == nil {
		mediaStore = memmedia.NewStore()
	}

	eventsSvc := events.NewService(eventRepo)
	staffSvc := staff.NewService(staffRepo, issuer)
	searchSvc := search.NewService(searchRepo, opts.SearchCacheTTL)
	mediaSvc := media.NewService(mediaStore)
	workflows := registration.NewStore(opts.WorkflowTTL)

	// Seeds de dev: sólo en modo memoria, donde no hay datos previos.
	if opts.DB == nil && opts.Supabase == nil {
		seedMemory(eventsSvc, staffSvc, opts, log)
	}

	events.RegisterRoutes(r, eventsSvc)
	registration.RegisterRoutes(r, workflows, gateway, log)
	media.RegisterRoutes(r, mediaSvc)
	staff.RegisterRoutes(r, staffSvc)
	search.RegisterRoutes(r, searchSvc)

	return r
}

func seedMemory(eventsSvc *events.Service, staffSvc *staff.Service, opts Options, log logger.Logger) {
	ctx := context.Background()

	seed := opts.SeedEvent
	if seed == nil {
		seed = &events.CreateInput{
			Name:         "PETs DAY",
			Description:  "Evento de la comunidad pet",
			WhatsAppLink: "https://chat.whatsapp.com/petsday",
		}
	}
	if _, err := eventsSvc.Create(ctx, *seed); err != nil {
		log.Warn("seed event failed", map[string]any{"error": err.Error()})
	}

	if opts.SeedStaff != nil {
		if _, err := staffSvc.Create(ctx, *opts.SeedStaff); err != nil {
			log.Warn("seed staff failed", map[string]any{"error": err.Error()})
		}
	}
}

// devIssuer emite un placeholder cuando no hay token manager configurado.
// Sólo tiene sentido en dev, donde el AuthContext tampoco verifica.
type devIssuer struct{}

func (devIssuer) Issue(c auth.Claims) (string, error) {
	return "dev-token:" + c.UserID, nil
}
