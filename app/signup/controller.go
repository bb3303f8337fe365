package signup

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	gohttp "github.com/km-arc/go-signup/framework/http"
	"github.com/km-arc/go-signup/framework/http/validation"
	"github.com/km-arc/go-signup/framework/routing"
)

//go:embed views/*.html
var viewFiles embed.FS

// Views returns the embedded templates rooted at views/.
func Views() fs.FS {
	sub, err := fs.Sub(viewFiles, "views")
	if err != nil {
		panic(err)
	}
	return sub
}

// inputs lists the rendered controls in display order.
var inputs = []struct {
	Name, Label, Type string
}{
	{FieldName, "Nome", "text"},
	{FieldAge, "Idade", "number"},
	{FieldEmail, "E-mail", "email"},
	{FieldPassword, "Senha", "password"},
	{FieldConfirmPassword, "Confirme sua senha", "password"},
}

// FieldNames returns the bound field names in display order.
func FieldNames() []string {
	names := make([]string, len(inputs))
	for i, in := range inputs {
		names[i] = in.Name
	}
	return names
}

// LogCompletion returns the default completion callback: one structured
// log line per created user, tagged with a fresh submission id.
func LogCompletion(logger *slog.Logger) CompletionFunc {
	return func(ctx context.Context, user ValidatedUser) {
		logger.InfoContext(ctx, "user created",
			slog.String("submission_id", uuid.NewString()),
			slog.Any("user", user),
		)
	}
}

// ControllerConfig wires a Controller.
type ControllerConfig struct {
	Title    string
	Schema   validation.Schema
	Views    *gohttp.ViewEngine
	Complete CompletionFunc
	Metrics  *Metrics     // optional
	Logger   *slog.Logger // optional, defaults to slog.Default()
	Tracer   trace.Tracer // optional, defaults to the global provider
}

// Controller serves the registration form.
type Controller struct {
	cfg ControllerConfig
}

// NewController builds a Controller, filling optional collaborators.
func NewController(cfg ControllerConfig) *Controller {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = otel.Tracer("github.com/km-arc/go-signup/app/signup")
	}
	if cfg.Title == "" {
		cfg.Title = "Cadastro"
	}
	return &Controller{cfg: cfg}
}

// Routes mounts the form on r. Responses carry typed-in values, so they
// are never cached.
func (c *Controller) Routes(r *routing.Router) {
	r.Group(func(g *routing.Router) {
		g.Middleware(middleware.NoCache)
		g.Get("/", c.Show)
		g.Post("/", c.Store)
	})
}

// Show renders an empty form.
func (c *Controller) Show(w http.ResponseWriter, r *http.Request) {
	req := gohttp.NewRequest(r)
	form := NewForm(c.cfg.Schema, nil)
	c.render(w, http.StatusOK, form, req.Query("created") == "1")
}

// Store validates a submission. HTML clients are redirected on success and
// shown the form with inline errors on failure; JSON clients get 201/422.
func (c *Controller) Store(w http.ResponseWriter, r *http.Request) {
	req := gohttp.NewRequest(r)
	res := gohttp.NewResponse(w)

	in, err := req.Fields(FieldNames()...)
	if err != nil {
		c.cfg.Logger.WarnContext(r.Context(), "unreadable submission", slog.Any("error", err))
		res.Error(http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}

	form := NewForm(c.cfg.Schema, c.cfg.Complete)
	user, ok := c.submit(r.Context(), form, in)

	switch {
	case req.IsJSON() && ok:
		res.Created(user)
	case req.IsJSON():
		res.ValidationError(form.Errors())
	case ok:
		res.SeeOther("/?created=1")
	default:
		c.render(w, http.StatusUnprocessableEntity, form, false)
	}
}

func (c *Controller) submit(ctx context.Context, form *Form, in map[string]string) (ValidatedUser, bool) {
	ctx, span := c.cfg.Tracer.Start(ctx, "signup.submit")
	defer span.End()

	user, ok := form.SubmitValues(ctx, in)
	errs := form.Errors()

	span.SetAttributes(
		attribute.String("signup.result", form.Outcome().String()),
		attribute.StringSlice("signup.invalid_fields", errs.Fields()),
	)
	if !ok {
		span.SetStatus(codes.Error, "validation failed")
		c.cfg.Logger.DebugContext(ctx, "submission rejected", slog.Any("fields", errs.Fields()))
	}
	c.cfg.Metrics.Observe(form.Outcome(), errs)
	return user, ok
}

// ── View model ───────────────────────────────────────────────────────────────

type fieldView struct {
	Name, Label, Type, Value, Error string
}

type formView struct {
	Title   string
	Created bool
	Fields  []fieldView
}

func (c *Controller) render(w http.ResponseWriter, status int, form *Form, created bool) {
	view := formView{Title: c.cfg.Title, Created: created}
	for _, in := range inputs {
		fv := fieldView{Name: in.Name, Label: in.Label, Type: in.Type, Error: form.Errors().First(in.Name)}
		if in.Type != "password" {
			fv.Value = form.Value(in.Name)
		}
		view.Fields = append(view.Fields, fv)
	}
	c.cfg.Views.View(w, status, "form", view)
}
