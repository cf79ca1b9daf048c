package gymplan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/gymplan/internal/gymplan/analysis"
	"github.com/2beens/gymplan/internal/gymplan/engine"
	"github.com/2beens/gymplan/internal/gymplan/goals"
	"github.com/2beens/gymplan/internal/gymplan/periodization"
	"github.com/2beens/gymplan/internal/gymplan/program"
	"github.com/2beens/gymplan/internal/gymplan/progression"
	"github.com/2beens/gymplan/internal/gymplan/store"
	"github.com/2beens/gymplan/internal/gymplan/workouts"
	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=gymplan_test

type engineService interface {
	PeriodizationConfig(t periodization.Type) (periodization.Config, error)
	RecommendPeriodization(level periodization.Level, goal periodization.Goal) (periodization.Config, error)
	GeneratePlan(ctx context.Context, params program.Params) (*program.Structure, error)
	ApplyLog(ctx context.Context, wl workouts.Log) (*progression.TrainingData, error)
	Analyze(ctx context.Context, userID string) (*analysis.Result, error)
	Insights(ctx context.Context, userID string) (*engine.Insights, error)
	TrainingData(ctx context.Context, userID string) (*progression.TrainingData, error)
	ResetBest(ctx context.Context, userID, exerciseID string) (bool, error)
	Profile(ctx context.Context, userID string) (*workouts.Profile, error)
	SaveProfile(ctx context.Context, profile workouts.Profile) error
}

type goalsService interface {
	Create(ctx context.Context, params goals.NewGoalParams) (*goals.View, error)
	UpdateProgress(ctx context.Context, id uuid.UUID, update goals.ProgressUpdate) (*goals.View, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID string) ([]goals.View, error)
}

type GeneratePlanRequest struct {
	Type             periodization.Type  `json:"type" validate:"omitempty,periodization_type"`
	Level            periodization.Level `json:"level" validate:"required,training_level"`
	Goal             periodization.Goal  `json:"goal" validate:"required,training_goal"`
	DurationWeeks    int                 `json:"durationWeeks" validate:"gte=1,lte=104"`
	FrequencyPerWeek int                 `json:"frequencyPerWeek" validate:"gte=1,lte=7"`
}

type DeleteGoalResponse struct {
	DeletedID uuid.UUID `json:"deletedId"`
}

type ResetBestResponse struct {
	ExerciseID string `json:"exerciseId"`
	Reset      bool   `json:"reset"`
}

type Handler struct {
	engine   engineService
	goals    goalsService
	validate *validator.Validate
}

func NewHandler(engineService engineService, goalsService goalsService) *Handler {
	return &Handler{
		engine:   engineService,
		goals:    goalsService,
		validate: NewValidator(),
	}
}

// NewValidator returns a validator that knows the periodization enums.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("periodization_type", func(fl validator.FieldLevel) bool {
		return periodization.Type(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("training_level", func(fl validator.FieldLevel) bool {
		return periodization.Level(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("training_goal", func(fl validator.FieldLevel) bool {
		return periodization.Goal(fl.Field().String()).IsValid()
	})
	return v
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/gymplan/program", handler.HandleGeneratePlan).Methods("POST", "OPTIONS").Name("generate-program")
	// recommend has to be registered before the {type} route
	r.HandleFunc("/gymplan/periodization/recommend", handler.HandleRecommendPeriodization).Methods("GET", "OPTIONS").Name("recommend-periodization")
	r.HandleFunc("/gymplan/periodization/{type}", handler.HandleGetPeriodization).Methods("GET", "OPTIONS").Name("get-periodization")
	r.HandleFunc("/gymplan/logs", handler.HandleApplyLog).Methods("POST", "OPTIONS").Name("apply-log")
	r.HandleFunc("/gymplan/users/{userId}/analysis", handler.HandleAnalysis).Methods("GET", "OPTIONS").Name("user-analysis")
	r.HandleFunc("/gymplan/users/{userId}/insights", handler.HandleInsights).Methods("GET", "OPTIONS").Name("user-insights")
	r.HandleFunc("/gymplan/users/{userId}/training-data", handler.HandleTrainingData).Methods("GET", "OPTIONS").Name("user-training-data")
	r.HandleFunc("/gymplan/users/{userId}/exercises/{exerciseId}/best", handler.HandleResetBest).Methods("DELETE", "OPTIONS").Name("reset-best")
	r.HandleFunc("/gymplan/users/{userId}/profile", handler.HandleGetProfile).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/gymplan/users/{userId}/profile", handler.HandleSaveProfile).Methods("PUT", "OPTIONS").Name("save-profile")
	r.HandleFunc("/gymplan/users/{userId}/goals", handler.HandleListGoals).Methods("GET", "OPTIONS").Name("list-goals")
	r.HandleFunc("/gymplan/goals", handler.HandleCreateGoal).Methods("POST", "OPTIONS").Name("create-goal")
	r.HandleFunc("/gymplan/goals/{id}/progress", handler.HandleUpdateGoalProgress).Methods("PUT", "OPTIONS").Name("update-goal-progress")
	r.HandleFunc("/gymplan/goals/{id}", handler.HandleDeleteGoal).Methods("DELETE", "OPTIONS").Name("delete-goal")
}

func (handler *Handler) HandleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.generateplan")
	defer span.End()

	var req GeneratePlanRequest
	if !handler.decodeAndValidate(w, r, &req) {
		return
	}

	params := program.Params{
		Type:             req.Type,
		Level:            req.Level,
		Goal:             req.Goal,
		DurationWeeks:    req.DurationWeeks,
		FrequencyPerWeek: req.FrequencyPerWeek,
	}
	if params.Type == "" {
		params.Type = periodization.Recommend(req.Level, req.Goal)
	}
	span.SetAttributes(attribute.String("type", params.Type.String()))

	structure, err := handler.engine.GeneratePlan(ctx, params)
	if err != nil {
		writeError(w, err, "generate program")
		return
	}
	pkg.WriteJSON(w, structure, http.StatusOK)
}

func (handler *Handler) HandleGetPeriodization(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.getperiodization")
	defer span.End()

	t := periodization.Type(mux.Vars(r)["type"])
	span.SetAttributes(attribute.String("type", t.String()))

	cfg, err := handler.engine.PeriodizationConfig(t)
	if err != nil {
		writeError(w, err, "get periodization")
		return
	}
	pkg.WriteJSON(w, cfg, http.StatusOK)
}

func (handler *Handler) HandleRecommendPeriodization(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.recommendperiodization")
	defer span.End()

	level := periodization.Level(r.URL.Query().Get("level"))
	goal := periodization.Goal(r.URL.Query().Get("goal"))
	if !level.IsValid() {
		http.Error(w, "error, invalid or missing <level> param", http.StatusBadRequest)
		return
	}
	if !goal.IsValid() {
		http.Error(w, "error, invalid or missing <goal> param", http.StatusBadRequest)
		return
	}

	cfg, err := handler.engine.RecommendPeriodization(level, goal)
	if err != nil {
		writeError(w, err, "recommend periodization")
		return
	}
	pkg.WriteJSON(w, cfg, http.StatusOK)
}

func (handler *Handler) HandleApplyLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.applylog")
	defer span.End()

	var wl workouts.Log
	if !handler.decodeAndValidate(w, r, &wl) {
		return
	}
	span.SetAttributes(attribute.String("user_id", wl.UserID))

	data, err := handler.engine.ApplyLog(ctx, wl)
	if err != nil {
		writeError(w, err, "apply log")
		return
	}

	log.Debugf("workout log applied for user [%s]: %d sets", wl.UserID, len(wl.CompletedSets))
	pkg.WriteJSON(w, data, http.StatusCreated)
}

func (handler *Handler) HandleAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.analysis")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	span.SetAttributes(attribute.String("user_id", userID))

	res, err := handler.engine.Analyze(ctx, userID)
	if err != nil {
		writeError(w, err, "analyze")
		return
	}
	pkg.WriteJSON(w, res, http.StatusOK)
}

func (handler *Handler) HandleInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.insights")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	span.SetAttributes(attribute.String("user_id", userID))

	insights, err := handler.engine.Insights(ctx, userID)
	if err != nil {
		writeError(w, err, "insights")
		return
	}
	pkg.WriteJSON(w, insights, http.StatusOK)
}

func (handler *Handler) HandleTrainingData(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.trainingdata")
	defer span.End()

	data, err := handler.engine.TrainingData(ctx, mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err, "get training data")
		return
	}
	pkg.WriteJSON(w, data, http.StatusOK)
}

func (handler *Handler) HandleResetBest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.resetbest")
	defer span.End()

	vars := mux.Vars(r)
	userID, exerciseID := vars["userId"], vars["exerciseId"]

	reset, err := handler.engine.ResetBest(ctx, userID, exerciseID)
	if err != nil {
		writeError(w, err, "reset best")
		return
	}
	if !reset {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	pkg.WriteJSON(w, ResetBestResponse{ExerciseID: exerciseID, Reset: true}, http.StatusOK)
}

func (handler *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.getprofile")
	defer span.End()

	profile, err := handler.engine.Profile(ctx, mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err, "get profile")
		return
	}
	pkg.WriteJSON(w, profile, http.StatusOK)
}

func (handler *Handler) HandleSaveProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.saveprofile")
	defer span.End()

	var profile workouts.Profile
	if !handler.decodeAndValidate(w, r, &profile) {
		return
	}
	profile.UserID = mux.Vars(r)["userId"]

	if err := handler.engine.SaveProfile(ctx, profile); err != nil {
		writeError(w, err, "save profile")
		return
	}
	pkg.WriteJSON(w, profile, http.StatusOK)
}

func (handler *Handler) HandleListGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.listgoals")
	defer span.End()

	views, err := handler.goals.List(ctx, mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err, "list goals")
		return
	}
	pkg.WriteJSON(w, views, http.StatusOK)
}

func (handler *Handler) HandleCreateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.creategoal")
	defer span.End()

	var params goals.NewGoalParams
	if !handler.decodeAndValidate(w, r, &params) {
		return
	}

	view, err := handler.goals.Create(ctx, params)
	if err != nil {
		writeError(w, err, "create goal")
		return
	}
	pkg.WriteJSON(w, view, http.StatusCreated)
}

func (handler *Handler) HandleUpdateGoalProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.updategoalprogress")
	defer span.End()

	id, ok := goalID(w, r)
	if !ok {
		return
	}

	var update goals.ProgressUpdate
	if !handler.decodeAndValidate(w, r, &update) {
		return
	}

	view, err := handler.goals.UpdateProgress(ctx, id, update)
	if err != nil {
		writeError(w, err, "update goal progress")
		return
	}
	pkg.WriteJSON(w, view, http.StatusOK)
}

func (handler *Handler) HandleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.deletegoal")
	defer span.End()

	id, ok := goalID(w, r)
	if !ok {
		return
	}

	if err := handler.goals.Delete(ctx, id); err != nil {
		writeError(w, err, "delete goal")
		return
	}
	pkg.WriteJSON(w, DeleteGoalResponse{DeletedID: id}, http.StatusOK)
}

func goalID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid goal id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func (handler *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Errorf("%s %s, unmarshal json body: %s", r.Method, r.URL.Path, err)
		http.Error(w, "error, invalid json body", http.StatusBadRequest)
		return false
	}
	if err := handler.validate.Struct(v); err != nil {
		http.Error(w, "error, validation failed: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error, action string) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, workouts.ErrMalformedLog),
		errors.Is(err, program.ErrInvalidDuration),
		errors.Is(err, goals.ErrInvalidGoal),
		errors.As(err, &validationErrs):
		http.Error(w, "error, "+action+": "+err.Error(), http.StatusBadRequest)
	case errors.Is(err, periodization.ErrConfigNotFound),
		errors.Is(err, goals.ErrGoalNotFound),
		errors.Is(err, store.ErrNotFound):
		http.Error(w, "error, "+action+": not found", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", action, err)
		http.Error(w, "error, failed to "+action, http.StatusInternalServerError)
	}
}
