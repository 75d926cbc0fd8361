package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-health-dashboard/internal/domain/animals"
	"pet-health-dashboard/internal/domain/health"
	"pet-health-dashboard/internal/domain/metrics"
	"pet-health-dashboard/internal/domain/resources"
	"pet-health-dashboard/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, views *Views, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc, log))
		ar.Post("/", createAnimalHandler(svc, log))

		ar.Get("/{animalID}", getAnimalHandler(svc, log))
		ar.Patch("/{animalID}", updateAnimalHandler(svc, log))

		ar.Get("/{animalID}/metrics", listMetricsHandler(svc, log))
		ar.Post("/{animalID}/metrics", recordMetricHandler(svc, log))

		ar.Get("/{animalID}/charts", chartsHandler(views, log))
		ar.Get("/{animalID}/profile", profileHandler(views, log))
	})

	r.Get("/overview", overviewHandler(views, log))

	r.Get("/resources", getResourcesHandler(svc, log))
	r.Put("/resources", replaceResourcesHandler(svc, log))

	r.Get("/alerts", listAlertsHandler(svc, log))
	r.Get("/time-ranges", timeRangesHandler())
}

type animalResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	PhotoURL       string    `json:"photo_url"`
	BirthDate      *string   `json:"birth_date,omitempty"` // YYYY-MM-DD
	Breed          string    `json:"breed,omitempty"`
	TargetWeightKg *float64  `json:"target_weight_kg,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type createAnimalRequest struct {
	Name           string   `json:"name"`
	PhotoURL       string   `json:"photo_url"`
	BirthDate      string   `json:"birth_date"` // YYYY-MM-DD opcional
	Breed          string   `json:"breed"`
	TargetWeightKg *float64 `json:"target_weight_kg"`
}

type updateAnimalRequest struct {
	// nil = no tocar. birth_date y target_weight_kg aceptan null para limpiar (ver handler).
	Name     *string `json:"name"`
	PhotoURL *string `json:"photo_url"`
	Breed    *string `json:"breed"`
}

type metricResponse struct {
	AnimalID  string   `json:"animal_id"`
	Date      string   `json:"date"`
	WeightKg  *float64 `json:"weight_kg"`
	FoodGrams float64  `json:"food_g"`
	WaterMl   float64  `json:"water_ml"`
}

type recordMetricRequest struct {
	Date      string   `json:"date"` // YYYY-MM-DD, vacío = hoy
	WeightKg  *float64 `json:"weight_kg"`
	FoodGrams float64  `json:"food_g"`
	WaterMl   float64  `json:"water_ml"`
}

type alertResponse struct {
	ID        string           `json:"id"`
	AnimalID  string           `json:"animal_id"`
	Type      health.AlertType `json:"type"`
	Severity  health.Severity  `json:"severity"`
	Message   string           `json:"message"`
	Metric    string           `json:"metric"`
	Value     float64          `json:"value"`
	Threshold float64          `json:"threshold"`
	CreatedAt time.Time        `json:"created_at"`
}

type cardResponse struct {
	Animal     animalResponse    `json:"animal"`
	Metric     *metricResponse   `json:"metric"`
	Assessment health.Assessment `json:"assessment"`
}

type profileResponse struct {
	Animal     animalResponse    `json:"animal"`
	AgeYears   *int              `json:"age_years"`
	Latest     *metricResponse   `json:"latest_metric"`
	Assessment health.Assessment `json:"assessment"`
	Alerts     []alertResponse   `json:"alerts"`
}

type chartsResponse struct {
	AnimalID       string               `json:"animal_id"`
	Range          metrics.TimeRange    `json:"range"`
	Weight         []metrics.ChartPoint `json:"weight"`
	Food           []metrics.ChartPoint `json:"food"`
	Water          []metrics.ChartPoint `json:"water"`
	TargetWeightKg *float64             `json:"target_weight_kg"`
	WeightDomain   *metrics.Domain      `json:"weight_domain"`
}

type timeRangeResponse struct {
	Value metrics.TimeRange `json:"value"`
	Label string            `json:"label"`
	Days  int               `json:"days"`
}

// listAnimalsHandler godoc
// @Summary Listar mascotas
// @Tags animals
// @Produce json
// @Success 200 {array} animalResponse
// @Failure 500 {string} string "internal error"
// @Router /animals [get]
func listAnimalsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAnimals(r.Context())
		if err != nil {
			internalError(w, log, "list animals", err)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createAnimalHandler godoc
// @Summary Alta de mascota
// @Description Crea el perfil con un id nuevo. name es obligatorio; birth_date en formato YYYY-MM-DD.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Perfil de la mascota"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /animals [post]
func createAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := metrics.ParseDay(strings.TrimSpace(req.BirthDate))
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bd = &t
		}

		a, err := svc.AddAnimal(r.Context(), animals.CreateInput{
			Name:           req.Name,
			PhotoURL:       req.PhotoURL,
			BirthDate:      bd,
			Breed:          req.Breed,
			TargetWeightKg: req.TargetWeightKg,
		})
		if err != nil {
			if errors.Is(err, animals.ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			internalError(w, log, "add animal", err)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// getAnimalHandler godoc
// @Summary Perfil de mascota
// @Tags animals
// @Produce json
// @Param animalID path string true "ID de la mascota"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, found, err := svc.GetAnimal(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			internalError(w, log, "get animal", err)
			return
		}
		if !found {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Actualizar mascota
// @Description Merge superficial: solo se modifican los campos enviados. birth_date y target_weight_kg aceptan null para limpiar.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "ID de la mascota"
// @Param payload body updateAnimalRequest true "Campos a modificar"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [patch]
func updateAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Primero a map para detectar presencia de campos que aceptan null.
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var req updateAnimalRequest
		{
			b, _ := json.Marshal(raw)
			if err := json.Unmarshal(b, &req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
		}

		in := animals.UpdateInput{
			Name:     req.Name,
			PhotoURL: req.PhotoURL,
			Breed:    req.Breed,
		}

		if v, exists := raw["birth_date"]; exists {
			in.BirthDate = animals.Clear[time.Time]()
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					http.Error(w, "birth_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				t, err := metrics.ParseDay(strings.TrimSpace(s))
				if err != nil {
					http.Error(w, "birth_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				in.BirthDate = animals.Set(t)
			}
		}

		if v, exists := raw["target_weight_kg"]; exists {
			in.TargetWeightKg = animals.Clear[float64]()
			if string(v) != "null" {
				var f float64
				if err := json.Unmarshal(v, &f); err != nil {
					http.Error(w, "target_weight_kg must be a number or null", http.StatusBadRequest)
					return
				}
				in.TargetWeightKg = animals.Set(f)
			}
		}

		updated, found, err := svc.UpdateAnimal(r.Context(), chi.URLParam(r, "animalID"), in)
		if err != nil {
			switch {
			case errors.Is(err, animals.ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				internalError(w, log, "update animal", err)
			}
			return
		}
		if !found {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(updated))
	}
}

// listMetricsHandler godoc
// @Summary Métricas diarias de una mascota
// @Tags metrics
// @Produce json
// @Param animalID path string true "ID de la mascota"
// @Param range query string false "7d | 30d | 90d | 1y. Por defecto 30d"
// @Success 200 {array} metricResponse
// @Failure 400 {string} string "invalid time range"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID}/metrics [get]
func listMetricsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr, ok := parseRange(w, r)
		if !ok {
			return
		}

		a, found, err := svc.GetAnimal(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			internalError(w, log, "get animal", err)
			return
		}
		if !found {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		ms, err := svc.GetMetrics(r.Context(), a.ID, tr)
		if err != nil {
			internalError(w, log, "get metrics", err)
			return
		}

		out := make([]metricResponse, 0, len(ms))
		for _, m := range ms {
			out = append(out, toMetricResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// recordMetricHandler godoc
// @Summary Registrar métrica diaria
// @Description Un registro por mascota y día; no se pueden editar.
// @Tags metrics
// @Accept json
// @Produce json
// @Param animalID path string true "ID de la mascota"
// @Param payload body recordMetricRequest true "Registro del día"
// @Success 201 {object} metricResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "animal not found"
// @Failure 409 {string} string "daily metric already recorded"
// @Router /animals/{animalID}/metrics [post]
func recordMetricHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordMetricRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		day := svc.Today()
		if s := strings.TrimSpace(req.Date); s != "" {
			t, err := metrics.ParseDay(s)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			day = t
		}

		m, err := svc.RecordMetric(r.Context(), metrics.RecordInput{
			AnimalID:  chi.URLParam(r, "animalID"),
			Date:      day,
			WeightKg:  req.WeightKg,
			FoodGrams: req.FoodGrams,
			WaterMl:   req.WaterMl,
		})
		if err != nil {
			switch {
			case errors.Is(err, animals.ErrNotFound):
				http.Error(w, "animal not found", http.StatusNotFound)
			case errors.Is(err, metrics.ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, metrics.ErrDuplicate):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				internalError(w, log, "record metric", err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toMetricResponse(m))
	}
}

// chartsHandler godoc
// @Summary Series de tendencia (peso, comida, agua)
// @Tags metrics
// @Produce json
// @Param animalID path string true "ID de la mascota"
// @Param range query string false "7d | 30d | 90d | 1y. Por defecto 30d"
// @Success 200 {object} chartsResponse
// @Failure 400 {string} string "invalid time range"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID}/charts [get]
func chartsHandler(views *Views, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr, ok := parseRange(w, r)
		if !ok {
			return
		}

		c, found, err := views.Charts(r.Context(), chi.URLParam(r, "animalID"), tr)
		if err != nil {
			internalError(w, log, "charts", err)
			return
		}
		if !found {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, chartsResponse{
			AnimalID:       c.AnimalID,
			Range:          c.Range,
			Weight:         c.Weight,
			Food:           c.Food,
			Water:          c.Water,
			TargetWeightKg: c.TargetWeightKg,
			WeightDomain:   c.WeightDomain,
		})
	}
}

// profileHandler godoc
// @Summary Ficha de mascota
// @Description Perfil, edad, último registro (ventana de 90 días), estado y alertas activas.
// @Tags animals
// @Produce json
// @Param animalID path string true "ID de la mascota"
// @Success 200 {object} profileResponse
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID}/profile [get]
func profileHandler(views *Views, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, found, err := views.Profile(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			internalError(w, log, "profile", err)
			return
		}
		if !found {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		out := profileResponse{
			Animal:     toAnimalResponse(p.Animal),
			AgeYears:   p.AgeYears,
			Assessment: p.Assessment,
			Alerts:     toAlertResponses(p.Alerts),
		}
		if p.Latest != nil {
			m := toMetricResponse(*p.Latest)
			out.Latest = &m
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// overviewHandler godoc
// @Summary Vista general
// @Description Una tarjeta por mascota con el registro de hoy (o el último de la semana) y su estado.
// @Tags dashboard
// @Produce json
// @Success 200 {array} cardResponse
// @Router /overview [get]
func overviewHandler(views *Views, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := views.Overview(r.Context())
		if err != nil {
			internalError(w, log, "overview", err)
			return
		}

		out := make([]cardResponse, 0, len(cards))
		for _, c := range cards {
			cr := cardResponse{
				Animal:     toAnimalResponse(c.Animal),
				Assessment: c.Assessment,
			}
			if c.Metric != nil {
				m := toMetricResponse(*c.Metric)
				cr.Metric = &m
			}
			out = append(out, cr)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getResourcesHandler godoc
// @Summary Recursos compartidos
// @Tags resources
// @Produce json
// @Success 200 {object} resources.SharedResources
// @Router /resources [get]
func getResourcesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.GetSharedResources(r.Context())
		if err != nil {
			internalError(w, log, "get shared resources", err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

// replaceResourcesHandler godoc
// @Summary Reemplazar recursos compartidos
// @Description Reemplaza el snapshot completo. Niveles en 0-100.
// @Tags resources
// @Accept json
// @Produce json
// @Param payload body resources.SharedResources true "Snapshot completo"
// @Success 200 {object} resources.SharedResources
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 405 {string} string "shared resources backend is read-only"
// @Router /resources [put]
func replaceResourcesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resources.SharedResources
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.FoodBowls == nil {
			req.FoodBowls = []resources.FoodBowl{}
		}

		snap, err := svc.ReplaceSharedResources(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, resources.ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, resources.ErrReadOnly):
				http.Error(w, err.Error(), http.StatusMethodNotAllowed)
			default:
				internalError(w, log, "replace shared resources", err)
			}
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

// listAlertsHandler godoc
// @Summary Alertas
// @Description Alertas calculadas sobre el historial reciente de todas las mascotas.
// @Tags alerts
// @Produce json
// @Success 200 {array} alertResponse
// @Router /alerts [get]
func listAlertsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alerts, err := svc.ListAlerts(r.Context())
		if err != nil {
			internalError(w, log, "list alerts", err)
			return
		}
		writeJSON(w, http.StatusOK, toAlertResponses(alerts))
	}
}

// timeRangesHandler godoc
// @Summary Opciones del selector de rango
// @Tags metrics
// @Produce json
// @Success 200 {array} timeRangeResponse
// @Router /time-ranges [get]
func timeRangesHandler() http.HandlerFunc {
	out := make([]timeRangeResponse, 0, len(metrics.TimeRanges()))
	for _, tr := range metrics.TimeRanges() {
		out = append(out, timeRangeResponse{Value: tr, Label: tr.Label(), Days: tr.Days()})
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, out)
	}
}

// parseRange lee ?range=; vacío => 30d. Escribe el 400 si es inválido.
func parseRange(w http.ResponseWriter, r *http.Request) (metrics.TimeRange, bool) {
	q := r.URL.Query().Get("range")
	if strings.TrimSpace(q) == "" {
		return metrics.Range30d, true
	}
	tr, err := metrics.ParseTimeRange(q)
	if err != nil {
		http.Error(w, "invalid time range", http.StatusBadRequest)
		return "", false
	}
	return tr, true
}

func toAnimalResponse(a animals.Animal) animalResponse {
	out := animalResponse{
		ID:             a.ID,
		Name:           a.Name,
		PhotoURL:       a.PhotoURL,
		Breed:          a.Breed,
		TargetWeightKg: a.TargetWeightKg,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if a.BirthDate != nil {
		s := a.BirthDate.Format(metrics.DateLayout)
		out.BirthDate = &s
	}
	return out
}

func toMetricResponse(m metrics.DailyMetric) metricResponse {
	return metricResponse{
		AnimalID:  m.AnimalID,
		Date:      m.Date.Format(metrics.DateLayout),
		WeightKg:  m.WeightKg,
		FoodGrams: m.FoodGrams,
		WaterMl:   m.WaterMl,
	}
}

func toAlertResponses(in []health.Alert) []alertResponse {
	out := make([]alertResponse, 0, len(in))
	for _, a := range in {
		out = append(out, alertResponse{
			ID:        a.ID,
			AnimalID:  a.AnimalID,
			Type:      a.Type,
			Severity:  a.Severity,
			Message:   a.Message,
			Metric:    a.Metric,
			Value:     a.Value,
			Threshold: a.Threshold,
			CreatedAt: a.CreatedAt,
		})
	}
	return out
}

func internalError(w http.ResponseWriter, log logger.Logger, op string, err error) {
	log.Error("request failed", map[string]any{"op": op, "error": err.Error()})
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
