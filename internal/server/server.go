package server

import (
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"

	"github.com/rgehrsitz/lifex/internal/calculation"
	"github.com/rgehrsitz/lifex/internal/compare"
	"github.com/rgehrsitz/lifex/internal/config"
	"github.com/rgehrsitz/lifex/internal/domain"
)

const requestIDHeader = "X-Request-ID"

// Server exposes the calculation engine over HTTP. Every request is an
// independent engine call, so handlers share the engine without locking.
type Server struct {
	calc    *calculation.CalculationEngine
	compare *compare.CompareEngine
	parser  *config.InputParser
	logger  calculation.Logger
	routes  map[string]route
}

type route struct {
	method  string
	handler fasthttp.RequestHandler
}

// New creates a server over the given engine; nil uses the default table
func New(engine *calculation.CalculationEngine, logger calculation.Logger) *Server {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	s := &Server{
		calc:    engine,
		compare: compare.NewCompareEngine(engine),
		parser:  &config.InputParser{Table: engine.Table},
		logger:  logger,
	}
	s.routes = map[string]route{
		"/healthz":            {fasthttp.MethodGet, s.handleHealth},
		"/v1/factors":         {fasthttp.MethodGet, s.handleFactors},
		"/v1/life-expectancy": {fasthttp.MethodPost, s.handleLifeExpectancy},
		"/v1/compare":         {fasthttp.MethodPost, s.handleCompare},
		"/v1/suggestions":     {fasthttp.MethodPost, s.handleSuggestions},
	}
	return s
}

// ListenAndServe serves on addr until the listener fails
func (s *Server) ListenAndServe(addr string) error {
	srv := &fasthttp.Server{
		Handler:      s.Handler(),
		Name:         "lifex",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	s.logger.Infof("lifex server listening on %s", addr)
	return srv.ListenAndServe(addr)
}

// Handler returns the routing request handler
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()

		id := string(ctx.Request.Header.Peek(requestIDHeader))
		if id == "" {
			id = uuid.New().String()
		}
		ctx.Response.Header.Set(requestIDHeader, id)

		s.route(ctx)

		s.logger.Debugf("%s %s %d %s id=%s", ctx.Method(), ctx.Path(), ctx.Response.StatusCode(), time.Since(start), id)
	}
}

func (s *Server) route(ctx *fasthttp.RequestCtx) {
	path := strings.TrimSuffix(string(ctx.Path()), "/")

	r, ok := s.routes[path]
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, "Not found: "+path)
		return
	}
	if string(ctx.Method()) != r.method {
		ctx.Response.Header.Set("Allow", r.method)
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	r.handler(ctx)
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFactors(ctx *fasthttp.RequestCtx) {
	table := s.calc.Table
	resp := FactorsResponse{
		BaseLifeExpectancy: make(map[domain.Sex]decimal.Decimal),
		Factors:            make([]FactorInfo, 0, len(table.Factors())),
	}
	for _, sex := range []domain.Sex{domain.SexMale, domain.SexFemale} {
		if base, ok := table.BaseLifeExpectancy(sex); ok {
			resp.BaseLifeExpectancy[sex] = base
		}
	}
	for _, f := range table.Factors() {
		info := FactorInfo{
			Factor:      f,
			Name:        calculation.FactorName(f),
			Description: calculation.FactorDescription(f),
		}
		for _, ci := range table.Choices(f) {
			info.Options = append(info.Options, FactorOption{
				Option: calculation.Option{Value: ci.Choice, Label: calculation.ChoiceLabel(f, ci.Choice)},
				Years:  ci.Years,
			})
		}
		resp.Factors = append(resp.Factors, info)
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (s *Server) handleLifeExpectancy(ctx *fasthttp.RequestCtx) {
	profile, warnings, ok := s.decodeProfile(ctx, ctx.PostBody())
	if !ok {
		return
	}
	result := s.calc.ComputeLifeExpectancy(profile)
	writeJSON(ctx, fasthttp.StatusOK, LifeExpectancyResponse{
		Profile:  profile,
		Result:   result,
		Summary:  calculation.Summary(result),
		Warnings: warnings,
	})
}

func (s *Server) handleCompare(ctx *fasthttp.RequestCtx) {
	req := CompareRequest{
		Original: domain.DefaultProfile(),
		Modified: domain.DefaultProfile(),
	}
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	var warnings []string
	for _, p := range []struct {
		name    string
		profile *domain.Profile
	}{{"original", &req.Original}, {"modified", &req.Modified}} {
		p.profile.Sex = normalizeSex(p.profile.Sex)
		ws, err := s.parser.ValidateProfile(*p.profile)
		if err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, p.name+": "+err.Error())
			return
		}
		for _, w := range ws {
			s.logger.Warnf("%s: %s", p.name, w)
			warnings = append(warnings, p.name+": "+w)
		}
	}

	cmp := s.compare.CompareProfiles(req.Original, req.Modified)
	writeJSON(ctx, fasthttp.StatusOK, CompareResponse{
		Comparison: cmp,
		Headline:   compare.Headline(cmp.Difference),
		Timeline:   compare.Timeline(cmp, compare.DefaultTimelineStep, compare.DefaultTimelineSpan),
		Warnings:   warnings,
	})
}

func (s *Server) handleSuggestions(ctx *fasthttp.RequestCtx) {
	profile, _, ok := s.decodeProfile(ctx, ctx.PostBody())
	if !ok {
		return
	}
	top := ctx.QueryArgs().GetUintOrZero("top")

	suggestions := s.calc.RankSuggestions(profile)
	best := s.calc.ComputeLifeExpectancy(s.calc.BestProfile(profile))
	writeJSON(ctx, fasthttp.StatusOK, SuggestionsResponse{
		Suggestions: calculation.TopSuggestions(suggestions, top),
		BestCase:    best.AdjustedLifeExpectancy,
	})
}

// decodeProfile reads a profile body over the default profile and applies
// the basic range checks. On failure the error response is already written.
func (s *Server) decodeProfile(ctx *fasthttp.RequestCtx, body []byte) (domain.Profile, []string, bool) {
	profile := domain.DefaultProfile()
	if len(body) > 0 {
		if err := json.Unmarshal(body, &profile); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
			return profile, nil, false
		}
	}
	profile.Sex = normalizeSex(profile.Sex)

	warnings, err := s.parser.ValidateProfile(profile)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return profile, nil, false
	}
	for _, w := range warnings {
		s.logger.Warnf("%s", w)
	}
	return profile, warnings, true
}

func normalizeSex(s domain.Sex) domain.Sex {
	return domain.Sex(strings.ToLower(strings.TrimSpace(string(s))))
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response: "+err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	data, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}
