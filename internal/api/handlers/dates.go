package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xzzpig/cronlist/internal/api/context"
	"github.com/xzzpig/cronlist/internal/core/datelist"
	"github.com/xzzpig/cronlist/internal/core/errs"
	"github.com/xzzpig/cronlist/internal/core/logger"
	"github.com/xzzpig/cronlist/internal/i18n"
	"github.com/xzzpig/cronlist/internal/utils"
)

// Policy names used in responses.
const (
	PolicyCount = "count"
	PolicyEnd   = "end"
)

// DatesRequest is accepted as query parameters (GET) or a JSON body (POST).
type DatesRequest struct {
	Expression  string `form:"expression" json:"expression"`
	CurrentDate string `form:"currentDate" json:"currentDate"`
	Timezone    string `form:"timezone" json:"timezone"`
	EndDate     string `form:"endDate" json:"endDate"`
	Limit       *int   `form:"limit" json:"limit"`
}

// WarningResponse is a localized build warning.
type WarningResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DatesResponse lists the occurrences of one expression.
type DatesResponse struct {
	Expression string            `json:"expression"`
	Timezone   string            `json:"timezone"`
	Policy     string            `json:"policy"`
	Dates      []string          `json:"dates"`
	Warnings   []WarningResponse `json:"warnings"`
}

// DatesHandler serves date list builds.
type DatesHandler struct {
	builder *datelist.Builder
}

// NewDatesHandler creates a handler backed by builder.
func NewDatesHandler(builder *datelist.Builder) *DatesHandler {
	return &DatesHandler{builder: builder}
}

func datesLog() *zap.Logger {
	return logger.Named("api.dates")
}

// Get builds a date list from query parameters.
func (h *DatesHandler) Get(c *gin.Context) {
	var req DatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleError(c, i18n.NewError(i18n.ErrInvalidRequestBody, nil).WithCause(err))
		return
	}
	h.respond(c, &req)
}

// Post builds a date list from a JSON body.
func (h *DatesHandler) Post(c *gin.Context) {
	var req DatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, i18n.NewError(i18n.ErrInvalidRequestBody, nil).WithCause(err))
		return
	}
	h.respond(c, &req)
}

func (h *DatesHandler) respond(c *gin.Context, req *DatesRequest) {
	if strings.TrimSpace(req.Expression) == "" {
		HandleError(c, i18n.NewError(i18n.ErrMissingParameter, map[string]any{"Name": "expression"}))
		return
	}

	opts, err := h.toOptions(req)
	if err != nil {
		HandleError(c, err)
		return
	}

	result, err := h.builder.Build(req.Expression, opts)
	if err != nil {
		HandleError(c, buildError(err))
		return
	}

	datesLog().Debug("Built date list",
		zap.String("request_id", context.GetRequestID(c)),
		zap.String("locale", context.GetLocale(c)),
		zap.String("expression", req.Expression),
		zap.Int("limit", utils.Deref(req.Limit, 0)),
		zap.Int("count", len(result.Dates)),
	)
	c.JSON(http.StatusOK, toResponse(c, req.Expression, result))
}

// buildError maps a Builder.Build failure to its response error.
func buildError(err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		return err
	case errors.Is(err, errs.ErrSystem):
		return i18n.NewError(i18n.ErrGeneric, nil).WithStatus(http.StatusInternalServerError).WithCause(err)
	default:
		// Anything else comes straight from the cron parser.
		return i18n.NewError(i18n.ErrInvalidSchedule, map[string]any{"Reason": err.Error()}).WithCause(err)
	}
}

func (h *DatesHandler) toOptions(req *DatesRequest) (*datelist.Options, error) {
	loc, err := h.builder.Location(req.Timezone)
	if err != nil {
		return nil, i18n.NewError(i18n.ErrInvalidTimezone, map[string]any{"Timezone": req.Timezone}).WithCause(err)
	}

	opts := &datelist.Options{
		Timezone: loc.String(),
		Limit:    req.Limit,
	}
	if req.CurrentDate != "" {
		t, err := utils.ParseInstant(req.CurrentDate, loc)
		if err != nil {
			return nil, i18n.NewError(i18n.ErrInvalidDate, map[string]any{"Value": req.CurrentDate}).WithCause(err)
		}
		opts.CurrentDate = &t
	}
	if req.EndDate != "" {
		t, err := utils.ParseInstant(req.EndDate, loc)
		if err != nil {
			return nil, i18n.NewError(i18n.ErrInvalidDate, map[string]any{"Value": req.EndDate}).WithCause(err)
		}
		opts.EndDate = &t
	}
	return opts, nil
}

func toResponse(c *gin.Context, expr string, result *datelist.Result) *DatesResponse {
	localizer := context.GetLocalizer(c)

	resp := &DatesResponse{
		Expression: expr,
		Timezone:   result.Location.String(),
		Policy:     PolicyName(result.Policy),
		Dates:      make([]string, 0, len(result.Dates)),
		Warnings:   make([]WarningResponse, 0, len(result.Warnings)),
	}
	for _, d := range result.Dates {
		resp.Dates = append(resp.Dates, d.Format(time.RFC3339))
	}
	for _, w := range result.Warnings {
		resp.Warnings = append(resp.Warnings, WarningResponse{
			Code:    w.Code,
			Message: i18n.TWithData(localizer, w.Code, w.Data),
		})
	}
	return resp
}

// PolicyName returns the response name of a stopping policy.
func PolicyName(p datelist.Policy) string {
	switch p.(type) {
	case datelist.EndBounded:
		return PolicyEnd
	default:
		return PolicyCount
	}
}
