package overtime

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc *Service
	log *zap.Logger
}

func RegisterRoutes(r gin.IRoutes, svc *Service, log *zap.Logger) {
	h := &Handler{svc: svc, log: log}

	r.POST("/overtime/reports", h.CreateReport)
	r.POST("/overtime/reports/raw", h.CreateReportRaw)
}

// CreateReport: 上流ペイロードの JSON オブジェクトをそのまま受けて集計する
func (h *Handler) CreateReport(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, apiErr(CodeInvalidArgument, "invalid json"))
		return
	}
	h.compute(c, payload)
}

// CreateReportRaw: 傍受したレスポンスボディを未加工のまま受ける
// （gzip は Content-Encoding、文字コードは Content-Type の charset で指定）
func (h *Handler) CreateReportRaw(c *gin.Context) {
	charset := ""
	if ct := c.GetHeader("Content-Type"); ct != "" {
		if _, params, err := mime.ParseMediaType(ct); err == nil {
			charset = params["charset"]
		}
	}
	payload, err := DecodePayload(c.Request.Body, c.GetHeader("Content-Encoding"), charset)
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
		return
	}
	h.compute(c, payload)
}

func (h *Handler) compute(c *gin.Context, payload map[string]any) {
	records, err := h.svc.ExtractRecords(payload)
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
		return
	}
	rep, err := h.svc.BuildReport(records)
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
		return
	}

	h.log.Info("report computed",
		zap.String("report_id", rep.ReportID),
		zap.Int("records", len(records)),
		zap.Int("days", len(rep.Days)),
		zap.Int("weeks", len(rep.Weeks)),
		zap.Int("excluded", rep.Excluded),
	)
	c.JSON(http.StatusOK, rep.toDTO())
}

// ===== helpers =====

type errDTO struct {
	Error struct {
		Code    Code   `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func apiErr(code Code, msg string) errDTO {
	var e errDTO
	e.Error.Code = code
	e.Error.Message = msg
	return e
}
func apiErrFrom(err error) errDTO {
	if api, ok := err.(*APIError); ok {
		return apiErr(api.Code, api.Message)
	}
	return apiErr(CodeInternal, err.Error())
}
