package tasks

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"listinghub/pkg/models"
)

// maxUploadBytes caps document uploads; the extractor is meant for meeting
// notes and short docs, not books.
const maxUploadBytes = 4 << 20

type Handler struct {
	Extractor *Extractor
}

func NewHandler(extractor *Extractor) *Handler {
	return &Handler{Extractor: extractor}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract", h.extract)
	rg.POST("/export", h.export)
}

// extract accepts either a multipart "file" upload or a raw text body and
// returns the guessed summary plus the action items.
func (h *Handler) extract(c *gin.Context) {
	text, err := readDocument(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read document"})
		return
	}
	if strings.TrimSpace(text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document is empty"})
		return
	}

	records := h.Extractor.Extract(text)

	c.JSON(http.StatusOK, gin.H{
		"summary": Summarize(text),
		"total":   len(records),
		"tasks":   records,
	})
}

type exportReq struct {
	Tasks []models.TaskRecord `json:"tasks"`
}

// export turns a task list back into the downloadable CSV format.
func (h *Handler) export(c *gin.Context) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, req.Tasks); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "csv export failed"})
		return
	}

	filename := fmt.Sprintf("action_items_%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// readDocument pulls the plain text out of the request. Undecodable bytes
// are dropped rather than failing the upload.
func readDocument(c *gin.Context) (string, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()

		b, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
		if err != nil {
			return "", err
		}
		return strings.ToValidUTF8(string(b), ""), nil
	}

	b, err := io.ReadAll(io.LimitReader(c.Request.Body, maxUploadBytes))
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(b), ""), nil
}
