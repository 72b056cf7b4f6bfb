package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
	"google.golang.org/api/googleapi"

	"github.com/ukaji3/cellcurve-go/pkg/cellcurve"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/models"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/output"
	"github.com/ukaji3/cellcurve-go/pkg/cellcurve/source"
)

type folderRequest struct {
	FolderInput string `json:"folderInput"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) process(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		s.fail(c, http.StatusBadRequest, pkgerrors.Wrap(err, "expected multipart form"))
		return
	}

	var inputs []cellcurve.Input
	for _, fh := range form.File["files"] {
		if !source.IsSpreadsheet(fh.Filename, "") {
			continue
		}
		inputs = append(inputs, uploadInput(fh))
	}
	if len(inputs) == 0 {
		s.fail(c, http.StatusBadRequest, errors.New("no .xlsx files uploaded"))
		return
	}

	s.respondRecords(c, inputs)
}

func (s *Server) driveList(c *gin.Context) {
	src, locator, ok := s.driveRequest(c)
	if !ok {
		return
	}

	files, err := src.List(c.Request.Context(), locator)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}
	if files == nil {
		files = []source.File{}
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

func (s *Server) driveDownload(c *gin.Context) {
	src, err := s.drive(c.Request.Context())
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}

	fileID := c.Param("fileId")
	data, err := src.Fetch(c.Request.Context(), fileID)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}
	c.Data(http.StatusOK, source.SpreadsheetMIME, data)
}

func (s *Server) driveProcess(c *gin.Context) {
	src, locator, ok := s.driveRequest(c)
	if !ok {
		return
	}

	files, err := src.List(c.Request.Context(), locator)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}

	inputs := make([]cellcurve.Input, len(files))
	for i, f := range files {
		inputs[i] = cellcurve.SourceInput(src, f)
	}
	s.respondRecords(c, inputs)
}

// driveRequest binds the folder request and creates the Drive source,
// writing the error response itself when either step fails.
func (s *Server) driveRequest(c *gin.Context) (source.Source, string, bool) {
	var req folderRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.FolderInput) == "" {
		s.fail(c, http.StatusBadRequest, errors.New("folderInput is required"))
		return nil, "", false
	}

	src, err := s.drive(c.Request.Context())
	if err != nil {
		s.fail(c, statusFor(err), err)
		return nil, "", false
	}
	return src, strings.TrimSpace(req.FolderInput), true
}

func (s *Server) respondRecords(c *gin.Context, inputs []cellcurve.Input) {
	opts := s.opts
	opts.Logger = s.log

	records, err := cellcurve.ProcessBatch(c.Request.Context(), inputs, opts)
	if err != nil {
		s.fail(c, http.StatusServiceUnavailable, err)
		return
	}
	if records == nil {
		records = []models.ProcessedRecord{}
	}

	if c.Query("format") == "csv" {
		var buf bytes.Buffer
		if err := output.WriteSummaryCSV(&buf, records); err != nil {
			s.fail(c, http.StatusInternalServerError, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="summary.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
	_ = c.Error(err)
	c.Abort()
}

// statusFor maps source errors onto HTTP status codes. Upstream Drive
// errors keep their own status.
func statusFor(err error) int {
	var notFound *source.FolderNotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code >= 400 {
		return apiErr.Code
	}
	return http.StatusInternalServerError
}

func uploadInput(fh *multipart.FileHeader) cellcurve.Input {
	return cellcurve.Input{
		Name: fh.Filename,
		Load: func(context.Context) ([]byte, error) {
			f, err := fh.Open()
			if err != nil {
				return nil, pkgerrors.Wrapf(err, "failed to open upload %s", fh.Filename)
			}
			defer f.Close()
			return io.ReadAll(f)
		},
	}
}
